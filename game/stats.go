package game

import "time"

// recent scores kept for the average and the performance graph
const scoreWindow = 50

// SessionStats accumulates results across the runs of one session. It is
// kept in memory only; nothing is persisted between sessions.
type SessionStats struct {
	games       int
	sessionHigh int
	totalScore  int
	scores      []int
	durations   []time.Duration
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		scores:    make([]int, 0, scoreWindow),
		durations: make([]time.Duration, 0, scoreWindow),
	}
}

// Record adds one finished run.
func (s *SessionStats) Record(score int, duration time.Duration) {
	s.games++
	s.totalScore += score
	if score > s.sessionHigh {
		s.sessionHigh = score
	}
	if len(s.scores) >= scoreWindow {
		s.scores = s.scores[1:]
		s.durations = s.durations[1:]
	}
	s.scores = append(s.scores, score)
	s.durations = append(s.durations, duration)
}

func (s *SessionStats) GamesPlayed() int {
	return s.games
}

func (s *SessionStats) SessionHigh() int {
	return s.sessionHigh
}

// AverageScore is the mean over the recent score window.
func (s *SessionStats) AverageScore() float64 {
	if len(s.scores) == 0 {
		return 0
	}
	sum := 0
	for _, sc := range s.scores {
		sum += sc
	}
	return float64(sum) / float64(len(s.scores))
}

// AverageDuration is the mean run length over the recent window.
func (s *SessionStats) AverageDuration() time.Duration {
	if len(s.durations) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range s.durations {
		sum += d
	}
	return sum / time.Duration(len(s.durations))
}

// RecentScores returns a copy of the score window, oldest first.
func (s *SessionStats) RecentScores() []int {
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out
}
