package game

import "time"

// GameRecord describes one finished game
type GameRecord struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Boosts    int
	Reason    string
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Stats keeps the finished games of this process. Nothing is written to disk.
type Stats struct {
	Games     []GameRecord
	BestScore int
}

func NewStats() *Stats {
	return &Stats{
		Games: make([]GameRecord, 0),
	}
}

func (s *Stats) AddGame(r GameRecord) {
	s.Games = append(s.Games, r)
	if r.Score > s.BestScore {
		s.BestScore = r.Score
	}
}

func (s *Stats) GamesPlayed() int {
	return len(s.Games)
}

func (s *Stats) AverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	sum := 0
	for _, g := range s.Games {
		sum += g.Score
	}
	return float64(sum) / float64(len(s.Games))
}
