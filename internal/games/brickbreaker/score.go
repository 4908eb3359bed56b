package brickbreaker

// ScoreManager accumulates points for a session.
type ScoreManager struct {
	score int
}

// AddPoints adds n to the score.
func (s *ScoreManager) AddPoints(n int) {
	s.score += n
}

// Score returns the current score.
func (s *ScoreManager) Score() int {
	return s.score
}

// Reset sets the score back to zero.
func (s *ScoreManager) Reset() {
	s.score = 0
}
