package inkball

// ScoreTable maps a color name to a point value.
type ScoreTable map[string]int

// Lookup returns the value for the color, or zero if it is not configured.
func (t ScoreTable) Lookup(c Color) int {
	return t[c.String()]
}

// Scoring holds a level's capture reward and wrong-hole penalty rules.
type Scoring struct {
	Increase           ScoreTable
	Decrease           ScoreTable
	IncreaseMultiplier float64
	DecreaseMultiplier float64
}

func DefaultScoring() Scoring {
	return Scoring{
		Increase:           ScoreTable{},
		Decrease:           ScoreTable{},
		IncreaseMultiplier: 1.0,
		DecreaseMultiplier: 1.0,
	}
}

func (s *Scoring) Reward(c Color) int {
	return int(float64(s.Increase.Lookup(c)) * s.IncreaseMultiplier)
}

func (s *Scoring) Penalty(c Color) int {
	return int(float64(s.Decrease.Lookup(c)) * s.DecreaseMultiplier)
}

// Scoreboard is the session score. It never goes below zero.
type Scoreboard struct {
	points int
}

func NewScoreboard(points int) *Scoreboard {
	sb := &Scoreboard{}
	sb.Set(points)
	return sb
}

func (s *Scoreboard) Points() int {
	return s.points
}

func (s *Scoreboard) Set(points int) {
	s.points = max(0, points)
}

// Add increases the score and returns the change actually applied.
func (s *Scoreboard) Add(points int) int {
	before := s.points
	s.Set(s.points + points)
	return s.points - before
}

// Deduct lowers the score, stopping at zero, and returns the amount removed.
func (s *Scoreboard) Deduct(points int) int {
	before := s.points
	s.Set(s.points - points)
	return before - s.points
}
