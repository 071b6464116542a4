package inkball

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/plus3/inkball/geom"
)

type State int

const (
	Playing State = iota
	Completing
	NextLevel
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Completing:
		return "completing"
	case NextLevel:
		return "next-level"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// FinishedMessage is shown once the last level has been completed.
const FinishedMessage = "=== ENDED ==="

// TimeUpMessage is shown when the level timer ran out.
const TimeUpMessage = "=== TIME'S UP ==="

// PausedMessage is shown while the game is paused.
const PausedMessage = "*** PAUSED ***"

type Option func(*Session)

// WithSeed sets the seed every level's random source derives from.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session drives level progression for one player.
type Session struct {
	cfg      *Config
	layouts  []*Layout
	settings []LevelSettings
	seed     uint64

	state      State
	index      int
	level      *Level
	completion *Completion

	score        *Scoreboard
	initialScore int

	remaining    int
	timerElapsed time.Duration
	paused       bool
	timeUp       bool
}

// NewSession parses every level layout up front and loads the first level.
func NewSession(cfg *Config, layouts fs.FS, opts ...Option) (*Session, error) {
	if cfg == nil || len(cfg.Levels) == 0 {
		return nil, ErrNoLevels
	}

	s := &Session{
		cfg:   cfg,
		score: NewScoreboard(0),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i := range cfg.Levels {
		settings, err := cfg.Settings(i)
		if err != nil {
			return nil, err
		}
		layout, err := cfg.LoadLayout(layouts, i)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		s.settings = append(s.settings, settings)
		s.layouts = append(s.layouts, layout)
	}

	s.load(0)
	return s, nil
}

func (s *Session) load(index int) {
	settings := s.settings[index]

	s.index = index
	s.initialScore = s.score.Points()
	s.level = NewLevel(settings, s.layouts[index], s.score, s.seed+uint64(index))
	s.completion = nil
	s.remaining = settings.Time
	s.timerElapsed = 0
	s.timeUp = false
	s.state = Playing
}

// Update advances the session by one frame of dt simulated time.
func (s *Session) Update(dt time.Duration) {
	switch s.state {
	case Playing:
		if !s.paused && !s.timeUp {
			s.level.Update(dt)
			s.tickTimer(dt)
		}
		if s.level.IsCompleted() {
			s.beginCompletion()
		}

	case Completing:
		if s.completion.Update(dt, s.score) {
			if s.index+1 >= len(s.cfg.Levels) {
				s.state = Finished
			} else {
				s.state = NextLevel
			}
		}

	case NextLevel:
		s.load(s.index + 1)

	case Finished:
	}
}

func (s *Session) tickTimer(dt time.Duration) {
	s.timerElapsed += dt
	for s.timerElapsed >= time.Second && s.remaining > 0 {
		s.timerElapsed -= time.Second
		s.remaining--
	}
	if s.remaining <= 0 {
		s.remaining = 0
		s.timeUp = true
		s.paused = true
	}
}

func (s *Session) beginCompletion() {
	s.completion = NewCompletion(s.remaining, s.level.Size())
	s.remaining = 0
	s.state = Completing
}

// Restart restarts the whole game once it has finished, otherwise the current level.
func (s *Session) Restart() {
	if s.state == Finished {
		s.RestartGame()
		return
	}
	s.RestartLevel()
}

// RestartLevel reloads the current level, restoring the score it started with.
func (s *Session) RestartLevel() {
	s.score.Set(s.initialScore)
	s.paused = false
	s.load(s.index)
}

// RestartGame goes back to the first level with a zero score.
func (s *Session) RestartGame() {
	s.score.Set(0)
	s.paused = false
	s.load(0)
}

func (s *Session) TogglePause() {
	s.paused = !s.paused
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) TimeUp() bool {
	return s.timeUp
}

func (s *Session) Score() int {
	return s.score.Points()
}

func (s *Session) LevelIndex() int {
	return s.index
}

func (s *Session) LevelCount() int {
	return len(s.cfg.Levels)
}

func (s *Session) Level() *Level {
	return s.level
}

// Completion returns the running completion animation, or nil outside of it.
func (s *Session) Completion() *Completion {
	if s.state != Completing {
		return nil
	}
	return s.completion
}

// TimeRemaining returns the level timer, or the unpaid bonus while completing.
func (s *Session) TimeRemaining() int {
	if s.completion != nil && s.state == Completing {
		return s.completion.Bonus()
	}
	return s.remaining
}

func (s *Session) Countdown() float64 {
	return s.level.Countdown()
}

func (s *Session) Upcoming() []Color {
	return s.level.Upcoming(UpcomingPreview)
}

// Message returns the banner text for the current state, if any.
func (s *Session) Message() string {
	switch {
	case s.state == Finished:
		return FinishedMessage
	case s.timeUp && s.state == Playing:
		return TimeUpMessage
	case s.paused && s.state == Playing:
		return PausedMessage
	}
	return ""
}

func (s *Session) acceptsGestures() bool {
	return s.state == Playing
}

func (s *Session) BeginStroke(p geom.Vec2) {
	if s.acceptsGestures() {
		s.level.BeginStroke(p)
	}
}

func (s *Session) ExtendStroke(p geom.Vec2) {
	if s.acceptsGestures() {
		s.level.ExtendStroke(p)
	}
}

func (s *Session) EndStroke() {
	if s.acceptsGestures() {
		s.level.EndStroke()
	}
}

func (s *Session) RemoveStrokeAt(p geom.Vec2) bool {
	if !s.acceptsGestures() {
		return false
	}
	return s.level.RemoveStrokeAt(p)
}
