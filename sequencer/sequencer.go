// Package sequencer runs screen transitions: it fades to black, runs a
// queued action, waits for that action's condition and fades back once the
// queue is empty.
package sequencer

import (
	"log/slog"
	"time"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/shared/gamemath"
)

// FadeState is the current transition phase.
type FadeState int

const (
	FadingFromBlack FadeState = iota
	Black
	FadingToBlack
)

func (s FadeState) String() string {
	switch s {
	case FadingFromBlack:
		return "fading_from_black"
	case Black:
		return "black"
	case FadingToBlack:
		return "fading_to_black"
	}
	return "unknown"
}

// LoadingScreen selects what the presentation layer draws while obscured.
type LoadingScreen int

const (
	LoadingScreenNone LoadingScreen = iota
	LoadingScreenLaunch
	LoadingScreenBlack
)

func (l LoadingScreen) String() string {
	switch l {
	case LoadingScreenLaunch:
		return "launch"
	case LoadingScreenBlack:
		return "black"
	}
	return "none"
}

// Command is one queued transition step.
type Command struct {
	Name   string
	Screen LoadingScreen

	// Action runs once when the screen is fully black.
	Action func()

	// Condition is polled every tick after Action ran. A nil condition
	// completes the command on the same tick.
	Condition func() bool

	// Short selects the short fade duration.
	Short bool

	// Timeout overrides the sequencer timeout for this command, in seconds.
	// Zero keeps the sequencer setting.
	Timeout float64

	// manual commands only complete through CompleteAsyncAction.
	manual bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogger sets the logger for transition events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequencer) { s.log = l }
}

// WithDurations overrides the short and long fade durations, in seconds.
func WithDurations(short, long float64) Option {
	return func(s *Sequencer) {
		s.shortDuration = short
		s.longDuration = long
	}
}

// WithTimeout abandons commands whose condition is still false after the
// given number of seconds in the black state. Zero waits forever.
func WithTimeout(seconds float64) Option {
	return func(s *Sequencer) { s.timeout = seconds }
}

// WithTimeoutHandler sets the hook told about abandoned commands.
func WithTimeoutHandler(fn func(*TimeoutError)) Option {
	return func(s *Sequencer) { s.onTimeout = fn }
}

// Sequencer is the fade state machine. It is driven by Tick from a single
// goroutine; conditions may observe work done elsewhere.
type Sequencer struct {
	state         FadeState
	fadeTime      float64
	fadeDuration  float64
	shortDuration float64
	longDuration  float64
	screen        LoadingScreen

	queue      []Command
	current    Command
	hasCurrent bool
	waited     float64

	timeout   float64
	onTimeout func(*TimeoutError)
	log       *slog.Logger
}

// New creates an idle sequencer: fading from black with nothing left to
// reveal.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		state:         FadingFromBlack,
		shortDuration: cfg.UI.FadeDurationShort,
		longDuration:  cfg.UI.FadeDurationLong,
		timeout:       cfg.UI.TransitionTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	s.fadeDuration = s.longDuration
	return s
}

// Restart puts the sequencer back in its startup state: fully obscured and
// fading in, with an empty queue.
func (s *Sequencer) Restart() {
	s.queue = nil
	s.current = Command{}
	s.hasCurrent = false
	s.state = FadingFromBlack
	s.fadeDuration = s.longDuration
	s.fadeTime = s.fadeDuration
}

// RunWaitAction queues action to run once the screen is black, then waits
// for condition before fading back.
func (s *Sequencer) RunWaitAction(screen LoadingScreen, action func(), condition func() bool, short bool) {
	s.Enqueue(Command{Screen: screen, Action: action, Condition: condition, Short: short})
}

// RunAction queues action and stays black until CompleteAsyncAction is
// called.
func (s *Sequencer) RunAction(screen LoadingScreen, action func(), short bool) {
	s.Enqueue(Command{
		Screen:    screen,
		Action:    action,
		Condition: func() bool { return false },
		Short:     short,
		manual:    true,
	})
}

// RunActionAndReturn queues action and fades back right after it ran.
func (s *Sequencer) RunActionAndReturn(screen LoadingScreen, action func(), short bool) {
	s.Enqueue(Command{
		Screen:    screen,
		Action:    action,
		Condition: func() bool { return true },
		Short:     short,
	})
}

// Enqueue adds a command behind the pending ones and starts fading to black
// unless the screen is already black.
func (s *Sequencer) Enqueue(c Command) {
	s.screen = c.Screen
	s.queue = append(s.queue, c)
	if s.state != Black {
		s.setState(FadingToBlack)
	}
	s.log.Debug("transition queued",
		"command", c.Name,
		"screen", c.Screen.String(),
		"pending", len(s.queue))
}

// CompleteAsyncAction finishes the current command. The next queued command
// becomes current, or the screen starts fading back. It does nothing unless
// the screen is black.
func (s *Sequencer) CompleteAsyncAction() {
	if s.state != Black {
		s.log.Warn("transition completed early",
			"state", s.state.String(),
			"pending", len(s.queue))
		return
	}
	if s.dequeue() {
		return
	}
	s.hasCurrent = false
	s.current = Command{}
	s.setState(FadingFromBlack)
}

// Tick advances the state machine by dt seconds.
func (s *Sequencer) Tick(dt float64) {
	switch s.state {
	case FadingToBlack:
		if len(s.queue) > 0 {
			s.fadeDuration = s.durationOf(s.queue[0])
		}
		s.fadeTime = gamemath.Clamp(s.fadeTime+dt, 0, s.fadeDuration)
		if s.fadeTime >= s.fadeDuration && s.dequeue() {
			s.setState(Black)
		}

	case Black:
		s.tickBlack(dt)

	case FadingFromBlack:
		s.fadeTime = gamemath.Clamp(s.fadeTime-dt, 0, s.fadeDuration)
	}
}

func (s *Sequencer) tickBlack(dt float64) {
	if !s.hasCurrent {
		s.CompleteAsyncAction()
		return
	}

	if s.current.Action != nil {
		action := s.current.Action
		s.current.Action = nil
		action()
	}

	if s.current.Condition == nil {
		s.CompleteAsyncAction()
		return
	}

	if s.current.Condition() {
		s.current.Condition = nil
		s.CompleteAsyncAction()
		return
	}

	s.waited += dt
	if limit := s.timeoutOf(s.current); limit > 0 && s.waited >= limit {
		err := &TimeoutError{
			Name:    s.current.Name,
			Screen:  s.current.Screen,
			Elapsed: time.Duration(s.waited * float64(time.Second)),
		}
		s.log.Warn("transition abandoned", "error", err.Error())
		if s.onTimeout != nil {
			s.onTimeout(err)
		}
		s.CompleteAsyncAction()
	}
}

func (s *Sequencer) dequeue() bool {
	if len(s.queue) == 0 {
		return false
	}
	s.current = s.queue[0]
	s.queue[0] = Command{}
	s.queue = s.queue[1:]
	s.hasCurrent = true
	s.waited = 0
	return true
}

func (s *Sequencer) durationOf(c Command) float64 {
	if c.Short {
		return s.shortDuration
	}
	return s.longDuration
}

func (s *Sequencer) timeoutOf(c Command) float64 {
	if c.manual {
		return 0
	}
	if c.Timeout > 0 {
		return c.Timeout
	}
	return s.timeout
}

func (s *Sequencer) setState(state FadeState) {
	if s.state == state {
		return
	}
	s.log.Debug("fade state changed", "from", s.state.String(), "to", state.String())
	s.state = state
}

// IsIdle reports whether no transition is pending, which is the case
// exactly while fading from black.
func (s *Sequencer) IsIdle() bool {
	return s.state == FadingFromBlack
}

// State returns the current phase.
func (s *Sequencer) State() FadeState {
	return s.state
}

// FadeTime returns the fade timer, always within [0, FadeDuration].
func (s *Sequencer) FadeTime() float64 {
	return s.fadeTime
}

// FadeDuration returns the duration of the running fade.
func (s *Sequencer) FadeDuration() float64 {
	return s.fadeDuration
}

// Alpha returns the eased loading screen opacity.
func (s *Sequencer) Alpha() float64 {
	if s.fadeDuration <= 0 {
		if s.state == FadingFromBlack {
			return 0
		}
		return 1
	}
	return gamemath.InterpEaseInOut(0, 1, s.fadeTime/s.fadeDuration, cfg.UI.EaseStrong)
}

// LoadingScreen returns the screen kind of the last queued command.
func (s *Sequencer) LoadingScreen() LoadingScreen {
	return s.screen
}

// Pending returns the number of queued commands, not counting the current
// one.
func (s *Sequencer) Pending() int {
	return len(s.queue)
}
