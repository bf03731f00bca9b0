package sequencer

import (
	"errors"
	"fmt"
	"time"
)

// ErrConditionTimeout is matched by every TimeoutError.
var ErrConditionTimeout = errors.New("sequencer: transition condition timed out")

// TimeoutError reports a command abandoned because its condition stayed
// false for too long while the screen was black.
type TimeoutError struct {
	Name    string
	Screen  LoadingScreen
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	name := e.Name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("sequencer: command %q (%s screen) still waiting after %s", name, e.Screen, e.Elapsed)
}

func (e *TimeoutError) Unwrap() error {
	return ErrConditionTimeout
}
