package vizbridge

import (
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/app"
)

// State represents the lifecycle state of a pipeline.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// StateChangeEvent describes a lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// BatchDispatchEvent describes one batched dispatch to the render sink.
type BatchDispatchEvent struct {
	Zone     string
	Commands int
	Duration time.Duration
}

// CommandErrorEvent describes a protocol-level rejection, such as a
// command referencing an unknown zone.
type CommandErrorEvent struct {
	Zone string
	Err  error
}

// EventHandler receives pipeline events. Events are called synchronously
// from the tick goroutine; implementations should return quickly.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnBatchDispatch(event BatchDispatchEvent)
	OnCommandError(event CommandErrorEvent)
}

// BaseEventHandler provides no-op defaults. Embed it so new event types do
// not break existing handlers.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent)     {}
func (BaseEventHandler) OnBatchDispatch(BatchDispatchEvent) {}
func (BaseEventHandler) OnCommandError(CommandErrorEvent)   {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnBatchDispatch(zoneID string, commandCount int, duration time.Duration) {
	if e.handler == nil {
		return
	}
	e.handler.OnBatchDispatch(BatchDispatchEvent{
		Zone:     zoneID,
		Commands: commandCount,
		Duration: duration,
	})
}

func (e *eventEmitterWrapper) OnCommandError(zoneID string, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnCommandError(CommandErrorEvent{Zone: zoneID, Err: err})
}

func convertState(s app.State) State {
	switch s {
	case app.StateStopped:
		return StateStopped
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}
