package catalog

import "fmt"

// EventType names the lifecycle event a hook fires on.
type EventType string

const (
	EventNever   EventType = "never"
	EventStart   EventType = "start"
	EventError   EventType = "error"
	EventSuccess EventType = "success"
	EventEnd     EventType = "end"
	EventAll     EventType = "all"
)

// IsValid reports whether e is a recognized lifecycle event.
func (e EventType) IsValid() bool {
	switch e {
	case EventNever, EventStart, EventError, EventSuccess, EventEnd, EventAll:
		return true
	default:
		return false
	}
}

// shellHookKind is the hook-mapping key shell hooks serialize under.
const shellHookKind = "shell"

// ShellHook runs a shell command when the named lifecycle event fires.
type ShellHook struct {
	On  EventType `json:"_on"`
	Cmd string    `json:"cmd"`
}

// newShellHook validates the event type before the hook is attached anywhere.
func newShellHook(on EventType, cmd string) (ShellHook, error) {
	if !on.IsValid() {
		return ShellHook{}, fmt.Errorf("unknown hook event %q: %w", on, ErrInvalidValue)
	}
	return ShellHook{On: on, Cmd: cmd}, nil
}
