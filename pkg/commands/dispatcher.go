package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Handler processes a single command invocation. The request is the raw
// JSON argument payload and the result must be JSON-serializable.
type Handler func(ctx context.Context, request json.RawMessage) (interface{}, error)

// ErrUnknownCommand is returned by Invoke for unregistered command names.
type ErrUnknownCommand struct {
	Name string
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

func IsUnknownCommand(err error) bool {
	_, ok := err.(*ErrUnknownCommand)
	return ok
}

// Dispatcher routes command invocations to registered handlers. It is
// the in-process analogue of the host's remote-invocation table: the
// transport shim decodes a command name plus argument payload and calls
// Invoke.
type Dispatcher struct {
	lock     sync.RWMutex
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
	}
}

// Handle registers a handler for a command name.
func (d *Dispatcher) Handle(name string, handler Handler) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.handlers[name] = handler
}

// Invoke runs the named command and returns its JSON-encoded result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, request json.RawMessage) (json.RawMessage, error) {
	d.lock.RLock()
	handler, ok := d.handlers[name]
	d.lock.RUnlock()
	if !ok {
		return nil, &ErrUnknownCommand{Name: name}
	}

	result, err := handler(ctx, request)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %v", err)
	}
	return encoded, nil
}
