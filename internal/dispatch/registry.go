package dispatch

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicate is returned when an operation name is registered twice.
var ErrDuplicate = errors.New("operation already registered")

// ErrUnknownOperation is returned by Call for names never registered.
var ErrUnknownOperation = errors.New("unknown operation")

// Registry holds named dispatch functions. Registration happens at process
// initialization; calls are read-mostly afterwards.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]*Function
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]*Function)}
}

// Register assembles sigs into a Function and publishes it under name.
// Any self reference in sigs is bound before publication, so concurrent
// callers can never observe a partially assembled operation.
func (r *Registry) Register(name string, sigs *SignatureMap) (*Function, error) {
	fn, err := NewFunction(name, sigs)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fns[name]; ok {
		return nil, fmt.Errorf("dispatch: %q: %w", name, ErrDuplicate)
	}
	r.fns[name] = fn
	return fn, nil
}

// MustRegister is Register for init-time wiring of built-in operations.
func (r *Registry) MustRegister(name string, sigs *SignatureMap) *Function {
	fn, err := r.Register(name, sigs)
	if err != nil {
		panic(err)
	}
	return fn
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (*Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[name]
	return fn, ok
}

// Call dispatches a binary operation by name.
func (r *Registry) Call(name string, x, y any) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("dispatch: %q: %w", name, ErrUnknownOperation)
	}
	return fn.Call(x, y)
}

// Names returns the registered operation names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	return names
}
