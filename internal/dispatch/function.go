package dispatch

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNoMatch is returned by Call when no signature accepts the argument
// types.
var ErrNoMatch = errors.New("no matching signature")

// Function is a fully assembled multiple-dispatch entry point. It is
// immutable after construction and safe for concurrent use.
type Function struct {
	name    string
	entries map[Signature]Handler
}

// NewFunction assembles a Function from a signature map. If the map carries
// a self reference, it is bound to the new Function before it is returned,
// so context-bound handlers observe the complete entry point from the first
// call on.
func NewFunction(name string, sigs *SignatureMap) (*Function, error) {
	if sigs == nil || sigs.Len() == 0 {
		return nil, fmt.Errorf("dispatch: function %q has no signatures", name)
	}
	entries := make(map[Signature]Handler, sigs.Len())
	for sig, h := range sigs.entries {
		entries[sig] = h
	}
	f := &Function{name: name, entries: entries}
	if sigs.self != nil {
		if err := sigs.self.bind(f); err != nil {
			return nil, fmt.Errorf("dispatch: function %q: %w", name, err)
		}
	}
	return f, nil
}

// Name returns the operation name the function was assembled under.
func (f *Function) Name() string { return f.name }

// Call dispatches on the runtime tags of x and y. Resolution prefers an
// exact match, then a single-wildcard match with the wildcard on the right,
// then on the left, then the full wildcard entry.
func (f *Function) Call(x, y any) (any, error) {
	lt, rt := TagOf(x), TagOf(y)
	for _, sig := range [4]Signature{
		{lt, rt},
		{lt, TagAny},
		{TagAny, rt},
		{TagAny, TagAny},
	} {
		if h, ok := f.entries[sig]; ok {
			return h(x, y)
		}
	}
	return nil, fmt.Errorf("%s: arguments (%s, %s): %w", f.name, lt, rt, ErrNoMatch)
}

// Signatures returns a copy of the function's entries, suitable for merging
// into another operation's signature map.
func (f *Function) Signatures() *SignatureMap {
	m := NewSignatureMap()
	for sig, h := range f.entries {
		m.entries[sig] = h
	}
	return m
}

// Ref is a once-settable handle to a Function that is still being
// assembled. Handlers built without a closed operator store the handle and
// resolve it at call time, by which point assembly has completed and the
// handle observes the full entry point, including entries added after the
// handlers were created.
type Ref struct {
	fn atomic.Pointer[Function]
}

// NewRef creates an unbound reference cell.
func NewRef() *Ref { return &Ref{} }

// Resolve returns the bound Function. Calling through an unbound reference
// is a caller contract violation: assembly must complete before the
// operation is first invoked.
func (r *Ref) Resolve() *Function {
	fn := r.fn.Load()
	if fn == nil {
		panic("dispatch: call through unbound self reference")
	}
	return fn
}

func (r *Ref) bind(fn *Function) error {
	if !r.fn.CompareAndSwap(nil, fn) {
		return errors.New("self reference already bound")
	}
	return nil
}
