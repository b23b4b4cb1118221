package dispatch

import "fmt"

// Signature identifies the accepted types of the two operands of a dispatch
// entry.
type Signature struct {
	Left  Tag
	Right Tag
}

// Sig is a convenience constructor for a Signature.
func Sig(left, right Tag) Signature {
	return Signature{Left: left, Right: right}
}

// String renders the signature as it appears in error messages.
func (s Signature) String() string {
	return fmt.Sprintf("(%s, %s)", s.Left, s.Right)
}

// Handler combines two positional operands into a result. Errors from the
// underlying engines propagate through unchanged.
type Handler func(x, y any) (any, error)

// SignatureMap accumulates the entries of an operation before it is
// assembled into a Function. When the entries were built without a closed
// operator, the map also carries the self reference the handlers resolve
// through at call time.
type SignatureMap struct {
	entries map[Signature]Handler
	self    *Ref
}

// NewSignatureMap creates an empty signature map.
func NewSignatureMap() *SignatureMap {
	return &SignatureMap{entries: make(map[Signature]Handler)}
}

// Put registers a handler, replacing any existing entry under the same key.
func (m *SignatureMap) Put(sig Signature, h Handler) {
	m.entries[sig] = h
}

// Get returns the handler registered under sig, if any.
func (m *SignatureMap) Get(sig Signature) (Handler, bool) {
	h, ok := m.entries[sig]
	return h, ok
}

// Len returns the number of registered entries.
func (m *SignatureMap) Len() int { return len(m.entries) }

// Signatures returns the registered keys in unspecified order.
func (m *SignatureMap) Signatures() []Signature {
	sigs := make([]Signature, 0, len(m.entries))
	for s := range m.entries {
		sigs = append(sigs, s)
	}
	return sigs
}

// Merge copies every entry of other into m. Entries from other win on key
// collision.
func (m *SignatureMap) Merge(other *SignatureMap) {
	if other == nil {
		return
	}
	for sig, h := range other.entries {
		m.entries[sig] = h
	}
}

// BindSelf attaches the reference cell that context-bound handlers in this
// map read through. Set by the suite builder; consumed on assembly.
func (m *SignatureMap) BindSelf(r *Ref) { m.self = r }

// Self returns the attached reference cell, nil when all handlers are
// self-contained.
func (m *SignatureMap) Self() *Ref { return m.self }
