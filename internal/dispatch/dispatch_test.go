package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgrid/numgrid/internal/matrix"
)

func TestTagOf(t *testing.T) {
	dense, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	sparse, err := matrix.NewSparse(1, 1)
	require.NoError(t, err)

	tests := []struct {
		value any
		want  Tag
	}{
		{dense, TagDense},
		{sparse, TagSparse},
		{[][]float64{{1}}, TagArray},
		{3.14, TagNumber},
		{float32(1), TagNumber},
		{7, TagNumber},
		{int64(7), TagNumber},
		{true, TagBoolean},
		{"hello", TagUnknown},
		{nil, TagUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TagOf(tt.value), "%T", tt.value)
	}
}

func constHandler(v any) Handler {
	return func(_, _ any) (any, error) { return v, nil }
}

func TestFunctionResolutionOrder(t *testing.T) {
	sigs := NewSignatureMap()
	sigs.Put(Sig(TagNumber, TagNumber), constHandler("exact"))
	sigs.Put(Sig(TagNumber, TagAny), constHandler("right-any"))
	sigs.Put(Sig(TagAny, TagNumber), constHandler("left-any"))
	sigs.Put(Sig(TagAny, TagAny), constHandler("both-any"))

	fn, err := NewFunction("probe", sigs)
	require.NoError(t, err)

	got, err := fn.Call(1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, "exact", got)

	got, err = fn.Call(1.0, true)
	require.NoError(t, err)
	assert.Equal(t, "right-any", got)

	got, err = fn.Call(true, 2.0)
	require.NoError(t, err)
	assert.Equal(t, "left-any", got)

	got, err = fn.Call(true, false)
	require.NoError(t, err)
	assert.Equal(t, "both-any", got)
}

func TestFunctionNoMatch(t *testing.T) {
	sigs := NewSignatureMap()
	sigs.Put(Sig(TagNumber, TagNumber), constHandler(0))
	fn, err := NewFunction("probe", sigs)
	require.NoError(t, err)

	_, err = fn.Call("a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), "probe")
	assert.Contains(t, err.Error(), "unknown")
}

func TestNewFunctionEmpty(t *testing.T) {
	_, err := NewFunction("empty", NewSignatureMap())
	assert.Error(t, err)

	_, err = NewFunction("nil", nil)
	assert.Error(t, err)
}

func TestSignatureMapMergePrecedence(t *testing.T) {
	base := NewSignatureMap()
	base.Put(Sig(TagNumber, TagNumber), constHandler("base"))
	base.Put(Sig(TagDense, TagDense), constHandler("kept"))

	override := NewSignatureMap()
	override.Put(Sig(TagNumber, TagNumber), constHandler("override"))

	base.Merge(override)
	assert.Equal(t, 2, base.Len())

	fn, err := NewFunction("merged", base)
	require.NoError(t, err)
	got, err := fn.Call(1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, "override", got)
}

func TestRefBindOnce(t *testing.T) {
	ref := NewRef()

	sigs := NewSignatureMap()
	sigs.Put(Sig(TagNumber, TagNumber), constHandler(1))
	sigs.BindSelf(ref)

	fn, err := NewFunction("first", sigs)
	require.NoError(t, err)
	assert.Same(t, fn, ref.Resolve())

	// The same map, and therefore the same ref, cannot be assembled twice.
	_, err = NewFunction("second", sigs)
	assert.Error(t, err)
}

func TestRefUnboundPanics(t *testing.T) {
	ref := NewRef()
	assert.Panics(t, func() { ref.Resolve() })
}

func TestRefDeferredResolution(t *testing.T) {
	ref := NewRef()

	// A handler created before assembly completes must observe entries
	// added afterwards.
	sigs := NewSignatureMap()
	sigs.BindSelf(ref)
	sigs.Put(Sig(TagBoolean, TagBoolean), func(_, _ any) (any, error) {
		return ref.Resolve().Call(1.0, 2.0)
	})
	sigs.Put(Sig(TagNumber, TagNumber), constHandler("late entry"))

	fn, err := NewFunction("selfref", sigs)
	require.NoError(t, err)

	got, err := fn.Call(true, false)
	require.NoError(t, err)
	assert.Equal(t, "late entry", got)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	sigs := NewSignatureMap()
	sigs.Put(Sig(TagNumber, TagNumber), constHandler(42))

	fn, err := r.Register("answer", sigs)
	require.NoError(t, err)
	require.NotNil(t, fn)

	got, err := r.Call("answer", 1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	looked, ok := r.Lookup("answer")
	require.True(t, ok)
	assert.Same(t, fn, looked)

	assert.Equal(t, []string{"answer"}, r.Names())
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	sigs := NewSignatureMap()
	sigs.Put(Sig(TagNumber, TagNumber), constHandler(0))
	_, err := r.Register("op", sigs)
	require.NoError(t, err)

	again := NewSignatureMap()
	again.Put(Sig(TagNumber, TagNumber), constHandler(1))
	_, err = r.Register("op", again)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegistryUnknownOperation(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call("nope", 1.0, 2.0)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
