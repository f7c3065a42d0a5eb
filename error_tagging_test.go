package fluxion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceTaggedError_ExtractIndexAndName(t *testing.T) {
	base := errors.New("pull failed")
	tagged := newSourceTaggedError(base, "prices", 2)

	name, ok := ExtractSourceName(tagged)
	require.True(t, ok)
	require.Equal(t, "prices", name)

	idx, ok := ExtractSourceIndex(tagged)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	require.True(t, errors.Is(tagged, tagged))
	require.Equal(t, base, errors.Unwrap(tagged))
}

func TestSourceTaggedError_NoNameReportsNotOk(t *testing.T) {
	tagged := newSourceTaggedError(errors.New("x"), "", 0)
	_, ok := ExtractSourceName(tagged)
	require.False(t, ok)
}

func TestSourceTaggedError_NilErrorReturnsNil(t *testing.T) {
	require.Nil(t, newSourceTaggedError(nil, "x", 0))
}

func TestExtractSourceIndex_PlainErrorReportsNotOk(t *testing.T) {
	_, ok := ExtractSourceIndex(errors.New("plain"))
	require.False(t, ok)
}
