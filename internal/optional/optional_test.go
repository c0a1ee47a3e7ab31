package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()
	some := Some("type")
	require.True(t, some.IsPresent())
	v, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, "type", v)

	none := None[int]()
	require.False(t, none.IsPresent())
	n, ok := none.Get()
	require.False(t, ok)
	require.Zero(t, n)
	require.Zero(t, none.Value())
}
