package core_test

import (
	"testing"

	"github.com/katalvlaran/ctgcn/core"
	"github.com/stretchr/testify/require"
)

func TestNodeIndex(t *testing.T) {
	ni, err := core.NewNodeIndex([]string{"a", " b ", "c"})
	require.NoError(t, err)
	require.Equal(t, 3, ni.Len())

	i, ok := ni.Index("b")
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = ni.Index("zzz")
	require.False(t, ok)

	l, err := ni.Label(2)
	require.NoError(t, err)
	require.Equal(t, "c", l)

	_, err = ni.Label(3)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)

	require.Equal(t, []string{"a", "b", "c"}, ni.Labels())

	g, err := ni.NewGraph()
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
}

func TestNodeIndex_Errors(t *testing.T) {
	_, err := core.NewNodeIndex([]string{"a", "  "})
	require.ErrorIs(t, err, core.ErrEmptyLabel)

	_, err = core.NewNodeIndex([]string{"a", "b", "a"})
	require.ErrorIs(t, err, core.ErrDuplicateLabel)
}
