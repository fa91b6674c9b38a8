package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 20), Int64Param("seed", "Seed", -3)}},
		{Name: "Agents", Params: []Parameter{FloatParam("density", "Density", 0.8)}},
	}}

	p, ok := snap.Lookup("density")
	require.True(t, ok)
	require.Equal(t, ParamTypeFloat, p.Type)
	require.Equal(t, "0.8", p.Value)

	p, ok = snap.Lookup("seed")
	require.True(t, ok)
	require.Equal(t, ParamTypeInt, p.Type)
	require.Equal(t, "-3", p.Value)

	_, ok = snap.Lookup("missing")
	require.False(t, ok)
}
