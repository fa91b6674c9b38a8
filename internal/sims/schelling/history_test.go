package schelling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	var h History
	require.Zero(t, h.Count())
	require.Nil(t, h.Values())

	_, err := h.Latest()
	require.ErrorIs(t, err, ErrEmptyHistory)
	_, err = h.First()
	require.ErrorIs(t, err, ErrEmptyHistory)
	_, err = h.Mean()
	require.ErrorIs(t, err, ErrEmptyHistory)
	_, err = h.Max()
	require.ErrorIs(t, err, ErrEmptyHistory)
}

func TestHistorySummaries(t *testing.T) {
	var h History
	for _, v := range []float64{0.5, 0.75, 0.25, 0.5} {
		h.Append(v)
	}

	require.Equal(t, 4, h.Count())
	latest, err := h.Latest()
	require.NoError(t, err)
	require.Equal(t, 0.5, latest)

	first, err := h.First()
	require.NoError(t, err)
	require.Equal(t, 0.5, first)

	mean, err := h.Mean()
	require.NoError(t, err)
	require.InDelta(t, 0.5, mean, 1e-12)

	max, err := h.Max()
	require.NoError(t, err)
	require.Equal(t, 0.75, max)
}

func TestHistoryValuesIsACopy(t *testing.T) {
	var h History
	h.Append(0.1)
	h.Append(0.2)

	vals := h.Values()
	vals[0] = 99
	first, err := h.First()
	require.NoError(t, err)
	require.Equal(t, 0.1, first)
}
