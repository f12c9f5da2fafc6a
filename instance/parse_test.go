package instance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleInstance = `2 10 1.0
0 0 0 0 0 1000 0 0 0
1 1 0 1 0 100 1 0 2
2 2 0 -1 0 100 1 1 0
`

func TestParseReturnsHeaderAndNodes(t *testing.T) {
	header, nodes, err := Parse(strings.NewReader(sampleInstance))
	require.NoError(t, err)
	require.Equal(t, Header{Vehicles: 2, Capacity: 10, Speed: 1.0}, header)
	require.Len(t, nodes, 3)
	require.False(t, nodes[1].IsDelivery)
	require.Equal(t, 2, nodes[1].Pair)
	require.True(t, nodes[2].IsDelivery)
	require.Equal(t, 1, nodes[2].Pair)
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	_, _, err := Parse(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseRejectsMalformedRow(t *testing.T) {
	_, _, err := Parse(strings.NewReader("2 10 1.0\n0 0 0\n"))
	require.ErrorIs(t, err, ErrMalformedRow)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, _, err := Parse(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyFile)
}
