package svgstmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumberList(t *testing.T) {
	values, err := ParseNumberList("0,0 4,0 4,4")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 4, 0, 4, 4}, values)

	values, err = ParseNumberList("0 0 595.201 841.922")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 595.201, 841.922}, values)

	values, err = ParseNumberList("1 0 0 1 232.3306 107.5952")
	require.NoError(t, err)
	require.Len(t, values, 6)
	require.Equal(t, 232.3306, values[4])

	values, err = ParseNumberList("")
	require.NoError(t, err)
	require.Empty(t, values)
}
