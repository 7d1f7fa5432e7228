package svgstmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeImplicitRepetition(t *testing.T) {
	tokens, err := TokenizePath("M10 10 L20 20 30 30 Z")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'M', Params: []string{"10", "10"}},
		{Command: 'L', Params: []string{"20", "20"}},
		{Command: 'L', Params: []string{"30", "30"}},
		{Command: 'Z'},
	}, tokens)
}

func TestTokenizeCompactNumbers(t *testing.T) {
	// a second decimal point ends the number and starts a new one
	tokens, err := TokenizePath("M1.5.6")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'M', Params: []string{"1.5", ".6"}},
	}, tokens)

	tokens, err = TokenizePath("H1.5.6 7")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'H', Params: []string{"1.5"}},
		{Command: 'H', Params: []string{".6"}},
		{Command: 'H', Params: []string{"7"}},
	}, tokens)

	// a minus sign ends the number under accumulation
	tokens, err = TokenizePath("M10-20")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'M', Params: []string{"10", "-20"}},
	}, tokens)
}

func TestTokenizeSkippedCharacters(t *testing.T) {
	// newline and tab vanish without even separating numbers
	tokens, err := TokenizePath("M1\n0 2\t0")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'M', Params: []string{"10", "20"}},
	}, tokens)

	// commas separate like spaces
	tokens, err = TokenizePath("L10,20")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'L', Params: []string{"10", "20"}},
	}, tokens)
}

func TestTokenizeLowercasePreserved(t *testing.T) {
	tokens, err := TokenizePath("m5 5l1 2z")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'm', Params: []string{"5", "5"}},
		{Command: 'l', Params: []string{"1", "2"}},
		{Command: 'z'},
	}, tokens)
}

func TestTokenizeArc(t *testing.T) {
	tokens, err := TokenizePath("M0 0A25 25 -30 0 1 50 -25")
	require.NoError(t, err)
	require.Equal(t, []PathToken{
		{Command: 'M', Params: []string{"0", "0"}},
		{Command: 'A', Params: []string{"25", "25", "-30", "0", "1", "50", "-25"}},
	}, tokens)
}

func TestTokenizeErrors(t *testing.T) {
	for _, d := range []string{
		"M10 10 20",      // 3 parameters on a 2 arity command
		"L10",            // half a coordinate pair
		"Z10",            // Z takes no parameters
		"M10 10 F20 20",  // unknown command letter
		"C1 2 3 4 5", // 5 parameters on a 6 arity command
		// the compact split yields 1.5 .6 7, and three parameters on a
		// 2 arity command stay an error; see DESIGN.md (open questions)
		"M1.5.6 7",
		"M10 10 L2x0 20", // a parameter which is not a number
	} {
		_, err := TokenizePath(d)
		require.Error(t, err, "path %q", d)
		_, ok := err.(PathSyntaxError)
		require.True(t, ok, "path %q", d)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := TokenizePath("")
	require.NoError(t, err)
	require.Empty(t, tokens)

	// numbers without any command are discarded
	tokens, err = TokenizePath("10 20")
	require.NoError(t, err)
	require.Empty(t, tokens)
}
