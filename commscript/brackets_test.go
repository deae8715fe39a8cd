package commscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFunctionBody(t *testing.T) {
	// Simple body
	{
		body, err := ExtractFunctionBody("x = f(a, b)", "f")
		require.NoError(t, err)
		assert.Equal(t, "a, b", body)
	}
	// Nested parentheses stay intact
	{
		body, err := ExtractFunctionBody("AFFE_MATERIAU(AFFE=_F(GROUP_MA=('V1',), MATER=(ACIER,)))", "AFFE_MATERIAU")
		require.NoError(t, err)
		assert.Equal(t, "AFFE=_F(GROUP_MA=('V1',), MATER=(ACIER,))", body)
	}
	// Deeply nested
	{
		body, err := ExtractFunctionBody("f((a(b(c))), d)", "f")
		require.NoError(t, err)
		assert.Equal(t, "(a(b(c))), d", body)
	}
	// First occurrence wins
	{
		body, err := ExtractFunctionBody("f(1) f(2)", "f")
		require.NoError(t, err)
		assert.Equal(t, "1", body)
	}
	// Missing call
	{
		_, err := ExtractFunctionBody("nothing here", "f")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	// Unbalanced
	{
		_, err := ExtractFunctionBody("f((a, b)", "f")
		assert.ErrorIs(t, err, ErrUnbalanced)
	}
}

func TestExtractBlocks(t *testing.T) {
	// Repeated markers in order of appearance
	{
		blocks, err := ExtractBlocks("_F(a=1), _F(b=(2,3)), _F(c)", "_F")
		require.NoError(t, err)
		assert.Equal(t, []string{"a=1", "b=(2,3)", "c"}, blocks)
	}
	// Nested marker occurrences inside a block are consumed with it
	{
		blocks, err := ExtractBlocks("_F(x=_F(y=1))", "_F")
		require.NoError(t, err)
		assert.Equal(t, []string{"x=_F(y=1)"}, blocks)
	}
	// No occurrence is not an error
	{
		blocks, err := ExtractBlocks("nothing", "_F")
		require.NoError(t, err)
		assert.Empty(t, blocks)
	}
	// Unbalanced block
	{
		_, err := ExtractBlocks("_F(a=1), _F(oops", "_F")
		assert.ErrorIs(t, err, ErrUnbalanced)
	}
}
