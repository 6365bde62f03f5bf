package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pianohacker/scarab/value"
)

func mustParse(t *testing.T, input string) value.Value {
	t.Helper()
	v, err := ParseProgram(input, "<test>")
	require.NoError(t, err)
	return v
}

func TestParseProgramBasics(t *testing.T) {
	test := func(input string, expected value.Value) func(*testing.T) {
		return func(t *testing.T) {
			v := mustParse(t, input)
			assert.Equal(t, value.Inspect(expected), value.Inspect(v))
		}
	}

	t.Run("empty program", test("", value.Nil))
	t.Run("single int statement", test("42", value.FromSlice([]value.Value{
		value.FromSlice([]value.Value{value.NewInt(42)}),
	})))
	t.Run("closed list", test("(1 2 3)", value.FromSlice([]value.Value{
		value.FromSlice([]value.Value{value.FromSlice([]value.Value{
			value.NewInt(1), value.NewInt(2), value.NewInt(3),
		})}),
	})))
	t.Run("nil identifier", test("nil", value.FromSlice([]value.Value{
		value.FromSlice([]value.Value{value.Nil}),
	})))
	t.Run("quote prefix", test("'foo", value.FromSlice([]value.Value{
		value.FromSlice([]value.Value{value.NewQuoted(value.Intern("foo"))}),
	})))
}

func TestParseClosedListIgnoresNewlines(t *testing.T) {
	v := mustParse(t, "(1\n2\n3)")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 1)
	stmt := value.ToSlice(stmts[0])
	require.Len(t, stmt, 1)
	assert.Equal(t, []value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)}, value.ToSlice(stmt[0]))
}

func TestParseOpenListStatementsAreNewlineSeparated(t *testing.T) {
	v := mustParse(t, "1\n2\n3")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 3)
	for i, expected := range []int64{1, 2, 3} {
		body := value.ToSlice(stmts[i])
		require.Len(t, body, 1)
		assert.Equal(t, expected, value.AsInt(body[0]))
	}
}

func TestParseOpenListAllowsTrailingSeparator(t *testing.T) {
	v := mustParse(t, "1,2,")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 2)
}

func TestParseOpenListCommentOnlyLineContributesNoStatement(t *testing.T) {
	v := mustParse(t, "1\n# just a comment\n2")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 2)
	assert.Equal(t, int64(1), value.AsInt(value.ToSlice(stmts[0])[0]))
	assert.Equal(t, int64(2), value.AsInt(value.ToSlice(stmts[1])[0]))
}

func TestParseOperatorList(t *testing.T) {
	v := mustParse(t, "[1 + 2]")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 1)
	body := value.ToSlice(stmts[0])
	require.Len(t, body, 1)

	call := value.ToSlice(body[0])
	require.Len(t, call, 3)
	assert.Equal(t, value.Intern("+"), call[0])
	assert.Equal(t, int64(1), value.AsInt(call[1]))
	assert.Equal(t, int64(2), value.AsInt(call[2]))
}

func TestParseOperatorListSingleValueNoOperator(t *testing.T) {
	v := mustParse(t, "[42]")
	stmts := value.ToSlice(v)
	body := value.ToSlice(stmts[0])
	require.Len(t, body, 1)
	assert.Equal(t, int64(42), value.AsInt(body[0]))
}

func TestParseOperatorListNonMatchingOperatorFails(t *testing.T) {
	_, err := ParseProgram("[1 + 2 - 3]", "<test>")
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindMalformed, perr.Kind)
}

func TestParseNumberOverflowIsBadLiteral(t *testing.T) {
	_, err := ParseProgram("99999999999999999999999999", "<test>")
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindBadLiteral, perr.Kind)
}

func TestParseMissingClosingParenIsMissingDelimiter(t *testing.T) {
	_, err := ParseProgram("(1 2 3", "<test>")
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindMissingDelimiter, perr.Kind)
}

func TestParseBraceOpensNestedStatementList(t *testing.T) {
	v := mustParse(t, "{1, 2}")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 1)
	body := value.ToSlice(stmts[0])
	require.Len(t, body, 1)

	inner := value.ToSlice(body[0])
	require.Len(t, inner, 2)
}

func TestParseEmptyBraceIsEmptyProgram(t *testing.T) {
	v := mustParse(t, "{}")
	stmts := value.ToSlice(v)
	require.Len(t, stmts, 1)
	body := value.ToSlice(stmts[0])
	require.Len(t, body, 1)
	assert.True(t, value.IsNil(body[0]))
}
