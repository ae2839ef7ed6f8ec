package textscan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/internal/textscan"
)

const (
	insertPatternExpressionConstant      = `TablesInsert<'([^']+)'>`
	translationPatternExpressionConstant = `(?<![\w$])t\(\s*['"]([^'"\)]+)['"]`
	sampleSourcePathConstant             = "src/services/items.ts"
)

func TestPatternFindAllReportsLineIndexAndCapture(testInstance *testing.T) {
	pattern := textscan.MustCompilePattern(insertPatternExpressionConstant)
	text := "import x;\nconst a: TablesInsert<'items'> = {\n  name: 'é',\n};\nconst b: TablesInsert<'orders'> = {}; const c: TablesInsert<'users'> = {};\n"

	sourceMatches, findError := pattern.FindAll(sampleSourcePathConstant, text)
	require.NoError(testInstance, findError)
	require.Equal(testInstance, []textscan.SourceMatch{
		{Path: sampleSourcePathConstant, LineIndex: 1, Identifier: "items"},
		{Path: sampleSourcePathConstant, LineIndex: 4, Identifier: "orders"},
		{Path: sampleSourcePathConstant, LineIndex: 4, Identifier: "users"},
	}, sourceMatches)
}

func TestPatternFindAllCountsRunesBeforeMatch(testInstance *testing.T) {
	pattern := textscan.MustCompilePattern(insertPatternExpressionConstant)
	text := "// ünïcödé 😀\n// ✓\nTablesInsert<'items'>"

	sourceMatches, findError := pattern.FindAll(sampleSourcePathConstant, text)
	require.NoError(testInstance, findError)
	require.Len(testInstance, sourceMatches, 1)
	require.Equal(testInstance, 2, sourceMatches[0].LineIndex)
}

func TestPatternFindAllWithoutMatches(testInstance *testing.T) {
	pattern := textscan.MustCompilePattern(insertPatternExpressionConstant)

	sourceMatches, findError := pattern.FindAll(sampleSourcePathConstant, "nothing here")
	require.NoError(testInstance, findError)
	require.Empty(testInstance, sourceMatches)
}

func TestPatternSupportsLookBehind(testInstance *testing.T) {
	pattern, compileError := textscan.CompilePattern(translationPatternExpressionConstant)
	require.NoError(testInstance, compileError)
	require.Equal(testInstance, translationPatternExpressionConstant, pattern.String())

	captures, findError := pattern.FindCaptures("t('common.save') $t('ignored.dollar') format('x') i18n.t('global.key')")
	require.NoError(testInstance, findError)
	require.Equal(testInstance, []string{"common.save", "global.key"}, captures)

	matched, matchError := pattern.MatchString("  label: t(\"form.name\"),")
	require.NoError(testInstance, matchError)
	require.True(testInstance, matched)
}

func TestCompilePatternRejectsInvalidExpression(testInstance *testing.T) {
	_, compileError := textscan.CompilePattern(`(unclosed`)
	require.Error(testInstance, compileError)
	require.Panics(testInstance, func() {
		textscan.MustCompilePattern(`(unclosed`)
	})
}
