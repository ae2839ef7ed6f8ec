package blocks_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/internal/blocks"
)

const (
	extractorSubtestTemplateConstant = "%d_%s"
	undefinedFragmentConstant        = "undefined"
)

func TestExtractBalanced(testInstance *testing.T) {
	testCases := []struct {
		name             string
		lines            []string
		startIndex       int
		expectedBlock    blocks.TextBlock
		expectedBalanced bool
	}{
		{
			name:       "multi_line_literal",
			lines:      []string{"Foo({", "  a: 1,", "});"},
			startIndex: 0,
			expectedBlock: blocks.TextBlock{
				{Number: 1, Text: "Foo({"},
				{Number: 2, Text: "a: 1,"},
				{Number: 3, Text: "});"},
			},
			expectedBalanced: true,
		},
		{
			name:       "unclosed_literal_runs_to_end_of_file",
			lines:      []string{"Foo({", "  a: 1,"},
			startIndex: 0,
			expectedBlock: blocks.TextBlock{
				{Number: 1, Text: "Foo({"},
				{Number: 2, Text: "a: 1,"},
			},
			expectedBalanced: false,
		},
		{
			name:             "single_line_literal",
			lines:            []string{"Foo({ a: 1 });", "next();"},
			startIndex:       0,
			expectedBlock:    blocks.TextBlock{{Number: 1, Text: "Foo({ a: 1 });"}},
			expectedBalanced: true,
		},
		{
			name:       "lines_before_first_brace_are_recorded",
			lines:      []string{"const payload: TablesInsert<'items'> =", "  // payload", "  {", "    name: undefined,", "  };", "after();"},
			startIndex: 0,
			expectedBlock: blocks.TextBlock{
				{Number: 1, Text: "const payload: TablesInsert<'items'> ="},
				{Number: 2, Text: "// payload"},
				{Number: 3, Text: "{"},
				{Number: 4, Text: "name: undefined,"},
				{Number: 5, Text: "};"},
			},
			expectedBalanced: true,
		},
		{
			name:       "closing_brace_before_first_opening_brace_does_not_stop",
			lines:      []string{"call(", "  }", "  {", "  x: 1,", "  }"},
			startIndex: 0,
			expectedBlock: blocks.TextBlock{
				{Number: 1, Text: "call("},
				{Number: 2, Text: "}"},
				{Number: 3, Text: "{"},
			},
			expectedBalanced: true,
		},
		{
			name:       "nested_braces_close_at_outer_level",
			lines:      []string{"", "insert({", "  meta: { a: 1 },", "  nested: {", "  },", "})", "tail"},
			startIndex: 1,
			expectedBlock: blocks.TextBlock{
				{Number: 2, Text: "insert({"},
				{Number: 3, Text: "meta: { a: 1 },"},
				{Number: 4, Text: "nested: {"},
				{Number: 5, Text: "},"},
				{Number: 6, Text: "})"},
			},
			expectedBalanced: true,
		},
		{
			name:       "braces_inside_strings_are_counted",
			lines:      []string{"x({", "  label: '}',", "  other: 1,", "})"},
			startIndex: 0,
			expectedBlock: blocks.TextBlock{
				{Number: 1, Text: "x({"},
				{Number: 2, Text: "label: '}',"},
			},
			expectedBalanced: true,
		},
		{
			name:       "no_braces_runs_to_end_of_file",
			lines:      []string{"plain", "text"},
			startIndex: 0,
			expectedBlock: blocks.TextBlock{
				{Number: 1, Text: "plain"},
				{Number: 2, Text: "text"},
			},
			expectedBalanced: false,
		},
		{
			name:             "start_index_out_of_range",
			lines:            []string{"a"},
			startIndex:       3,
			expectedBlock:    nil,
			expectedBalanced: false,
		},
		{
			name:             "negative_start_index",
			lines:            []string{"a"},
			startIndex:       -1,
			expectedBlock:    nil,
			expectedBalanced: false,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(extractorSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			block, balanced := blocks.ExtractBalanced(testCase.lines, testCase.startIndex)
			require.Equal(testInstance, testCase.expectedBalanced, balanced)
			if testCase.expectedBlock == nil {
				require.Empty(testInstance, block)
				return
			}
			require.Equal(testInstance, testCase.expectedBlock, block)
			require.Equal(testInstance, testCase.expectedBlock, blocks.Extract(testCase.lines, testCase.startIndex))
		})
	}
}

func TestExtractIsIdempotent(testInstance *testing.T) {
	lines := []string{"before", "TablesUpdate<'orders'>({", "  status: undefined,", "});"}

	firstBlock := blocks.Extract(lines, 1)
	secondBlock := blocks.Extract(lines, 1)

	require.Equal(testInstance, firstBlock, secondBlock)
	require.Len(testInstance, firstBlock, 3)
	require.Equal(testInstance, []string{"before", "TablesUpdate<'orders'>({", "  status: undefined,", "});"}, lines)
}

func TestTextBlockHelpers(testInstance *testing.T) {
	block := blocks.Extract([]string{"a({", "  b: undefined,", "  c: 1,", "  d: undefined", "})"}, 0)

	require.Equal(testInstance, 1, block.FirstLine())
	require.Equal(testInstance, 5, block.LastLine())
	require.Equal(testInstance, []blocks.Line{
		{Number: 2, Text: "b: undefined,"},
		{Number: 4, Text: "d: undefined"},
	}, block.LinesContaining(undefinedFragmentConstant))

	var emptyBlock blocks.TextBlock
	require.Zero(testInstance, emptyBlock.FirstLine())
	require.Zero(testInstance, emptyBlock.LastLine())
	require.Empty(testInstance, emptyBlock.LinesContaining(undefinedFragmentConstant))
}
