package latex_test

import (
	"strings"
	"testing"

	"github.com/eolymp/go-latexmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDefaults(t *testing.T) {
	table := latex.NewTable()

	text, ok := table.Function("sin")
	assert.True(t, ok)
	assert.Equal(t, "sin", text)

	text, ok = table.Operator("leq")
	assert.True(t, ok)
	assert.Equal(t, "≤", text)

	text, ok = table.Letter("alpha")
	assert.True(t, ok)
	assert.Equal(t, "α", text)

	width, ok := table.Space("quad")
	assert.True(t, ok)
	assert.Equal(t, float32(1), width)

	_, ok = table.Lookup("frac")
	assert.False(t, ok, "structural commands are not in the table")
}

func TestTableSingleDefinition(t *testing.T) {
	table := latex.NewTable()
	table.AddOperator("foo", "⊕")
	table.AddLetter("foo", "ϕ")

	def, ok := table.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, latex.Definition{Category: latex.LetterCategory, Text: "ϕ"}, def)

	_, ok = table.Operator("foo")
	assert.False(t, ok, "the last definition replaces the previous one")

	table.AddSpace("foo", 0.5)

	width, ok := table.Space("foo")
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), width)

	_, ok = table.Letter("foo")
	assert.False(t, ok)
}

func TestTableCopy(t *testing.T) {
	table := latex.NewTable()
	table.AddFunction("sgn", "sgn")

	clone := table.Copy()
	clone.AddFunction("rank", "rank")
	table.AddFunction("tr", "tr")

	_, ok := table.Function("rank")
	assert.False(t, ok, "changes of the copy are not visible in the original")

	_, ok = clone.Function("tr")
	assert.False(t, ok, "changes of the original are not visible in the copy")

	_, ok = clone.Function("sgn")
	assert.True(t, ok)

	assert.Equal(t, table.Len(), clone.Len())
	assert.Greater(t, latex.NewTable().Len(), 0)

	_, ok = latex.NewTable().Function("sgn")
	assert.False(t, ok, "default table is not changed")
}

func TestTableScan(t *testing.T) {
	table := latex.NewTable()

	var names []string
	table.Scan(func(name string, def latex.Definition) bool {
		names = append(names, name)
		return len(names) < 3
	})

	require.Len(t, names, 3)
	assert.IsIncreasing(t, names)
}

func TestTableLoad(t *testing.T) {
	table := latex.NewTable()

	err := table.Load(strings.NewReader(`
functions:
  sgn: sgn
operators:
  xor: ⊻
letters:
  alpha: ɑ
spaces:
  hair: 0.05
`))
	require.NoError(t, err)

	text, ok := table.Function("sgn")
	assert.True(t, ok)
	assert.Equal(t, "sgn", text)

	text, ok = table.Operator("xor")
	assert.True(t, ok)
	assert.Equal(t, "⊻", text)

	text, ok = table.Letter("alpha")
	assert.True(t, ok)
	assert.Equal(t, "ɑ", text)

	width, ok := table.Space("hair")
	assert.True(t, ok)
	assert.Equal(t, float32(0.05), width)
}

func TestTableLoadErrors(t *testing.T) {
	table := latex.NewTable()

	assert.NoError(t, table.Load(strings.NewReader("")), "empty document is allowed")
	assert.Error(t, table.Load(strings.NewReader("macros:\n  foo: bar\n")), "unknown sections are rejected")
	assert.Error(t, table.Load(strings.NewReader("spaces:\n  hair: wide\n")), "space width must be a number")
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "function", latex.FunctionCategory.String())
	assert.Equal(t, "space", latex.SpaceCategory.String())
	assert.Equal(t, "Category(0)", latex.Category(0).String())
}
