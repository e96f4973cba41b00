package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const math = `<math xmlns="http://www.w3.org/1998/Math/MathML">`

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConvert(t *testing.T) {
	out := execute(t, "", "convert", "--function", "sgn=sgn", "\\sgn x", "a^2")
	assert.Equal(t, math+"<mi>sgn</mi><mi>x</mi></math>\n"+math+"<msup><mi>a</mi><mn>2</mn></msup></math>\n", out)
}

func TestConvertStdin(t *testing.T) {
	out := execute(t, "\\frac12\n", "convert", "--display")
	assert.Equal(t, `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mfrac><mn>1</mn><mn>2</mn></mfrac></math>`+"\n", out)
}

func TestTable(t *testing.T) {
	out := execute(t, "", "table", "--category", "space")
	assert.Contains(t, out, "\\quad")
	assert.NotContains(t, out, "\\alpha")
}

func TestConvertGlobWriteFromEnvironment(t *testing.T) {
	t.Setenv("LATEXMATH_WRITE", "true")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.tex"), []byte("c"), 0644))

	out := execute(t, "", "convert", "--display=false", "--glob", filepath.Join(dir, "*.tex"))
	assert.Empty(t, out, "markup is written to files, not to the output")

	c, err := os.ReadFile(filepath.Join(dir, "c.tex.mml"))
	require.NoError(t, err)
	assert.Equal(t, math+"<mi>c</mi></math>\n", string(c))
}

func TestConvertGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tex"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.tex"), []byte("\\alpha"), 0644))

	execute(t, "", "convert", "--display=false", "--glob", filepath.Join(dir, "**", "*.tex"), "--write")

	a, err := os.ReadFile(filepath.Join(dir, "a.tex.mml"))
	require.NoError(t, err)
	assert.Equal(t, math+"<mi>x</mi></math>\n", string(a))

	b, err := os.ReadFile(filepath.Join(dir, "nested", "b.tex.mml"))
	require.NoError(t, err)
	assert.Equal(t, math+"<mi>α</mi></math>\n", string(b))
}
