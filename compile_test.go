package latex_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/eolymp/go-latexmath"
	"github.com/eolymp/go-latexmath/mathml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAll(t *testing.T) {
	var sources []string
	for i := range 50 {
		sources = append(sources, fmt.Sprintf("x_{%d}", i))
	}

	for _, limit := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			results, err := latex.CompileAll(context.Background(), sources, nil, limit)
			require.NoError(t, err)
			require.Len(t, results, len(sources))

			for i, root := range results {
				want, err := latex.Compile(sources[i], nil)
				require.NoError(t, err)
				assert.Equal(t, want, root, "result %d must match the source at the same position", i)
			}
		})
	}
}

func TestCompileAllError(t *testing.T) {
	sources := []string{"a", "b", "\\frac{a}", "c"}

	results, err := latex.CompileAll(context.Background(), sources, nil, 2)
	assert.Nil(t, results)

	var source *latex.SourceError
	require.ErrorAs(t, err, &source)
	assert.Equal(t, 2, source.Index)

	var arity *latex.ArityError
	assert.ErrorAs(t, err, &arity, "source error must wrap the compilation error")
}

func TestCompileAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := latex.CompileAll(ctx, []string{"a", "b"}, nil, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCompileAllSharedTable(t *testing.T) {
	table := latex.NewTable()
	table.AddFunction("sgn", "sgn")

	results, err := latex.CompileAll(context.Background(), []string{"\\sgn x", "\\sgn y"}, table, 0)
	require.NoError(t, err)

	for _, root := range results {
		require.NotEmpty(t, root.Children)
		assert.Equal(t, &mathml.Function{Name: "sgn"}, root.Children[0])
	}
}
