// Package latex compiles LaTeX math markup into a MathML markup tree.
//
// The source is split into tokens by Tokenizer, parsed into a syntax tree of
// Node values by Parser and lowered into a mathml tree by Lower, commands with
// no structural meaning are resolved against a Table.
package latex

import (
	"context"

	"github.com/eolymp/go-latexmath/mathml"
	"golang.org/x/sync/errgroup"
)

// Compile parses source and lowers it with table, a nil table means the default one.
func Compile(source string, table *Table) (*mathml.Root, error) {
	tree, err := Parse(source)
	if err != nil {
		return nil, err
	}

	return Lower(tree, table)
}

// CompileAll compiles sources concurrently, running at most limit compilations
// at a time (no limit when limit is less than one). Results are in the order
// of sources. The first error cancels compilations which have not started yet
// and is returned.
//
// The table is shared by all compilations and must not be modified until
// CompileAll returns.
func CompileAll(ctx context.Context, sources []string, table *Table, limit int) ([]*mathml.Root, error) {
	if table == nil {
		table = NewTable()
	}

	results := make([]*mathml.Root, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, source := range sources {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			root, err := Compile(source, table)
			if err != nil {
				return &SourceError{Index: i, Err: err}
			}

			results[i] = root
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
