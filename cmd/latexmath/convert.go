package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/eolymp/go-latexmath"
	"github.com/eolymp/go-latexmath/mathml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert [expression...]",
	Short: "Convert expressions to MathML",
	Long: "Convert LaTeX math expressions given as arguments, files matching --glob or standard input " +
		"to MathML, one expression per line of output. With --write each file is saved next to its source with .mml extension.",
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("display", false, "Render block (display) math instead of inline")
	convertCmd.Flags().String("glob", "", "Convert files matching the pattern, e.g. \"problems/**/*.tex\"")
	convertCmd.Flags().Bool("write", false, "Write <file>.mml next to each file matched by --glob")
	convertCmd.Flags().IntP("jobs", "j", 0, "Number of expressions converted at the same time (0 means no limit)")

	_ = viper.BindPFlag("display", convertCmd.Flags().Lookup("display"))
	_ = viper.BindPFlag("glob", convertCmd.Flags().Lookup("glob"))
	_ = viper.BindPFlag("write", convertCmd.Flags().Lookup("write"))
	_ = viper.BindPFlag("jobs", convertCmd.Flags().Lookup("jobs"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	write := viper.GetBool("write")
	pattern := viper.GetString("glob")

	table, err := loadTable()
	if err != nil {
		return err
	}

	var files []string
	sources := args

	switch {
	case pattern != "":
		if files, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly()); err != nil {
			return fmt.Errorf("matching %q: %w", pattern, err)
		}

		sources = nil
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}

			sources = append(sources, string(data))
		}
	case len(sources) == 0:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}

		sources = []string{string(data)}
	}

	started := time.Now()

	roots, err := latex.CompileAll(cmd.Context(), sources, table, viper.GetInt("jobs"))
	if err != nil {
		var source *latex.SourceError
		if errors.As(err, &source) && source.Index < len(files) {
			return fmt.Errorf("%s: %w", files[source.Index], source.Err)
		}

		return err
	}

	slog.Debug("expressions compiled", "count", len(roots), "duration", time.Since(started))

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	for i, root := range roots {
		if viper.GetBool("display") {
			root.Display = mathml.Block
		}

		slog.Debug("expression converted", "index", i, "text", mathml.String(root))

		if write && i < len(files) {
			if err := save(files[i]+".mml", root); err != nil {
				return err
			}

			continue
		}

		if err := mathml.Render(out, root); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	return nil
}

func save(path string, root *mathml.Root) error {
	markup, err := mathml.RenderString(root)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(markup+"\n"), 0644); err != nil {
		return fmt.Errorf("writing markup: %w", err)
	}

	slog.Debug("markup saved", "path", path)
	return nil
}
