package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eolymp/go-latexmath"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:               "latexmath",
	Short:             "LaTeX math to MathML converter",
	Long:              "latexmath converts LaTeX math expressions into presentation MathML.",
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("table", "", "YAML file with additional functions, operators, letters and spaces")
	rootCmd.PersistentFlags().String("function", "", "Additional functions, e.g. \"sgn=sgn, rank=rank\"")
	rootCmd.PersistentFlags().String("operator", "", "Additional operators, e.g. \"xor=⊻\"")
	rootCmd.PersistentFlags().String("letter", "", "Additional letters, e.g. \"eps=ε\"")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("table", rootCmd.PersistentFlags().Lookup("table"))
	_ = viper.BindPFlag("function", rootCmd.PersistentFlags().Lookup("function"))
	_ = viper.BindPFlag("operator", rootCmd.PersistentFlags().Lookup("operator"))
	_ = viper.BindPFlag("letter", rootCmd.PersistentFlags().Lookup("letter"))
}

func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix("LATEXMATH")
	viper.AutomaticEnv()

	if file, _ := cmd.Flags().GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("configuration loaded", "config", viper.ConfigFileUsed())

	return nil
}

// loadTable builds the command table from the default one, the table file and
// definitions given in flags, later sources override earlier ones.
func loadTable() (*latex.Table, error) {
	table := latex.NewTable()

	if path := viper.GetString("table"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening command table: %w", err)
		}

		defer file.Close()

		if err := table.Load(file); err != nil {
			return nil, err
		}

		slog.Debug("command table loaded", "path", path, "size", table.Len())
	}

	definitions := []struct {
		key string
		add func(name, text string)
	}{
		{key: "function", add: table.AddFunction},
		{key: "operator", add: table.AddOperator},
		{key: "letter", add: table.AddLetter},
	}

	for _, def := range definitions {
		kv, err := latex.KeyValue(viper.GetString(def.key))
		if err != nil {
			return nil, fmt.Errorf("parsing --%s: %w", def.key, err)
		}

		for name, text := range kv {
			def.add(name, text)
		}
	}

	return table, nil
}
