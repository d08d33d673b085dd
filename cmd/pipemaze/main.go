// Command pipemaze solves a pipe maze read from a file or stdin: it reports
// how far the farthest loop cell is from the start marker and how many cells
// the loop encloses.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipemaze/internal/config"
	"github.com/katalvlaran/pipemaze/solve"
)

// flags collects command-line settings before they are merged with the
// config file.
type flags struct {
	configPath string
	part       string
	format     string
	parallel   bool
	workers    int
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the pipemaze command.
func newRootCmd() *cobra.Command {
	var (
		f      flags
		cfg    *config.Config
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "pipemaze [file]",
		Short: "Trace the pipe loop in a maze and count the cells it encloses",
		Long: `pipemaze reads a grid of pipe tiles (| - L J 7 F), ground (.) and a single
start marker (S), one row per line, from FILE or stdin.

It walks the loop through S, reports the loop distance to the farthest loop
cell, and counts the cells enclosed by the loop.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = resolveConfig(cmd, f); err != nil {
				return err
			}
			logger, err = newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&f.part, "part", "p", config.DefaultPart, "answer to print: farthest, enclosed or both")
	cmd.Flags().StringVarP(&f.format, "format", "o", config.DefaultFormat, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "trace candidates and scan rows concurrently")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "row scan workers with --parallel (0 = GOMAXPROCS)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig loads the config file and lets explicitly set flags override it.
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	set := cmd.Flags().Changed
	if set("part") {
		cfg.Part = f.part
	}
	if set("format") {
		cfg.Format = f.format
	}
	if set("parallel") {
		cfg.Parallel = f.parallel
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a production zap logger writing to stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// run reads the maze, solves it and prints the requested answer.
func run(cmd *cobra.Command, args []string, cfg *config.Config, logger *zap.Logger) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("input read", zap.Int("bytes", len(text)), zap.Strings("args", args))

	rep, err := solve.Solve(cmd.Context(), text, solve.Options{
		Parallel: cfg.Parallel,
		Workers:  cfg.Workers,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		return err
	}
	logger.Info("maze solved",
		zap.Int("loop_length", rep.LoopLength),
		zap.Int("farthest", rep.Farthest),
		zap.Int("enclosed", rep.Enclosed))

	return writeReport(cmd.OutOrStdout(), rep, cfg)
}

// readInput returns the contents of the named file, or stdin when no file
// or "-" is given.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read maze file: %w", err)
	}
	return string(data), nil
}

// writeReport prints rep. Text output holds only the requested part; JSON
// and YAML always carry the full report.
func writeReport(w io.Writer, rep *solve.Report, cfg *config.Config) error {
	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rep)
	}

	var err error
	switch cfg.Part {
	case config.PartFarthest:
		_, err = fmt.Fprintln(w, rep.Farthest)
	case config.PartEnclosed:
		_, err = fmt.Fprintln(w, rep.Enclosed)
	default:
		_, err = fmt.Fprintf(w, "farthest: %d\nenclosed: %d\n", rep.Farthest, rep.Enclosed)
	}
	return err
}
