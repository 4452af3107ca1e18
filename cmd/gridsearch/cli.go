package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/maisem/gridsearch/runner"
	"github.com/maisem/gridsearch/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type runFlags struct {
	day        int
	part       string
	onlySample bool
	skipSample bool
	inputDir   string
	configPath string
	debug      bool
	showTUI    bool
	workers    int
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gridsearch",
		Short:         "Grid puzzle solvers built on a shared search engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.AddCommand(newRunCmd(outW, errW), newConfigCmd(outW))
	return root
}

func newConfigCmd(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the built-in configuration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := outW.Write(defaultConfig)
			return err
		},
	}
}

func newRunCmd(outW, errW io.Writer) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run solvers against samples and inputs",
		Long: `Run every solver, or the one selected with --day and --part.

Each part is first checked against the sample in its doc comment, then run
on <input-dir>/<day>.input if that file exists.

Examples:
  gridsearch run
  gridsearch run --day 17 --part 2
  gridsearch run --day 10 --sample --tui`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runSolvers(outW, errW, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.day, "day", "d", 0, "day to run (default all)")
	fl.StringVarP(&f.part, "part", "p", "", "part to run (default all)")
	fl.BoolVar(&f.onlySample, "sample", false, "only run samples")
	fl.BoolVar(&f.skipSample, "skip-sample", false, "skip samples")
	fl.StringVar(&f.inputDir, "input-dir", "inputs", "directory holding <day>.input files")
	fl.StringVarP(&f.configPath, "config", "c", "", "HCL config file (default built-in)")
	fl.BoolVar(&f.debug, "debug", false, "log debug output for samples")
	fl.BoolVar(&f.showTUI, "tui", false, "browse rendered grids in the terminal afterwards")
	fl.IntVarP(&f.workers, "workers", "w", -1, "parallel searches; overrides the config when >= 0")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	return cmd
}

func loadConfig(path string) (*runner.Config, error) {
	if path == "" {
		return runner.ParseConfig(defaultConfig, "default.hcl")
	}
	return runner.LoadConfig(path)
}

func runSolvers(outW, errW io.Writer, f runFlags) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if f.workers >= 0 {
		cfg.Workers = f.workers
	}
	level := cfg.LogLevel
	if f.debug {
		level = logrus.DebugLevel.String()
	}
	log, err := runner.NewLogger(level, cfg.LogFormat, errW)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	var pages []tui.Page
	opts := runner.Options{
		Day:        f.day,
		Part:       f.part,
		OnlySample: f.onlySample,
		SkipSample: f.skipSample,
		Debug:      f.debug,
		InputDir:   f.inputDir,
		Config:     cfg,
		Logger:     log,
		Out:        outW,
	}
	if f.showTUI {
		opts.OnRender = func(title, text string) {
			pages = append(pages, tui.Page{Title: title, Body: text})
		}
	}
	runErr := runner.Run(solverSource, &solver{}, opts)
	if f.showTUI {
		if err := tui.Show(pages); err != nil {
			log.WithError(err).Error("terminal viewer failed")
		}
	}
	if errors.Is(runErr, runner.ErrSampleMismatch) {
		return &ExitError{Code: 1, Message: runErr.Error()}
	}
	if runErr != nil {
		return fmt.Errorf("run: %w", runErr)
	}
	return nil
}
