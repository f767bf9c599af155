package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigint/internal/config"
	"bigint/internal/observ"
	"bigint/internal/trace"
)

// app is the state shared by all subcommands for one invocation.
type app struct {
	cfg     config.Config
	tracer  trace.Tracer
	span    *trace.Span
	timer   *observ.Timer
	color   bool
	quiet   bool
	timings bool
	stderr  io.Writer
}

func (a *app) setup(cmd *cobra.Command) error {
	a.timer = observ.NewTimer()
	stop := a.timer.Start("config")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	stop(cfg.Path)

	flags := cmd.Flags()
	colorMode, err := modeSetting(flags, "color", cfg.Output.Color)
	if err != nil {
		return err
	}
	a.color = colorMode.enabled(func() bool { return isTerminal(os.Stdout) && !color.NoColor })
	color.NoColor = !a.color

	a.quiet, _ = flags.GetBool("quiet")     //nolint:errcheck
	a.timings, _ = flags.GetBool("timings") //nolint:errcheck

	levelName := cfg.Trace.Level
	if flags.Changed("trace-level") {
		levelName, _ = flags.GetString("trace-level") //nolint:errcheck
	}
	output := cfg.Trace.Output
	if flags.Changed("trace") {
		output, _ = flags.GetString("trace") //nolint:errcheck
		// --trace without a level means "show commands".
		if !flags.Changed("trace-level") && levelName == "off" {
			levelName = "phase"
		}
	}
	level, err := trace.ParseLevel(levelName)
	if err != nil {
		return err
	}
	cfgTrace := trace.Config{Level: level, OutputPath: output}
	if output == "-" || output == "" {
		// Hide Close so the tracer never closes stderr.
		cfgTrace.Output = struct{ io.Writer }{a.stderr}
	}
	a.tracer, err = trace.New(cfgTrace)
	if err != nil {
		return err
	}

	ctx := trace.WithTracer(cmd.Context(), a.tracer)
	a.span = trace.Begin(a.tracer, trace.ScopeCommand, cmd.Name(), 0)
	cmd.SetContext(trace.WithSpan(ctx, a.span))
	return nil
}

// finish closes the command span and the tracer and prints timings.
func (a *app) finish(cmdErr error) error {
	if a.span != nil {
		detail := "ok"
		if cmdErr != nil {
			detail = cmdErr.Error()
		}
		a.span.End(detail)
	}
	if a.timings && a.timer != nil {
		// Timings are advisory; a failed write must not mask cmdErr.
		_ = a.timer.WriteSummary(a.stderr) //nolint:errcheck
	}
	if a.tracer != nil {
		return a.tracer.Close()
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config") //nolint:errcheck
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Load(wd)
}

// outputBase picks --base when given, otherwise the configured default.
func (a *app) outputBase(cmd *cobra.Command) int {
	if cmd.Flags().Changed("base") {
		base, _ := cmd.Flags().GetInt("base") //nolint:errcheck
		return base
	}
	return a.cfg.Output.Base
}
