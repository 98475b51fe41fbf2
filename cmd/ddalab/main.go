package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ddalab/internal/analysis"
	"github.com/san-kum/ddalab/internal/config"
	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/driver"
	"github.com/san-kum/ddalab/internal/experiment"
	"github.com/san-kum/ddalab/internal/signal"
	"github.com/san-kum/ddalab/internal/storage"
	"github.com/san-kum/ddalab/internal/tui"
)

var (
	dataDir  string
	dt       float64
	duration float64
	acc0     float64
	rule     string
	// signal parameters
	value     float64
	amplitude float64
	omega     float64
	offset    float64
	slope     float64
	tau       float64
	// config file and preset
	configFile string
	preset     string
	// order analysis
	halvings int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddalab",
		Short: "digital differential analyzer lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ddalab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [signal]",
		Short: "integrate a signal and store the trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegration,
	}
	addRunFlags(runCmd)

	watchCmd := &cobra.Command{
		Use:   "watch [signal]",
		Short: "integrate with a live accumulator view",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addRunFlags(watchCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [signal] [rule1] [rule2] ...",
		Short: "compare rules on the same signal",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareRules,
	}
	addRunFlags(compareCmd)

	orderCmd := &cobra.Command{
		Use:   "order [signal] [rule]",
		Short: "estimate a rule's convergence order",
		Args:  cobra.ExactArgs(2),
		RunE:  orderAnalysis,
	}
	addRunFlags(orderCmd)
	orderCmd.Flags().IntVar(&halvings, "halvings", 4, "number of dt halvings")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [signal]",
		Short: "list available presets for a signal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for signal: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	signalsCmd := &cobra.Command{
		Use:   "signals",
		Short: "list signals and rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := experiment.NewRegistry()
			fmt.Println("signals:")
			for _, name := range registry.ListSignals() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("rules:")
			for _, name := range registry.ListRules() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, watchCmd, listCmd, plotCmd, compareCmd, orderCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd, signalsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "step width")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Float64Var(&acc0, "acc0", 0.0, "initial accumulator")
	cmd.Flags().StringVar(&rule, "rule", "euler", "integration rule")
	cmd.Flags().Float64Var(&value, "value", 1.0, "constant value")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "sine/decay amplitude")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "sine angular frequency")
	cmd.Flags().Float64Var(&offset, "offset", 0.0, "ramp offset")
	cmd.Flags().Float64Var(&slope, "slope", 1.0, "ramp slope")
	cmd.Flags().Float64Var(&tau, "tau", 1.0, "decay time constant")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func signalParams() map[string]float64 {
	return map[string]float64{
		"value":     value,
		"amplitude": amplitude,
		"omega":     omega,
		"offset":    offset,
		"slope":     slope,
		"tau":       tau,
	}
}

// applyConfig resolves preset and config file into the flag variables;
// explicitly set flags win over both.
func applyConfig(cmd *cobra.Command, sig string) error {
	if preset != "" {
		cfg := config.GetPreset(sig, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(sig))
		}
		dt = cfg.Dt
		duration = cfg.Duration
		rule = cfg.Rule
		acc0 = cfg.Acc0
		value = cfg.SignalParams.Value
		amplitude = cfg.SignalParams.Amplitude
		omega = cfg.SignalParams.Omega
		offset = cfg.SignalParams.Offset
		slope = cfg.SignalParams.Slope
		tau = cfg.SignalParams.Tau
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = cfg.Duration
		}
		if !cmd.Flags().Changed("rule") {
			rule = cfg.Rule
		}
		if !cmd.Flags().Changed("acc0") {
			acc0 = cfg.Acc0
		}
		if !cmd.Flags().Changed("value") {
			value = cfg.SignalParams.Value
		}
		if !cmd.Flags().Changed("amplitude") {
			amplitude = cfg.SignalParams.Amplitude
		}
		if !cmd.Flags().Changed("omega") {
			omega = cfg.SignalParams.Omega
		}
		if !cmd.Flags().Changed("offset") {
			offset = cfg.SignalParams.Offset
		}
		if !cmd.Flags().Changed("slope") {
			slope = cfg.SignalParams.Slope
		}
		if !cmd.Flags().Changed("tau") {
			tau = cfg.SignalParams.Tau
		}
	}

	return nil
}

func runIntegration(cmd *cobra.Command, args []string) error {
	sig := args[0]

	if err := applyConfig(cmd, sig); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	src, err := registry.GetSignal(sig, signalParams())
	if err != nil {
		return err
	}
	r, err := registry.GetRule(rule)
	if err != nil {
		return err
	}

	cfg := experiment.Config{
		Signal:   sig,
		Rule:     rule,
		Acc0:     acc0,
		Dt:       dt,
		Duration: duration,
		Params:   signalParams(),
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(src, r, registry.DefaultMetrics(src, acc0)); err != nil {
		return err
	}

	fmt.Printf("integrating %s with %s...\n", sig, rule)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(sig, rule, dt, duration, acc0, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("final accumulator: %.6f\n", result.Final())
	for _, stepErr := range result.Errors {
		fmt.Printf("warning: %v\n", stepErr)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	sig := args[0]

	if err := applyConfig(cmd, sig); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	src, err := registry.GetSignal(sig, signalParams())
	if err != nil {
		return err
	}
	r, err := registry.GetRule(rule)
	if err != nil {
		return err
	}

	cfg := driver.Config{Acc0: acc0, Dt: dt, Duration: duration, ValidateValue: true}

	m := tui.NewModel(src, r, cfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIGNAL\tRULE\tTIME\tDURATION\tDT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.4fs\n",
			run.ID,
			run.Signal,
			run.Rule,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, samples, values, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("signal: %s, rule: %s\n", meta.Signal, meta.Rule)
	fmt.Printf("points: %d\n\n", len(values))

	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("accumulator"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(samples,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("sample"),
	)
	fmt.Println(graph)

	return nil
}

func compareRules(cmd *cobra.Command, args []string) error {
	sig := args[0]
	rules := args[1:]

	if err := applyConfig(cmd, sig); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	src, err := registry.GetSignal(sig, signalParams())
	if err != nil {
		return err
	}

	exactKnown := false
	want := 0.0
	if ex, ok := src.(signal.Exact); ok {
		exactKnown = true
		want = acc0 - ex.Integral(0, duration)
	}

	fmt.Printf("comparing rules for %s (dt=%.4f, duration=%.1fs)\n\n", sig, dt, duration)
	fmt.Printf("%-12s  %-14s  %-14s  %-10s\n", "rule", "final", "abs_error", "time_ms")
	fmt.Println(strings.Repeat("-", 56))

	for _, name := range rules {
		r, err := registry.GetRule(name)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		d := driver.New(src, r)
		cfg := driver.Config{Acc0: acc0, Dt: dt, Duration: duration, ValidateValue: true}

		start := time.Now()
		result, err := d.Run(context.Background(), cfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		absErr := "-"
		if exactKnown {
			absErr = fmt.Sprintf("%.6e", math.Abs(result.Final()-want))
		}

		fmt.Printf("%-12s  %14.6f  %14s  %10.2f\n",
			name, result.Final(), absErr, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func orderAnalysis(cmd *cobra.Command, args []string) error {
	sig := args[0]
	ruleName := args[1]

	if err := applyConfig(cmd, sig); err != nil {
		return err
	}

	method, err := dda.ParseMethod(ruleName)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	src, err := registry.GetSignal(sig, signalParams())
	if err != nil {
		return err
	}

	report, err := analysis.EstimateOrder(method, src, duration, dt, halvings)
	if err != nil {
		return err
	}

	fmt.Printf("convergence of %s on %s over [0, %.1f]\n\n", ruleName, sig, duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tABS_ERROR")
	for i := range report.Dts {
		fmt.Fprintf(w, "%.6f\t%.6e\n", report.Dts[i], report.Errors[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nobserved order: %.2f\n", report.Observed)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, nil, nil, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, samples, values, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "sample", "accumulator"}); err != nil {
		return err
	}

	for i := range values {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(samples[i], 'f', 6, 64),
			strconv.FormatFloat(values[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, samples, values, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, times, samples, values)
}
