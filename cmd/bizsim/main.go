package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bizsim/internal/chart"
	"github.com/san-kum/bizsim/internal/config"
	"github.com/san-kum/bizsim/internal/report"
	"github.com/san-kum/bizsim/internal/scenario"
	"github.com/san-kum/bizsim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	envFile    string
	verbose    bool

	// assumption flags
	months            int
	initialCustomers  int
	monthlyFee        float64
	churnRate         float64
	fixedCosts        float64
	variableCost      float64
	growthBase        float64
	growthOptimistic  float64
	growthPessimistic float64

	// output flags
	showTable  bool
	showCharts bool
	svgDir     string
	format     string
	chartWidth int

	exportFormat string
	outputFile   string
)

// main registers the bizsim commands and flags and executes the root
// command. Running bizsim without a subcommand behaves like "bizsim run".
func main() {
	rootCmd := &cobra.Command{
		Use:           "bizsim",
		Short:         "subscription business scenario modeler",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: runProjection,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset assumptions")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with BIZSIM_* variables")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	pf.IntVar(&months, "months", config.DefaultMonths, "number of months to simulate")
	pf.IntVar(&initialCustomers, "customers", config.DefaultInitialCustomers, "initial number of customers")
	pf.Float64Var(&monthlyFee, "fee", config.DefaultMonthlyFee, "monthly subscription fee in USD")
	pf.Float64Var(&churnRate, "churn", config.DefaultChurnRate, "monthly churn rate")
	pf.Float64Var(&fixedCosts, "fixed-costs", config.DefaultFixedCosts, "monthly fixed costs in USD")
	pf.Float64Var(&variableCost, "variable-cost", config.DefaultVariableCostPerCustomer, "variable cost per customer in USD")
	pf.Float64Var(&growthBase, "growth-base", config.DefaultGrowthBase, "base growth rate")
	pf.Float64Var(&growthOptimistic, "growth-optimistic", config.DefaultGrowthOptimistic, "optimistic growth rate")
	pf.Float64Var(&growthPessimistic, "growth-pessimistic", config.DefaultGrowthPessimistic, "pessimistic growth rate")

	addOutputFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(flagError)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "project all scenarios and print the report",
		Args:  cobra.NoArgs,
		RunE:  runProjection,
	}
	addOutputFlags(runCmd)

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "enter assumptions interactively, then run",
		Args:  cobra.NoArgs,
		RunE:  promptProjection,
	}
	addOutputFlags(promptCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export projections as csv or json",
		Args:  cobra.NoArgs,
		RunE:  exportProjection,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format (csv, json)")
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-14s %3d months, %6.0f customers, growth %.2f/%.2f/%.2f\n",
					name, p.Months, p.InitialCustomers, p.Growth.Base, p.Growth.Optimistic, p.Growth.Pessimistic)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved assumptions as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, promptCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, config.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, report.Warning.Render(report.InvalidInputMessage))
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&showTable, "table", true, "print the scenario comparison table")
	cmd.Flags().BoolVar(&showCharts, "charts", true, "print terminal charts")
	cmd.Flags().StringVar(&svgDir, "svg-dir", "", "write svg charts into this directory")
	cmd.Flags().StringVar(&format, "format", "text", "report format (text, markdown, html)")
	cmd.Flags().IntVar(&chartWidth, "width", 80, "terminal chart width")
}

// flagError reports non-numeric assumption flags as invalid input so they
// get the same warning as a bad config file or prompt entry.
func flagError(cmd *cobra.Command, err error) error {
	if strings.Contains(err.Error(), "invalid argument") {
		return fmt.Errorf("%w: %v", config.ErrInvalidInput, err)
	}
	return err
}

func setupLogging(on bool) {
	log.SetPrefix("bizsim: ")
	if !on {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// resolveConfig layers defaults, preset, config file, environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		log.Printf("[INFO] preset=%s", preset)
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Merge(data); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configFile, err)
		}
		log.Printf("[INFO] config=%s", configFile)
	}

	if err := config.LoadEnv(envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	applied, err := cfg.ApplyEnv()
	if err != nil {
		return nil, err
	}
	if len(applied) > 0 {
		log.Printf("[INFO] env overrides=%v", applied)
	}

	flags := cmd.Flags()
	if flags.Changed("months") {
		cfg.Months = months
	}
	if flags.Changed("customers") {
		cfg.InitialCustomers = float64(initialCustomers)
	}
	if flags.Changed("fee") {
		cfg.MonthlyFee = monthlyFee
	}
	if flags.Changed("churn") {
		cfg.ChurnRate = churnRate
	}
	if flags.Changed("fixed-costs") {
		cfg.FixedCosts = fixedCosts
	}
	if flags.Changed("variable-cost") {
		cfg.VariableCostPerCustomer = variableCost
	}
	if flags.Changed("growth-base") {
		cfg.Growth.Base = growthBase
	}
	if flags.Changed("growth-optimistic") {
		cfg.Growth.Optimistic = growthOptimistic
	}
	if flags.Changed("growth-pessimistic") {
		cfg.Growth.Pessimistic = growthPessimistic
	}

	return cfg, nil
}

func runProjection(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return project(cfg)
}

func promptProjection(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cfg, err = tui.Collect(cfg, tea.WithOutput(os.Stderr))
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			return nil
		}
		return err
	}
	return project(cfg)
}

func project(cfg *config.Config) error {
	a := cfg.Assumptions()

	start := time.Now()
	ps := scenario.Run(a)
	log.Printf("[INFO] simulated %d scenarios x %d months in %v", len(ps), a.Horizon(), time.Since(start))

	for _, p := range ps {
		if !p.Result.IsFinite() {
			log.Printf("[WARN] %s scenario produced non-finite values", p.Kind)
		}
	}

	switch format {
	case "text":
		if err := printText(ps); err != nil {
			return err
		}
	case "markdown", "md":
		fmt.Print(report.Markdown(a, ps))
	case "html":
		html, err := report.HTML(a, ps)
		if err != nil {
			return err
		}
		fmt.Print(html)
	default:
		return fmt.Errorf("unknown format: %s (available: text, markdown, html)", format)
	}

	if svgDir != "" {
		written, err := chart.WriteSVGs(svgDir, ps)
		if err != nil {
			return err
		}
		for _, path := range written {
			log.Printf("[INFO] wrote %s", path)
		}
		fmt.Fprintf(os.Stderr, "wrote %d charts to %s\n", len(written), svgDir)
	}

	return nil
}

func printText(ps []scenario.Projection) error {
	base, _ := scenario.Find(ps, scenario.Base)
	if err := report.WriteConsole(os.Stdout, base); err != nil {
		return err
	}

	if showTable {
		fmt.Println()
		fmt.Println(report.ComparisonTable(ps))
	}

	if showCharts {
		opts := chart.DefaultOptions()
		if chartWidth > 0 {
			opts.Width = chartWidth
		}
		fmt.Println()
		fmt.Println(chart.All(ps, opts))
	}
	return nil
}

func exportProjection(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	a := cfg.Assumptions()
	ps := scenario.Run(a)

	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch exportFormat {
	case "csv":
		err = report.WriteCSV(w, ps)
	case "json":
		e := report.NewExport(a, ps)
		log.Printf("[INFO] export id=%s", e.ID)
		err = report.WriteJSON(w, e)
	default:
		return fmt.Errorf("unknown export format: %s (available: csv, json)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", exportFormat, err)
	}

	if outputFile != "" {
		log.Printf("[INFO] wrote %s", outputFile)
	}
	return nil
}
