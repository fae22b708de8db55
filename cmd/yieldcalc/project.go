package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/calculation"
	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/config"
	"github.com/rgehrsitz/yieldcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [request-file]",
		Short: "Project both scenarios across every timeframe",
		Long: `Project the growth and baseline scenarios over the short-term
(1week, 1month, 1year, 5years) and long-term (5years, 10years, 20years) horizons.

Examples:
  yieldcalc project --initial 1000 --monthly 50 --locale de-DE
  yieldcalc project request.yaml --format json
  yieldcalc project --monthly 20 --growth-apy 8 --baseline-apy 0.5 --timeframe 5years --format csv
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runProject,
	}

	addRequestFlags(cmd)
	cmd.Flags().StringP("format", "f", "", "Output format (table, csv, json, yaml, html); default $YIELDCALC_FORMAT or table")
	cmd.Flags().StringP("output", "o", "", "Write the formatted result to a file instead of stdout")

	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [request-file]",
		Short: "Compare both scenarios for the selected timeframe",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompare,
	}

	addRequestFlags(cmd)
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")

	return cmd
}

func addRequestFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("initial", "", "Initial amount")
	flags.String("monthly", "", "Monthly contribution")
	flags.String("currency", "", "Currency code (default: the locale's currency)")
	flags.String("locale", "", "Locale tag, e.g. en-US or de-DE (default: $YIELDCALC_LOCALE)")
	flags.StringP("timeframe", "t", "", "Selected timeframe (1week, 1month, 1year, 5years, 10years, 20years)")
	flags.String("growth-apy", "", "Growth scenario APY in percent (default: 8)")
	flags.String("baseline-apy", "", "Baseline scenario APY in percent (default: the locale's savings rate)")
	flags.Bool("debug", false, "Enable debug output for detailed calculations")
}

// loadRequest builds a request from an optional YAML file with flags layered on
// top, then clamps the input to the calculator bounds
func loadRequest(cmd *cobra.Command, args []string, env config.Environment) (*config.CalculationRequest, error) {
	parser := config.NewInputParser()

	file := &config.RequestFile{}
	if len(args) == 1 {
		var err error
		file, err = parser.ReadRequestFile(args[0])
		if err != nil {
			return nil, err
		}
	}
	if file.Locale == "" {
		file.Locale = env.Locale
	}

	if err := applyRequestFlags(cmd, file); err != nil {
		return nil, err
	}

	req, err := parser.Build(file)
	if err != nil {
		return nil, err
	}
	req.Input = config.DefaultBounds().Clamp(req.Input)

	return req, nil
}

func applyRequestFlags(cmd *cobra.Command, file *config.RequestFile) error {
	flags := cmd.Flags()

	for name, target := range map[string]*string{
		"locale":    &file.Locale,
		"currency":  &file.Currency,
		"timeframe": &file.Timeframe,
	} {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}

	for name, target := range map[string]*decimal.Decimal{
		"initial": &file.InitialAmount,
		"monthly": &file.MonthlyContribution,
	} {
		if !flags.Changed(name) {
			continue
		}
		d, err := decimalFlag(cmd, name)
		if err != nil {
			return err
		}
		*target = d
	}

	if flags.Changed("growth-apy") {
		d, err := decimalFlag(cmd, "growth-apy")
		if err != nil {
			return err
		}
		if file.Growth == nil {
			file.Growth = &config.ScenarioOverride{}
		}
		file.Growth.APY = &d
	}

	if flags.Changed("baseline-apy") {
		d, err := decimalFlag(cmd, "baseline-apy")
		if err != nil {
			return err
		}
		if file.Baseline == nil {
			file.Baseline = &config.ScenarioOverride{}
		}
		file.Baseline.APY = &d
	}

	return nil
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s value %q: %w", name, raw, err)
	}
	return d, nil
}

func newCompareEngine(cmd *cobra.Command, env config.Environment) *compare.CompareEngine {
	engine := calculation.NewEngine()

	debugMode := env.Debug
	if cmd.Flags().Changed("debug") {
		debugMode, _ = cmd.Flags().GetBool("debug")
	}
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}

	return compare.NewCompareEngine(engine)
}

func runProject(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnvironment()
	if err != nil {
		return err
	}

	req, err := loadRequest(cmd, args, env)
	if err != nil {
		return err
	}

	result, err := newCompareEngine(cmd, env).ComputeFullResult(req.Input, req.Selected, req.Growth, req.Baseline)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	format := env.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	formatter := output.GetFormatterByName(format, req.Locale)
	if formatter == nil {
		return fmt.Errorf("unknown output format: %s (valid: %s)", format, strings.Join(output.FormatterNames(), ", "))
	}

	if target, _ := cmd.Flags().GetString("output"); target != "" {
		if err := output.WriteFormatted(formatter, result, target); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s output to %s\n", formatter.Name(), target)
		return nil
	}

	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runCompare(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnvironment()
	if err != nil {
		return err
	}

	req, err := loadRequest(cmd, args, env)
	if err != nil {
		return err
	}

	summary, err := newCompareEngine(cmd, env).Summarize(req.Input, req.Selected, req.Growth, req.Baseline)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "table", "console", "":
		formatter := &compare.TableFormatter{}
		fmt.Fprint(out, formatter.Format(summary))
	case "compact":
		formatter := &compare.TableFormatter{}
		fmt.Fprintln(out, formatter.FormatCompact(summary))
	case "csv":
		formatter := &compare.CSVFormatter{}
		data, err := formatter.Format(summary)
		if err != nil {
			return err
		}
		fmt.Fprint(out, data)
	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		data, err := formatter.Format(summary)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
	}
	return nil
}
