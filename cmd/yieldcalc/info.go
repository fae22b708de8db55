package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/config"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales with their currency and savings rate",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-8s %s\n", "Locale", "Currency", "Baseline APY")
			fmt.Fprintln(out, strings.Repeat("-", 32))
			for _, lc := range config.Locales() {
				marker := ""
				if lc.Locale == config.DefaultLocale {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%-8s %-8s %s%%%s\n", lc.Locale, lc.Currency, lc.BaselineAPY.StringFixed(2), marker)
			}
		},
	}
}

func newTimeframesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeframes",
		Short: "List projection timeframes and their day counts",
		Run: func(cmd *cobra.Command, args []string) {
			shortTerm := domain.ShortTermTimeframes()
			longTerm := domain.LongTermTimeframes()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-9s %6s  %s\n", "Timeframe", "Days", "Groups")
			fmt.Fprintln(out, strings.Repeat("-", 36))
			for _, tf := range domain.AllTimeframes() {
				var groups []string
				if containsTimeframe(shortTerm[:], tf) {
					groups = append(groups, "short-term")
				}
				if containsTimeframe(longTerm[:], tf) {
					groups = append(groups, "long-term")
				}
				fmt.Fprintf(out, "%-9s %6d  %s\n", tf, tf.Days(), strings.Join(groups, ", "))
			}
		},
	}
}

func containsTimeframe(set []domain.Timeframe, tf domain.Timeframe) bool {
	for _, t := range set {
		if t == tf {
			return true
		}
	}
	return false
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [request-file]",
		Short: "Validate a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request file %s is valid\n", args[0])
			return nil
		},
	}
}
