package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var (
	reportJSON  bool
	reportLSL   float64
	reportUSL   float64
	reportBasal float64
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print control charts and summaries",
}

// -----------------------------------------------------------------------------

var reportIMRCmd = &cobra.Command{
	Use:   "imr <metric>",
	Short: "Individuals and moving-range limits for a metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, db, err := openAnalyzer()
		if err != nil {
			return err
		}
		defer db.Close()

		report, err := analyzer.IMRReport(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if reportJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		renderIMR(cmd.OutOrStdout(), report)
		return nil
	},
}

// -----------------------------------------------------------------------------

var reportCapabilityCmd = &cobra.Command{
	Use:   "capability <metric>",
	Short: "Process capability (Cp/Cpk) of a metric against spec limits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, db, err := openAnalyzer()
		if err != nil {
			return err
		}
		defer db.Close()

		// Unset flags fall back to the configured limits
		var lsl, usl *float64
		if cmd.Flags().Changed("lsl") {
			lsl = &reportLSL
		}
		if cmd.Flags().Changed("usl") {
			usl = &reportUSL
		}

		report, err := analyzer.CapabilityReport(cmd.Context(), args[0], lsl, usl)
		if err != nil {
			return err
		}
		if reportJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		renderCapability(cmd.OutOrStdout(), report)
		return nil
	},
}

// -----------------------------------------------------------------------------

var reportEnergyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Daily net calories (intake minus active and basal burn)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, db, err := openAnalyzer()
		if err != nil {
			return err
		}
		defer db.Close()

		var basal *float64
		if cmd.Flags().Changed("basal") {
			basal = &reportBasal
		}

		report, err := analyzer.EnergyBalanceReport(cmd.Context(), basal)
		if err != nil {
			return err
		}
		if reportJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		renderEnergy(cmd.OutOrStdout(), report)
		return nil
	},
}

// -----------------------------------------------------------------------------

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	reportCmd.PersistentFlags().BoolVar(&reportJSON, "json", false, "print the report as JSON")

	reportCapabilityCmd.Flags().Float64Var(&reportLSL, "lsl", 0, "lower specification limit")
	reportCapabilityCmd.Flags().Float64Var(&reportUSL, "usl", 0, "upper specification limit")
	reportEnergyCmd.Flags().Float64Var(&reportBasal, "basal", 0, "basal calories per day (default from config)")

	reportCmd.AddCommand(reportIMRCmd, reportCapabilityCmd, reportEnergyCmd)
	rootCmd.AddCommand(reportCmd)
}
