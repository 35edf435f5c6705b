package main

import (
	"fmt"
	"io"

	"fitness-spc/src/models"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// -----------------------------------------------------------------------------

func renderIMR(w io.Writer, r *models.MMetricReport) {
	fmt.Fprintf(w, "\n%s\n\n", cyan(fmt.Sprintf("=== I-MR: %s ===", r.Metric)))

	if r.Limits == nil {
		fmt.Fprintf(w, "  %s (%d point(s), need at least 2)\n\n", yellow("Insufficient data"), len(r.Points))
		return
	}

	l := r.Limits
	fmt.Fprintf(w, "  Individuals   CL %.3f   UCL %.3f   LCL %.3f\n", l.Center, l.UCL, l.LCL)
	fmt.Fprintf(w, "  Moving range  CL %.3f   UCL %.3f   LCL %.3f\n", l.MRCenter, l.MRUCL, l.MRLCL)
	if l.LCLClamped {
		fmt.Fprintf(w, "  %s\n", gray("LCL clamped at 0"))
	}
	if l.LowConfidence {
		fmt.Fprintf(w, "  %s\n", yellow("Low confidence: limits rest on a single moving range"))
	}
	fmt.Fprintln(w)

	// Index signals by date
	flagged := make(map[string][]string)
	for _, s := range r.Signals {
		key := models.FormatDate(s.Date)
		flagged[key] = append(flagged[key], s.Rule)
	}

	fmt.Fprintf(w, "  %-12s %12s %12s\n", "Date", "Value", "MR")
	for _, p := range r.Points {
		date := models.FormatDate(p.Date)
		mr := "-"
		if p.MovingRange != nil {
			mr = fmt.Sprintf("%.3f", *p.MovingRange)
		}
		line := fmt.Sprintf("  %-12s %12.3f %12s", date, p.Value, mr)
		if rules, ok := flagged[date]; ok {
			fmt.Fprintf(w, "%s  %s\n", red(line), red(fmt.Sprint(rules)))
			continue
		}
		fmt.Fprintln(w, line)
	}

	if len(r.Signals) == 0 {
		fmt.Fprintf(w, "\n  %s\n\n", green("In control"))
	} else {
		fmt.Fprintf(w, "\n  %s\n\n", red(fmt.Sprintf("%d signal(s)", len(r.Signals))))
	}
}

// -----------------------------------------------------------------------------

func renderCapability(w io.Writer, r *models.MCapabilityReport) {
	fmt.Fprintf(w, "\n%s\n\n", cyan(fmt.Sprintf("=== Capability: %s ===", r.Metric)))
	fmt.Fprintf(w, "  LSL %.3f   USL %.3f   points %d\n", r.LSL, r.USL, r.Points)

	if r.Capability == nil {
		fmt.Fprintf(w, "  %s (need at least 5 points)\n\n", yellow("Insufficient data"))
		return
	}

	c := r.Capability
	fmt.Fprintf(w, "  Mean %.3f   Sigma %.3f\n", c.Mean, c.Sigma)
	fmt.Fprintf(w, "  Cp  %.2f   Cpu %.2f   Cpl %.2f\n", c.Cp, c.Cpu, c.Cpl)

	verdict := red("not capable")
	switch {
	case c.Cpk >= 1.33:
		verdict = green("capable")
	case c.Cpk >= 1.0:
		verdict = yellow("marginal")
	}
	fmt.Fprintf(w, "  Cpk %.2f   %s\n\n", c.Cpk, verdict)
}

// -----------------------------------------------------------------------------

func renderEnergy(w io.Writer, r *models.MEnergyBalanceReport) {
	fmt.Fprintf(w, "\n%s\n\n", cyan("=== Energy Balance ==="))
	fmt.Fprintf(w, "  Basal %.0f kcal/day\n\n", r.Basal)

	if len(r.Days) == 0 {
		fmt.Fprintf(w, "  %s\n\n", yellow("No dates logged in both stats and nutrition"))
		return
	}

	fmt.Fprintf(w, "  %-12s %10s %10s %10s\n", "Date", "In", "Active", "Net")
	var total float64
	for _, d := range r.Days {
		net := fmt.Sprintf("%10.0f", d.NetCalories)
		if d.NetCalories > 0 {
			net = yellow(net)
		} else {
			net = green(net)
		}
		fmt.Fprintf(w, "  %-12s %10.0f %10.0f %s\n", models.FormatDate(d.Date), d.CaloriesIn, d.ActiveCaloriesOut, net)
		total += d.NetCalories
	}

	fmt.Fprintf(w, "\n  Average net %.0f kcal/day over %d day(s)\n", total/float64(len(r.Days)), len(r.Days))
	if r.WeightCorrelation != nil {
		fmt.Fprintf(w, "  Net calories vs weight correlation %.2f\n", *r.WeightCorrelation)
	}
	fmt.Fprintln(w)
}
