package analysis

import (
	"context"
	"math"
	"sort"

	"fitness-spc/src/analysis/core"
	"fitness-spc/src/helpers"
	"fitness-spc/src/interfaces"
	"fitness-spc/src/logger"
	"fitness-spc/src/models"

	"golang.org/x/sync/errgroup"
)

// AnalysisFacade loads metric series from storage and runs the SPC engine
// over them. It holds no results between calls.
type AnalysisFacade struct {
	Config  *models.MConfig
	DB      interfaces.IDatabase
	Logger  *logger.Logger
	Metrics map[string]models.MMetricPolicy
	Basal   float64
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(cfg *models.MConfig, db interfaces.IDatabase, log *logger.Logger) *AnalysisFacade {
	basal := core.DefaultBasalCalories
	if cfg.Analysis.BasalCalories != nil {
		basal = *cfg.Analysis.BasalCalories
	}

	return &AnalysisFacade{
		Config:  cfg,
		DB:      db,
		Logger:  log,
		Metrics: BuildMetricPolicies(cfg.Analysis),
		Basal:   basal,
	}
}

// -----------------------------------------------------------------------------

// BuildMetricPolicies applies configured overrides to the default policies.
// Stored metrics are physical quantities and clamp their lower limit at
// zero; derived net calories can go negative and does not.
func BuildMetricPolicies(cfg models.MAnalysisConfig) map[string]models.MMetricPolicy {
	policies := make(map[string]models.MMetricPolicy, len(models.KnownMetrics))
	for name, source := range models.KnownMetrics {
		p := models.MMetricPolicy{
			Name:     name,
			Source:   source,
			ClampLCL: source != models.SourceDerived,
		}
		if mc, ok := cfg.Metrics[name]; ok {
			if mc.ClampLCL != nil {
				p.ClampLCL = *mc.ClampLCL
			}
			p.LSL = mc.LSL
			p.USL = mc.USL
		}
		policies[name] = p
	}
	return policies
}

// -----------------------------------------------------------------------------

// MetricNames returns the registered metrics in alphabetical order.
func (a *AnalysisFacade) MetricNames() []string {
	names := make([]string, 0, len(a.Metrics))
	for name := range a.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// -----------------------------------------------------------------------------

// Policy looks up a metric.
func (a *AnalysisFacade) Policy(metric string) (models.MMetricPolicy, error) {
	p, ok := a.Metrics[metric]
	if !ok {
		return models.MMetricPolicy{}, helpers.NewValidationError(helpers.ErrUnknownMetric, "metric %q", metric)
	}
	return p, nil
}

// -----------------------------------------------------------------------------

// AffectedMetrics lists the metrics whose reports change when a row of the
// given source table is written, alphabetically.
func (a *AnalysisFacade) AffectedMetrics(source string) []string {
	var names []string
	for _, name := range a.MetricNames() {
		p := a.Metrics[name]
		if p.Source == source || p.Source == models.SourceDerived {
			names = append(names, name)
		}
	}
	return names
}

// -----------------------------------------------------------------------------

// LoadSeries reads a metric from storage as a date-ordered series.
func (a *AnalysisFacade) LoadSeries(ctx context.Context, metric string) (models.MSeries, error) {
	p, err := a.Policy(metric)
	if err != nil {
		return models.MSeries{}, err
	}

	switch p.Source {
	case models.SourceDailyStats:
		rows, err := a.DB.LoadDailyStats(ctx)
		if err != nil {
			return models.MSeries{}, helpers.NewDatabaseError(err, "load daily stats")
		}
		return SeriesFromDailyStats(rows, metric)

	case models.SourceNutrition:
		rows, err := a.DB.LoadNutrition(ctx)
		if err != nil {
			return models.MSeries{}, helpers.NewDatabaseError(err, "load nutrition")
		}
		return SeriesFromNutrition(rows, metric)

	default:
		balance, _, err := a.energyBalance(ctx, a.Basal)
		if err != nil {
			return models.MSeries{}, err
		}
		return PrepareSeries(metric, core.NetCaloriesSeries(balance)), nil
	}
}

// -----------------------------------------------------------------------------

// IMRReport computes the individuals and moving-range chart of a metric.
// A series shorter than two points yields a report with nil Limits.
func (a *AnalysisFacade) IMRReport(ctx context.Context, metric string) (*models.MMetricReport, error) {
	series, err := a.LoadSeries(ctx, metric)
	if err != nil {
		return nil, err
	}
	p := a.Metrics[metric]

	limits := core.ComputeIMR(series.Observations, core.IMROptions{ClampLCL: p.ClampLCL})
	report := &models.MMetricReport{
		Metric:  metric,
		Status:  models.StatusOK,
		Points:  core.ChartPoints(series.Observations),
		Limits:  limits,
		Signals: core.DetectSignals(series.Observations, limits),
	}

	if limits == nil {
		report.Status = models.StatusInsufficientData
		a.Logger.Debug("I-MR for %s: %d point(s), need %d", metric, series.Len(), core.MinIMRPoints)
	} else if limits.LowConfidence {
		a.Logger.Debug("I-MR for %s rests on a single moving range", metric)
	}

	return report, nil
}

// -----------------------------------------------------------------------------

// CapabilityReport computes Cp/Cpk of a metric. Nil lsl/usl fall back to the
// metric's configured limits. Limits are validated before storage is read.
func (a *AnalysisFacade) CapabilityReport(ctx context.Context, metric string, lsl, usl *float64) (*models.MCapabilityReport, error) {
	p, err := a.Policy(metric)
	if err != nil {
		return nil, err
	}
	if lsl == nil {
		lsl = p.LSL
	}
	if usl == nil {
		usl = p.USL
	}
	if lsl == nil || usl == nil {
		return nil, helpers.NewValidationError(helpers.ErrInvalidSpecLimits, "no specification limits for metric %q", metric)
	}
	if err := core.ValidateSpecLimits(*lsl, *usl); err != nil {
		return nil, err
	}

	series, err := a.LoadSeries(ctx, metric)
	if err != nil {
		return nil, err
	}

	result, err := core.ComputeCapability(series.Values(), *lsl, *usl)
	if err != nil {
		return nil, err
	}

	report := &models.MCapabilityReport{
		Metric:     metric,
		Status:     models.StatusOK,
		LSL:        *lsl,
		USL:        *usl,
		Points:     series.Len(),
		Capability: result,
	}
	if result == nil {
		report.Status = models.StatusInsufficientData
	}
	return report, nil
}

// -----------------------------------------------------------------------------

// EnergyBalanceReport computes net calories for every date logged in both
// tables. A nil basal uses the configured value.
func (a *AnalysisFacade) EnergyBalanceReport(ctx context.Context, basal *float64) (*models.MEnergyBalanceReport, error) {
	b := a.Basal
	if basal != nil {
		b = *basal
	}
	if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
		return nil, helpers.NewValidationError(nil, "basal calories must be a finite non-negative number (got %v)", b)
	}

	balance, weight, err := a.energyBalance(ctx, b)
	if err != nil {
		return nil, err
	}

	report := &models.MEnergyBalanceReport{Basal: b, Days: balance}

	// Weight against the net calories of the same day
	net := PrepareSeries(models.MetricNetCalories, core.NetCaloriesSeries(balance))
	pairs := JoinSeries(net, weight)
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.Left
		ys[i] = p.Right
	}
	if r, ok := core.CalculateCorrelation(xs, ys); ok {
		report.WeightCorrelation = &r
	}

	return report, nil
}

// -----------------------------------------------------------------------------

func (a *AnalysisFacade) energyBalance(ctx context.Context, basal float64) ([]models.MEnergyBalance, models.MSeries, error) {
	var (
		stats     []models.MDailyStats
		nutrition []models.MNutrition
	)

	// Both tables are read independently
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := a.DB.LoadDailyStats(gctx)
		if err != nil {
			return helpers.NewDatabaseError(err, "load daily stats")
		}
		stats = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.DB.LoadNutrition(gctx)
		if err != nil {
			return helpers.NewDatabaseError(err, "load nutrition")
		}
		nutrition = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, models.MSeries{}, err
	}

	active, err := SeriesFromDailyStats(stats, models.MetricActiveCalories)
	if err != nil {
		return nil, models.MSeries{}, err
	}
	weight, err := SeriesFromDailyStats(stats, models.MetricWeight)
	if err != nil {
		return nil, models.MSeries{}, err
	}
	intake, err := SeriesFromNutrition(nutrition, models.MetricCaloriesIn)
	if err != nil {
		return nil, models.MSeries{}, err
	}

	return core.ComputeEnergyBalance(JoinSeries(intake, active), basal), weight, nil
}

// -----------------------------------------------------------------------------

// ReportsFor computes the I-MR report of each named metric.
func (a *AnalysisFacade) ReportsFor(ctx context.Context, metrics []string) (map[string]models.MMetricReport, error) {
	reports := make(map[string]models.MMetricReport, len(metrics))
	for _, m := range metrics {
		r, err := a.IMRReport(ctx, m)
		if err != nil {
			return nil, err
		}
		reports[m] = *r
	}
	return reports, nil
}
