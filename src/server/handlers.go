package server

import (
	"context"
	"net/http"
	"time"

	"fitness-spc/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// Data Entry
// -----------------------------------------------------------------------------

func (s *APIServer) postDailyStats(c *gin.Context) {
	var entry models.MDailyStats
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.Analyzer.RecordDailyStats(c.Request.Context(), entry); err != nil {
		s.writeError(c, err)
		return
	}

	s.publish(c.Request.Context(), models.SourceDailyStats)
	c.JSON(http.StatusOK, gin.H{"status": "saved", "date": entry.Date})
}

// -----------------------------------------------------------------------------

func (s *APIServer) postNutrition(c *gin.Context) {
	var entry models.MNutrition
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.Analyzer.RecordNutrition(c.Request.Context(), entry); err != nil {
		s.writeError(c, err)
		return
	}

	s.publish(c.Request.Context(), models.SourceNutrition)
	c.JSON(http.StatusOK, gin.H{"status": "saved", "date": entry.Date})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getDailyStats(c *gin.Context) {
	rows, err := s.Analyzer.DB.LoadDailyStats(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getNutrition(c *gin.Context) {
	rows, err := s.Analyzer.DB.LoadNutrition(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// -----------------------------------------------------------------------------
// Analysis
// -----------------------------------------------------------------------------

func (s *APIServer) getMetrics(c *gin.Context) {
	policies := make([]models.MMetricPolicy, 0, len(s.Analyzer.Metrics))
	for _, name := range s.Analyzer.MetricNames() {
		policies = append(policies, s.Analyzer.Metrics[name])
	}
	c.JSON(http.StatusOK, policies)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getIMR(c *gin.Context) {
	report, err := s.Analyzer.IMRReport(c.Request.Context(), c.Param("metric"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getCapability(c *gin.Context) {
	lsl, err := optionalFloat(c, "lsl")
	if err != nil {
		s.writeError(c, err)
		return
	}
	usl, err := optionalFloat(c, "usl")
	if err != nil {
		s.writeError(c, err)
		return
	}

	report, err := s.Analyzer.CapabilityReport(c.Request.Context(), c.Param("metric"), lsl, usl)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getEnergyBalance(c *gin.Context) {
	basal, err := optionalFloat(c, "basal")
	if err != nil {
		s.writeError(c, err)
		return
	}

	report, err := s.Analyzer.EnergyBalanceReport(c.Request.Context(), basal)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// -----------------------------------------------------------------------------
// Service
// -----------------------------------------------------------------------------

func (s *APIServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics":        s.Analyzer.MetricNames(),
		"basal_calories": s.Analyzer.Basal,
		"workout_types":  models.WorkoutTypes,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	timestamp := s.latestState.Timestamp
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"connections":   s.clientCount.Load(),
		"latest_update": timestamp,
	})
}

// -----------------------------------------------------------------------------

// publish recomputes the reports touched by a write to source and queues
// them for websocket clients. The entry is already stored, so failures are
// only logged.
func (s *APIServer) publish(ctx context.Context, source string) {
	reports, err := s.Analyzer.ReportsFor(ctx, s.Analyzer.AffectedMetrics(source))
	if err != nil {
		s.Logger.Error("Failed to recompute reports after %s update: %v", source, err)
		return
	}

	s.Broadcast(&models.MLatestData{
		Type:      "UPDATE",
		Reports:   reports,
		Timestamp: time.Now().UTC().Unix(),
	})
}
