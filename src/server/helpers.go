package server

import (
	"errors"
	"net/http"
	"strconv"

	"fitness-spc/src/helpers"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------

// writeError maps an error to a status code: validation failures are the
// caller's fault, unknown metrics are not found, everything else is ours.
func (s *APIServer) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, helpers.ErrUnknownMetric):
		status = http.StatusNotFound
	case helpers.IsValidation(err):
		status = http.StatusBadRequest
	default:
		s.Logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// -----------------------------------------------------------------------------

// optionalFloat reads a float query parameter; absent means nil.
func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, helpers.NewValidationError(err, "query parameter %s", key)
	}
	return &v, nil
}

// -----------------------------------------------------------------------------

func containsMetric(subscribed map[string]struct{}, metric string) bool {
	if len(subscribed) == 0 {
		return true
	}
	_, ok := subscribed[metric]
	return ok
}
