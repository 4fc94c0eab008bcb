package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the status endpoint used by load balancers and
// uptime monitors.
type HealthHandler struct {
	Handler
	personService *service.PersonService
}

func NewHealthHandler(s *server.Server, personService *service.PersonService) *HealthHandler {
	return &HealthHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

// CheckHealth reports overall status, time, environment and per-component
// checks. It answers 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}
	isHealthy := true

	if known := len(h.personService.KnownIDs()); known == 0 {
		checks["registry"] = map[string]any{
			"status": "unhealthy",
			"error":  "no known person ids configured",
		}
		isHealthy = false

		logger.Error().Msg("registry health check failed")
		h.recordHealthError("registry", "registry_empty")
	} else {
		checks["registry"] = map[string]any{
			"status":    "healthy",
			"known_ids": known,
		}
	}

	apm := "disabled"
	if h.server.LoggerService.GetApplication() != nil {
		apm = "enabled"
	}
	checks["new_relic"] = map[string]any{"status": apm}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		h.recordHealthError("response", "json_response_error")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordHealthError(checkType, errorType string) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type": checkType,
			"operation":  "health_check",
			"error_type": errorType,
		})
	}
}
