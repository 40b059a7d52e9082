package audit

import (
	"errors"
	"strconv"

	"gear-auditor/core/logger"
	"gear-auditor/feature/audit/models"
	"gear-auditor/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.AuditRun{}
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleCheck)
	group.Post("/fix", h.HandleFix)
	group.Get("/runs", h.HandleHistory)
}

// HandleCheck audits the configured gearset against a character's inventory.
// @Summary Audit Gearset
// @Description Cross-references the gearset with the item catalog and the character inventory and reports OK, wrong bag, missing and unknown references.
// @Tags audit
// @Accept json
// @Produce json
// @Param character query string false "Character whose inventory dump is used"
// @Success 200 {object} audit.Audit "Audit"
// @Failure 400 {object} map[string]string "Invalid character"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	req := Request{Character: c.Query("character")}

	result, err := h.service.Check(c.Context(), req)
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleFix corrects wrong bag fields in the gearset.
// @Summary Fix Gearset
// @Description Rewrites the bag field of every mismatched reference to the first bag holding the item. A .bak copy is written first.
// @Tags audit
// @Accept json
// @Produce json
// @Param character query string false "Character whose inventory dump is used"
// @Param dry_run query boolean false "Compute the corrections without writing"
// @Success 200 {object} audit.FixResult "Fix Result"
// @Failure 400 {object} map[string]string "Invalid character"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/fix [post]
func (h *Handler) HandleFix(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	req := Request{Character: c.Query("character")}
	opts := FixOptions{DryRun: c.Query("dry_run") == "true"}

	result, err := h.service.Fix(c.Context(), req, opts)
	if err != nil {
		l.Error("Fix failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Fix finished",
		zap.String("run_id", result.RunID),
		zap.Int("corrections", len(result.Corrections)),
		zap.Int("changed", result.Changed),
		zap.Bool("dry_run", result.DryRun))

	return c.JSON(result)
}

// HandleHistory lists recorded audit runs.
// @Summary Audit History
// @Description Lists the most recent audit and fix runs, newest first.
// @Tags audit
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} models.AuditRun "Runs"
// @Failure 503 {object} map[string]string "Database not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/runs [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultHistoryLimit)))
	if err != nil || limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
	}

	runs, err := h.service.History(c.Context(), limit)
	if err != nil {
		l.Error("History lookup failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, inventory.ErrInvalidCharacter):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNoDatabase), errors.Is(err, ErrNoStorage):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrPlanChanged):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
