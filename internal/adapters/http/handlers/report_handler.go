package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pghive/internal/core/services"
	"pghive/internal/pkg/response"
)

// maxBulkMonths caps a single bulk billing run at ten years
const maxBulkMonths = 120

// ReportHandler handles owner reporting and billing endpoints
type ReportHandler struct {
	owner     *services.OwnerService
	reminders *services.ReminderService
}

// NewReportHandler creates a new report handler
func NewReportHandler(owner *services.OwnerService, reminders *services.ReminderService) *ReportHandler {
	return &ReportHandler{
		owner:     owner,
		reminders: reminders,
	}
}

// BulkBillingRequest represents bulk billing request body
type BulkBillingRequest struct {
	Months    int    `json:"months"`
	StartDate string `json:"start_date"`
}

// BillingModeRequest represents billing mode request body
type BillingModeRequest struct {
	Mode string `json:"mode"`
}

// GetSummary returns tenant, room and occupancy counts
// @Summary Occupancy report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	report, err := h.owner.Report(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Report generated successfully", fiber.Map{
		"report": report,
	})
}

// GetRentSuggestions returns suggested rents ordered by sharing type
// @Summary Rent suggestions
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/rent-suggestions [get]
func (h *ReportHandler) GetRentSuggestions(c *fiber.Ctx) error {
	report, err := h.owner.RentSuggestions(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Rent suggestions generated successfully", report)
}

// GetReminders lists unpaid payments due within the lookahead window.
// Query "date" overrides today.
func (h *ReportHandler) GetReminders(c *fiber.Ctx) error {
	now := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "Date must be formatted as yyyy-mm-dd")
		}
		now = parsed
	}

	reminders, err := h.reminders.RunOnce(c.UserContext(), now)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Reminders retrieved successfully", fiber.Map{
		"reminders": reminders,
		"total":     len(reminders),
	})
}

// GenerateBulkPayments bills every tenant for consecutive months
// @Summary Bulk billing
// @Description Start date defaults to today; months below 1 generate nothing, more than 120 are rejected
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkBillingRequest true "Billing window"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /billing/bulk [post]
func (h *ReportHandler) GenerateBulkPayments(c *fiber.Ctx) error {
	var req BulkBillingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Months > maxBulkMonths {
		return response.BadRequest(c, "Months must not exceed "+strconv.Itoa(maxBulkMonths))
	}

	start := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return response.BadRequest(c, "Start date must be formatted as yyyy-mm-dd")
		}
		start = parsed
	}

	result, err := h.owner.GenerateBulkPayments(c.UserContext(), req.Months, start)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Generated "+strconv.Itoa(result.Payments)+" payments", fiber.Map{
		"result": result,
	})
}

// GetBillingMode returns the active billing mode
func (h *ReportHandler) GetBillingMode(c *fiber.Ctx) error {
	return response.Success(c, "Billing mode retrieved successfully", fiber.Map{
		"mode": h.owner.BillingMode(),
	})
}

// SetBillingMode switches between flat and cadence billing
func (h *ReportHandler) SetBillingMode(c *fiber.Ctx) error {
	var req BillingModeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	mode, err := services.ParseBillingMode(req.Mode)
	if err != nil {
		return handleError(c, err)
	}
	h.owner.SetBillingMode(mode)

	return response.Success(c, "Billing mode updated successfully", fiber.Map{
		"mode": mode,
	})
}
