package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/pagination"
	"pghive/internal/pkg/response"
)

// TenantHandler handles tenant management endpoints (owner only)
type TenantHandler struct {
	owner *services.OwnerService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(owner *services.OwnerService) *TenantHandler {
	return &TenantHandler{
		owner: owner,
	}
}

// CreateTenantRequest represents create tenant request body
type CreateTenantRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Contact     string `json:"contact"`
	Cadence     string `json:"cadence"`
	MoveInDate  string `json:"move_in_date"`
	MoveOutDate string `json:"move_out_date"`
}

// UpdateTenantRequest represents update tenant request body
type UpdateTenantRequest struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	MoveInDate  string `json:"move_in_date"`
	MoveOutDate string `json:"move_out_date"`
}

// RecordPaymentRequest represents record payment request body
type RecordPaymentRequest struct {
	ID      string          `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
}

// PaymentResponse DTO
type PaymentResponse struct {
	ID      string          `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
	Paid    bool            `json:"paid"`
	Status  string          `json:"status"`
}

func toPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			ID:      p.ID,
			Amount:  p.Amount,
			DueDate: p.DueDate.Format(dateLayout),
			Paid:    p.Paid,
			Status:  p.Status(),
		})
	}
	return out
}

// ListTenants handles listing tenants in registration order
// @Summary List tenants
// @Tags Tenants
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	tenants, err := h.owner.Tenants().List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}

	page := pagination.Window(tenants, params)
	items := make([]*domain.TenantResponse, 0, len(page))
	for _, t := range page {
		items = append(items, t.ToResponse())
	}

	return response.Success(c, "Tenants retrieved successfully", pagination.NewResponse(items, params, int64(len(tenants))))
}

// CreateTenant handles tenant registration
// @Summary Create tenant
// @Description Unknown cadences fall back to the default 30-day cadence
// @Tags Tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTenantRequest true "Tenant data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *fiber.Ctx) error {
	var req CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	moveIn, moveOut, err := parseMoveDates(req.MoveInDate, req.MoveOutDate)
	if err != nil {
		return response.BadRequest(c, "Dates must be formatted as yyyy-mm-dd")
	}

	tenant, err := h.owner.CreateTenant(c.UserContext(), services.CreateTenantInput{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Contact:     req.Contact,
		Cadence:     req.Cadence,
		MoveInDate:  moveIn,
		MoveOutDate: moveOut,
	})
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Tenant created successfully", fiber.Map{
		"tenant": tenant.ToResponse(),
	})
}

// GetTenant handles getting a tenant by ID
func (h *TenantHandler) GetTenant(c *fiber.Ctx) error {
	tenant, err := h.owner.Tenants().FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Tenant retrieved successfully", fiber.Map{
		"tenant": tenant.ToResponse(),
	})
}

// UpdateTenant handles editing a tenant's name, contact and move dates
// @Summary Update tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Param body body UpdateTenantRequest true "Tenant data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *fiber.Ctx) error {
	var req UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	moveIn, moveOut, err := parseMoveDates(req.MoveInDate, req.MoveOutDate)
	if err != nil {
		return response.BadRequest(c, "Dates must be formatted as yyyy-mm-dd")
	}

	id := c.Params("id")
	if err := h.owner.EditTenant(c.UserContext(), id, services.EditTenantInput{
		Name:        req.Name,
		Contact:     req.Contact,
		MoveInDate:  moveIn,
		MoveOutDate: moveOut,
	}); err != nil {
		return handleError(c, err)
	}

	return h.GetTenant(c)
}

// DeleteTenant handles removing a tenant; their room becomes vacant
// @Summary Delete tenant
// @Tags Tenants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	if err := h.owner.RemoveTenant(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Tenant deleted successfully", nil)
}

// ListPayments handles a tenant's payment history
func (h *TenantHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.owner.PaymentHistory(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Payments retrieved successfully", fiber.Map{
		"payments": toPaymentResponses(payments),
	})
}

// RecordPayment handles adding one payment to a tenant's ledger
func (h *TenantHandler) RecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	due := time.Now()
	if req.DueDate != "" {
		parsed, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return response.BadRequest(c, "Due date must be formatted as yyyy-mm-dd")
		}
		due = parsed
	}

	payment, err := h.owner.RecordPayment(c.UserContext(), c.Params("id"), services.RecordPaymentInput{
		ID:      req.ID,
		Amount:  req.Amount,
		DueDate: due,
	})
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Payment recorded successfully", fiber.Map{
		"payment": toPaymentResponses([]domain.Payment{payment})[0],
	})
}

// MarkPaid handles settling a payment
func (h *TenantHandler) MarkPaid(c *fiber.Ctx) error {
	if err := h.owner.MarkPaid(c.UserContext(), c.Params("id"), c.Params("paymentId")); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Payment marked as paid", nil)
}

func parseMoveDates(in, out string) (*time.Time, *time.Time, error) {
	moveIn, err := parseDate(in)
	if err != nil {
		return nil, nil, err
	}
	moveOut, err := parseDate(out)
	if err != nil {
		return nil, nil, err
	}
	return moveIn, moveOut, nil
}
