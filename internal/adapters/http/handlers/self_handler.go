package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pghive/internal/adapters/http/middleware"
	"pghive/internal/core/services"
	"pghive/internal/pkg/response"
)

// SelfHandler serves the logged-in tenant's own records
type SelfHandler struct {
	owner *services.OwnerService
}

// NewSelfHandler creates a new self-service handler
func NewSelfHandler(owner *services.OwnerService) *SelfHandler {
	return &SelfHandler{owner: owner}
}

// UploadDocumentRequest represents upload document request body
type UploadDocumentRequest struct {
	Name string `json:"name"`
}

// GetProfile returns the tenant's profile with its room
// @Summary My profile
// @Tags Tenant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /me [get]
func (h *SelfHandler) GetProfile(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	ctx := c.UserContext()
	tenant, err := h.owner.Tenants().FindByID(ctx, session.AccountID)
	if err != nil {
		return handleError(c, err)
	}

	data := fiber.Map{"tenant": tenant.ToResponse()}
	if tenant.HasRoom() {
		room, err := h.owner.Rooms().Find(ctx, tenant.RoomID)
		if err == nil {
			data["room"] = room
			data["period_amount"] = tenant.PeriodAmount(room)
		}
	}

	return response.Success(c, "Profile retrieved successfully", data)
}

// GetPayments returns the tenant's payment history
func (h *SelfHandler) GetPayments(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	payments, err := h.owner.PaymentHistory(c.UserContext(), session.AccountID)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Payments retrieved successfully", fiber.Map{
		"payments": toPaymentResponses(payments),
	})
}

// GetDocuments lists the tenant's uploaded document names
func (h *SelfHandler) GetDocuments(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	docs, err := h.owner.Tenants().Documents(c.UserContext(), session.AccountID)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Documents retrieved successfully", fiber.Map{
		"documents": docs,
	})
}

// UploadDocument records a document name on the tenant
// @Summary Upload document
// @Description Re-uploading an existing name is accepted and changes nothing
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UploadDocumentRequest true "Document"
// @Success 200 {object} response.Response
// @Router /me/documents [post]
func (h *SelfHandler) UploadDocument(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UploadDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Document name is required")
	}

	added, err := h.owner.Tenants().UploadDocument(c.UserContext(), session.AccountID, req.Name)
	if err != nil {
		return handleError(c, err)
	}

	message := "Document uploaded successfully"
	if !added {
		message = "Document already uploaded"
	}
	return response.Success(c, message, fiber.Map{
		"name":  req.Name,
		"added": added,
	})
}
