package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pghive/internal/core/services"
	"pghive/internal/pkg/response"
)

// RoomHandler handles room inventory endpoints (owner only)
type RoomHandler struct {
	owner *services.OwnerService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(owner *services.OwnerService) *RoomHandler {
	return &RoomHandler{owner: owner}
}

// CreateRoomRequest represents create room request body.
// Sharing type defaults to Single.
type CreateRoomRequest struct {
	ID           string          `json:"id"`
	BaseRent     decimal.Decimal `json:"base_rent"`
	SizeSqft     float64         `json:"size_sqft"`
	AmenityScore int             `json:"amenity_score"`
	SharingType  string          `json:"sharing_type"`
}

// AssignRoomRequest represents assign room request body
type AssignRoomRequest struct {
	TenantID string `json:"tenant_id"`
}

// ListRooms handles listing rooms ordered by ID
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.owner.Rooms().List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Rooms retrieved successfully", fiber.Map{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// CreateRoom handles adding or replacing a room
// @Summary Create room
// @Description Replacing an existing room keeps its occupant
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRoomRequest true "Room data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.SharingType == "" {
		room, err := h.owner.Rooms().AddBasic(c.UserContext(), req.ID, req.BaseRent)
		if err != nil {
			return handleError(c, err)
		}
		return response.Created(c, "Room saved successfully", fiber.Map{"room": room})
	}

	room, err := h.owner.AddRoom(c.UserContext(), services.CreateRoomInput{
		ID:           req.ID,
		BaseRent:     req.BaseRent,
		SizeSqft:     req.SizeSqft,
		AmenityScore: req.AmenityScore,
		SharingType:  req.SharingType,
	})
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Room saved successfully", fiber.Map{"room": room})
}

// GetRoom handles getting a room by ID
func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	room, err := h.owner.Rooms().Find(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Room retrieved successfully", fiber.Map{"room": room})
}

// AssignRoom handles moving a tenant into a vacant room
// @Summary Assign room
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param body body AssignRoomRequest true "Tenant"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rooms/{id}/assign [post]
func (h *RoomHandler) AssignRoom(c *fiber.Ctx) error {
	var req AssignRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	roomID := c.Params("id")
	if err := h.owner.AssignRoom(c.UserContext(), roomID, req.TenantID); err != nil {
		return handleError(c, err)
	}

	return h.GetRoom(c)
}
