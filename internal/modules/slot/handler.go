package slot

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutormatch/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts read endpoints on the authenticated group and
// management endpoints on the tutor-gated group.
func (h *Handler) RegisterRoutes(authed, tutor *gin.RouterGroup) {
	if authed != nil {
		authed.GET("/slots", h.List)
	}
	if tutor != nil {
		tutor.POST("/slots", h.Create)
		tutor.POST("/slots/bulk", h.BulkCreate)
		tutor.PATCH("/slots/:id", h.Update)
		tutor.DELETE("/slots/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	var tutorID int64
	if raw := c.Query("tutor_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tutor_id")
			return
		}
		tutorID = id
	}
	includeBooked := c.Query("include_booked") == "true"

	slots, err := h.service.List(c.Request.Context(), tutorID, includeBooked)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sl, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Slot start must be before end")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create slot")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slot": sl})
}

func (h *Handler) BulkCreate(c *gin.Context) {
	var req BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slots, err := h.service.CreateBulk(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid slot windows or date range")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create slots")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slots": slots})
}

func (h *Handler) Update(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid slot ID")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sl, err := h.service.Update(c.Request.Context(), slotID, c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Slot start must be before end")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this slot")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Slot not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update slot")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slot": sl})
}

func (h *Handler) Delete(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid slot ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), slotID, c.GetInt64("user_id")); err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this slot")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Slot not found")
		case ErrSlotBooked:
			response.Error(c, http.StatusConflict, "SLOT_BOOKED", "Slot has an active booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete slot")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
