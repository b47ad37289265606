package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutormatch/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tutors", h.List)
}

func (h *Handler) List(c *gin.Context) {
	cards, err := h.service.ListTutors(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tutors")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": cards})
}
