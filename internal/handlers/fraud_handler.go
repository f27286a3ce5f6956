package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fraud-detection-backend/internal/middleware"
	"fraud-detection-backend/internal/repository"
	"fraud-detection-backend/internal/services/fraud"

	"github.com/gin-gonic/gin"
)

type FraudHandler struct {
	service *fraud.Service
}

func NewFraudHandler(s *fraud.Service) *FraudHandler {
	return &FraudHandler{service: s}
}

// List serves ?page=N of stored frauds, newest first.
func (h *FraudHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	frauds, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		h.internalError(c, "list frauds", err)
		return
	}
	c.JSON(http.StatusOK, frauds)
}

func (h *FraudHandler) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "fraud not found"})
		return
	}

	detail, err := h.service.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fraud not found"})
			return
		}
		h.internalError(c, "get fraud", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *FraudHandler) Dashboard(c *gin.Context) {
	recent, err := h.service.Recent(c.Request.Context())
	if err != nil {
		h.internalError(c, "recent frauds", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recentFrauds": recent})
}

func (h *FraudHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.internalError(c, "fraud stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *FraudHandler) internalError(c *gin.Context, what string, err error) {
	log.Printf("[DB] %s %s: %v", middleware.RequestID(c), what, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + what})
}
