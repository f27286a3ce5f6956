package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"fraud-detection-backend/internal/middleware"
	"fraud-detection-backend/internal/services/fraud"
	"fraud-detection-backend/internal/services/predictor"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service *fraud.Service
}

func NewTransactionHandler(s *fraud.Service) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Predict forwards the submitted transaction to the prediction service and
// relays its answer untouched.
func (h *TransactionHandler) Predict(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}

	result, err := h.service.Predict(c.Request.Context(), body)
	if err != nil {
		log.Printf("[Predict] %s failed: %v", middleware.RequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(result.StatusCode, "application/json", result.Body)
}

// Index returns the seven vocabularies the transaction form is built from.
func (h *TransactionHandler) Index(c *gin.Context) {
	opts, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Vocabulary returns a handler relaying one vocabulary.
func (h *TransactionHandler) Vocabulary(v predictor.Vocabulary) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := h.service.Vocabulary(c.Request.Context(), v)
		if err != nil {
			h.upstreamError(c, err)
			return
		}
		writeRawJSON(c, body)
	}
}

func (h *TransactionHandler) CityData(c *gin.Context) {
	body, err := h.service.CityData(c.Request.Context(), c.Param("cityName"))
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	writeRawJSON(c, body)
}

func (h *TransactionHandler) upstreamError(c *gin.Context, err error) {
	log.Printf("[Options] %s failed: %v", middleware.RequestID(c), err)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func writeRawJSON(c *gin.Context, body json.RawMessage) {
	c.Data(http.StatusOK, "application/json", body)
}
