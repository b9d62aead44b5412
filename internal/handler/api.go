package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/gin-gonic/gin"
)

// BackendStatus is the part of the gateway the status endpoints use.
type BackendStatus interface {
	CheckHealth(ctx context.Context) (*model.HealthStatus, error)
	RAGStatus(ctx context.Context) (*model.RAGStatus, error)
}

type APIHandler struct {
	backend  BackendStatus
	symptoms *service.SymptomService
	chat     *service.ChatService
	medical  *service.MedicalInfoService
}

func NewAPIHandler(backend BackendStatus, symptoms *service.SymptomService, chat *service.ChatService, medical *service.MedicalInfoService) *APIHandler {
	return &APIHandler{backend: backend, symptoms: symptoms, chat: chat, medical: medical}
}

// BackendHealth godoc
// @Summary Backend health
// @Tags status
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/health [get]
func (h *APIHandler) BackendHealth(c *gin.Context) {
	status, err := h.backend.CheckHealth(c.Request.Context())
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// RAGStatus godoc
// @Summary Knowledge base status
// @Tags status
// @Produce json
// @Success 200 {object} model.RAGStatus
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/rag-status [get]
func (h *APIHandler) RAGStatus(c *gin.Context) {
	status, err := h.backend.RAGStatus(c.Request.Context())
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// AnalyzeSymptoms godoc
// @Summary Analyze symptoms
// @Tags symptoms
// @Accept json
// @Produce json
// @Param request body model.SymptomRequest true "Symptoms and optional patient details"
// @Success 200 {object} model.SymptomResult
// @Failure 400 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/analyze-symptoms [post]
func (h *APIHandler) AnalyzeSymptoms(c *gin.Context) {
	var req model.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Kind: model.ErrorKindValidation})
		return
	}

	req, err := h.symptoms.ValidateRequest(req)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	result, err := h.symptoms.AnalyzeRequest(c.Request.Context(), req)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Chat godoc
// @Summary Send a chat message
// @Description A missing conversation_id starts a new conversation; reuse the returned id for follow-ups.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Chat message"
// @Success 200 {object} model.ChatAPIResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/chat [post]
func (h *APIHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Kind: model.ErrorKindValidation})
		return
	}

	resp, err := h.chat.Ask(c.Request.Context(), req.Message, req.ConversationID)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MedicalInfo godoc
// @Summary Medical condition information
// @Tags medical
// @Produce json
// @Param condition path string true "Condition name"
// @Success 200 {object} model.ConditionInfo
// @Failure 400 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/medical-info/{condition} [get]
func (h *APIHandler) MedicalInfo(c *gin.Context) {
	// 와일드카드라 %2F가 풀린 이름도 한 번에 받는다
	condition := strings.TrimPrefix(c.Param("condition"), "/")
	info, err := h.medical.Lookup(c.Request.Context(), condition)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
