package handler

import (
	"net/http"
	"sync"

	"persona-registry/internal/domain/persona"
	usecase "persona-registry/internal/usecase/persona"
	pkgerrors "persona-registry/pkg/errors"
	"persona-registry/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PersonaHandler handles HTTP requests for persona operations.
// Gin serves requests concurrently while the registry is single-threaded, so
// every call into the usecase holds mu.
type PersonaHandler struct {
	mu  sync.Mutex
	uc  usecase.Usecase
	log *zap.Logger
}

// NewPersonaHandler creates a new PersonaHandler instance
func NewPersonaHandler(uc usecase.Usecase, log *zap.Logger) *PersonaHandler {
	return &PersonaHandler{
		uc:  uc,
		log: log,
	}
}

// PersonaFields represents raw form fields; age stays text so the registry
// validates it exactly as a form would
type PersonaFields struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     string `json:"age"`
}

// PersonaBody represents a stored persona, in responses and as the key of
// update and delete requests
type PersonaBody struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     int    `json:"age"`
}

// UpdatePersonaRequest represents the HTTP request body for editing a persona
type UpdatePersonaRequest struct {
	Old PersonaBody `json:"old"`
	New PersonaFields   `json:"new"`
}

// ListPersonasResponse represents the HTTP response for listing personas
type ListPersonasResponse struct {
	Personas []PersonaBody `json:"personas"`
}

// RemovePersonaResponse represents the HTTP response for removing a persona
type RemovePersonaResponse struct {
	Removed bool `json:"removed"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

func (f PersonaFields) input() usecase.PersonaInput {
	return usecase.PersonaInput{Name: f.Name, Surname: f.Surname, Age: f.Age}
}

func (r PersonaBody) persona() persona.Persona {
	return persona.New(r.Name, r.Surname, r.Age)
}

func toBody(p persona.Persona) PersonaBody {
	return PersonaBody{Name: p.Name, Surname: p.Surname, Age: p.Age}
}

// CreatePersona handles POST /v1/personas
func (h *PersonaHandler) CreatePersona(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var req PersonaFields
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create persona request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	h.mu.Lock()
	p, err := h.uc.Create(c.Request.Context(), req.input())
	h.mu.Unlock()
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBody(*p))
}

// ListPersonas handles GET /v1/personas
func (h *PersonaHandler) ListPersonas(c *gin.Context) {
	h.mu.Lock()
	items := h.uc.List(c.Request.Context())
	h.mu.Unlock()

	personas := make([]PersonaBody, len(items))
	for i, p := range items {
		personas[i] = toBody(p)
	}

	c.JSON(http.StatusOK, ListPersonasResponse{Personas: personas})
}

// UpdatePersona handles PUT /v1/personas
func (h *PersonaHandler) UpdatePersona(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var req UpdatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update persona request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	h.mu.Lock()
	p, err := h.uc.Update(c.Request.Context(), req.Old.persona(), req.New.input())
	h.mu.Unlock()
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBody(*p))
}

// RemovePersona handles DELETE /v1/personas
func (h *PersonaHandler) RemovePersona(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var req PersonaBody
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid remove persona request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	h.mu.Lock()
	removed := h.uc.Remove(c.Request.Context(), req.persona())
	h.mu.Unlock()

	c.JSON(http.StatusOK, RemovePersonaResponse{Removed: removed})
}

// handleError converts usecase errors to appropriate HTTP responses
func (h *PersonaHandler) handleError(c *gin.Context, err error) {
	status := pkgerrors.StatusCode(err)

	switch {
	case pkgerrors.IsValidation(err):
		c.JSON(status, ErrorResponse{
			Error:    "validation_error",
			Messages: pkgerrors.Messages(err),
		})
	case pkgerrors.IsDuplicate(err):
		c.JSON(status, ErrorResponse{
			Error:   "already_exists",
			Message: err.Error(),
		})
	case pkgerrors.IsNotFound(err):
		c.JSON(status, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		logger.WithContext(c.Request.Context(), h.log).Error("persona request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: pkgerrors.ErrInternal.Error(),
		})
	}
}
