package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/sessions"
	"github.com/smartwork/dashboard/internal/store"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// ListResponse wraps collection results with their count.
type ListResponse struct {
	Data  any `json:"data"`
	Total int `json:"total"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "bad_request"})
}

// respondInvalid sends a 400 response listing the failed field rules of a
// bound request body.
func respondInvalid(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Code: "validation_failed", Details: fields})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: "not_found"})
}

// respondConflict sends a 409 response for requests the current state forbids.
func respondConflict(c *gin.Context, err error, details any) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "conflict", Details: details})
}

// respondUnprocessable sends a 422 response for uploads that cannot be read.
func respondUnprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "unprocessable_file"})
}

// respondInternalError records the error on the gin context, where the
// request logger picks it up, and hides it from the client.
func respondInternalError(c *gin.Context, err error, context string) {
	_ = c.Error(err).SetMeta(context)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "internal"})
}

// respondError maps service and import errors to HTTP statuses.
func respondError(c *gin.Context, err error, resource string) {
	var schemaErr *importers.SchemaError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, services.ErrUnknownEntity):
		respondNotFound(c, "entity")
	case errors.Is(err, services.ErrUnknownTemplate):
		respondNotFound(c, "template")
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidMovement),
		errors.Is(err, services.ErrUnknownProduct),
		errors.Is(err, services.ErrIncompleteMessage),
		errors.Is(err, services.ErrInvalidSettings),
		errors.Is(err, services.ErrInvalidClock):
		respondBadRequest(c, err.Error())
	case errors.Is(err, services.ErrAlreadyCheckedIn), errors.Is(err, services.ErrNotCheckedIn):
		respondConflict(c, err, nil)
	case errors.As(err, &schemaErr):
		respondConflict(c, err, gin.H{"missing": schemaErr.Missing})
	case errors.Is(err, importers.ErrConfirmBlocked), errors.Is(err, importers.ErrNotPreviewing):
		respondConflict(c, err, nil)
	case errors.Is(err, importers.ErrDecode), errors.Is(err, importers.ErrEmptySheet):
		respondUnprocessable(c, err)
	default:
		respondInternalError(c, err, resource)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func respondList[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse{Data: data, Total: len(data)})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates a positive integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (int, bool) {
	id, err := strconv.Atoi(c.Param(paramName))
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}

// workspace returns the caller's workspace. The session middleware always
// sets it on /api routes; a miss is a wiring bug.
func workspace(c *gin.Context) (*store.Workspace, bool) {
	ws, ok := sessions.FromContext(c)
	if !ok {
		respondInternalError(c, errors.New("no workspace in request context"), "workspace")
		return nil, false
	}
	return ws, true
}
