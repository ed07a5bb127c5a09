package handler

import (
	"net/http"
	"wallet-service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// internalErrorMessage is the only text a client sees for unclassified failures.
const internalErrorMessage = "internal service error"

type errorStatus struct {
	status int
	code   string
}

// errorStatuses has one entry per model.Kind.
var errorStatuses = map[model.Kind]errorStatus{
	model.KindLockConflict:         {http.StatusConflict, "RESOURCE_BUSY"},
	model.KindNotFound:             {http.StatusNotFound, "NOT_FOUND"},
	model.KindInsufficientFunds:    {http.StatusConflict, "INSUFFICIENT_FUNDS"},
	model.KindInvalidOperationType: {http.StatusBadRequest, "INVALID_OPERATION_TYPE"},
	model.KindInvalidPayload:       {http.StatusBadRequest, "INVALID_PAYLOAD"},
	model.KindStorage:              {http.StatusBadRequest, "STORAGE_ERROR"},
	model.KindValidation:           {http.StatusBadRequest, "VALIDATION_ERROR"},
	model.KindUnclassified:         {http.StatusInternalServerError, "INTERNAL_ERROR"},
}

func statusFor(kind model.Kind) errorStatus {
	if s, ok := errorStatuses[kind]; ok {
		return s
	}
	return errorStatuses[model.KindUnclassified]
}

// handleError logs err and writes the error response for its kind.
func (h *Handler) handleError(c *gin.Context, err error) {
	kind := model.KindOf(err)
	st := statusFor(kind)

	resp := model.ErrorResponse{
		Message: internalErrorMessage,
		Status:  st.status,
		Code:    st.code,
		Details: &model.ErrorDetails{URL: c.Request.URL.Path},
	}
	if de, ok := model.AsError(err); ok && st.status != http.StatusInternalServerError {
		resp.Message = de.Error()
		resp.Details.Fields = de.Fields
	}

	var event *zerolog.Event
	if st.status >= http.StatusInternalServerError {
		event = h.logger.Error()
	} else {
		event = h.logger.Warn()
	}
	event.Err(err).
		Str("request_id", c.GetString(requestIDKey)).
		Str("path", c.Request.URL.Path).
		Str("kind", kind.String()).
		Int("status", st.status).
		Msg("request failed")

	c.JSON(st.status, resp)
}
