package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/gov-comms/activity-tracker/pkg/errors"
)

// DataResponse is the success envelope for activity endpoints
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func (h *ActivityHandler) writeData(w http.ResponseWriter, status int, data interface{}) {
	h.writeJSON(w, status, DataResponse{Success: true, Data: data})
}

func (h *ActivityHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithError(err).Error("Failed to encode response")
	}
}

func (h *ActivityHandler) writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError("internal server error", err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		h.log.WithError(err).Error("Request failed")
	} else {
		h.log.WithError(err).Debug("Request rejected")
	}

	h.writeJSON(w, appErr.StatusCode, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}
