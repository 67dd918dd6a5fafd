package guidance

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taiwoajasa245/divine-answers/pkg/response"
)

// MaxRequestBytes caps a guidance request body.
const MaxRequestBytes = 64 << 10

type GuidanceHandler struct {
	service GuidanceService
}

func NewGuidanceHandler(service GuidanceService) GuidanceHandler {
	return GuidanceHandler{service: service}
}

func (h *GuidanceHandler) GetGuidanceHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusBadRequest, "Request body too large")
			return
		}
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := h.service.Guide(r.Context(), req)
	if err != nil {
		var gerr *Error
		if errors.As(err, &gerr) {
			response.Error(w, gerr.Status, gerr.Message)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, resp)
}

// PreflightHandler answers CORS preflight requests with an empty 200.
func (h *GuidanceHandler) PreflightHandler(w http.ResponseWriter, r *http.Request) {
	response.Empty(w)
}
