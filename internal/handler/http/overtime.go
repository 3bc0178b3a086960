package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
	maxUploadBytes  int64
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService, maxUploadBytes int64) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Calculate implements OvertimeHandler.
func (h *overtimeHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req overtime.CalculateRequest

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.RequestEntityTooLarge(w, "Request body too large")
			return
		}
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Upload implements OvertimeHandler.
func (h *overtimeHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Multipart overhead on top of the file itself
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.RequestEntityTooLarge(w, "Timesheet file too large")
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.BadRequest(w, "Timesheet file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req := overtime.UploadRequest{
		File:       file,
		FileHeader: fileHeader,
		MaxBytes:   h.maxUploadBytes,
	}

	result, err := h.overtimeService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet processed", result)
}
