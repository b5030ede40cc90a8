package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentreach/outreach-backend-go/internal/domain/hr"
	"github.com/talentreach/outreach-backend-go/internal/handler/http/response"
	"github.com/talentreach/outreach-backend-go/internal/pkg/outreach"
	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

type RecordHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleActive(w http.ResponseWriter, r *http.Request)
	Draft(w http.ResponseWriter, r *http.Request)
}

type RecordHandlerImpl struct {
	recordService hr.RecordService
}

func NewRecordHandler(recordService hr.RecordService) RecordHandler {
	return &RecordHandlerImpl{recordService: recordService}
}

// List implements RecordHandler.
func (h *RecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := hr.ListFilter{
		CompanyID:   r.URL.Query().Get("companyId"),
		CompanyName: r.URL.Query().Get("companyName"),
	}

	records, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		slog.Error("HR record list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Create implements RecordHandler.
func (h *RecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq hr.CreateRecordRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create HR record decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	// Call service (validation order is owned by the service)
	created, err := h.recordService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create HR record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("HR record created successfully")
	response.Created(w, created)
}

// Update implements RecordHandler.
func (h *RecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, hr.ErrRecordNotFound)
		return
	}

	var updateReq hr.UpdateRecordRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update HR record decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	// Call service
	updated, err := h.recordService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update HR record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("HR record updated successfully")
	response.Success(w, updated)
}

// ToggleActive implements RecordHandler.
func (h *RecordHandlerImpl) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, hr.ErrRecordNotFound)
		return
	}

	toggled, err := h.recordService.ToggleActive(r.Context(), id)
	if err != nil {
		slog.Error("Toggle HR record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toggled)
}

// Draft implements RecordHandler: composes an outreach email draft for the
// record from operator-supplied sender details. Nothing is sent.
func (h *RecordHandlerImpl) Draft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, hr.ErrRecordNotFound)
		return
	}

	sender := outreach.Sender{
		Name:       r.URL.Query().Get("name"),
		Phone:      r.URL.Query().Get("phone"),
		ResumeLink: r.URL.Query().Get("resumeLink"),
	}
	if validator.IsEmpty(sender.Name) || validator.IsEmpty(sender.Phone) || validator.IsEmpty(sender.ResumeLink) {
		response.BadRequest(w, "name, phone and resumeLink are required")
		return
	}

	record, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Draft HR record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, outreach.Compose(record.HRName, record.HREmail, sender))
}
