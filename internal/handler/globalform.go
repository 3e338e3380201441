package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/formbot/internal/service"
)

// GlobalFormHandler serves the flat global form list.
type GlobalFormHandler struct {
	forms  *service.GlobalFormService
	logger *slog.Logger
}

// NewGlobalFormHandler creates a GlobalFormHandler.
func NewGlobalFormHandler(forms *service.GlobalFormService, logger *slog.Logger) *GlobalFormHandler {
	return &GlobalFormHandler{
		forms:  forms,
		logger: logger,
	}
}

// HandleCreate creates a global form.
//
// HTTP: POST /api/globalForms
// BODY: {"name":"announcement"}
//
// 201 with the record on success, 400 on a missing name.
func (h *GlobalFormHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateGlobalFormRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	form, err := h.forms.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, form)
}

// HandleList returns all global forms.
//
// HTTP: GET /api/globalForms
func (h *GlobalFormHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	forms, err := h.forms.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, forms)
}
