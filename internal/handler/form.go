package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/formbot/internal/service"
)

// FormHandler serves the form CRUD surface.
type FormHandler struct {
	forms  *service.FormService
	logger *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(forms *service.FormService, logger *slog.Logger) *FormHandler {
	return &FormHandler{
		forms:  forms,
		logger: logger,
	}
}

// HandleCreate creates a form under a folder.
//
// HTTP: POST /api/forms
// BODY: {"name":"survey","folderId":"d0jq2..."}
func (h *FormHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateFormRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	form, err := h.forms.Create(r.Context(), req.Name, req.FolderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, form)
}

// HandleListByFolder returns the forms belonging to a folder.
//
// HTTP: GET /api/forms/{folderID}
//
// An unknown folder ID yields an empty list, not a 404 — the client
// can't tell an empty folder from a missing one here, and doesn't need to.
func (h *FormHandler) HandleListByFolder(w http.ResponseWriter, r *http.Request) {
	folderID := r.PathValue("folderID")

	forms, err := h.forms.ListByFolder(r.Context(), folderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, forms)
}

// HandleDelete removes a form.
//
// HTTP: DELETE /api/forms/{id}
//
// 200 with a message on success, 404 if the form doesn't exist.
func (h *FormHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.forms.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Form deleted"})
}
