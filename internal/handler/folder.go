package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/formbot/internal/service"
)

// FolderHandler serves the folder CRUD surface.
type FolderHandler struct {
	folders *service.FolderService
	logger  *slog.Logger
}

// NewFolderHandler creates a FolderHandler.
func NewFolderHandler(folders *service.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folders: folders,
		logger:  logger,
	}
}

// HandleCreate creates a folder.
//
// HTTP: POST /api/folders
// BODY: {"name":"inbox"}
//
// 201 with the folder on success, 400 on a missing name, 409 on a
// duplicate name.
func (h *FolderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	folder, err := h.folders.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, folder)
}

// HandleList returns all folders with bare form ID references.
//
// HTTP: GET /api/folders (public)
func (h *FolderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

// HandleListWithForms returns all folders with forms fully resolved.
//
// HTTP: GET /folders (protected)
func (h *FolderHandler) HandleListWithForms(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folders.ListWithForms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

// HandleDelete removes a folder. Registered for both the public and the
// protected delete routes — same behaviour, one handler.
//
// HTTP: DELETE /api/folders/{id}, DELETE /folders/{id}
//
// 200 with a message on success, 404 if the folder doesn't exist. The
// folder's forms stay behind.
func (h *FolderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.folders.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Folder deleted successfully"})
}
