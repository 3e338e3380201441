package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/formbot/internal/model"
	"github.com/sakif/formbot/internal/repository/sqlite"
	"github.com/sakif/formbot/internal/service"
)

// newFolderRouter wires the public folder and form routes over an
// in-memory database.
func newFolderRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	folderHandler := NewFolderHandler(service.NewFolderService(db.Folders(), logger), logger)
	formHandler := NewFormHandler(service.NewFormService(db.Forms(), logger), logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/folders", folderHandler.HandleCreate)
		r.Get("/folders", folderHandler.HandleList)
		r.Delete("/folders/{id}", folderHandler.HandleDelete)
		r.Post("/forms", formHandler.HandleCreate)
		r.Get("/forms/{folderID}", formHandler.HandleListByFolder)
		r.Delete("/forms/{id}", formHandler.HandleDelete)
	})
	r.Get("/folders", folderHandler.HandleListWithForms)
	return r
}

func createFolderViaAPI(t *testing.T, router http.Handler, name string) model.Folder {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/folders",
		fmt.Sprintf(`{"name":%q}`, name), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var folder model.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folder))
	return folder
}

func createFormViaAPI(t *testing.T, router http.Handler, name, folderID string) model.Form {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/forms",
		fmt.Sprintf(`{"name":%q,"folderId":%q}`, name, folderID), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var form model.Form
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	return form
}

func TestFolderCreate_DuplicateReturns409(t *testing.T) {
	router := newFolderRouter(t)

	createFolderViaAPI(t, router, "inbox")

	rec := doJSON(t, router, http.MethodPost, "/api/folders", `{"name":"inbox"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// No second document was created.
	rec = doJSON(t, router, http.MethodGet, "/api/folders", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var folders []model.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folders))
	assert.Len(t, folders, 1)
}

func TestFolderCreate_MissingName(t *testing.T) {
	router := newFolderRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/folders", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormCreate_ShowsUpInFolderListing(t *testing.T) {
	router := newFolderRouter(t)

	folder := createFolderViaAPI(t, router, "inbox")
	form := createFormViaAPI(t, router, "survey", folder.ID)

	// Bare listing carries the form's ID.
	rec := doJSON(t, router, http.MethodGet, "/api/folders", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var folders []model.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folders))
	require.Len(t, folders, 1)
	assert.Equal(t, []string{form.ID}, folders[0].FormIDs)

	// Populated listing carries the full record.
	rec = doJSON(t, router, http.MethodGet, "/folders", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var populated []model.FolderWithForms
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &populated))
	require.Len(t, populated, 1)
	require.Len(t, populated[0].Forms, 1)
	assert.Equal(t, "survey", populated[0].Forms[0].Name)
}

func TestFormDelete_RemovedFromFolderListing(t *testing.T) {
	router := newFolderRouter(t)

	folder := createFolderViaAPI(t, router, "inbox")
	form := createFormViaAPI(t, router, "doomed", folder.ID)
	keeper := createFormViaAPI(t, router, "keeper", folder.ID)

	rec := doJSON(t, router, http.MethodDelete, "/api/forms/"+form.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Form deleted"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/folders", "", "")
	var folders []model.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folders))
	require.Len(t, folders, 1)
	assert.Equal(t, []string{keeper.ID}, folders[0].FormIDs)
}

func TestFormDelete_NotFound(t *testing.T) {
	router := newFolderRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/forms/nonexistent", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFolderDelete_OrphansForms(t *testing.T) {
	// Deleting a folder must leave its forms behind.
	router := newFolderRouter(t)

	folder := createFolderViaAPI(t, router, "doomed")
	form := createFormViaAPI(t, router, "survivor", folder.ID)

	rec := doJSON(t, router, http.MethodDelete, "/api/folders/"+folder.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Folder deleted successfully"}`, rec.Body.String())

	// The form still lists under the dead folder's ID.
	rec = doJSON(t, router, http.MethodGet, "/api/forms/"+folder.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var forms []model.Form
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forms))
	require.Len(t, forms, 1)
	assert.Equal(t, form.ID, forms[0].ID)
}

func TestFolderDelete_NotFound(t *testing.T) {
	router := newFolderRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/folders/nonexistent", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormListByFolder_UnknownFolderIsEmpty(t *testing.T) {
	router := newFolderRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/forms/no-such-folder", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
