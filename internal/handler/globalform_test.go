package handler

import (
	"encoding/json"
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

func newGlobalFormRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	h := NewGlobalFormHandler(service.NewGlobalFormService(db.GlobalForms(), logger), logger)

	r := chi.NewRouter()
	r.Get("/api/globalForms", h.HandleList)
	r.Post("/api/globalForms", h.HandleCreate)
	return r
}

func TestGlobalFormCreateAndList(t *testing.T) {
	router := newGlobalFormRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/globalForms", `{"name":"announcement"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.GlobalForm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "announcement", created.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/globalForms", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var forms []model.GlobalForm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forms))
	require.Len(t, forms, 1)
	assert.Equal(t, created.ID, forms[0].ID)
}

func TestGlobalFormCreate_MissingName(t *testing.T) {
	router := newGlobalFormRouter(t)

	for _, body := range []string{`{}`, `{"name":""}`} {
		rec := doJSON(t, router, http.MethodPost, "/api/globalForms", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestGlobalFormList_Empty(t *testing.T) {
	router := newGlobalFormRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/globalForms", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
