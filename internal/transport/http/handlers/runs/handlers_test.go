package runshandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"lohnplaner/internal/domain/history"
)

type fakeRunStore struct {
	runs      []history.Run
	lastLimit int
}

func (f *fakeRunStore) InsertRun(_ context.Context, run history.Run) (string, error) {
	f.runs = append(f.runs, run)
	return "run-1", nil
}

func (f *fakeRunStore) ListRuns(_ context.Context, limit, offset int) ([]history.Run, error) {
	f.lastLimit = limit
	if offset >= len(f.runs) {
		return nil, nil
	}
	return f.runs[offset:], nil
}

func TestListRunsWithoutStoreIs503(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(nil).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a store, got %d", rec.Code)
	}
}

func TestListRuns(t *testing.T) {
	store := &fakeRunStore{runs: []history.Run{
		{ID: "a", Canton: "ZH", NetToOwner: 150000},
		{ID: "b", Canton: "UR", NetToOwner: 90000},
	}}
	router := chi.NewRouter()
	NewHandler(store).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs?limit=500", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.lastLimit != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", store.lastLimit)
	}

	var env struct {
		Data []history.Run `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if len(env.Data) != 2 || env.Data[0].ID != "a" {
		t.Fatalf("unexpected runs: %+v", env.Data)
	}
}

func TestListRunsEmptyIsArray(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(&fakeRunStore{}).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if string(env.Data) != "[]" {
		t.Fatalf("expected an empty array, got %s", string(env.Data))
	}
}
