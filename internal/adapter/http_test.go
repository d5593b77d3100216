package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/models"
)

func signedTestToken(t *testing.T, subject string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Issuer:    "keywarden-test",
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// newFakeBackend spins up a minimal record store server for the client to
// talk to.
func newFakeBackend(t *testing.T) (*httptest.Server, *recordBackendState) {
	t.Helper()
	state := &recordBackendState{records: map[string]models.VaultRecord{}}

	r := chi.NewRouter()
	r.Get("/api/records", func(w http.ResponseWriter, req *http.Request) {
		state.lastAuth = req.Header.Get("Authorization")
		var out []models.VaultRecord
		for _, rec := range state.records {
			if rec.OwnerID == req.URL.Query().Get("owner_id") {
				out = append(out, rec)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	r.Post("/api/records", func(w http.ResponseWriter, req *http.Request) {
		state.lastAuth = req.Header.Get("Authorization")
		var rec models.VaultRecord
		if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		now := time.Now().UTC()
		rec.CreatedAt = &now
		state.records[rec.ID] = rec
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	})
	r.Put("/api/records/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		if _, ok := state.records[id]; !ok {
			http.Error(w, "no such record", http.StatusNotFound)
			return
		}
		var rec models.VaultRecord
		if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		state.records[id] = rec
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/api/records/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		if _, ok := state.records[id]; !ok {
			http.Error(w, "no such record", http.StatusNotFound)
			return
		}
		delete(state.records, id)
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/api/auth/signout", func(w http.ResponseWriter, req *http.Request) {
		state.signedOut = true
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, state
}

type recordBackendState struct {
	records   map[string]models.VaultRecord
	lastAuth  string
	signedOut bool
}

func newTestStore(t *testing.T, baseURL string) RecordStore {
	t.Helper()
	rs, err := NewHTTPRecordStore(HTTPClientConfig{BaseURL: baseURL}, logger.Nop())
	require.NoError(t, err)
	return rs
}

func TestNewHTTPRecordStore_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRecordStore(HTTPClientConfig{BaseURL: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestHTTPRecordStore_InsertAndList(t *testing.T) {
	srv, state := newFakeBackend(t)
	rs := newTestStore(t, srv.URL)
	rs.SetToken(signedTestToken(t, "user42"))

	rec := models.VaultRecord{ID: "id-1", OwnerID: "user42", Title: "Mail", Secret: "ZW52"}
	stored, err := rs.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "id-1", stored.ID)
	assert.NotNil(t, stored.CreatedAt)

	list, err := rs.List(context.Background(), "user42")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mail", list[0].Title)

	// Bearer token travels with every request.
	assert.Contains(t, state.lastAuth, "Bearer ")
}

func TestHTTPRecordStore_Update_NotFound(t *testing.T) {
	srv, _ := newFakeBackend(t)
	rs := newTestStore(t, srv.URL)

	err := rs.Update(context.Background(), models.VaultRecord{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPRecordStore_Delete(t *testing.T) {
	srv, state := newFakeBackend(t)
	rs := newTestStore(t, srv.URL)

	state.records["id-1"] = models.VaultRecord{ID: "id-1"}
	require.NoError(t, rs.Delete(context.Background(), "id-1"))
	assert.Empty(t, state.records)

	assert.ErrorIs(t, rs.Delete(context.Background(), "id-1"), ErrNotFound)
}

func TestHTTPRecordStore_SignOut_DropsTokenEvenOnServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/signout", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	rs := newTestStore(t, srv.URL)
	rs.SetToken(signedTestToken(t, "user42"))

	err := rs.SignOut(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, rs.Token())
}

func TestHTTPRecordStore_SessionOwner(t *testing.T) {
	srv, _ := newFakeBackend(t)
	rs := newTestStore(t, srv.URL)

	_, err := rs.SessionOwner()
	assert.ErrorIs(t, err, ErrNoToken)

	rs.SetToken(signedTestToken(t, "user42"))
	owner, err := rs.SessionOwner()
	require.NoError(t, err)
	assert.Equal(t, "user42", owner)
}
