package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/property/repository"
	"github.com/gin-gonic/gin"
)

type mockOwnerRepo struct {
	listFn   func() ([]models.Owner, error)
	getFn    func(string) (*models.Owner, error)
	createFn func(*models.Owner) error
	updateFn func(*models.Owner) (int64, error)
	deleteFn func(string) (int64, error)
	existsFn func(string) (bool, error)
}

func (m *mockOwnerRepo) List(_ context.Context) ([]models.Owner, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockOwnerRepo) GetByID(_ context.Context, id string) (*models.Owner, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockOwnerRepo) Create(_ context.Context, o *models.Owner) error {
	if m.createFn != nil {
		return m.createFn(o)
	}
	return fmt.Errorf("not configured")
}
func (m *mockOwnerRepo) Update(_ context.Context, o *models.Owner) (int64, error) {
	if m.updateFn != nil {
		return m.updateFn(o)
	}
	return 0, fmt.Errorf("not configured")
}
func (m *mockOwnerRepo) Delete(_ context.Context, id string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return 0, fmt.Errorf("not configured")
}
func (m *mockOwnerRepo) Exists(_ context.Context, id string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(id)
	}
	return false, fmt.Errorf("not configured")
}

func newOwnerTestRouter(repo CRUDRepo[models.Owner]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOwnerHandler(repo, slog.New(slog.NewTextHandler(nopWriter{}, nil)))
	v1 := r.Group("/api/v1")
	h.RegisterRoutes(v1)
	return r
}

var aTestOwner = models.Owner{
	IdOwner:  ownerID,
	Name:     "John Doe",
	Address:  "Calle falsa 124",
	Birthday: time.Date(1980, 5, 10, 0, 0, 0, 0, time.UTC),
}

func TestListOwners(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockOwnerRepo{listFn: func() ([]models.Owner, error) { return []models.Owner{aTestOwner}, nil }}
		w := doRequest(newOwnerTestRouter(repo), http.MethodGet, "/api/v1/Owners/Get", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d; body: %s", w.Code, w.Body.String())
		}
	})
	t.Run("empty collection is 404", func(t *testing.T) {
		repo := &mockOwnerRepo{listFn: func() ([]models.Owner, error) { return nil, nil }}
		w := doRequest(newOwnerTestRouter(repo), http.MethodGet, "/api/v1/Owners/Get", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d; body: %s", w.Code, w.Body.String())
		}
	})
}

func TestCreateOwnerRoundTrip(t *testing.T) {
	var stored *models.Owner
	repo := &mockOwnerRepo{
		createFn: func(o *models.Owner) error {
			stored = o
			return nil
		},
		getFn: func(id string) (*models.Owner, error) {
			if stored != nil && stored.IdOwner == id {
				return stored, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	router := newOwnerTestRouter(repo)

	w := doRequest(router, http.MethodPost, "/api/v1/Owners/Create", map[string]interface{}{
		"name":     "John Doe",
		"address":  "Calle falsa 124",
		"birthday": "1980-05-10T00:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %s", w.Code, w.Body.String())
	}
	var created models.Owner
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	w = doRequest(router, http.MethodGet, "/api/v1/Owners/Get/"+created.IdOwner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on fetch, got %d; body: %s", w.Code, w.Body.String())
	}
	var fetched models.Owner
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if fetched.Name != created.Name || fetched.Address != created.Address ||
		!fetched.Birthday.Equal(created.Birthday) {
		t.Errorf("fetched owner differs from created: %+v vs %+v", fetched, created)
	}
}

func TestDeleteOwnerNoOp(t *testing.T) {
	repo := &mockOwnerRepo{
		getFn:    func(id string) (*models.Owner, error) { o := aTestOwner; return &o, nil },
		deleteFn: func(id string) (int64, error) { return 0, nil },
	}
	w := doRequest(newOwnerTestRouter(repo), http.MethodPost, "/api/v1/Owners/Delete/"+ownerID, nil)
	if w.Code != http.StatusNotModified {
		t.Errorf("expected 304 for a no-op delete, got %d", w.Code)
	}
}

func TestCreateOwnerConflict(t *testing.T) {
	repo := &mockOwnerRepo{
		createFn: func(o *models.Owner) error { return fmt.Errorf("insert: %w", repository.ErrDuplicate) },
		existsFn: func(id string) (bool, error) { return true, nil },
	}
	w := doRequest(newOwnerTestRouter(repo), http.MethodPost, "/api/v1/Owners/Create", map[string]interface{}{
		"idOwner": ownerID,
		"name":    "John Doe",
		"address": "Calle falsa 124",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d; body: %s", w.Code, w.Body.String())
	}
}
