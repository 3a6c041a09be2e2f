package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"github.com/RockerInt/Properties/internal/property/handler"
	"github.com/gin-gonic/gin"
)

// The REST client must speak the exact verbs the property service routes.
// These tests run it against the real handler registrations instead of a
// permissive stub server, so a verb mismatch fails here.

type routedPropertyRepo struct {
	stored models.Property
}

func (r *routedPropertyRepo) List(_ context.Context, _ *params.PropertyParams) ([]models.Property, error) {
	return []models.Property{r.stored}, nil
}
func (r *routedPropertyRepo) GetByID(_ context.Context, id string) (*models.Property, error) {
	p := r.stored
	p.IdProperty = id
	return &p, nil
}
func (r *routedPropertyRepo) Create(_ context.Context, p *models.Property) error {
	r.stored = *p
	return nil
}
func (r *routedPropertyRepo) Update(_ context.Context, p *models.Property) (int64, error) {
	r.stored = *p
	return 1, nil
}
func (r *routedPropertyRepo) Delete(_ context.Context, _ string) (int64, error) { return 1, nil }
func (r *routedPropertyRepo) Exists(_ context.Context, _ string) (bool, error)  { return true, nil }

type routedImageRepo struct {
	stored models.PropertyImage
}

func (r *routedImageRepo) List(_ context.Context) ([]models.PropertyImage, error) {
	return []models.PropertyImage{r.stored}, nil
}
func (r *routedImageRepo) GetByID(_ context.Context, id string) (*models.PropertyImage, error) {
	img := r.stored
	img.IdPropertyImage = id
	return &img, nil
}
func (r *routedImageRepo) Create(_ context.Context, img *models.PropertyImage) error {
	r.stored = *img
	return nil
}
func (r *routedImageRepo) Update(_ context.Context, img *models.PropertyImage) (int64, error) {
	r.stored = *img
	return 1, nil
}
func (r *routedImageRepo) Delete(_ context.Context, _ string) (int64, error) { return 1, nil }
func (r *routedImageRepo) Exists(_ context.Context, _ string) (bool, error)  { return true, nil }

func newRoutedService(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.NewPropertyHandler(&routedPropertyRepo{stored: laCasa()}, testLogger()).RegisterRoutes(v1)
	handler.NewPropertyImageHandler(&routedImageRepo{stored: models.PropertyImage{
		IdPropertyImage: "11111111-1111-1111-1111-111111111111",
		IdProperty:      propertyID,
		Enabled:         true,
	}}, testLogger()).RegisterRoutes(v1)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRESTClientMatchesServiceRoutes(t *testing.T) {
	srv := newRoutedService(t)
	c := NewRESTPropertyClient(srv.URL, testLogger())
	lite := &models.PropertyLite{
		IdProperty: propertyID, Name: "La Casa", Address: "Calle falsa 123",
		Price: 1000000.99, CodeInternal: 1, Year: 2021, IdOwner: ownerID,
	}

	if _, err := c.List(context.Background(), nil); err != nil {
		t.Errorf("List failed against the real routes: %v", err)
	}
	if _, err := c.Get(context.Background(), propertyID); err != nil {
		t.Errorf("Get failed against the real routes: %v", err)
	}
	if _, err := c.Create(context.Background(), lite); err != nil {
		t.Errorf("Create failed against the real routes: %v", err)
	}
	if _, err := c.Update(context.Background(), lite); err != nil {
		t.Errorf("Update failed against the real routes: %v", err)
	}
	removed, err := c.Delete(context.Background(), propertyID)
	if err != nil {
		t.Errorf("Delete failed against the real routes: %v", err)
	}
	if !removed {
		t.Error("expected the delete to report removal")
	}
}

func TestImageClientMatchesServiceRoutes(t *testing.T) {
	srv := newRoutedService(t)
	c := NewPropertyImageClient(srv.URL, testLogger())
	image := &models.PropertyImage{
		IdPropertyImage: "11111111-1111-1111-1111-111111111111",
		IdProperty:      propertyID,
		Enabled:         true,
	}

	if _, err := c.List(context.Background()); err != nil {
		t.Errorf("List failed against the real routes: %v", err)
	}
	if _, err := c.Get(context.Background(), image.IdPropertyImage); err != nil {
		t.Errorf("Get failed against the real routes: %v", err)
	}
	if _, err := c.Create(context.Background(), image); err != nil {
		t.Errorf("Create failed against the real routes: %v", err)
	}
	if _, err := c.Update(context.Background(), image); err != nil {
		t.Errorf("Update failed against the real routes: %v", err)
	}
	removed, err := c.Delete(context.Background(), image.IdPropertyImage)
	if err != nil {
		t.Errorf("Delete failed against the real routes: %v", err)
	}
	if !removed {
		t.Error("expected the delete to report removal")
	}
}
