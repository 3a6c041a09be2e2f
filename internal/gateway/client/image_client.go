package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/RockerInt/Properties/internal/models"
)

// PropertyImageClient is the gateway-side view of the property image
// resource. Images only travel over REST; the binary payloads gain
// nothing from the RPC surface.
type PropertyImageClient interface {
	List(ctx context.Context) ([]models.PropertyImageComplete, error)
	Get(ctx context.Context, id string) (*models.PropertyImageComplete, error)
	Create(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error)
	Update(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type restPropertyImageClient struct {
	restClient
}

func NewPropertyImageClient(baseURL string, logger *slog.Logger) PropertyImageClient {
	return &restPropertyImageClient{restClient: newRESTClient(baseURL, logger)}
}

func (c *restPropertyImageClient) List(ctx context.Context) ([]models.PropertyImageComplete, error) {
	var images []models.PropertyImage
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/PropertyImages/Get", nil, &images, http.StatusOK); err != nil {
		return nil, err
	}
	complete := make([]models.PropertyImageComplete, 0, len(images))
	for i := range images {
		complete = append(complete, imageCompleteFromModel(&images[i]))
	}
	return complete, nil
}

func (c *restPropertyImageClient) Get(ctx context.Context, id string) (*models.PropertyImageComplete, error) {
	var image models.PropertyImage
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/PropertyImages/Get/"+id, nil, &image, http.StatusOK); err != nil {
		return nil, err
	}
	complete := imageCompleteFromModel(&image)
	return &complete, nil
}

func (c *restPropertyImageClient) Create(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error) {
	var created models.PropertyImage
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/PropertyImages/Create", image, &created, http.StatusCreated); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *restPropertyImageClient) Update(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error) {
	var updated models.PropertyImage
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/PropertyImages/Update", image, &updated, http.StatusOK); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *restPropertyImageClient) Delete(ctx context.Context, id string) (bool, error) {
	status, err := c.do(ctx, http.MethodPost, "/api/v1/PropertyImages/Delete/"+id, nil, nil,
		http.StatusNoContent, http.StatusNotModified)
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent, nil
}
