// Package handler exposes the gateway's REST surface. The routes mirror
// the property service's own, so the gateway stays a drop-in front for
// callers while the transport behind it can change.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RockerInt/Properties/internal/gateway/client"
	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"github.com/gin-gonic/gin"
)

// PropertiesService is the orchestration surface the handlers depend on.
type PropertiesService interface {
	GetProperties(ctx context.Context, p *params.PropertyParams) ([]models.PropertyComplete, error)
	GetProperty(ctx context.Context, id string) (*models.PropertyComplete, error)
	CreateProperty(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error)
	UpdateProperty(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error)
	DeleteProperty(ctx context.Context, id string) (bool, error)

	GetPropertyImages(ctx context.Context) ([]models.PropertyImageComplete, error)
	GetPropertyImage(ctx context.Context, id string) (*models.PropertyImageComplete, error)
	CreatePropertyImage(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error)
	UpdatePropertyImage(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error)
	DeletePropertyImage(ctx context.Context, id string) (bool, error)
}

type GatewayHandler struct {
	service PropertiesService
	logger  *slog.Logger
}

func NewGatewayHandler(service PropertiesService, logger *slog.Logger) *GatewayHandler {
	return &GatewayHandler{service: service, logger: logger}
}

func (h *GatewayHandler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/Properties")
	properties.GET("/Get", h.ListProperties)
	properties.GET("/Get/:id", h.GetProperty)
	properties.POST("/Create", h.CreateProperty)
	properties.POST("/Update", h.UpdateProperty)
	properties.POST("/Delete/:id", h.DeleteProperty)

	images := rg.Group("/PropertyImages")
	images.GET("/Get", h.ListPropertyImages)
	images.GET("/Get/:id", h.GetPropertyImage)
	images.POST("/Create", h.CreatePropertyImage)
	images.POST("/Update", h.UpdatePropertyImage)
	images.POST("/Delete/:id", h.DeletePropertyImage)
}

func (h *GatewayHandler) ListProperties(c *gin.Context) {
	p, err := params.FromQuery(c.Request.URL.Query())
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	properties, err := h.service.GetProperties(c.Request.Context(), p)
	if err != nil {
		h.relay(c, "list properties", err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *GatewayHandler) GetProperty(c *gin.Context) {
	property, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.relay(c, "get property", err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *GatewayHandler) CreateProperty(c *gin.Context) {
	var property models.PropertyLite
	if !h.bind(c, &property) {
		return
	}

	created, err := h.service.CreateProperty(c.Request.Context(), &property)
	if err != nil {
		h.relay(c, "create property", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GatewayHandler) UpdateProperty(c *gin.Context) {
	var property models.PropertyLite
	if !h.bind(c, &property) {
		return
	}
	if property.IdProperty == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "Id is required for update")
		return
	}

	updated, err := h.service.UpdateProperty(c.Request.Context(), &property)
	if err != nil {
		h.relay(c, "update property", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *GatewayHandler) DeleteProperty(c *gin.Context) {
	removed, err := h.service.DeleteProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.relay(c, "delete property", err)
		return
	}
	if !removed {
		c.Status(http.StatusNotModified)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GatewayHandler) ListPropertyImages(c *gin.Context) {
	images, err := h.service.GetPropertyImages(c.Request.Context())
	if err != nil {
		h.relay(c, "list property images", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *GatewayHandler) GetPropertyImage(c *gin.Context) {
	image, err := h.service.GetPropertyImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.relay(c, "get property image", err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *GatewayHandler) CreatePropertyImage(c *gin.Context) {
	var image models.PropertyImage
	if !h.bind(c, &image) {
		return
	}

	created, err := h.service.CreatePropertyImage(c.Request.Context(), &image)
	if err != nil {
		h.relay(c, "create property image", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GatewayHandler) UpdatePropertyImage(c *gin.Context) {
	var image models.PropertyImage
	if !h.bind(c, &image) {
		return
	}
	if image.IdPropertyImage == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "Id is required for update")
		return
	}

	updated, err := h.service.UpdatePropertyImage(c.Request.Context(), &image)
	if err != nil {
		h.relay(c, "update property image", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *GatewayHandler) DeletePropertyImage(c *gin.Context) {
	removed, err := h.service.DeletePropertyImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.relay(c, "delete property image", err)
		return
	}
	if !removed {
		c.Status(http.StatusNotModified)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GatewayHandler) bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if validationErrors := middleware.ValidateRequest(obj); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return false
	}
	return true
}

// relay passes an upstream rejection through unchanged and shields the
// caller from everything else.
func (h *GatewayHandler) relay(c *gin.Context, op string, err error) {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		middleware.RespondWithError(c, statusErr.Code, statusErr.Message)
		return
	}
	h.logger.Error("an error has occurred", "op", op, "error", err)
	middleware.RespondWithError(c, http.StatusInternalServerError,
		"An error has occurred, contact the administrator!")
}
