package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"github.com/RockerInt/Properties/internal/property/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PropertyRepo defines the repository operations used by PropertyHandler.
type PropertyRepo interface {
	List(ctx context.Context, p *params.PropertyParams) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// PropertyHandler serves the Properties resource. It matches the generic
// CRUD contract but adds the filter/paging parameter handling on List.
type PropertyHandler struct {
	repo   PropertyRepo
	logger *slog.Logger
}

func NewPropertyHandler(repo PropertyRepo, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, logger: logger}
}

func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/Properties")
	g.GET("/Get", h.List)
	g.GET("/Get/:id", h.Get)
	g.POST("/Create", h.Create)
	g.POST("/Update", h.Update)
	g.POST("/Delete/:id", h.Delete)
}

// List returns the filtered, price-ordered collection. Invalid ranges are
// rejected here, before the repository is touched. An empty collection is
// 404 "No results found" for compatibility with existing consumers.
func (h *PropertyHandler) List(c *gin.Context) {
	p, err := params.FromQuery(c.Request.URL.Query())
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !p.ValidYearRange() {
		middleware.RespondWithError(c, http.StatusBadRequest,
			"Invalid year range: MaxYear must be greater than MinYear")
		return
	}
	if !p.ValidPriceRange() {
		middleware.RespondWithError(c, http.StatusBadRequest,
			"Invalid price range: MaxPrice must be greater than MinPrice")
		return
	}

	properties, err := h.repo.List(c.Request.Context(), p)
	if err != nil {
		h.internalError(c, "list", err)
		return
	}
	if len(properties) == 0 {
		middleware.RespondWithError(c, http.StatusNotFound, "No results found")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return
	}

	property, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("The property with id %s do not exist", id))
		return
	}
	if err != nil {
		h.internalError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	property, ok := h.bind(c)
	if !ok {
		return
	}
	if property.IdProperty == "" {
		property.IdProperty = uuid.NewString()
	} else if _, err := uuid.Parse(property.IdProperty); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return
	}

	err := h.repo.Create(c.Request.Context(), property)
	if errors.Is(err, repository.ErrDuplicate) {
		// 409 only when the conflicting id is confirmed to exist; the store
		// error alone is not enough.
		exists, probeErr := h.repo.Exists(c.Request.Context(), property.IdProperty)
		if probeErr == nil && exists {
			middleware.RespondWithError(c, http.StatusConflict,
				fmt.Sprintf("The property with id %s already exist", property.IdProperty))
			return
		}
	}
	if err != nil {
		h.internalError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	property, ok := h.bind(c)
	if !ok {
		return
	}
	if property.IdProperty == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "Id is required for update")
		return
	}

	rows, err := h.repo.Update(c.Request.Context(), property)
	if err != nil {
		h.internalError(c, "update", err)
		return
	}
	if rows == 0 {
		exists, probeErr := h.repo.Exists(c.Request.Context(), property.IdProperty)
		if probeErr == nil && !exists {
			middleware.RespondWithError(c, http.StatusNotFound,
				fmt.Sprintf("The property with id %s do not exist", property.IdProperty))
			return
		}
		h.internalError(c, "update", fmt.Errorf("update of property %s affected no rows", property.IdProperty))
		return
	}
	c.JSON(http.StatusOK, property)
}

// Delete looks the target up first: a missing id is 404, while a delete
// the store reports as a no-op (zero rows) is 304, not an error.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return
	}

	_, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("The property with id %s do not exist", id))
		return
	}
	if err != nil {
		h.internalError(c, "delete", err)
		return
	}

	rows, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "delete", err)
		return
	}
	if rows == 0 {
		c.Status(http.StatusNotModified)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) bind(c *gin.Context) (*models.Property, bool) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	// The write path carries scalars and foreign keys only.
	property.Owner = nil
	property.PropertyImages = nil
	property.PropertyTraces = nil

	if validationErrors := middleware.ValidateRequest(property); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return nil, false
	}
	return &property, true
}

func (h *PropertyHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error("an error has occurred", "resource", "property", "op", op, "error", err)
	middleware.RespondWithError(c, http.StatusInternalServerError,
		"An error has occurred, contact the administrator!")
}
