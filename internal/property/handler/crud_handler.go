// Package handler exposes the property service resources over REST. Every
// resource follows the same contract: List (404 on an empty collection),
// GetById (200/404), Create (201/400/409), Update (200/400/404) and Delete
// (204/404/304 for the already-gone no-op).
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/RockerInt/Properties/internal/property/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CRUDRepo defines the repository operations the generic handler needs.
type CRUDRepo[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// resource describes the entity-specific pieces the generic handler cannot
// derive: route segment, display name and id access.
type resource[T any] struct {
	route string
	name  string
	id    func(*T) string
	setID func(*T, string)
}

// CRUDHandler serves the uniform CRUD surface for one resource.
type CRUDHandler[T any] struct {
	repo   CRUDRepo[T]
	res    resource[T]
	logger *slog.Logger
}

func newCRUDHandler[T any](repo CRUDRepo[T], res resource[T], logger *slog.Logger) *CRUDHandler[T] {
	return &CRUDHandler[T]{repo: repo, res: res, logger: logger}
}

func (h *CRUDHandler[T]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.res.route)
	g.GET("/Get", h.List)
	g.GET("/Get/:id", h.Get)
	g.POST("/Create", h.Create)
	g.POST("/Update", h.Update)
	g.POST("/Delete/:id", h.Delete)
}

// List returns the whole collection. An empty collection is surfaced as
// 404 "No results found" for compatibility with existing consumers.
func (h *CRUDHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list", err)
		return
	}
	if len(items) == 0 {
		middleware.RespondWithError(c, http.StatusNotFound, "No results found")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CRUDHandler[T]) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("The %s with id %s do not exist", h.res.name, id))
		return
	}
	if err != nil {
		h.internalError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CRUDHandler[T]) Create(c *gin.Context) {
	entity, ok := h.bind(c)
	if !ok {
		return
	}
	if h.res.id(entity) == "" {
		h.res.setID(entity, uuid.NewString())
	} else if _, err := uuid.Parse(h.res.id(entity)); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return
	}

	err := h.repo.Create(c.Request.Context(), entity)
	if errors.Is(err, repository.ErrDuplicate) {
		// 409 only when the conflicting id is confirmed to exist; the store
		// error alone is not enough.
		exists, probeErr := h.repo.Exists(c.Request.Context(), h.res.id(entity))
		if probeErr == nil && exists {
			middleware.RespondWithError(c, http.StatusConflict,
				fmt.Sprintf("The %s with id %s already exist", h.res.name, h.res.id(entity)))
			return
		}
	}
	if err != nil {
		h.internalError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

func (h *CRUDHandler[T]) Update(c *gin.Context) {
	entity, ok := h.bind(c)
	if !ok {
		return
	}
	if h.res.id(entity) == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "Id is required for update")
		return
	}

	rows, err := h.repo.Update(c.Request.Context(), entity)
	if err != nil {
		h.internalError(c, "update", err)
		return
	}
	if rows == 0 {
		exists, probeErr := h.repo.Exists(c.Request.Context(), h.res.id(entity))
		if probeErr == nil && !exists {
			middleware.RespondWithError(c, http.StatusNotFound,
				fmt.Sprintf("The %s with id %s do not exist", h.res.name, h.res.id(entity)))
			return
		}
		h.internalError(c, "update", fmt.Errorf("update of %s %s affected no rows", h.res.name, h.res.id(entity)))
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Delete looks the target up first: a missing id is 404, while a delete
// the store reports as a no-op (zero rows) is 304, not an error.
func (h *CRUDHandler[T]) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}

	_, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("The %s with id %s do not exist", h.res.name, id))
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

func (h *CRUDHandler[T]) bind(c *gin.Context) (*T, bool) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if validationErrors := middleware.ValidateRequest(entity); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return nil, false
	}
	return &entity, true
}

func (h *CRUDHandler[T]) requireID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return "", false
	}
	return id, true
}

func (h *CRUDHandler[T]) internalError(c *gin.Context, op string, err error) {
	h.logger.Error("an error has occurred", "resource", h.res.name, "op", op, "error", err)
	middleware.RespondWithError(c, http.StatusInternalServerError,
		"An error has occurred, contact the administrator!")
}
