package handler

import (
	"log/slog"

	"github.com/RockerInt/Properties/internal/models"
)

// NewPropertyImageHandler serves the PropertyImages resource.
func NewPropertyImageHandler(repo CRUDRepo[models.PropertyImage], logger *slog.Logger) *CRUDHandler[models.PropertyImage] {
	return newCRUDHandler(repo, resource[models.PropertyImage]{
		route: "PropertyImages",
		name:  "property image",
		id:    func(i *models.PropertyImage) string { return i.IdPropertyImage },
		setID: func(i *models.PropertyImage, id string) { i.IdPropertyImage = id },
	}, logger)
}
