package handler

import (
	"log/slog"

	"github.com/RockerInt/Properties/internal/models"
)

// NewOwnerHandler serves the Owners resource.
func NewOwnerHandler(repo CRUDRepo[models.Owner], logger *slog.Logger) *CRUDHandler[models.Owner] {
	return newCRUDHandler(repo, resource[models.Owner]{
		route: "Owners",
		name:  "owner",
		id:    func(o *models.Owner) string { return o.IdOwner },
		setID: func(o *models.Owner, id string) { o.IdOwner = id },
	}, logger)
}
