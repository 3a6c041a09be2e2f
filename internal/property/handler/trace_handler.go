package handler

import (
	"log/slog"

	"github.com/RockerInt/Properties/internal/models"
)

// NewPropertyTraceHandler serves the PropertyTraces resource.
func NewPropertyTraceHandler(repo CRUDRepo[models.PropertyTrace], logger *slog.Logger) *CRUDHandler[models.PropertyTrace] {
	return newCRUDHandler(repo, resource[models.PropertyTrace]{
		route: "PropertyTraces",
		name:  "property trace",
		id:    func(t *models.PropertyTrace) string { return t.IdPropertyTrace },
		setID: func(t *models.PropertyTrace, id string) { t.IdPropertyTrace = id },
	}, logger)
}
