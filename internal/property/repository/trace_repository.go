package repository

import (
	"database/sql"

	"github.com/RockerInt/Properties/internal/models"
)

// PropertyTraceRepository is a plain CRUD repository over property_traces.
type PropertyTraceRepository struct {
	crud[models.PropertyTrace]
}

func NewPropertyTraceRepository(db *sql.DB) *PropertyTraceRepository {
	return &PropertyTraceRepository{crud: crud[models.PropertyTrace]{
		db:      db,
		table:   "property_traces",
		idCol:   "id_property_trace",
		cols:    []string{"id_property_trace", "id_property", "date_sale", "name", "value", "tax"},
		orderBy: "date_sale ASC, id_property_trace ASC",
		scan:    scanPropertyTrace,
		values: func(t *models.PropertyTrace) []any {
			return []any{t.IdPropertyTrace, t.IdProperty, t.DateSale, t.Name, t.Value, t.Tax}
		},
	}}
}

func scanPropertyTrace(s scanner) (*models.PropertyTrace, error) {
	var t models.PropertyTrace
	err := s.Scan(&t.IdPropertyTrace, &t.IdProperty, &t.DateSale, &t.Name, &t.Value, &t.Tax)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
