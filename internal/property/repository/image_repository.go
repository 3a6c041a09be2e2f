package repository

import (
	"database/sql"

	"github.com/RockerInt/Properties/internal/models"
)

// PropertyImageRepository is a plain CRUD repository over property_images.
type PropertyImageRepository struct {
	crud[models.PropertyImage]
}

func NewPropertyImageRepository(db *sql.DB) *PropertyImageRepository {
	return &PropertyImageRepository{crud: crud[models.PropertyImage]{
		db:      db,
		table:   "property_images",
		idCol:   "id_property_image",
		cols:    []string{"id_property_image", "id_property", "file", "enabled"},
		orderBy: "id_property_image ASC",
		scan:    scanPropertyImage,
		values: func(i *models.PropertyImage) []any {
			return []any{i.IdPropertyImage, i.IdProperty, i.File, i.Enabled}
		},
	}}
}

func scanPropertyImage(s scanner) (*models.PropertyImage, error) {
	var i models.PropertyImage
	err := s.Scan(&i.IdPropertyImage, &i.IdProperty, &i.File, &i.Enabled)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
