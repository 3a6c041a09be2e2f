package repository

import (
	"database/sql"

	"github.com/RockerInt/Properties/internal/models"
)

// OwnerRepository is a plain CRUD repository over the owners table.
type OwnerRepository struct {
	crud[models.Owner]
}

func NewOwnerRepository(db *sql.DB) *OwnerRepository {
	return &OwnerRepository{crud: crud[models.Owner]{
		db:      db,
		table:   "owners",
		idCol:   "id_owner",
		cols:    []string{"id_owner", "name", "address", "photo", "birthday"},
		orderBy: "name ASC, id_owner ASC",
		scan:    scanOwner,
		values: func(o *models.Owner) []any {
			return []any{o.IdOwner, o.Name, o.Address, o.Photo, o.Birthday}
		},
	}}
}

func scanOwner(s scanner) (*models.Owner, error) {
	var o models.Owner
	err := s.Scan(&o.IdOwner, &o.Name, &o.Address, &o.Photo, &o.Birthday)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
