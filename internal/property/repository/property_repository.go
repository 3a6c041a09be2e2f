package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"github.com/lib/pq"
)

// PropertyRepository specialises the CRUD core with the filtered listing
// and the eager includes every property read carries.
type PropertyRepository struct {
	crud[models.Property]
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{crud: crud[models.Property]{
		db:      db,
		table:   "properties",
		idCol:   "id_property",
		cols:    []string{"id_property", "name", "address", "price", "code_internal", "year", "id_owner"},
		orderBy: "price ASC, id_property ASC",
		scan:    scanProperty,
		values: func(p *models.Property) []any {
			return []any{p.IdProperty, p.Name, p.Address, p.Price, p.CodeInternal, p.Year, p.IdOwner}
		},
	}}
}

// List returns properties filtered by the price/year window, sorted by
// price ascending (id as the deterministic tie-break) and windowed when
// paging is on. A nil parameter set selects everything. Range validity is
// the caller's responsibility; the handlers reject invalid ranges before
// this point.
func (r *PropertyRepository) List(ctx context.Context, p *params.PropertyParams) ([]models.Property, error) {
	query, args := listPropertiesQuery(p)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read property rows: %w", err)
	}

	if err := r.loadRelations(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetByID returns the property with its owner and collections, or
// ErrNotFound.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	property, err := r.crud.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	single := []models.Property{*property}
	if err := r.loadRelations(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// listPropertiesQuery composes the listing statement: filter, then order,
// then the optional page window.
func listPropertiesQuery(p *params.PropertyParams) (string, []any) {
	query := `SELECT id_property, name, address, price, code_internal, year, id_owner FROM properties`
	var args []any

	if p != nil {
		query += ` WHERE $1 <= price AND price <= $2 AND $3 <= year AND year <= $4`
		args = append(args, p.MinPrice, p.MaxPrice, p.MinYear, p.MaxYear)
	}

	query += ` ORDER BY price ASC, id_property ASC`

	if p != nil && p.Paging {
		query += fmt.Sprintf(` OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
		args = append(args, p.Offset(), p.PageSize)
	}
	return query, args
}

// loadRelations populates Owner, PropertyImages and PropertyTraces for the
// given properties with one batched query per relation.
func (r *PropertyRepository) loadRelations(ctx context.Context, properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}

	ownerIDs := make([]string, 0, len(properties))
	propertyIDs := make([]string, 0, len(properties))
	seenOwners := make(map[string]bool, len(properties))
	for i := range properties {
		properties[i].PropertyImages = []models.PropertyImage{}
		properties[i].PropertyTraces = []models.PropertyTrace{}
		propertyIDs = append(propertyIDs, properties[i].IdProperty)
		if !seenOwners[properties[i].IdOwner] {
			seenOwners[properties[i].IdOwner] = true
			ownerIDs = append(ownerIDs, properties[i].IdOwner)
		}
	}

	owners, err := r.ownersByID(ctx, ownerIDs)
	if err != nil {
		return err
	}
	images, err := r.imagesByProperty(ctx, propertyIDs)
	if err != nil {
		return err
	}
	traces, err := r.tracesByProperty(ctx, propertyIDs)
	if err != nil {
		return err
	}

	for i := range properties {
		if owner, ok := owners[properties[i].IdOwner]; ok {
			properties[i].Owner = &owner
		}
		if imgs, ok := images[properties[i].IdProperty]; ok {
			properties[i].PropertyImages = imgs
		}
		if trcs, ok := traces[properties[i].IdProperty]; ok {
			properties[i].PropertyTraces = trcs
		}
	}
	return nil
}

func (r *PropertyRepository) ownersByID(ctx context.Context, ids []string) (map[string]models.Owner, error) {
	query := `SELECT id_owner, name, address, photo, birthday FROM owners WHERE id_owner = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load owners: %w", err)
	}
	defer rows.Close()

	owners := make(map[string]models.Owner)
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner row: %w", err)
		}
		owners[owner.IdOwner] = *owner
	}
	return owners, rows.Err()
}

func (r *PropertyRepository) imagesByProperty(ctx context.Context, ids []string) (map[string][]models.PropertyImage, error) {
	query := `SELECT id_property_image, id_property, file, enabled FROM property_images
	          WHERE id_property = ANY($1) ORDER BY id_property_image`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load property images: %w", err)
	}
	defer rows.Close()

	images := make(map[string][]models.PropertyImage)
	for rows.Next() {
		image, err := scanPropertyImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property image row: %w", err)
		}
		images[image.IdProperty] = append(images[image.IdProperty], *image)
	}
	return images, rows.Err()
}

func (r *PropertyRepository) tracesByProperty(ctx context.Context, ids []string) (map[string][]models.PropertyTrace, error) {
	query := `SELECT id_property_trace, id_property, date_sale, name, value, tax FROM property_traces
	          WHERE id_property = ANY($1) ORDER BY date_sale, id_property_trace`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load property traces: %w", err)
	}
	defer rows.Close()

	traces := make(map[string][]models.PropertyTrace)
	for rows.Next() {
		trace, err := scanPropertyTrace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property trace row: %w", err)
		}
		traces[trace.IdProperty] = append(traces[trace.IdProperty], *trace)
	}
	return traces, rows.Err()
}

func scanProperty(s scanner) (*models.Property, error) {
	var p models.Property
	err := s.Scan(&p.IdProperty, &p.Name, &p.Address, &p.Price, &p.CodeInternal, &p.Year, &p.IdOwner)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
