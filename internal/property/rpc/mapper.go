package rpc

import (
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/propertiespb"
)

// toWireProperty maps a stored property (with its eager-loaded relations)
// onto the wire shape. Absent relations stay absent; nothing here errors.
func toWireProperty(p *models.Property) *propertiespb.Property {
	wire := &propertiespb.Property{
		IdProperty:   p.IdProperty,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		IdOwner:      p.IdOwner,
	}
	if p.Owner != nil {
		wire.Owner = &propertiespb.Owner{
			IdOwner:  p.Owner.IdOwner,
			Name:     p.Owner.Name,
			Address:  p.Owner.Address,
			Photo:    p.Owner.Photo,
			Birthday: p.Owner.Birthday,
		}
	}
	for i := range p.PropertyImages {
		img := &p.PropertyImages[i]
		wire.PropertyImages = append(wire.PropertyImages, &propertiespb.PropertyImage{
			IdPropertyImage: img.IdPropertyImage,
			IdProperty:      img.IdProperty,
			File:            img.File,
			Enabled:         img.Enabled,
		})
	}
	for i := range p.PropertyTraces {
		wire.PropertyTraces = append(wire.PropertyTraces, toWireTrace(&p.PropertyTraces[i]))
	}
	return wire
}

// fromWireProperty maps an incoming wire property onto the write shape:
// scalars and foreign keys only, nested relations are ignored.
func fromWireProperty(p *propertiespb.Property) *models.Property {
	return &models.Property{
		IdProperty:   p.IdProperty,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		IdOwner:      p.IdOwner,
	}
}

func toWireTrace(t *models.PropertyTrace) *propertiespb.PropertyTrace {
	return &propertiespb.PropertyTrace{
		IdPropertyTrace: t.IdPropertyTrace,
		IdProperty:      t.IdProperty,
		DateSale:        t.DateSale,
		Name:            t.Name,
		Value:           t.Value,
		Tax:             t.Tax,
	}
}

func fromWireTrace(t *propertiespb.PropertyTrace) *models.PropertyTrace {
	return &models.PropertyTrace{
		IdPropertyTrace: t.IdPropertyTrace,
		IdProperty:      t.IdProperty,
		DateSale:        t.DateSale,
		Name:            t.Name,
		Value:           t.Value,
		Tax:             t.Tax,
	}
}
