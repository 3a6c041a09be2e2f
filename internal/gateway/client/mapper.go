package client

import (
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/propertiespb"
)

// Transport payloads are flattened into the gateway projections here.
// The rule across every mapping: a missing owner stays nil, missing
// collections become empty slices.

func completeFromModel(p *models.Property) models.PropertyComplete {
	complete := models.PropertyComplete{
		IdProperty:     p.IdProperty,
		Name:           p.Name,
		Address:        p.Address,
		Price:          p.Price,
		CodeInternal:   p.CodeInternal,
		Year:           p.Year,
		PropertyImages: make([]models.PropertyImageLite, 0, len(p.PropertyImages)),
		PropertyTraces: make([]models.PropertyTraceLite, 0, len(p.PropertyTraces)),
	}
	if p.Owner != nil {
		complete.Owner = &models.OwnerLite{
			IdOwner:  p.Owner.IdOwner,
			Name:     p.Owner.Name,
			Address:  p.Owner.Address,
			Birthday: p.Owner.Birthday,
		}
	}
	for _, image := range p.PropertyImages {
		complete.PropertyImages = append(complete.PropertyImages, models.PropertyImageLite{
			IdPropertyImage: image.IdPropertyImage,
			IdProperty:      image.IdProperty,
			Enabled:         image.Enabled,
		})
	}
	for _, trace := range p.PropertyTraces {
		complete.PropertyTraces = append(complete.PropertyTraces, models.PropertyTraceLite{
			IdPropertyTrace: trace.IdPropertyTrace,
			IdProperty:      trace.IdProperty,
			DateSale:        trace.DateSale,
			Name:            trace.Name,
			Value:           trace.Value,
			Tax:             trace.Tax,
		})
	}
	return complete
}

func liteFromModel(p *models.Property) models.PropertyLite {
	return models.PropertyLite{
		IdProperty:   p.IdProperty,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		IdOwner:      p.IdOwner,
	}
}

func imageCompleteFromModel(image *models.PropertyImage) models.PropertyImageComplete {
	return models.PropertyImageComplete{
		IdPropertyImage: image.IdPropertyImage,
		IdProperty:      image.IdProperty,
		File:            image.File,
		Enabled:         image.Enabled,
	}
}

func completeFromWire(p *propertiespb.Property) models.PropertyComplete {
	complete := models.PropertyComplete{
		IdProperty:     p.IdProperty,
		Name:           p.Name,
		Address:        p.Address,
		Price:          p.Price,
		CodeInternal:   p.CodeInternal,
		Year:           p.Year,
		PropertyImages: make([]models.PropertyImageLite, 0, len(p.PropertyImages)),
		PropertyTraces: make([]models.PropertyTraceLite, 0, len(p.PropertyTraces)),
	}
	if p.Owner != nil {
		complete.Owner = &models.OwnerLite{
			IdOwner:  p.Owner.IdOwner,
			Name:     p.Owner.Name,
			Address:  p.Owner.Address,
			Birthday: p.Owner.Birthday,
		}
	}
	for _, image := range p.PropertyImages {
		if image == nil {
			continue
		}
		complete.PropertyImages = append(complete.PropertyImages, models.PropertyImageLite{
			IdPropertyImage: image.IdPropertyImage,
			IdProperty:      image.IdProperty,
			Enabled:         image.Enabled,
		})
	}
	for _, trace := range p.PropertyTraces {
		if trace == nil {
			continue
		}
		complete.PropertyTraces = append(complete.PropertyTraces, models.PropertyTraceLite{
			IdPropertyTrace: trace.IdPropertyTrace,
			IdProperty:      trace.IdProperty,
			DateSale:        trace.DateSale,
			Name:            trace.Name,
			Value:           trace.Value,
			Tax:             trace.Tax,
		})
	}
	return complete
}

func liteFromWire(p *propertiespb.Property) models.PropertyLite {
	return models.PropertyLite{
		IdProperty:   p.IdProperty,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		IdOwner:      p.IdOwner,
	}
}

func wireFromLite(p *models.PropertyLite) *propertiespb.Property {
	return &propertiespb.Property{
		IdProperty:   p.IdProperty,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		IdOwner:      p.IdOwner,
	}
}
