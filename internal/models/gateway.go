package models

import "time"

// The gateway works with two projections of a property: the lite shape
// (scalars plus foreign keys, used for writes) and the complete shape
// (nested related entities, used for reads). Both transports map their
// wire representation into these before anything reaches a caller.

// PropertyLite is the write-side projection of a property.
type PropertyLite struct {
	IdProperty   string  `json:"idProperty"`
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	CodeInternal int     `json:"codeInternal"`
	Year         int     `json:"year" validate:"gte=0,lte=9999"`
	IdOwner      string  `json:"idOwner" validate:"required"`
}

// OwnerLite is the owner projection nested inside a complete property.
type OwnerLite struct {
	IdOwner  string    `json:"idOwner"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Birthday time.Time `json:"birthday"`
}

// PropertyImageLite is the image projection nested inside a complete property.
type PropertyImageLite struct {
	IdPropertyImage string `json:"idPropertyImage"`
	IdProperty      string `json:"idProperty" validate:"required"`
	Enabled         bool   `json:"enabled"`
}

// PropertyTraceLite is the trace projection nested inside a complete property.
type PropertyTraceLite struct {
	IdPropertyTrace string    `json:"idPropertyTrace"`
	IdProperty      string    `json:"idProperty" validate:"required"`
	DateSale        time.Time `json:"dateSale"`
	Name            string    `json:"name"`
	Value           float64   `json:"value"`
	Tax             float64   `json:"tax"`
}

// PropertyComplete is the read-side projection: the property scalars plus
// its owner and the image/trace collections. Absent relations map to a nil
// owner and empty collections, never to an error.
type PropertyComplete struct {
	IdProperty     string              `json:"idProperty"`
	Name           string              `json:"name"`
	Address        string              `json:"address"`
	Price          float64             `json:"price"`
	CodeInternal   int                 `json:"codeInternal"`
	Year           int                 `json:"year"`
	Owner          *OwnerLite          `json:"owner,omitempty"`
	PropertyImages []PropertyImageLite `json:"propertyImages"`
	PropertyTraces []PropertyTraceLite `json:"propertyTraces"`
}

// PropertyImageComplete is the read-side projection of a property image.
type PropertyImageComplete struct {
	IdPropertyImage string `json:"idPropertyImage"`
	IdProperty      string `json:"idProperty"`
	File            []byte `json:"file,omitempty"`
	Enabled         bool   `json:"enabled"`
}
