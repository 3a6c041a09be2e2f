package models

import "time"

// Owner holds the person or company a property belongs to.
type Owner struct {
	IdOwner  string    `json:"idOwner"`
	Name     string    `json:"name" validate:"required"`
	Address  string    `json:"address" validate:"required"`
	Photo    []byte    `json:"photo,omitempty"`
	Birthday time.Time `json:"birthday"`
}

// Property is the central entity. Reads return it with Owner and the
// image/trace collections populated; writes only need the scalar fields
// plus IdOwner.
type Property struct {
	IdProperty   string  `json:"idProperty"`
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	CodeInternal int     `json:"codeInternal"`
	Year         int     `json:"year" validate:"gte=0,lte=9999"`
	IdOwner      string  `json:"idOwner" validate:"required"`

	Owner          *Owner          `json:"owner,omitempty"`
	PropertyImages []PropertyImage `json:"propertyImages"`
	PropertyTraces []PropertyTrace `json:"propertyTraces"`
}

// PropertyImage is a binary attachment of a property.
type PropertyImage struct {
	IdPropertyImage string `json:"idPropertyImage"`
	IdProperty      string `json:"idProperty" validate:"required"`
	File            []byte `json:"file,omitempty"`
	Enabled         bool   `json:"enabled"`
}

// PropertyTrace records a sale of a property.
type PropertyTrace struct {
	IdPropertyTrace string    `json:"idPropertyTrace"`
	IdProperty      string    `json:"idProperty" validate:"required"`
	DateSale        time.Time `json:"dateSale"`
	Name            string    `json:"name" validate:"required"`
	Value           float64   `json:"value" validate:"gte=0"`
	Tax             float64   `json:"tax" validate:"gte=0"`
}
