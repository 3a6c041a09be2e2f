// Package propertiespb defines the wire contract of the properties gRPC
// surface: message types, service descriptors and client stubs. The
// descriptors and stubs are hand-maintained and messages travel as JSON
// through the codec registered here, so no generated artifacts are checked
// in. Identity values are string uuids; dates are RFC3339 timestamps.
package propertiespb

import "time"

type Owner struct {
	IdOwner  string    `json:"idOwner"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    []byte    `json:"photo,omitempty"`
	Birthday time.Time `json:"birthday"`
}

type Property struct {
	IdProperty   string  `json:"idProperty"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal int     `json:"codeInternal"`
	Year         int     `json:"year"`
	IdOwner      string  `json:"idOwner"`

	Owner          *Owner           `json:"owner,omitempty"`
	PropertyImages []*PropertyImage `json:"propertyImages,omitempty"`
	PropertyTraces []*PropertyTrace `json:"propertyTraces,omitempty"`
}

type PropertyImage struct {
	IdPropertyImage string `json:"idPropertyImage"`
	IdProperty      string `json:"idProperty"`
	File            []byte `json:"file,omitempty"`
	Enabled         bool   `json:"enabled"`
}

type PropertyTrace struct {
	IdPropertyTrace string    `json:"idPropertyTrace"`
	IdProperty      string    `json:"idProperty"`
	DateSale        time.Time `json:"dateSale"`
	Name            string    `json:"name"`
	Value           float64   `json:"value"`
	Tax             float64   `json:"tax"`
}

// PropertyFilter mirrors the REST query parameters. A nil filter on
// GetPropertiesRequest selects the entire collection.
type PropertyFilter struct {
	Paging     bool    `json:"paging"`
	PageNumber int     `json:"pageNumber"`
	PageSize   int     `json:"pageSize"`
	MinYear    int     `json:"minYear"`
	MaxYear    int     `json:"maxYear"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

type GetPropertiesRequest struct {
	Filter *PropertyFilter `json:"filter,omitempty"`
}

type GetPropertiesResponse struct {
	Properties []*Property `json:"properties"`
}

type GetPropertyRequest struct {
	Id string `json:"id"`
}

type PropertyRequest struct {
	Property *Property `json:"property"`
}

type PropertyResponse struct {
	Property *Property `json:"property"`
}

type DeletePropertyRequest struct {
	Id string `json:"id"`
}

// DeleteResponse reports whether the delete removed a row. Success false
// with an OK status is the "already gone" no-op, mirroring REST's 304.
type DeleteResponse struct {
	Success bool `json:"success"`
}

type GetPropertyTracesRequest struct{}

type GetPropertyTracesResponse struct {
	Traces []*PropertyTrace `json:"traces"`
}

type GetPropertyTraceRequest struct {
	Id string `json:"id"`
}

type PropertyTraceRequest struct {
	Trace *PropertyTrace `json:"trace"`
}

type PropertyTraceResponse struct {
	Trace *PropertyTrace `json:"trace"`
}

type DeletePropertyTraceRequest struct {
	Id string `json:"id"`
}
