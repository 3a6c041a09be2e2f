// Package params holds the query parameter object shared by the property
// listing endpoints: paging toggle, page window and the year/price range
// filters, together with their defaults and validity rules.
package params

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const (
	maxPageSize     = 50
	DefaultPageSize = 10

	// MaxPriceSentinel is the default upper price bound, large enough to
	// cover the whole collection.
	MaxPriceSentinel = 99999999999999
)

// PropertyParams is the per-request filter/paging value object. Build one
// with Default or FromQuery so the defaults are applied; a zero struct is
// an invalid range on purpose.
type PropertyParams struct {
	Paging     bool
	PageNumber int
	PageSize   int
	MinYear    int
	MaxYear    int
	MinPrice   float64
	MaxPrice   float64
}

// Default returns the parameters that select the entire collection:
// paging off, full year range up to the current year, full price range.
func Default() *PropertyParams {
	return &PropertyParams{
		Paging:     false,
		PageNumber: 1,
		PageSize:   DefaultPageSize,
		MinYear:    0,
		MaxYear:    time.Now().Year(),
		MinPrice:   0,
		MaxPrice:   MaxPriceSentinel,
	}
}

// FromQuery decodes query-string values into parameters. Absent keys keep
// their defaults; malformed values are a client error. The page size is
// silently clamped, never rejected.
func FromQuery(values url.Values) (*PropertyParams, error) {
	p := Default()

	if v := values.Get("Paging"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid Paging value %q", v)
		}
		p.Paging = b
	}
	if v := values.Get("PageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PageNumber value %q", v)
		}
		p.PageNumber = n
	}
	if v := values.Get("PageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PageSize value %q", v)
		}
		p.PageSize = n
	}
	if v := values.Get("MinYear"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MinYear value %q", v)
		}
		p.MinYear = n
	}
	if v := values.Get("MaxYear"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MaxYear value %q", v)
		}
		p.MaxYear = n
	}
	if v := values.Get("MinPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MinPrice value %q", v)
		}
		p.MinPrice = f
	}
	if v := values.Get("MaxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MaxPrice value %q", v)
		}
		p.MaxPrice = f
	}

	p.Normalize()
	return p, nil
}

// Normalize clamps the page window: the page size caps at 50 regardless of
// what the caller asked for, and the page number floors at 1.
func (p *PropertyParams) Normalize() {
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
}

// ValidYearRange reports whether the year filter is usable. Callers must
// check it before touching the repository.
func (p *PropertyParams) ValidYearRange() bool { return p.MaxYear > p.MinYear }

// ValidPriceRange reports whether the price filter is usable.
func (p *PropertyParams) ValidPriceRange() bool { return p.MaxPrice > p.MinPrice }

// Offset returns the number of records to skip when paging is on.
func (p *PropertyParams) Offset() int { return (p.PageNumber - 1) * p.PageSize }

// QueryString encodes the parameters with the same keys FromQuery reads,
// for the REST transport.
func (p *PropertyParams) QueryString() string {
	values := url.Values{}
	values.Set("Paging", strconv.FormatBool(p.Paging))
	values.Set("PageNumber", strconv.Itoa(p.PageNumber))
	values.Set("PageSize", strconv.Itoa(p.PageSize))
	values.Set("MinYear", strconv.Itoa(p.MinYear))
	values.Set("MaxYear", strconv.Itoa(p.MaxYear))
	values.Set("MinPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	values.Set("MaxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	return values.Encode()
}
