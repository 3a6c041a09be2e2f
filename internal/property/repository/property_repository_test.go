package repository

import (
	"strings"
	"testing"

	"github.com/RockerInt/Properties/internal/params"
)

func TestListPropertiesQueryNilParams(t *testing.T) {
	query, args := listPropertiesQuery(nil)

	if strings.Contains(query, "WHERE") {
		t.Errorf("nil params must not filter, got: %s", query)
	}
	if strings.Contains(query, "LIMIT") || strings.Contains(query, "OFFSET") {
		t.Errorf("nil params must not paginate, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY price ASC, id_property ASC") {
		t.Errorf("listing must order by price with id tie-break, got: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestListPropertiesQueryFilter(t *testing.T) {
	p := params.Default()
	p.MinYear = 2000
	p.MaxYear = 2021
	p.MinPrice = 100
	p.MaxPrice = 5000

	query, args := listPropertiesQuery(p)

	if !strings.Contains(query, "$1 <= price AND price <= $2") ||
		!strings.Contains(query, "$3 <= year AND year <= $4") {
		t.Errorf("expected inclusive price/year window, got: %s", query)
	}
	if strings.Contains(query, "LIMIT") {
		t.Errorf("paging off must not add a window, got: %s", query)
	}
	expected := []any{100.0, 5000.0, 2000, 2021}
	if len(args) != len(expected) {
		t.Fatalf("expected %d args, got %d (%v)", len(expected), len(args), args)
	}
	for i := range expected {
		if args[i] != expected[i] {
			t.Errorf("arg %d: expected %v, got %v", i, expected[i], args[i])
		}
	}
}

func TestListPropertiesQueryPaging(t *testing.T) {
	p := params.Default()
	p.Paging = true
	p.PageNumber = 3
	p.PageSize = 20

	query, args := listPropertiesQuery(p)

	if !strings.Contains(query, "OFFSET $5 LIMIT $6") {
		t.Errorf("expected page window after filter args, got: %s", query)
	}
	// Window args come after the four filter args.
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d (%v)", len(args), args)
	}
	if args[4] != 40 || args[5] != 20 {
		t.Errorf("expected offset 40 limit 20, got offset %v limit %v", args[4], args[5])
	}

	// Window placement: order first, then offset/limit.
	orderIdx := strings.Index(query, "ORDER BY")
	offsetIdx := strings.Index(query, "OFFSET")
	if orderIdx == -1 || offsetIdx == -1 || offsetIdx < orderIdx {
		t.Errorf("window must apply after ordering, got: %s", query)
	}
}

func TestListPropertiesQueryPagingIgnoredWhenOff(t *testing.T) {
	p := params.Default()
	p.Paging = false
	p.PageNumber = 7
	p.PageSize = 5

	query, _ := listPropertiesQuery(p)
	if strings.Contains(query, "LIMIT") || strings.Contains(query, "OFFSET") {
		t.Errorf("PageNumber/PageSize must be ignored with Paging=false, got: %s", query)
	}
}
