package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/RockerInt/Properties/internal/config"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	propertyID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	ownerID    = "b19f0ae2-47a4-4f6b-9f24-6fbd2a6b0a01"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func laCasa() models.Property {
	return models.Property{
		IdProperty:   propertyID,
		Name:         "La Casa",
		Address:      "Calle falsa 123",
		Price:        1000000.99,
		CodeInternal: 1,
		Year:         2021,
		IdOwner:      ownerID,
		Owner:        &models.Owner{IdOwner: ownerID, Name: "Joe Becerra", Address: "Carrera 1 # 2-3"},
		PropertyImages: []models.PropertyImage{
			{IdPropertyImage: "11111111-1111-1111-1111-111111111111", IdProperty: propertyID, Enabled: true},
		},
		PropertyTraces: []models.PropertyTrace{},
	}
}

func TestNewPropertyClientSelectsTransport(t *testing.T) {
	cfg := &config.Gateway{PropertiesServiceURL: "http://localhost:8081", UseGRPC: false}
	c, err := NewPropertyClient(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*restPropertyClient); !ok {
		t.Errorf("expected the REST transport, got %T", c)
	}
}

func TestRESTListSendsFilterQuery(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/Properties/Get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]models.Property{laCasa()})
	}))
	defer srv.Close()

	p := params.Default()
	p.MinYear = 2000
	p.MaxYear = 2021
	properties, err := NewRESTPropertyClient(srv.URL, testLogger()).List(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("MinYear") != "2000" || gotQuery.Get("MaxYear") != "2021" {
		t.Errorf("filter not forwarded, query was %v", gotQuery)
	}
	if len(properties) != 1 {
		t.Fatalf("expected one property, got %d", len(properties))
	}
	got := properties[0]
	if got.IdProperty != propertyID || got.Owner == nil || got.Owner.Name != "Joe Becerra" {
		t.Errorf("unexpected projection: %+v", got)
	}
	if got.PropertyTraces == nil {
		t.Error("empty trace collection must stay non-nil")
	}
}

func TestRESTGetRelaysUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "The property with id " + propertyID + " do not exist"})
	}))
	defer srv.Close()

	_, err := NewRESTPropertyClient(srv.URL, testLogger()).Get(context.Background(), propertyID)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected a StatusError, got %v", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("expected code 404, got %d", se.Code)
	}
	if se.Message != "The property with id "+propertyID+" do not exist" {
		t.Errorf("unexpected message %q", se.Message)
	}
}

func TestRESTCreateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/Properties/Create" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			t.Fatalf("body did not decode: %v", err)
		}
		property.IdProperty = propertyID
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(property)
	}))
	defer srv.Close()

	created, err := NewRESTPropertyClient(srv.URL, testLogger()).Create(context.Background(), &models.PropertyLite{
		Name: "La Casa", Address: "Calle falsa 123", Price: 1000000.99, Year: 2021, IdOwner: ownerID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.IdProperty != propertyID || created.Name != "La Casa" {
		t.Errorf("unexpected created property: %+v", created)
	}
}

func TestRESTDelete(t *testing.T) {
	tests := []struct {
		name        string
		respond     int
		wantRemoved bool
	}{
		{"removed", http.StatusNoContent, true},
		{"already gone", http.StatusNotModified, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/Properties/Delete/"+propertyID {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.respond)
			}))
			defer srv.Close()

			removed, err := NewRESTPropertyClient(srv.URL, testLogger()).Delete(context.Background(), propertyID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if removed != tt.wantRemoved {
				t.Errorf("expected removed=%v, got %v", tt.wantRemoved, removed)
			}
		})
	}
}

func TestTranslateStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", status.Error(codes.NotFound, "No results found"), http.StatusNotFound},
		{"invalid argument", status.Error(codes.InvalidArgument, "invalid id format"), http.StatusBadRequest},
		{"already exists", status.Error(codes.AlreadyExists, "duplicate"), http.StatusConflict},
		{"anything else", status.Error(codes.Unavailable, "down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var se *StatusError
			if !errors.As(translateStatus(tt.err), &se) {
				t.Fatal("expected a StatusError")
			}
			if se.Code != tt.want {
				t.Errorf("expected code %d, got %d", tt.want, se.Code)
			}
		})
	}
}

func TestCompleteFromModelWithoutRelations(t *testing.T) {
	property := laCasa()
	property.Owner = nil
	property.PropertyImages = nil
	property.PropertyTraces = nil

	complete := completeFromModel(&property)
	if complete.Owner != nil {
		t.Error("expected no owner")
	}
	if complete.PropertyImages == nil || complete.PropertyTraces == nil {
		t.Error("collections must map to empty slices, not nil")
	}
	if len(complete.PropertyImages) != 0 || len(complete.PropertyTraces) != 0 {
		t.Error("expected empty collections")
	}
}
