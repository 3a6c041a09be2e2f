// Package client holds the gateway's clients for the property service.
// Property calls can travel over REST or gRPC; the transport is chosen
// once at construction, from configuration, and both transports surface
// upstream failures as a StatusError so handlers can relay the outcome.
package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RockerInt/Properties/internal/config"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
)

// PropertyClient is the gateway-side view of the property service.
type PropertyClient interface {
	List(ctx context.Context, p *params.PropertyParams) ([]models.PropertyComplete, error)
	Get(ctx context.Context, id string) (*models.PropertyComplete, error)
	Create(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error)
	Update(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error)
	// Delete reports whether a row was actually removed; false is the
	// no-op case, not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

// StatusError is an upstream rejection: the property service answered,
// but with a non-success outcome the gateway should relay verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Code, e.Message)
}

// NewPropertyClient builds the property client for the configured
// transport. The GRPC flag is resolved here, once; callers never see
// which transport they are on.
func NewPropertyClient(cfg *config.Gateway, logger *slog.Logger) (PropertyClient, error) {
	if cfg.UseGRPC {
		return NewGRPCPropertyClient(cfg.PropertiesGRPCAddr, logger)
	}
	return NewRESTPropertyClient(cfg.PropertiesServiceURL, logger), nil
}
