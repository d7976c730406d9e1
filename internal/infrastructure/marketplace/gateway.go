package marketplace

import (
	"verkstad_portal/internal/infrastructure/config"
	"verkstad_portal/internal/usecase/interfaces"
)

// New returns the in-memory marketplace when mock mode is on, the REST client otherwise.
func New(cfg config.MarketplaceConfig) (interfaces.IMarketplaceGateway, error) {
	if cfg.Mock {
		return NewMemoryGateway(cfg.CommissionRate), nil
	}
	g, err := NewHTTPGateway(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return g, nil
}
