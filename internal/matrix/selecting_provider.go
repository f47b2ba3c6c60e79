package matrix

import (
	"context"

	"go.uber.org/zap"

	"github.com/saan-system/services/routing/internal/geo"
)

// SelectingProvider implements the selection policy from spec §4.2: try the
// primary provider when an API key is configured, and fall back to the
// great-circle provider on any failure (or immediately, when no key is set).
// A provider failure never propagates past this type.
type SelectingProvider struct {
	Primary  *ORSProvider
	Fallback *HaversineProvider
	Logger   *zap.Logger
}

// NewSelectingProvider wires a primary/fallback pair. Pass an empty apiKey
// to force fallback-only behavior.
func NewSelectingProvider(apiKey, baseURL string, logger *zap.Logger) *SelectingProvider {
	sp := &SelectingProvider{
		Fallback: NewHaversineProvider(),
		Logger:   logger,
	}
	if apiKey != "" {
		sp.Primary = NewORSProvider(baseURL, apiKey, logger)
	}
	return sp
}

func (p *SelectingProvider) Build(ctx context.Context, coords []geo.Coordinate) (*Matrix, *Matrix, error) {
	if p.Primary == nil {
		return p.Fallback.Build(ctx, coords)
	}

	dist, tm, err := p.Primary.Build(ctx, coords)
	if err != nil {
		if p.Logger != nil {
			p.Logger.Warn("matrix provider unavailable, falling back to great-circle", zap.Error(err))
		}
		return p.Fallback.Build(ctx, coords)
	}
	return dist, tm, nil
}
