package matrix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/saan-system/services/routing/internal/geo"
)

const orsMatrixPath = "/v2/matrix/driving-car"

// ORSProvider is the primary matrix provider: a single POST per build against
// a road-network matrix API (openrouteservice-shaped contract). Any
// transport failure, non-2xx response, or parse failure is the caller's
// concern to catch and fall back on — this provider just reports the error.
type ORSProvider struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewORSProvider creates a primary provider with the spec's 30-second
// request timeout.
func NewORSProvider(baseURL, apiKey string, logger *zap.Logger) *ORSProvider {
	return &ORSProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: logger,
	}
}

type orsMatrixRequest struct {
	Locations [][2]float64 `json:"locations"`
	Metrics   []string     `json:"metrics"`
	Units     string       `json:"units"`
}

type orsMatrixResponse struct {
	Distances [][]float64 `json:"distances"`
	Durations [][]float64 `json:"durations"`
}

// Build calls the road-network matrix API. Coordinates are declared in
// (lng, lat) order per the API contract; distances come back in km,
// durations in seconds and are converted to minutes here.
func (p *ORSProvider) Build(ctx context.Context, coords []geo.Coordinate) (*Matrix, *Matrix, error) {
	locations := make([][2]float64, len(coords))
	for i, c := range coords {
		locations[i] = [2]float64{c.Lng, c.Lat}
	}

	reqBody, err := json.Marshal(orsMatrixRequest{
		Locations: locations,
		Metrics:   []string{"distance", "duration"},
		Units:     "km",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal ors request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+orsMatrixPath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, nil, fmt.Errorf("build ors request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", p.APIKey)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("ors request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("ors returned status %d", resp.StatusCode)
	}

	var body orsMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, nil, fmt.Errorf("decode ors response: %w", err)
	}

	n := len(coords)
	if len(body.Distances) != n || len(body.Durations) != n {
		return nil, nil, fmt.Errorf("ors response shape mismatch: got %dx.. rows, want %d", len(body.Distances), n)
	}

	dist := NewMatrix(n)
	tm := NewMatrix(n)
	for i := 0; i < n; i++ {
		if len(body.Distances[i]) != n || len(body.Durations[i]) != n {
			return nil, nil, fmt.Errorf("ors response row %d has wrong width", i)
		}
		for j := 0; j < n; j++ {
			dist.Set(i, j, body.Distances[i][j])
			tm.Set(i, j, body.Durations[i][j]/60)
		}
	}

	return dist, tm, nil
}
