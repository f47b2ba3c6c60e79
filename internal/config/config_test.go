package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("NUM_WORKERS")
	os.Unsetenv("ORS_API_KEY")

	cfg := Load()
	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Routing.NumWorkers)
	assert.Equal(t, "", cfg.Routing.ORSAPIKey)
}

func TestLoad_ReadsOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("NUM_WORKERS", "8")
	t.Setenv("ORS_API_KEY", "test-key")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Routing.NumWorkers)
	assert.Equal(t, "test-key", cfg.Routing.ORSAPIKey)
}

func TestAtoiOr_FallsBackOnGarbage(t *testing.T) {
	assert.Equal(t, 4, atoiOr("not-a-number", 4))
	assert.Equal(t, 4, atoiOr("", 4))
	assert.Equal(t, 12, atoiOr("12", 4))
}
