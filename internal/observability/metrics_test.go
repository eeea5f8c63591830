package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsServer(t *testing.T) {
	provider := setupTestProvider(t)

	server := NewMetricsServer(9091, "/metrics", provider)
	require.NotNil(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))
}

func TestNewMetricsServer_NilProvider(t *testing.T) {
	server := NewMetricsServer(9092, "/metrics", nil)
	require.NotNil(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))
}
