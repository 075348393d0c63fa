package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-lending-go/shell/config"
)

func Test_NewObservabilityProviders_WithoutEndpoint(t *testing.T) {
	// arrange
	ctx := context.Background()
	cfg := config.ObservabilityConfig{Enabled: true, ServiceName: "library-test"}

	// act
	providers, err := config.NewObservabilityProviders(ctx, cfg, "test")

	// assert
	require.NoError(t, err)
	assert.Same(t, providers.TracerProvider, otel.GetTracerProvider())

	_, span := otel.Tracer("library-test").Start(ctx, "commandhandler.handle")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, providers.Shutdown(ctx))
}
