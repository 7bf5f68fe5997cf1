package pkgtrace

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), Config{ServiceName: "flight-gateway", Version: "test", Writer: &buf})
	require.NoError(t, err)

	_, span := otel.Tracer("pkgtrace_test").Start(context.Background(), "searchFlights")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "searchFlights")
	assert.Contains(t, buf.String(), "flight-gateway")
}
