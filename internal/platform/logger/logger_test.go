package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_Encodings(t *testing.T) {
	for _, enc := range []string{"", EncodingJSON, EncodingConsole} {
		l, err := NewZapLogger(ZapLoggerConfig{Level: "debug", Encoding: enc, Service: "storefront"})
		require.NoError(t, err, enc)
		assert.NotNil(t, l.With("visitor", "v1"))
	}
}

func TestNewZapLogger_UnknownEncoding(t *testing.T) {
	_, err := NewZapLogger(ZapLoggerConfig{Encoding: "xml"})
	assert.Error(t, err)
}

func TestNewZapLogger_BadLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapLoggerConfig{Level: "loud"})
	require.NoError(t, err)
	zl, ok := l.(*zapLogger)
	require.True(t, ok)
	assert.False(t, zl.Desugar().Core().Enabled(-1))
}

func TestZapLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLogger(ZapLoggerConfig{Level: "info", Service: "storefront", Output: &buf})
	require.NoError(t, err)

	l.With("visitor", "v1").Infof("cart has %d lines", 2)
	l.Debug("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cart has 2 lines", entry["msg"])
	assert.Equal(t, "storefront", entry["service"])
	assert.Equal(t, "v1", entry["visitor"])
}

func TestNopLogger_With(t *testing.T) {
	l := NewNopLogger()
	assert.Equal(t, l, l.With("k", "v"))
	assert.NoError(t, Sync(l))
}
