package services

import (
	"strings"
	"testing"

	"travel-gateway/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressor_RoundTrip(t *testing.T) {
	c := NewCompressor(nil)

	for _, text := range []string{
		"hello world",
		"<p>Five nights in <strong>Zanzibar</strong></p>",
		strings.Repeat("Accra to Cape Coast. ", 500),
		"ünïcödé ✈",
	} {
		encoded, err := c.Compress(text)
		require.NoError(t, err)
		assert.NotEqual(t, text, encoded)
		assert.Equal(t, text, c.Decompress(encoded))
	}
}

func TestCompressor_EmptyInput(t *testing.T) {
	c := NewCompressor(nil)

	encoded, err := c.Compress("")
	require.NoError(t, err)
	assert.Empty(t, encoded)
	assert.Empty(t, c.Decompress(""))
}

func TestCompressor_ShrinksRepetitiveText(t *testing.T) {
	c := NewCompressor(nil)
	text := strings.Repeat("visa requirements ", 1000)

	encoded, err := c.Compress(text)
	require.NoError(t, err)
	assert.Less(t, len(encoded), len(text)/10)
}

func TestCompressor_FallbackReturnsInput(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCompressor(metrics.NewCollector(reg))

	assert.Equal(t, "plain legacy text", c.Decompress("plain legacy text"))
	assert.Equal(t, "Visa info: bring your passport.", c.Decompress("Visa info: bring your passport."))

	families, err := reg.Gather()
	require.NoError(t, err)
	var fallbacks float64
	for _, mf := range families {
		if mf.GetName() == "travel_gateway_decompress_fallback_total" {
			fallbacks = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(2), fallbacks)
}

func TestSanitizer(t *testing.T) {
	s := NewSanitizer()

	assert.Equal(t, "hello world", s.Sanitize("hello world"))
	assert.Equal(t, "fish & chips < 10", s.Sanitize("fish & chips < 10"))
	assert.Equal(t, "<p>safe</p>", s.Sanitize(`<p>safe</p><script>alert(1)</script>`))
	assert.NotContains(t, s.Sanitize(`<a href="https://x.test" onclick="steal()">x</a>`), "onclick")
	assert.Empty(t, s.Sanitize(""))
}
