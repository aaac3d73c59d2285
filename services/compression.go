package services

import (
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"

	"travel-gateway/metrics"

	"github.com/andybalholm/brotli"
)

// Compressor shrinks large text columns before they are stored. Stored
// values are Brotli at maximum quality, base64 encoded.
type Compressor struct {
	metrics metrics.MetricsCollector
}

func NewCompressor(m metrics.MetricsCollector) *Compressor {
	if m == nil {
		m = metrics.Nop{}
	}
	return &Compressor{metrics: m}
}

func (c *Compressor) Compress(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write([]byte(text)); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decompress reverses Compress. Values that were stored before compression
// was introduced do not decode; they are returned unchanged.
func (c *Compressor) Decompress(encoded string) string {
	if encoded == "" {
		return ""
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return c.fallback(encoded, err)
	}
	plain, err := io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return c.fallback(encoded, err)
	}
	return string(plain)
}

func (c *Compressor) fallback(encoded string, err error) string {
	slog.Warn("decompression failed, returning stored value as plain text", "error", err)
	c.metrics.RecordDecompressFallback()
	return encoded
}
