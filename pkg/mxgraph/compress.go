package mxgraph

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// compress encodes a diagram body the way draw.io expects it:
// base64 over a raw deflate stream of the percent-encoded XML.
// The codec is fixed by the draw.io file format.
func compress(xmlBody []byte) (string, error) {
	escaped := encodeURIComponent(string(xmlBody))

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return "", fmt.Errorf("failed to create deflate writer: %w", err)
	}
	if _, err := w.Write([]byte(escaped)); err != nil {
		return "", fmt.Errorf("failed to compress diagram: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finish compressing diagram: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decompress reverses compress; used to verify round trips
func decompress(content string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("diagram content is not valid base64: %w", err)
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to inflate diagram content: %w", err)
	}
	unescaped, err := url.QueryUnescape(buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to decode diagram content: %w", err)
	}
	return []byte(unescaped), nil
}

// encodeURIComponent matches the JavaScript escaping draw.io applies
// before deflating; url.QueryEscape escapes spaces as '+' which
// QueryUnescape and the JS side both accept, but the JS encoder never
// produces, so spaces are mapped to %20 explicitly.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
