package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for a future encoding change.
const (
	DomainRequest = "gkquad/request/v1"
	DomainGrid    = "gkquad/grid/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RequestID computes the content-addressed ID of a grid request.
// Two requests with the same family, levels and distributions share an ID
// regardless of key order or how the request file was written.
func RequestID(obj map[string]any) (string, error) {
	data, err := Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("RequestID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRequest, data), nil
}

// GridDigest computes the content hash of a built grid.
func GridDigest(obj map[string]any) (string, error) {
	data, err := Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("GridDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainGrid, data), nil
}
