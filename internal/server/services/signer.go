// ABOUTME: Upload parameter signing for the media host
// ABOUTME: Sorted key=value pairs joined by & with the API secret appended, SHA-1 hex encoded

package services

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
)

// ErrNoUploadSecret is returned when the backend has no upload secret configured.
var ErrNoUploadSecret = errors.New("upload signing is not configured")

// Signer signs media upload parameters
type Signer struct {
	secret string
}

// NewSigner creates a signer for the given API secret
func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

// Sign returns the hex SHA-1 signature of params. Empty values are skipped,
// matching what the media host verifies.
func (s *Signer) Sign(params map[string]string) (string, error) {
	if s.secret == "" {
		return "", ErrNoUploadSecret
	}

	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.secret))
	return hex.EncodeToString(sum[:]), nil
}
