package domain

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

// trackingParams are query parameters stripped before computing URL identity.
var trackingParams = []string{
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"ref",
	"fbclid",
	"gclid",
}

// NormalizeURL canonicalizes a URL for identity comparison:
//   - drops the tracking query parameters above
//   - strips a leading "www." from the host
//   - strips exactly one trailing "/" from the serialized result
//
// Normalization is best-effort: if the input does not parse, it is returned
// unchanged. The function is idempotent.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return rawURL
	}

	q := u.Query()
	for _, p := range trackingParams {
		q.Del(p)
	}
	u.RawQuery = q.Encode()

	u.Host = strings.TrimPrefix(u.Host, "www.")

	return strings.TrimSuffix(u.String(), "/")
}

// ExtractDomain returns the host of the URL with a leading "www." stripped.
// Returns "" when the input does not parse; it never fails.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// HashURL computes the dedup fingerprint: the hex md5 of the normalized URL.
// URLs differing only in tracking parameters, a "www." prefix, or a trailing
// slash hash identically. Collision resistance is not security-relevant here,
// only stable identity.
func HashURL(rawURL string) string {
	sum := md5.Sum([]byte(NormalizeURL(rawURL)))
	return hex.EncodeToString(sum[:])
}
