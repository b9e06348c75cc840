package utils

import "strings"

// ParsePairs splits a raw "key=value&key=value" body or query string.
// Values are taken verbatim: they are NOT URL-decoded, and a pair with an
// empty value counts as absent. This matches the legacy frontend contract;
// do not swap in url.ParseQuery without revising that contract.
func ParsePairs(raw string) map[string]string {
	out := make(map[string]string)
	if raw == "" {
		return out
	}
	for _, pair := range strings.Split(raw, "&") {
		kv := strings.Split(pair, "=")
		if len(kv) > 1 && kv[1] != "" {
			out[kv[0]] = kv[1]
		}
	}
	return out
}
