// Package matcher extracts catalog products mentioned in free-text
// customer messages.
//
// Matching is substring-based on purpose: short shared tokens can
// over-match (the key "tv" hits inside "tvs" and any word containing
// "tv"). That is accepted behavior for this storefront, not a bug, and
// callers should expect the occasional extra selection record.
package matcher

import (
	"strings"

	"storebot/internal/catalog"
)

// Match returns the distinct products mentioned in userText, in
// catalog key order, deduplicated by product name keeping the first
// occurrence. An empty result means nothing matched; Match never fails.
func Match(userText string, c *catalog.Catalog) []catalog.Product {
	text := strings.ToLower(userText)
	if strings.TrimSpace(text) == "" {
		return []catalog.Product{}
	}

	matched := []catalog.Product{}
	seen := map[string]bool{}

	for _, key := range c.Keys() {
		product, ok := c.Lookup(key)
		if !ok {
			continue
		}
		if !keyMatches(text, key, product.Name) {
			continue
		}
		if seen[product.Name] {
			continue
		}
		seen[product.Name] = true
		matched = append(matched, product)
	}

	return matched
}

// keyMatches reports whether a catalog entry is mentioned in text: the
// whole key as a substring, any token of the key, or any token of the
// product name.
func keyMatches(text, key, name string) bool {
	if strings.Contains(text, key) {
		return true
	}
	for _, token := range strings.Fields(key) {
		if strings.Contains(text, token) {
			return true
		}
	}
	for _, token := range strings.Fields(strings.ToLower(name)) {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
