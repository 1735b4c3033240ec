package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes a concrete sellable item from a synthetic record
// summarizing a whole category ("TV Selection", "Phone Selection").
type Kind string

const (
	KindProduct   Kind = "product"
	KindSelection Kind = "selection"
)

// Product describes one catalog entry. Price is presentation text
// (currency symbol, range phrasing included) and is never computed on.
type Product struct {
	Name        string   `yaml:"name" json:"name"`
	Price       string   `yaml:"price" json:"price"`
	Features    []string `yaml:"features" json:"features"`
	Description string   `yaml:"description" json:"description"`
	Kind        Kind     `yaml:"kind" json:"kind"`
}

// Catalog maps lower-case lookup keys to products. Multiple keys may
// point at the same product (aliases) or at a selection record. The
// mapping is immutable after construction.
type Catalog struct {
	entries map[string]Product
	keys    []string
}

// New builds a catalog from a key->product mapping. Keys are
// lower-cased; iteration order is fixed to sorted key order so match
// results are reproducible across runs (Go map iteration is random).
func New(entries map[string]Product) *Catalog {
	normalized := make(map[string]Product, len(entries))
	keys := make([]string, 0, len(entries))
	for key, product := range entries {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if product.Kind == "" {
			product.Kind = KindProduct
		}
		if _, ok := normalized[key]; !ok {
			keys = append(keys, key)
		}
		normalized[key] = product
	}
	sort.Strings(keys)

	return &Catalog{entries: normalized, keys: keys}
}

// Lookup returns the product for a key, case-insensitively.
func (c *Catalog) Lookup(key string) (Product, bool) {
	product, ok := c.entries[strings.ToLower(strings.TrimSpace(key))]
	return product, ok
}

// Keys returns all lookup keys in sorted order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of lookup keys.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Products returns the distinct products in the catalog, deduplicated
// by name, in sorted key order.
func (c *Catalog) Products() []Product {
	seen := make(map[string]bool, len(c.keys))
	var out []Product
	for _, key := range c.keys {
		product := c.entries[key]
		if seen[product.Name] {
			continue
		}
		seen[product.Name] = true
		out = append(out, product)
	}
	return out
}

// catalogFile is the YAML shape for Load.
type catalogFile struct {
	Products map[string]Product `yaml:"products"`
}

// Load reads a catalog from a YAML file. The file maps lookup keys to
// product records under a top-level "products" key.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog YAML: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	return New(file.Products), nil
}
