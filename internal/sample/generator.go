// Package sample generates realistic demo inventory files. Output is
// deterministic for a given seed so demos and tests are repeatable.
package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// DefaultSeed keeps demo output stable across runs.
const DefaultSeed = 42

type productCategory struct {
	product  string
	category string
}

var productCategories = []productCategory{
	{"Wireless Headphones", "Electronics"}, {"Smartphone Case", "Electronics"},
	{"Laptop Stand", "Electronics"}, {"USB Cable", "Electronics"},
	{"Cotton T-Shirt", "Clothing"}, {"Jeans", "Clothing"},
	{"Winter Jacket", "Clothing"}, {"Running Shoes", "Clothing"},
	{"Garden Tools", "Home & Garden"}, {"Plant Pot", "Home & Garden"},
	{"LED Light", "Home & Garden"}, {"Storage Box", "Home & Garden"},
	{"Basketball", "Sports"}, {"Yoga Mat", "Sports"},
	{"Protein Powder", "Sports"}, {"Water Bottle", "Sports"},
	{"Fiction Novel", "Books"}, {"Cookbook", "Books"},
	{"Art Supplies", "Books"}, {"Notebook", "Books"},
	{"Face Cream", "Beauty"}, {"Shampoo", "Beauty"},
	{"Makeup Brush", "Beauty"}, {"Perfume", "Beauty"},
}

var variantsByCategory = map[string][]string{
	"Electronics":   {"Black", "White", "Silver", "Blue"},
	"Clothing":      {"Size S", "Size M", "Size L", "Size XL"},
	"Sports":        {"Pro", "Standard", "Premium", "Basic"},
	"Books":         {"Hardcover", "Paperback", "Large Print", "Deluxe"},
	"Beauty":        {"50ml", "100ml", "150ml", "200ml"},
	"Home & Garden": {"Small", "Medium", "Large", "Extra Large"},
}

// Generator produces sample inventory rows from a seeded PRNG.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a Generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// WriteCSV emits numProducts rows with the messy display headers a real
// spreadsheet export carries ("Product Name", "Current Stock", ...), plus
// extra columns the analyzer is expected to ignore.
func (g *Generator) WriteCSV(w io.Writer, numProducts int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Product Name", "Category", "Current Stock", "Price", "Supplier", "Last Updated"}); err != nil {
		return err
	}

	lastUpdated := g.now.Format("2006-01-02")
	for i := 0; i < numProducts; i++ {
		pair := productCategories[i%len(productCategories)]
		variants := variantsByCategory[pair.category]
		name := fmt.Sprintf("%s - %s", pair.product, variants[i%len(variants)])

		stock := g.rng.Intn(200)
		price := 5.99 + g.rng.Float64()*(299.99-5.99)
		supplier := fmt.Sprintf("Supplier_%d", 1+g.rng.Intn(9))

		record := []string{
			name,
			pair.category,
			fmt.Sprintf("%d", stock),
			fmt.Sprintf("%.2f", price),
			supplier,
			lastUpdated,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// GenerateFile writes a sample CSV to path.
func GenerateFile(path string, numProducts int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file %s: %w", path, err)
	}
	defer f.Close()

	return New(seed).WriteCSV(f, numProducts)
}
