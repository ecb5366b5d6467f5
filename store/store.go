package store

import (
	"fmt"
	"math/rand"

	"github.com/apex/log"
	"github.com/shopspring/decimal"

	"retail-analytics/models"
)

// Store owns the canonical collection of order-line records. The record
// set is immutable for the lifetime of the store; every aggregation is a
// deterministic function of its contents.
type Store struct {
	records []models.OrderLineRecord
}

// New creates a store over an existing record set.
func New(records []models.OrderLineRecord) *Store {
	return &Store{records: records}
}

// Records returns the record set for read-only iteration. Callers must
// not mutate the returned slice.
func (s *Store) Records() []models.OrderLineRecord {
	return s.records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// GeneratorConfig controls the synthetic dataset. The generator is a
// stand-in for a real spreadsheet ingestion collaborator; only its
// output contract matters to the aggregation engine.
type GeneratorConfig struct {
	Seed    int64
	Records int
}

var (
	retailers = []string{"AgriCorp Ltd", "FarmTech Solutions", "GreenGrow Industries", "BioFarms Co", "CropCare Systems"}
	locations = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Pune", "Hyderabad"}
	products  = []string{
		"Micronutrient Mix",
		"Bio-Fertilizer",
		"Chelated Iron",
		"Organic Compost",
		"NPK Complex",
		"Potash",
		"Urea",
		"DAP",
	}
	tagSets = [][]string{
		{"Premium", "Bulk"},
		{"Standard", "Retail"},
		{"Organic", "Certified"},
		{"Chemical", "Industrial"},
	}
)

// Generate builds a store with a seeded synthetic order-line dataset.
// The same seed always yields the same records.
func Generate(cfg GeneratorConfig) *Store {
	if cfg.Records <= 0 {
		cfg.Records = 500
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	records := make([]models.OrderLineRecord, 0, cfg.Records)
	for i := 0; i < cfg.Records; i++ {
		quantity := rng.Intn(100) + 10
		unitPrice := rng.Float64()*500 + 100
		value := decimal.NewFromFloat(float64(quantity) * unitPrice).Round(2)
		recovered := value.Mul(decimal.NewFromFloat(0.7 + rng.Float64()*0.3)).Round(2)

		month := rng.Intn(12) + 1
		day := rng.Intn(28) + 1

		records = append(records, models.OrderLineRecord{
			RetailerName:    retailers[rng.Intn(len(retailers))],
			Location:        locations[rng.Intn(len(locations))],
			Tags:            tagSets[rng.Intn(len(tagSets))],
			OrderDate:       fmt.Sprintf("2024-%02d-%02d", month, day),
			ProductName:     products[rng.Intn(len(products))],
			Quantity:        quantity,
			Value:           value,
			RecoveredAmount: recovered,
			Frequency:       rng.Intn(10) + 1,
		})
	}

	log.Infof("Generated %d synthetic order-line records (seed %d)", len(records), cfg.Seed)
	return New(records)
}
