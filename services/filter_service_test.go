package services

import (
	"reflect"
	"testing"

	"retail-analytics/models"
)

func TestComputeFilterOptions(t *testing.T) {
	records := []models.OrderLineRecord{
		line("A", "X", "2025-01-05", 1, 100, 90),
		line("B", "Y", "2024-02-05", 1, 100, 90),
		line("A", "X", "2024-01-05", 1, 100, 90),
		line("B", "X", "2024-02-20", 1, 100, 90),
	}
	records[1].Location = "Delhi"
	records[1].Tags = []string{"Organic", "Certified"}

	opts := ComputeFilterOptions(records)

	if !reflect.DeepEqual(opts.Retailers, []string{"A", "B"}) {
		t.Errorf("retailers: expected [A B], got %v", opts.Retailers)
	}
	if !reflect.DeepEqual(opts.Locations, []string{"Mumbai", "Delhi"}) {
		t.Errorf("locations: expected [Mumbai Delhi], got %v", opts.Locations)
	}
	if !reflect.DeepEqual(opts.Products, []string{"X", "Y"}) {
		t.Errorf("products: expected [X Y], got %v", opts.Products)
	}
	if !reflect.DeepEqual(opts.Tags, []string{"Premium", "Bulk", "Organic", "Certified"}) {
		t.Errorf("tags: expected flattened first-seen tags, got %v", opts.Tags)
	}

	// Chronological, not lexicographic: "Jan 2025" sorts last.
	if !reflect.DeepEqual(opts.Months, []string{"Jan 2024", "Feb 2024", "Jan 2025"}) {
		t.Errorf("months: expected chronological order, got %v", opts.Months)
	}
}

func TestComputeFilterOptionsSkipsMalformedDates(t *testing.T) {
	records := []models.OrderLineRecord{
		line("A", "X", "bogus", 1, 100, 90),
		line("A", "X", "2024-01-05", 1, 100, 90),
	}

	opts := ComputeFilterOptions(records)
	if !reflect.DeepEqual(opts.Months, []string{"Jan 2024"}) {
		t.Errorf("months: expected [Jan 2024], got %v", opts.Months)
	}
}

func TestComputeFilterOptionsEmptyInput(t *testing.T) {
	opts := ComputeFilterOptions(nil)
	if len(opts.Retailers) != 0 || len(opts.Locations) != 0 || len(opts.Products) != 0 || len(opts.Tags) != 0 || len(opts.Months) != 0 {
		t.Errorf("expected all-empty filter options for empty input, got %+v", opts)
	}
}
