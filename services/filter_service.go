package services

import (
	"sort"

	"retail-analytics/models"
)

// ComputeFilterOptions extracts the distinct value sets driving the
// dashboard's selection controls. All sets keep first-seen order except
// months, which are sorted chronologically.
func ComputeFilterOptions(records []models.OrderLineRecord) models.FilterOptions {
	var (
		retailers = newDistinct()
		locations = newDistinct()
		products  = newDistinct()
		tags      = newDistinct()
		months    = newDistinct()
	)
	memo := make(monthMemo)

	for _, rec := range records {
		retailers.add(rec.RetailerName)
		locations.add(rec.Location)
		products.add(rec.ProductName)
		for _, tag := range rec.Tags {
			tags.add(tag)
		}
		if month, ok := memo.label(rec.OrderDate); ok {
			months.add(month)
		}
	}

	monthValues := months.values
	sort.SliceStable(monthValues, func(i, j int) bool {
		return MonthOrder(monthValues[i]) < MonthOrder(monthValues[j])
	})

	return models.FilterOptions{
		Retailers: retailers.values,
		Locations: locations.values,
		Products:  products.values,
		Tags:      tags.values,
		Months:    monthValues,
	}
}

// distinct collects unique strings preserving insertion order.
type distinct struct {
	seen   map[string]bool
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: make(map[string]bool), values: []string{}}
}

func (d *distinct) add(v string) {
	if d.seen[v] {
		return
	}
	d.seen[v] = true
	d.values = append(d.values, v)
}
