package services

import (
	"math"
	"sort"

	"retail-analytics/models"
)

// ComputeRetailerProfiles groups order-line records by retailer and
// derives the per-retailer analytical view. Pure function of its input;
// output order is first-seen retailer order.
func ComputeRetailerProfiles(records []models.OrderLineRecord) []models.RetailerProfile {
	profiles := make(map[string]*models.RetailerProfile)
	orderIndex := make(map[string]map[string]int)
	var seen []string

	for _, rec := range records {
		p, ok := profiles[rec.RetailerName]
		if !ok {
			p = &models.RetailerProfile{
				Name:           rec.RetailerName,
				Location:       rec.Location,
				Tags:           rec.Tags,
				OrderFrequency: models.FrequencyLow,
			}
			profiles[rec.RetailerName] = p
			orderIndex[rec.RetailerName] = make(map[string]int)
			seen = append(seen, rec.RetailerName)
		}

		// Orders merge on exact date-string equality. Two dates that are
		// semantically equal but formatted differently do not merge.
		dates := orderIndex[rec.RetailerName]
		idx, ok := dates[rec.OrderDate]
		if !ok {
			idx = len(p.Orders)
			dates[rec.OrderDate] = idx
			p.Orders = append(p.Orders, models.Order{Date: rec.OrderDate})
		}

		o := &p.Orders[idx]
		o.Products = append(o.Products, models.OrderProduct{
			Name:     rec.ProductName,
			Quantity: rec.Quantity,
			Value:    rec.Value,
		})
		o.TotalValue = o.TotalValue.Add(rec.Value)
		o.RecoveredAmount = o.RecoveredAmount.Add(rec.RecoveredAmount)

		p.TotalOrdered = p.TotalOrdered.Add(rec.Value)
		p.TotalRecovered = p.TotalRecovered.Add(rec.RecoveredAmount)
	}

	out := make([]models.RetailerProfile, 0, len(seen))
	for _, name := range seen {
		p := profiles[name]

		// Recovery ratio is 0 when nothing was ordered.
		if !p.TotalOrdered.IsZero() {
			p.RecoveryRatio, _ = p.TotalRecovered.Div(p.TotalOrdered).Float64()
		}

		orderCount := len(p.Orders)
		switch {
		case orderCount > 10:
			p.OrderFrequency = models.FrequencyHigh
		case orderCount > 5:
			p.OrderFrequency = models.FrequencyMedium
		default:
			p.OrderFrequency = models.FrequencyLow
		}

		p.Rating = math.Min(5, p.RecoveryRatio*3+float64(orderCount)*0.1)
		p.MonthlySales = computeMonthlySales(p.Orders)

		out = append(out, *p)
	}
	return out
}

func computeMonthlySales(orders []models.Order) []models.MonthlySales {
	memo := make(monthMemo)
	buckets := make(map[string]int)
	var sales []models.MonthlySales

	for _, o := range orders {
		month, ok := memo.label(o.Date)
		if !ok {
			continue
		}
		idx, ok := buckets[month]
		if !ok {
			idx = len(sales)
			buckets[month] = idx
			sales = append(sales, models.MonthlySales{Month: month})
		}
		sales[idx].Total = sales[idx].Total.Add(o.TotalValue)
		sales[idx].Orders++
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return MonthOrder(sales[i].Month) < MonthOrder(sales[j].Month)
	})
	return sales
}
