package services

import (
	"sort"

	"retail-analytics/models"
)

const (
	topBuyersLimit       = 10
	clubbedProductsLimit = 5
)

// retailerMonth keys the clubbing index: all products one retailer
// ordered within one calendar month.
type retailerMonth struct {
	retailer string
	month    string
}

// ComputeProductAnalytics groups order-line records by product and
// derives movement timelines, buyer rankings, monthly movement and
// product-clubbing co-occurrence. Pure function of its input; output
// order is first-seen product order.
func ComputeProductAnalytics(records []models.OrderLineRecord) []models.ProductAnalytics {
	analytics := make(map[string]*models.ProductAnalytics)
	var seen []string
	memo := make(monthMemo)

	// The clubbing join runs against this index instead of rescanning the
	// full record set per movement entry.
	index := make(map[retailerMonth][]string)

	for _, rec := range records {
		if month, ok := memo.label(rec.OrderDate); ok {
			key := retailerMonth{rec.RetailerName, month}
			index[key] = append(index[key], rec.ProductName)
		}

		p, ok := analytics[rec.ProductName]
		if !ok {
			p = &models.ProductAnalytics{Name: rec.ProductName}
			analytics[rec.ProductName] = p
			seen = append(seen, rec.ProductName)
		}
		p.MovementTimeline = append(p.MovementTimeline, models.MovementEntry{
			Date:     rec.OrderDate,
			Quantity: rec.Quantity,
			Retailer: rec.RetailerName,
			Value:    rec.Value,
		})
	}

	out := make([]models.ProductAnalytics, 0, len(seen))
	for _, name := range seen {
		p := analytics[name]
		p.TopBuyers = computeTopBuyers(p.MovementTimeline)
		p.MonthlyMovement = computeMonthlyMovement(p.MovementTimeline, memo)
		p.Clubbing = computeClubbing(p.Name, p.MovementTimeline, memo, index)
		out = append(out, *p)
	}
	return out
}

// computeTopBuyers ranks retailers by total purchase value, descending,
// truncated to the top 10. Ties keep first-seen retailer order.
func computeTopBuyers(timeline []models.MovementEntry) []models.TopBuyer {
	buckets := make(map[string]int)
	var buyers []models.TopBuyer

	for _, m := range timeline {
		idx, ok := buckets[m.Retailer]
		if !ok {
			idx = len(buyers)
			buckets[m.Retailer] = idx
			buyers = append(buyers, models.TopBuyer{Retailer: m.Retailer})
		}
		buyers[idx].TotalQuantity += m.Quantity
		buyers[idx].TotalValue = buyers[idx].TotalValue.Add(m.Value)
		buyers[idx].Frequency++
	}

	sort.SliceStable(buyers, func(i, j int) bool {
		return buyers[i].TotalValue.GreaterThan(buyers[j].TotalValue)
	})
	if len(buyers) > topBuyersLimit {
		buyers = buyers[:topBuyersLimit]
	}
	return buyers
}

func computeMonthlyMovement(timeline []models.MovementEntry, memo monthMemo) []models.MonthlyMovement {
	buckets := make(map[string]int)
	var monthly []models.MonthlyMovement

	for _, m := range timeline {
		month, ok := memo.label(m.Date)
		if !ok {
			continue
		}
		idx, ok := buckets[month]
		if !ok {
			idx = len(monthly)
			buckets[month] = idx
			monthly = append(monthly, models.MonthlyMovement{Month: month})
		}
		monthly[idx].Quantity += m.Quantity
		monthly[idx].Value = monthly[idx].Value.Add(m.Value)
	}

	sort.SliceStable(monthly, func(i, j int) bool {
		return MonthOrder(monthly[i].Month) < MonthOrder(monthly[j].Month)
	})
	return monthly
}

// computeClubbing counts, per month, the other products ordered by the
// same retailer in the same month as each of this product's movement
// entries. Each month's list is sorted descending by frequency (ties
// keep first-seen order) and truncated to the top 5; the month sequence
// is chronological.
func computeClubbing(product string, timeline []models.MovementEntry, memo monthMemo, index map[retailerMonth][]string) []models.ClubbingMonth {
	counts := make(map[string]map[string]int)
	firstSeen := make(map[string][]string)
	var months []string

	for _, m := range timeline {
		month, ok := memo.label(m.Date)
		if !ok {
			continue
		}
		byProduct, ok := counts[month]
		if !ok {
			byProduct = make(map[string]int)
			counts[month] = byProduct
			months = append(months, month)
		}

		for _, other := range index[retailerMonth{m.Retailer, month}] {
			if other == product {
				continue
			}
			if _, ok := byProduct[other]; !ok {
				firstSeen[month] = append(firstSeen[month], other)
			}
			byProduct[other]++
		}
	}

	clubbing := make([]models.ClubbingMonth, 0, len(months))
	for _, month := range months {
		byProduct := counts[month]
		clubbed := make([]models.ClubbedProduct, 0, len(byProduct))
		for _, name := range firstSeen[month] {
			clubbed = append(clubbed, models.ClubbedProduct{Name: name, Frequency: byProduct[name]})
		}
		sort.SliceStable(clubbed, func(i, j int) bool {
			return clubbed[i].Frequency > clubbed[j].Frequency
		})
		if len(clubbed) > clubbedProductsLimit {
			clubbed = clubbed[:clubbedProductsLimit]
		}
		clubbing = append(clubbing, models.ClubbingMonth{Month: month, Products: clubbed})
	}

	sort.SliceStable(clubbing, func(i, j int) bool {
		return MonthOrder(clubbing[i].Month) < MonthOrder(clubbing[j].Month)
	})
	return clubbing
}
