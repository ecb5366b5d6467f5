package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"retail-analytics/models"
)

// Column layout of the record export. Tags are joined with ";" inside a
// single cell.
var recordHeader = []string{
	"retailer_name",
	"location",
	"tags",
	"order_date",
	"product_name",
	"quantity",
	"value",
	"recovered_amount",
	"frequency",
}

const tagSeparator = ";"

// WriteRecordsCSV serializes records in store order. Exporting then
// re-parsing yields a record-for-record equivalent set in the same
// order.
func WriteRecordsCSV(w io.Writer, records []models.OrderLineRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.RetailerName,
			rec.Location,
			strings.Join(rec.Tags, tagSeparator),
			rec.OrderDate,
			rec.ProductName,
			strconv.Itoa(rec.Quantity),
			rec.Value.String(),
			rec.RecoveredAmount.String(),
			strconv.Itoa(rec.Frequency),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ParseRecordsCSV parses exported CSV bytes back into records.
func ParseRecordsCSV(data []byte) ([]models.OrderLineRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var records []models.OrderLineRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(row) != len(recordHeader) {
			return nil, fmt.Errorf("unexpected column count %d, want %d", len(row), len(recordHeader))
		}

		quantity, err := strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: %w", row[5], err)
		}
		value, err := decimal.NewFromString(row[6])
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", row[6], err)
		}
		recovered, err := decimal.NewFromString(row[7])
		if err != nil {
			return nil, fmt.Errorf("invalid recovered amount %q: %w", row[7], err)
		}
		frequency, err := strconv.Atoi(row[8])
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", row[8], err)
		}

		var tags []string
		if row[2] != "" {
			tags = strings.Split(row[2], tagSeparator)
		}

		records = append(records, models.OrderLineRecord{
			RetailerName:    row[0],
			Location:        row[1],
			Tags:            tags,
			OrderDate:       row[3],
			ProductName:     row[4],
			Quantity:        quantity,
			Value:           value,
			RecoveredAmount: recovered,
			Frequency:       frequency,
		})
	}

	return records, nil
}
