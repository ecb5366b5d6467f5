package helpers

import (
	"bytes"
	"testing"

	"retail-analytics/models"
	"retail-analytics/store"
)

func TestRecordsCSVRoundTrip(t *testing.T) {
	st := store.Generate(store.GeneratorConfig{Seed: 9, Records: 50})
	records := st.Records()

	var buf bytes.Buffer
	if err := WriteRecordsCSV(&buf, records); err != nil {
		t.Fatalf("WriteRecordsCSV: %v", err)
	}

	parsed, err := ParseRecordsCSV(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseRecordsCSV: %v", err)
	}

	if len(parsed) != len(records) {
		t.Fatalf("round trip: expected %d records, got %d", len(records), len(parsed))
	}

	// Export preserves store order, so compare record-for-record.
	for i := range records {
		assertRecordsEquivalent(t, i, records[i], parsed[i])
	}
}

func assertRecordsEquivalent(t *testing.T, i int, want, got models.OrderLineRecord) {
	t.Helper()

	if got.RetailerName != want.RetailerName || got.Location != want.Location ||
		got.OrderDate != want.OrderDate || got.ProductName != want.ProductName ||
		got.Quantity != want.Quantity || got.Frequency != want.Frequency {
		t.Errorf("record %d: field mismatch: want %+v, got %+v", i, want, got)
		return
	}
	if !got.Value.Equal(want.Value) {
		t.Errorf("record %d: value: want %s, got %s", i, want.Value, got.Value)
	}
	if !got.RecoveredAmount.Equal(want.RecoveredAmount) {
		t.Errorf("record %d: recovered: want %s, got %s", i, want.RecoveredAmount, got.RecoveredAmount)
	}
	if len(got.Tags) != len(want.Tags) {
		t.Errorf("record %d: tags: want %v, got %v", i, want.Tags, got.Tags)
		return
	}
	for j := range want.Tags {
		if got.Tags[j] != want.Tags[j] {
			t.Errorf("record %d: tags: want %v, got %v", i, want.Tags, got.Tags)
			return
		}
	}
}

func TestParseRecordsCSVRejectsBadRows(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "Bad quantity",
			data: "retailer_name,location,tags,order_date,product_name,quantity,value,recovered_amount,frequency\nA,Mumbai,Premium,2024-01-05,X,ten,100,90,1\n",
		},
		{
			name: "Bad value",
			data: "retailer_name,location,tags,order_date,product_name,quantity,value,recovered_amount,frequency\nA,Mumbai,Premium,2024-01-05,X,10,abc,90,1\n",
		},
	}

	for _, testCase := range testCases {
		if _, err := ParseRecordsCSV([]byte(testCase.data)); err == nil {
			t.Errorf("%s: expected parse error", testCase.name)
		}
	}
}
