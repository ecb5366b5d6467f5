package store

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	first := Generate(GeneratorConfig{Seed: 42, Records: 100})
	second := Generate(GeneratorConfig{Seed: 42, Records: 100})

	if !reflect.DeepEqual(first.Records(), second.Records()) {
		t.Errorf("expected identical record sets for the same seed")
	}

	other := Generate(GeneratorConfig{Seed: 43, Records: 100})
	if reflect.DeepEqual(first.Records(), other.Records()) {
		t.Errorf("expected different record sets for different seeds")
	}
}

func TestGenerateDefaultsRecordCount(t *testing.T) {
	st := Generate(GeneratorConfig{Seed: 1})
	if st.Len() != 500 {
		t.Errorf("expected default of 500 records, got %d", st.Len())
	}
}

func TestGeneratedRecordsAreValid(t *testing.T) {
	st := Generate(GeneratorConfig{Seed: 5, Records: 250})

	for i, rec := range st.Records() {
		if rec.RetailerName == "" || rec.ProductName == "" || rec.Location == "" {
			t.Fatalf("record %d: missing identifier fields: %+v", i, rec)
		}
		if rec.Quantity <= 0 {
			t.Errorf("record %d: quantity must be positive, got %d", i, rec.Quantity)
		}
		if rec.Frequency <= 0 {
			t.Errorf("record %d: frequency must be positive, got %d", i, rec.Frequency)
		}
		if rec.Value.IsNegative() {
			t.Errorf("record %d: value must be non-negative, got %s", i, rec.Value)
		}
		if rec.RecoveredAmount.GreaterThan(rec.Value) {
			t.Errorf("record %d: recovered %s exceeds value %s", i, rec.RecoveredAmount, rec.Value)
		}
		if _, err := time.Parse("2006-01-02", rec.OrderDate); err != nil {
			t.Errorf("record %d: unparseable order date %q", i, rec.OrderDate)
		}
		if len(rec.Tags) == 0 {
			t.Errorf("record %d: expected tags", i)
		}
	}
}
