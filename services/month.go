package services

import "time"

const (
	dateLayout  = "2006-01-02"
	monthLayout = "Jan 2006"
)

// MonthLabel converts an ISO order date into its calendar month label
// ("Jan 2024"). Returns false for an unparseable date; such records stay
// in raw timelines but are skipped from every month-bucketed view.
func MonthLabel(date string) (string, bool) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", false
	}
	return t.Format(monthLayout), true
}

// MonthOrder converts a month label into a sortable integer (202401 for
// "Jan 2024"). Unparseable labels sort first. Every chronological month
// sort in the engine goes through this single comparison key.
func MonthOrder(label string) int {
	t, err := time.Parse(monthLayout, label)
	if err != nil {
		return 0
	}
	return t.Year()*100 + int(t.Month())
}

// monthMemo caches date → month label lookups so repeated dates parse
// once per aggregation pass.
type monthMemo map[string]string

func (m monthMemo) label(date string) (string, bool) {
	if label, seen := m[date]; seen {
		return label, label != ""
	}
	label, ok := MonthLabel(date)
	if !ok {
		m[date] = ""
		return "", false
	}
	m[date] = label
	return label, true
}
