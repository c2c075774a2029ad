package enum

import "encoding/json"

// PeriodKind identifies a named reporting window for sales analytics
type PeriodKind int

const (
	PeriodDay    PeriodKind = 0
	PeriodWeek   PeriodKind = 1
	PeriodMonth  PeriodKind = 2
	PeriodYear   PeriodKind = 3
	PeriodCustom PeriodKind = 4
)

func (k PeriodKind) String() string {
	return [...]string{"day", "week", "month", "year", "custom"}[k]
}

// IsValid reports whether the kind is one of the five named kinds
func (k PeriodKind) IsValid() bool {
	return k >= PeriodDay && k <= PeriodCustom
}

func (k PeriodKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PeriodKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = PeriodKind(i)
		return nil
	}
	kind, _ := ParsePeriodKind(str)
	*k = kind
	return nil
}

// ParsePeriodKind maps a query-string value to a PeriodKind.
// Unknown values fall back to PeriodMonth, mirroring the custom-period
// fallback: an undefined window is never an error, it is the current month.
func ParsePeriodKind(s string) (PeriodKind, bool) {
	switch s {
	case "day":
		return PeriodDay, true
	case "week":
		return PeriodWeek, true
	case "month":
		return PeriodMonth, true
	case "year":
		return PeriodYear, true
	case "custom":
		return PeriodCustom, true
	}
	return PeriodMonth, false
}
