package impact

import (
	"encoding/json"
	"testing"
)

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{
		SeverityNone,
		SeverityLow,
		SeverityLowMedium,
		SeverityMedium,
		SeverityMediumHigh,
		SeverityHigh,
		SeverityCritical,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should rank below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestSeverityRoundTrip(t *testing.T) {
	for s := SeverityNone; s <= SeverityCritical; s++ {
		if got := ParseSeverity(s.String()); got != s {
			t.Errorf("ParseSeverity(%q) = %v, want %v", s.String(), got, s)
		}
		if s.ColorHint() == "" {
			t.Errorf("%v has no color hint", s)
		}
	}
	if got := ParseSeverity("no-such-level"); got != SeverityNone {
		t.Errorf("unknown name parsed as %v, want None", got)
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(SeverityMediumHigh)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"Medium-High"` {
		t.Errorf("marshaled as %s", data)
	}

	var s Severity
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s != SeverityMediumHigh {
		t.Errorf("round trip = %v, want %v", s, SeverityMediumHigh)
	}
}
