package pipeline

import "fmt"

// Summary is the final report of a run. It is printed human-readable at the
// end of every invocation, or as JSON with --json.
type Summary struct {
	Matched    bool `json:"matched"`
	Renamed    int  `json:"renamed"`
	Skipped    int  `json:"skipped"`
	Anomalies  int  `json:"anomalies"`
	Notes      int  `json:"notes"`
	ColorPages int  `json:"color_pages"`
	MonoPages  int  `json:"mono_pages"`
	RangeLow   int  `json:"range_low"`
	RangeHigh  int  `json:"range_high"`
	SpreadEnd  bool `json:"spread_end"`
	DryRun     bool `json:"dry_run"`
}

// Range renders the realized transformed range, "11 --> 15" for a single
// final page or "11 --> 15-16" when the last file is a spread.
func (s *Summary) Range() string {
	if !s.Matched {
		return "no pages matched"
	}
	if s.SpreadEnd {
		return fmt.Sprintf("%d --> %d-%d", s.RangeLow, s.RangeHigh, s.RangeHigh+1)
	}
	return fmt.Sprintf("%d --> %d", s.RangeLow, s.RangeHigh)
}
