package automation

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// SummarySection groups activity for the periodic report
type SummarySection string

const (
	SummaryBuild SummarySection = "build"
	SummaryFaith SummarySection = "faith"
)

// summaryOrder is the report order of the sections
var summaryOrder = []SummarySection{SummaryBuild, SummaryFaith}

// Summary accumulates what was built since the last reset
type Summary struct {
	entries   map[SummarySection]map[string]int
	sinceTick int
}

// NewSummary creates an empty summary starting at tick
func NewSummary(tick int) *Summary {
	s := &Summary{}
	s.Reset(tick)
	return s
}

// Store adds amount to the running total of name
func (s *Summary) Store(section SummarySection, name string, amount int) {
	entries, ok := s.entries[section]
	if !ok {
		entries = make(map[string]int)
		s.entries[section] = entries
	}
	entries[name] += amount
}

// Get returns the running total of name
func (s *Summary) Get(section SummarySection, name string) int {
	return s.entries[section][name]
}

// Lines renders the report, one line per item, then the elapsed time
func (s *Summary) Lines(nowTick int) []string {
	var lines []string
	for _, section := range summaryOrder {
		entries := s.entries[section]
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)

		verb := "Built"
		if section == SummaryFaith {
			verb = "Discovered"
		}
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("%s: +%d %s", verb, entries[name], ucfirst(name)))
		}
	}

	elapsed := nowTick - s.sinceTick
	unit := "ticks"
	if elapsed == 1 {
		unit = "tick"
	}
	lines = append(lines, fmt.Sprintf("Summary of the last %d %s", elapsed, unit))
	return lines
}

// Reset clears the summary and restarts it at tick
func (s *Summary) Reset(tick int) {
	s.entries = make(map[SummarySection]map[string]int)
	s.sinceTick = tick
}

func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
