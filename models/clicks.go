package models

// ClickStats maps redirect targets to the number of times a session
// followed them.
type ClickStats map[string]int

// Total returns the sum of all counters.
func (c ClickStats) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
