package nutrition

import "time"

// AgeAt returns the whole-number age in years at now for the given birth
// date, subtracting one when the birthday has not been reached yet this year.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// CalculateAge derives an age from an ISO date string (YYYY-MM-DD). An empty
// or unparseable date returns fallback unchanged, which lets callers keep a
// previously known age or a placeholder. The result is never cached: both
// call sites (client responses and plan prefill) reevaluate on every read.
func CalculateAge(birthISO string, fallback int) int {
	if birthISO == "" {
		return fallback
	}
	birth, err := time.Parse("2006-01-02", birthISO)
	if err != nil {
		return fallback
	}
	return AgeAt(birth, time.Now())
}
