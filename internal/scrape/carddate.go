package scrape

import (
	"regexp"
	"strconv"
	"sync"
	"time"
)

// dayMonthRe matches a day-month badge fragment: "08-09", "8/9", "8.9".
var dayMonthRe = regexp.MustCompile(`\b([0-3]?\d)[-/.]([01]?\d)\b`)

var (
	refZoneOnce sync.Once
	refZone     *time.Location
)

// ReferenceZone returns the fixed provider-local zone
// (America/Santo_Domingo). The zone observes no daylight saving, so the
// UTC-4 fallback is equivalent when tzdata is unavailable on the host.
func ReferenceZone() *time.Location {
	refZoneOnce.Do(func() {
		loc, err := time.LoadLocation("America/Santo_Domingo")
		if err != nil {
			loc = time.FixedZone("AST", -4*3600)
		}
		refZone = loc
	})
	return refZone
}

// ResolveCardDate scans the candidate texts in order for the first
// day-month fragment that forms a valid calendar date against today's
// year. When today falls in January and the fragment names December, the
// previous year is used. Returns ok=false when no candidate yields a
// valid date; the caller substitutes today.
func ResolveCardDate(texts []string, today time.Time) (string, bool) {
	for _, txt := range texts {
		m := dayMonthRe.FindStringSubmatch(txt)
		if m == nil {
			continue
		}
		dd, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if dd < 1 || dd > 31 || mm < 1 || mm > 12 {
			continue
		}

		year := today.Year()
		if today.Month() == time.January && time.Month(mm) == time.December {
			year--
		}

		d := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, today.Location())
		if d.Day() != dd || d.Month() != time.Month(mm) {
			// Day 31 in a 30-day month normalizes forward; not a real date.
			continue
		}
		return d.Format(time.DateOnly), true
	}
	return "", false
}
