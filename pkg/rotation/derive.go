package rotation

import (
	"fmt"
	"math"
	"strings"

	"graze/entities"
)

// areaFloor keeps the density division finite when an entry has no usable
// acreage yet. Any area at or below zero clamps to this.
const areaFloor = 0.01

// StockingDensity is graze-days x head over acres, rounded to 2 decimals.
// Negative days/herd clamp to zero, so garbage input collapses to 0.
func StockingDensity(days, herd int, area float64) float64 {
	if days < 0 {
		days = 0
	}
	if herd < 0 {
		herd = 0
	}
	if area <= 0 || math.IsNaN(area) {
		area = areaFloor
	}
	v := float64(days) * float64(herd) / area
	return math.Round(v*100) / 100
}

// DeriveSchedule recomputes every derived field from (order, season start,
// each entry's area/herd/days). It returns a new slice and never touches the
// input. An empty or unparseable season start yields empty dates for every
// entry; otherwise windows are strictly sequential: an entry starts the day
// after its predecessor ends, and a zero-duration entry still occupies one
// nominal day.
func DeriveSchedule(entries []entities.Entry, seasonStart string) []entities.Entry {
	out := make([]entities.Entry, len(entries))
	copy(out, entries)

	cursor := ""
	if t, ok := ParseDate(seasonStart); ok {
		cursor = FormatDate(t)
	}
	for i := range out {
		out[i].ProposedSD = StockingDensity(out[i].GrazeDays, out[i].HerdSize, out[i].AreaAcres)
		if cursor == "" {
			out[i].StartDate = ""
			out[i].EndDate = ""
			out[i].SlumpRisk = false
			continue
		}
		out[i].StartDate = cursor
		if out[i].GrazeDays > 0 {
			out[i].EndDate = AddDays(cursor, out[i].GrazeDays-1)
		} else {
			out[i].EndDate = cursor
		}
		out[i].SlumpRisk = OverlapsWindow(out[i].StartDate, out[i].EndDate)
		cursor = AddDays(out[i].EndDate, 1)
	}
	return out
}

// Signature fingerprints the derivation-relevant inputs. Edits to names,
// notes or carried-over metrics leave it unchanged, so callers can skip
// redundant re-derivation.
func Signature(entries []entities.Entry, seasonStart string) string {
	var b strings.Builder
	norm := ""
	if t, ok := ParseDate(seasonStart); ok {
		norm = FormatDate(t)
	}
	b.WriteString(norm)
	for _, e := range entries {
		fmt.Fprintf(&b, "|%g,%d,%d", e.AreaAcres, e.HerdSize, e.GrazeDays)
	}
	return b.String()
}
