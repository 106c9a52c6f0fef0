package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graze/entities"
)

func TestStockingDensity(t *testing.T) {
	assert.Equal(t, 12.5, StockingDensity(10, 25, 20))
	assert.Equal(t, 33.33, StockingDensity(10, 10, 3))
	assert.Equal(t, 0.0, StockingDensity(0, 50, 10))
	assert.Equal(t, 0.0, StockingDensity(-4, -9, 10))
}

func TestStockingDensityZeroAreaStaysFinite(t *testing.T) {
	v := StockingDensity(5, 100, 0)
	assert.False(t, v != v, "NaN")
	assert.Equal(t, 50000.0, v) // divided by the 0.01 floor
}

func TestDates(t *testing.T) {
	assert.Equal(t, "2025-03-11", AddDays("2025-03-01", 10))
	assert.Equal(t, "2025-02-28", AddDays("2025-03-01", -1))
	assert.Equal(t, "2024-02-29", AddDays("2024-02-28", 1)) // leap
	assert.Equal(t, "", AddDays("", 5))
	assert.Equal(t, "", AddDays("not a date", 5))
}

func TestOverlapsWindow(t *testing.T) {
	assert.True(t, OverlapsWindow("2025-07-01", "2025-07-20"))
	assert.False(t, OverlapsWindow("2025-01-01", "2025-02-01"))
	assert.True(t, OverlapsWindow("2025-09-15", "2025-09-15")) // inclusive endpoint
	assert.True(t, OverlapsWindow("2024-10-01", "2025-08-01")) // spans a year boundary
	assert.True(t, OverlapsWindow("2024-06-01", "2026-01-01")) // whole middle year
	assert.False(t, OverlapsWindow("", "2025-08-01"))
	assert.True(t, OverlapsWindow("2025-07-20", "2025-07-01")) // reversed endpoints
}

func threeEntries() []entities.Entry {
	return []entities.Entry{
		{Name: "north", AreaAcres: 20, HerdSize: 25, GrazeDays: 10},
		{Name: "lane", AreaAcres: 5, HerdSize: 25, GrazeDays: 0},
		{Name: "creek", AreaAcres: 12, HerdSize: 25, GrazeDays: 5},
	}
}

func TestDeriveScheduleWorkedExample(t *testing.T) {
	out := DeriveSchedule(threeEntries(), "2025-03-01")
	require.Len(t, out, 3)

	assert.Equal(t, "2025-03-01", out[0].StartDate)
	assert.Equal(t, "2025-03-10", out[0].EndDate)
	// zero-duration still occupies one nominal day
	assert.Equal(t, "2025-03-11", out[1].StartDate)
	assert.Equal(t, "2025-03-11", out[1].EndDate)
	assert.Equal(t, "2025-03-12", out[2].StartDate)
	assert.Equal(t, "2025-03-16", out[2].EndDate)
}

func TestDeriveScheduleSequencingInvariant(t *testing.T) {
	out := DeriveSchedule(threeEntries(), "2025-03-01")
	for i := 1; i < len(out); i++ {
		assert.Equal(t, AddDays(out[i-1].EndDate, 1), out[i].StartDate)
	}
}

func TestDeriveScheduleIdempotent(t *testing.T) {
	once := DeriveSchedule(threeEntries(), "2025-03-01")
	twice := DeriveSchedule(once, "2025-03-01")
	assert.Equal(t, once, twice)
}

func TestDeriveScheduleDoesNotMutateInput(t *testing.T) {
	in := threeEntries()
	_ = DeriveSchedule(in, "2025-03-01")
	assert.Equal(t, "", in[0].StartDate)
	assert.Equal(t, 0.0, in[0].ProposedSD)
}

func TestDeriveScheduleEmptySeasonStart(t *testing.T) {
	for _, start := range []string{"", "garbage", "2025-13-40"} {
		out := DeriveSchedule(threeEntries(), start)
		for _, e := range out {
			assert.Empty(t, e.StartDate)
			assert.Empty(t, e.EndDate)
		}
		// densities still derive without dates
		assert.Equal(t, 12.5, out[0].ProposedSD)
	}
}

func TestReorderKeepsDensity(t *testing.T) {
	in := threeEntries()
	fwd := DeriveSchedule(in, "2025-03-01")
	rev := DeriveSchedule([]entities.Entry{in[2], in[1], in[0]}, "2025-03-01")

	// dates shift with position, density travels with the entry
	assert.Equal(t, fwd[0].ProposedSD, rev[2].ProposedSD)
	assert.Equal(t, fwd[2].ProposedSD, rev[0].ProposedSD)
	assert.Equal(t, "2025-03-01", rev[0].StartDate)
	assert.Equal(t, "2025-03-05", rev[0].EndDate)
}

func TestDeriveScheduleFlagsSlumpRisk(t *testing.T) {
	out := DeriveSchedule(threeEntries(), "2025-07-10")
	// [Jul10..Jul19] crosses Jul 15; later windows sit inside it too
	assert.True(t, out[0].SlumpRisk)
	assert.True(t, out[2].SlumpRisk)

	out = DeriveSchedule(threeEntries(), "2025-03-01")
	for _, e := range out {
		assert.False(t, e.SlumpRisk)
	}
}

func TestSignature(t *testing.T) {
	in := threeEntries()
	sig := Signature(in, "2025-03-01")

	edited := make([]entities.Entry, len(in))
	copy(edited, in)
	edited[1].Notes = "gate is muddy"
	edited[1].Name = "Lane Paddock"
	assert.Equal(t, sig, Signature(edited, "2025-03-01"))

	edited[1].GrazeDays = 3
	assert.NotEqual(t, sig, Signature(edited, "2025-03-01"))
	assert.NotEqual(t, sig, Signature(in, "2025-04-01"))
}
