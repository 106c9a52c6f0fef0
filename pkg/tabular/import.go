package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"graze/entities"
)

// MergeCSV folds metric columns from a CSV into the entry list, joining rows
// to entries by normalized pasture name. It returns a new slice; the input
// is never mutated. Rows that match no entry, and cells that do not parse,
// are skipped without error — a bad import never aborts.
func MergeCSV(r io.Reader, entries []entities.Entry) ([]entities.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return cloneEntries(entries), nil
		}
		return nil, err
	}
	cols := mapColumns(head)
	nameCol, ok := cols[FieldName]
	if !ok {
		// no identity column means nothing can be joined
		return cloneEntries(entries), nil
	}

	out := cloneEntries(entries)
	byName := map[string]int{}
	for i, e := range out {
		byName[entities.NormalizeName(e.Name)] = i
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		get := func(idx int, ok bool) string {
			if !ok || idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}
		i, found := byName[entities.NormalizeName(get(nameCol, true))]
		if !found {
			continue
		}
		setIf(&out[i].PrevPlannedSD, get(colOf(cols, FieldPrevPlanned)))
		setIf(&out[i].PrevActualSD, get(colOf(cols, FieldPrevActual)))
		setIf(&out[i].EstimateA, get(colOf(cols, FieldEstimateA)))
		setIf(&out[i].EstimateB, get(colOf(cols, FieldEstimateB)))
	}
	return out, nil
}

func colOf(cols map[Field]int, f Field) (int, bool) {
	idx, ok := cols[f]
	return idx, ok
}

func setIf(dst **float64, cell string) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return
	}
	*dst = &v
}

func cloneEntries(entries []entities.Entry) []entities.Entry {
	out := make([]entities.Entry, len(entries))
	copy(out, entries)
	return out
}
