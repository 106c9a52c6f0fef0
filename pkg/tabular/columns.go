package tabular

import "strings"

// Logical fields an imported table can carry. Identity is required; every
// metric column is optional.
type Field int

const (
	FieldName Field = iota
	FieldPrevPlanned
	FieldPrevActual
	FieldEstimateA
	FieldEstimateB
)

// columnRules is the documented alias table: per logical field an ordered
// list of header candidates, first match wins. Headers are compared after
// normalization, so "Prev Planned SD", "prev_planned-sd" and "PREVPLANNEDSD"
// all match.
var columnRules = []struct {
	field   Field
	aliases []string
}{
	{FieldName, []string{"pasture", "paddock", "unit", "name", "pasturename"}},
	{FieldPrevPlanned, []string{"prevplannedsd", "prevplanned", "previousplanned", "plannedsd", "lastplanned"}},
	{FieldPrevActual, []string{"prevactualsd", "prevactual", "previousactual", "actualsd", "lastactual"}},
	{FieldEstimateA, []string{"estimatea", "esta", "estimate1", "est1", "ndviestimate"}},
	{FieldEstimateB, []string{"estimateb", "estb", "estimate2", "est2", "clipestimate"}},
}

// normHeader matches the header hygiene used for every import: BOM strip,
// lowercase, spaces/dashes/underscores removed.
func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// mapColumns resolves a header row to field -> column index.
func mapColumns(head []string) map[Field]int {
	hmap := map[string]int{}
	for i, h := range head {
		n := normHeader(h)
		if _, dup := hmap[n]; !dup {
			hmap[n] = i
		}
	}
	out := map[Field]int{}
	for _, r := range columnRules {
		for _, a := range r.aliases {
			if idx, ok := hmap[normHeader(a)]; ok {
				out[r.field] = idx
				break
			}
		}
	}
	return out
}
