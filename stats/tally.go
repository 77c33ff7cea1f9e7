package stats

import (
	"sort"
	"strings"

	"github.com/tetsuzan/procgo/model"
)

// TallyField counts occurrences of the values yielded by extract, one
// tally entry per element of multi-valued fields. Dashboards use this for
// information systems, life events, professions and submission organs.
func TallyField(records []model.Record, extract func(*model.Record) []string) *Tally {
	t := NewTally()
	for i := range records {
		for _, v := range extract(&records[i]) {
			t.Add(v, 1)
		}
	}
	return t
}

// TopN truncates counts to the n largest entries (ties broken by original
// order) and folds the remainder into a single entry labeled otherLabel.
// Input shorter than n is returned as-is.
func TopN(counts []Count, n int, otherLabel string) []Count {
	if n <= 0 || len(counts) <= n {
		return counts
	}
	sorted := append([]Count(nil), counts...)
	// Stable: equal counts keep their first-seen order.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	var other uint64
	for _, c := range sorted[n:] {
		other += c.Count
	}
	out := append(sorted[:n:n], Count{Value: otherLabel, Count: other})
	return out
}

// Law categories derived from the statute number column.
const (
	LawTypeStatute      = "法律"
	LawTypeCabinetOrder = "政令"
	LawTypeMinisterial  = "省令・規則"
	LawTypeNotification = "告示"
	LawTypeCircular     = "通達・通知"
	LawTypeOther        = "その他"
	LawTypeUnknown      = "不明"
)

// LawType classifies a governing law by its statute number text.
func LawType(lawNumber string) string {
	switch {
	case strings.TrimSpace(lawNumber) == "":
		return LawTypeUnknown
	case strings.Contains(lawNumber, "法律"):
		return LawTypeStatute
	case strings.Contains(lawNumber, "政令"):
		return LawTypeCabinetOrder
	case strings.Contains(lawNumber, "省令"), strings.Contains(lawNumber, "規則"):
		return LawTypeMinisterial
	case strings.Contains(lawNumber, "告示"):
		return LawTypeNotification
	case strings.Contains(lawNumber, "通達"), strings.Contains(lawNumber, "通知"):
		return LawTypeCircular
	default:
		return LawTypeOther
	}
}

// TallyLawTypes counts records per law category.
func TallyLawTypes(records []model.Record) *Tally {
	t := NewTally()
	for i := range records {
		t.Add(LawType(records[i].LawNumber), 1)
	}
	return t
}

// CrossTab is a two-dimensional contingency table, e.g. procedure actor
// against recipient. Row and column orders are first-seen.
type CrossTab struct {
	Rows  []string
	Cols  []string
	cells map[[2]string]uint64
}

// Count returns the tally for one cell.
func (ct *CrossTab) Count(row, col string) uint64 {
	return ct.cells[[2]string{row, col}]
}

// Cross tabulates records along two scalar dimensions. Records with an
// empty value on either dimension are skipped.
func Cross(records []model.Record, row, col func(*model.Record) string) *CrossTab {
	ct := &CrossTab{cells: make(map[[2]string]uint64)}
	rowSeen := make(map[string]struct{})
	colSeen := make(map[string]struct{})

	for i := range records {
		r, c := row(&records[i]), col(&records[i])
		if r == "" || c == "" {
			continue
		}
		if _, ok := rowSeen[r]; !ok {
			rowSeen[r] = struct{}{}
			ct.Rows = append(ct.Rows, r)
		}
		if _, ok := colSeen[c]; !ok {
			colSeen[c] = struct{}{}
			ct.Cols = append(ct.Cols, c)
		}
		ct.cells[[2]string{r, c}]++
	}
	return ct
}

// AuthorityRollup is the per-authority aggregate row of the dashboard.
type AuthorityRollup struct {
	Authority    string  `json:"authority"`
	Procedures   uint64  `json:"procedures"`
	TotalVolume  uint64  `json:"total_volume"`
	OnlineVolume uint64  `json:"online_volume"`
	OnlineRate   float64 `json:"online_rate"`
}

// RollupByAuthority aggregates volumes and rates per issuing authority,
// first-seen order.
func RollupByAuthority(records []model.Record) []AuthorityRollup {
	order := make(map[string]int)
	var rollups []AuthorityRollup

	for i := range records {
		rec := &records[i]
		if rec.Authority == "" {
			continue
		}
		j, ok := order[rec.Authority]
		if !ok {
			j = len(rollups)
			order[rec.Authority] = j
			rollups = append(rollups, AuthorityRollup{Authority: rec.Authority})
		}
		rollups[j].Procedures++
		rollups[j].TotalVolume += rec.TotalVolume
		rollups[j].OnlineVolume += rec.OnlineVolume
	}
	for j := range rollups {
		rollups[j].OnlineRate = Rate(rollups[j].OnlineVolume, rollups[j].TotalVolume)
	}
	return rollups
}
