package stats

import (
	"math"

	"github.com/tetsuzan/procgo/model"
)

// Count is one tallied categorical value.
type Count struct {
	Value string `json:"value"`
	Count uint64 `json:"count"`
}

// Tally is an insertion-ordered value counter.
type Tally struct {
	order  map[string]int
	counts []Count
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{order: make(map[string]int)}
}

// Add increments a value by n. Empty values are not tallied.
func (t *Tally) Add(value string, n uint64) {
	if value == "" {
		return
	}
	if i, ok := t.order[value]; ok {
		t.counts[i].Count += n
		return
	}
	t.order[value] = len(t.counts)
	t.counts = append(t.counts, Count{Value: value, Count: n})
}

// Get returns the count for a value.
func (t *Tally) Get(value string) uint64 {
	if i, ok := t.order[value]; ok {
		return t.counts[i].Count
	}
	return 0
}

// Counts returns the tallied values in first-seen order. The slice is the
// tally's backing array; callers must treat it as read-only.
func (t *Tally) Counts() []Count {
	return t.counts
}

// Len returns the number of distinct values.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Snapshot is a derived aggregate over a record set. It is recomputed on
// demand and never survives a store rebuild.
type Snapshot struct {
	// Total is the number of records summarized.
	Total int `json:"total"`
	// ByAuthority counts records per issuing authority, first-seen order.
	ByAuthority []Count `json:"by_authority"`
	// ByStatus counts records per online-implementation status, first-seen order.
	ByStatus []Count `json:"by_status"`
	// TotalVolume and OnlineVolume sum the per-record counts.
	TotalVolume  uint64 `json:"total_volume"`
	OnlineVolume uint64 `json:"online_volume"`
	// OnlineRate is OnlineVolume/TotalVolume as a percentage rounded to
	// one decimal, 0.0 when TotalVolume is zero.
	OnlineRate float64 `json:"online_rate"`
}

// Summarize computes a Snapshot in a single pass over records.
func Summarize(records []model.Record) Snapshot {
	byAuthority := NewTally()
	byStatus := NewTally()
	var totalVolume, onlineVolume uint64

	for i := range records {
		rec := &records[i]
		byAuthority.Add(rec.Authority, 1)
		byStatus.Add(rec.OnlineStatus, 1)
		totalVolume += rec.TotalVolume
		onlineVolume += rec.OnlineVolume
	}

	return Snapshot{
		Total:        len(records),
		ByAuthority:  byAuthority.Counts(),
		ByStatus:     byStatus.Counts(),
		TotalVolume:  totalVolume,
		OnlineVolume: onlineVolume,
		OnlineRate:   Rate(onlineVolume, totalVolume),
	}
}

// Rate returns online/total as a percentage rounded to one decimal place,
// 0.0 when total is zero. Online exceeding total is a tolerated source
// inconsistency; rates above 100 pass through unclamped.
func Rate(online, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(online)/float64(total)*1000) / 10
}
