package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/testutil"
)

func TestSummarize(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		snap := Summarize(nil)
		assert.Zero(t, snap.Total)
		assert.Empty(t, snap.ByAuthority)
		assert.Zero(t, snap.TotalVolume)
		assert.Zero(t, snap.OnlineRate)
	})

	t.Run("CountsPartitionTotal", func(t *testing.T) {
		records := testutil.Records(45)
		snap := Summarize(records)
		require.Equal(t, 45, snap.Total)

		var byAuth, byStatus uint64
		for _, c := range snap.ByAuthority {
			byAuth += c.Count
		}
		for _, c := range snap.ByStatus {
			byStatus += c.Count
		}
		assert.Equal(t, uint64(45), byAuth)
		assert.Equal(t, uint64(45), byStatus)
	})

	t.Run("FirstSeenOrder", func(t *testing.T) {
		records := []model.Record{
			{ProcedureID: "1", Authority: "法務省"},
			{ProcedureID: "2", Authority: "総務省"},
			{ProcedureID: "3", Authority: "法務省"},
			{ProcedureID: "4", Authority: "金融庁"},
		}
		snap := Summarize(records)
		require.Len(t, snap.ByAuthority, 3)
		assert.Equal(t, Count{Value: "法務省", Count: 2}, snap.ByAuthority[0])
		assert.Equal(t, Count{Value: "総務省", Count: 1}, snap.ByAuthority[1])
		assert.Equal(t, Count{Value: "金融庁", Count: 1}, snap.ByAuthority[2])
	})

	t.Run("Volumes", func(t *testing.T) {
		records := []model.Record{
			{ProcedureID: "1", TotalVolume: 600, OnlineVolume: 100},
			{ProcedureID: "2", TotalVolume: 400, OnlineVolume: 233},
		}
		snap := Summarize(records)
		assert.Equal(t, uint64(1000), snap.TotalVolume)
		assert.Equal(t, uint64(333), snap.OnlineVolume)
		assert.InDelta(t, 33.3, snap.OnlineRate, 1e-9)
	})

	t.Run("EmptyValuesNotTallied", func(t *testing.T) {
		snap := Summarize([]model.Record{{ProcedureID: "1"}})
		assert.Equal(t, 1, snap.Total)
		assert.Empty(t, snap.ByAuthority)
		assert.Empty(t, snap.ByStatus)
	})
}

func TestRate(t *testing.T) {
	tests := []struct {
		name   string
		online uint64
		total  uint64
		want   float64
	}{
		{"zero denominator", 5, 0, 0},
		{"zero numerator", 0, 10, 0},
		{"half", 1, 2, 50},
		{"rounds down", 124, 1000, 12.4},
		{"rounds half up", 125, 1000, 12.5},
		{"one third", 1, 3, 33.3},
		{"two thirds", 2, 3, 66.7},
		{"full", 7, 7, 100},
		{"over full unclamped", 3, 2, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Rate(tt.online, tt.total), 1e-9)
		})
	}
}
