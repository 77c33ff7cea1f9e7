package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() []string {
	row := make([]string, FieldCount)
	row[ColProcedureID] = "A12345"
	row[ColAuthority] = " 法務省 "
	row[ColName] = "不動産登記の申請"
	row[ColLawName] = "不動産登記法"
	row[ColLawNumber] = "平成十六年法律第百二十三号"
	row[ColProcedureType] = "1 申請等"
	row[ColActor] = "国民等"
	row[ColRecipient] = "国"
	row[ColOnlineStatus] = "2 未実施"
	row[ColFilingSystems] = "登記・供託オンライン申請システム;独自システム"
	row[ColTotalVolume] = "1,234,567"
	row[ColOnlineVolume] = "234567"
	row[ColOfflineVolume] = "1000000"
	row[ColPersonalEvents] = "相続、引越"
	row[ColProfessions] = "司法書士，土地家屋調査士"
	return row
}

func TestFromRow(t *testing.T) {
	t.Run("Decode", func(t *testing.T) {
		rec, err := FromRow(sampleRow())
		require.NoError(t, err)

		assert.Equal(t, "A12345", rec.ProcedureID)
		assert.Equal(t, "法務省", rec.Authority)
		assert.Equal(t, "不動産登記の申請", rec.Name)
		assert.Equal(t, "申請等", rec.ProcedureType)
		assert.Equal(t, "未実施", rec.OnlineStatus)
		assert.Equal(t, []string{"登記・供託オンライン申請システム", "独自システム"}, rec.FilingSystems)
		assert.Equal(t, uint64(1234567), rec.TotalVolume)
		assert.Equal(t, uint64(234567), rec.OnlineVolume)
		assert.Equal(t, uint64(1000000), rec.OfflineVolume)
		assert.Equal(t, []string{"相続", "引越"}, rec.PersonalEvents)
		assert.Equal(t, []string{"司法書士", "土地家屋調査士"}, rec.Professions)
	})

	t.Run("EmptyFields", func(t *testing.T) {
		rec, err := FromRow(make([]string, FieldCount))
		require.NoError(t, err)
		assert.Empty(t, rec.ProcedureID)
		assert.Nil(t, rec.PersonalEvents)
		assert.Zero(t, rec.TotalVolume)
	})

	t.Run("WrongWidth", func(t *testing.T) {
		_, err := FromRow(make([]string, FieldCount-1))
		require.Error(t, err)
		_, err = FromRow(make([]string, FieldCount+1))
		require.Error(t, err)
	})
}

func TestOnlineRate(t *testing.T) {
	tests := []struct {
		name   string
		online uint64
		total  uint64
		want   float64
	}{
		{"zero total", 10, 0, 0},
		{"zero online", 0, 100, 0},
		{"exact half", 50, 100, 50},
		{"rounds to two decimals", 1, 3, 33.33},
		{"rounds up", 2, 3, 66.67},
		{"full", 100, 100, 100},
		{"online exceeds total", 150, 100, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{OnlineVolume: tt.online, TotalVolume: tt.total}
			assert.InDelta(t, tt.want, rec.OnlineRate(), 1e-9)
		})
	}
}

func TestRecordEqual(t *testing.T) {
	rec, err := FromRow(sampleRow())
	require.NoError(t, err)

	t.Run("Identical", func(t *testing.T) {
		other, err := FromRow(sampleRow())
		require.NoError(t, err)
		assert.True(t, rec.Equal(other))
	})

	t.Run("ScalarDiffers", func(t *testing.T) {
		other := rec
		other.Authority = "総務省"
		assert.False(t, rec.Equal(other))
	})

	t.Run("MultiDiffers", func(t *testing.T) {
		other := rec
		other.PersonalEvents = []string{"相続"}
		assert.False(t, rec.Equal(other))
	})
}

func TestRowRoundTrip(t *testing.T) {
	rec, err := FromRow(sampleRow())
	require.NoError(t, err)

	again, err := FromRow(rec.Row())
	require.NoError(t, err)
	assert.True(t, rec.Equal(again))
}
