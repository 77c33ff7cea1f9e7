package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tetsuzan/procgo/model"
)

// Value pools for synthetic records. Small on purpose: tests want value
// collisions so grouping and filtering have something to chew on.
var (
	Authorities = []string{"総務省", "法務省", "厚生労働省", "国土交通省", "金融庁"}
	Statuses    = []string{"実施済", "未実施", "一部実施済"}
	Types       = []string{"申請等", "申請等に基づく処分通知等", "縦覧等"}
	Actors      = []string{"国民等", "民間事業者等"}
	Recipients  = []string{"国", "地方等"}
	LawNumbers  = []string{"昭和二十五年法律第二百一号", "平成五年政令第三百八十号", "令和二年総務省令第一号"}
)

// Record returns the i-th synthetic record. The mapping from i to field
// values is fixed, so fixtures are reproducible across runs and packages.
func Record(i int) model.Record {
	rec := model.Record{
		ProcedureID:   fmt.Sprintf("P%05d", i),
		Authority:     Authorities[i%len(Authorities)],
		Name:          fmt.Sprintf("手続%04d届出", i),
		LawName:       fmt.Sprintf("試験手続法%d", i%7),
		LawNumber:     LawNumbers[i%len(LawNumbers)],
		ArticleRef:    fmt.Sprintf("第%d条", i%30+1),
		ProcedureType: Types[i%len(Types)],
		Actor:         Actors[i%len(Actors)],
		Recipient:     Recipients[i%len(Recipients)],
		OnlineStatus:  Statuses[i%len(Statuses)],
		TotalVolume:   uint64(i) * 100,
		OnlineVolume:  uint64(i) * 25,
		OfflineVolume: uint64(i) * 75,
	}
	if i%4 == 0 {
		rec.PersonalEvents = []string{"引越", "出生"}
	}
	if i%5 == 0 {
		rec.FilingSystems = []string{"e-Gov電子申請", "独自システム"}
	}
	return rec
}

// Records returns the first n synthetic records.
func Records(n int) []model.Record {
	out := make([]model.Record, n)
	for i := range out {
		out[i] = Record(i)
	}
	return out
}

// Header returns the survey's column-name header row.
func Header() []string {
	header := make([]string, model.FieldCount)
	for i, f := range model.Schema {
		header[i] = f.Name
	}
	return header
}

// CSV renders records as a complete raw survey file: UTF-8 BOM, a column
// index line, the column-name line, then one row per record. The result
// parses back into the same records.
func CSV(records ...model.Record) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	index := make([]string, model.FieldCount)
	for i := range index {
		index[i] = strconv.Itoa(i + 1)
	}
	_ = w.Write(index)
	_ = w.Write(Header())
	for i := range records {
		_ = w.Write(records[i].Row())
	}
	w.Flush()
	return buf.Bytes()
}
