package model

import (
	"fmt"
	"slices"
)

// Ordinal is a dense, store-local row identifier. Ordinals follow source row
// order and are assigned once at build time; they are what the posting-list
// indexes store.
type Ordinal uint32

// Record is one administrative procedure from the survey.
//
// Field tags are the stable wire identifiers; they match Schema and are
// independent of the source column order.
type Record struct {
	ProcedureID           string   `json:"procedure_id"`
	Authority             string   `json:"authority"`
	Name                  string   `json:"name"`
	LawName               string   `json:"law_name"`
	LawNumber             string   `json:"law_number"`
	ArticleRef            string   `json:"article_ref"`
	ProcedureType         string   `json:"procedure_type"`
	Actor                 string   `json:"actor"`
	Recipient             string   `json:"recipient"`
	Intermediary          string   `json:"intermediary,omitempty"`
	AgencyName            string   `json:"agency_name,omitempty"`
	OfficeCategory        string   `json:"office_category,omitempty"`
	CrossMinistry         string   `json:"cross_ministry,omitempty"`
	ImplementingAuthority string   `json:"implementing_authority,omitempty"`
	OnlineStatus          string   `json:"online_status"`
	OnlinePlan            string   `json:"online_plan,omitempty"`
	OnlineTiming          string   `json:"online_timing,omitempty"`
	IdentityMethod        string   `json:"identity_method,omitempty"`
	HasFee                string   `json:"has_fee,omitempty"`
	FeeMethod             string   `json:"fee_method,omitempty"`
	FeeIncentive          string   `json:"fee_incentive,omitempty"`
	ProcessingTimeOnline  string   `json:"processing_time_online,omitempty"`
	ProcessingTimeOffline string   `json:"processing_time_offline,omitempty"`
	FilingSystems         []string `json:"filing_systems,omitempty"`
	ProcessingSystems     []string `json:"processing_systems,omitempty"`
	TotalVolume           uint64   `json:"total_volume"`
	OnlineVolume          uint64   `json:"online_volume"`
	OfflineVolume         uint64   `json:"offline_volume"`
	RequiredInfo          []string `json:"required_info,omitempty"`
	Attachments           []string `json:"attachments,omitempty"`
	AttachmentWaiver      []string `json:"attachment_waiver,omitempty"`
	AttachmentMethod      []string `json:"attachment_method,omitempty"`
	AttachmentSignature   string   `json:"attachment_signature,omitempty"`
	AttachmentFormatRule  string   `json:"attachment_format_rule,omitempty"`
	PersonalEvents        []string `json:"personal_events,omitempty"`
	CorporateEvents       []string `json:"corporate_events,omitempty"`
	Professions           []string `json:"professions,omitempty"`
	SubmissionOrgs        []string `json:"submission_orgs,omitempty"`
}

// FromRow decodes a raw row into a Record. The row must already be padded to
// FieldCount fields; anything else is a caller bug.
func FromRow(row []string) (Record, error) {
	if len(row) != FieldCount {
		return Record{}, fmt.Errorf("row has %d fields, schema has %d", len(row), FieldCount)
	}

	str := func(col int) string { return trim(row[col]) }
	label := func(col int) string { return NormalizeLabel(row[col]) }
	count := func(col int) uint64 { return ParseCount(row[col]) }
	multi := func(col int) []string { return SplitMulti(row[col]) }
	semi := func(col int) []string { return SplitSemicolon(row[col]) }

	return Record{
		ProcedureID:           str(ColProcedureID),
		Authority:             str(ColAuthority),
		Name:                  str(ColName),
		LawName:               str(ColLawName),
		LawNumber:             str(ColLawNumber),
		ArticleRef:            str(ColArticleRef),
		ProcedureType:         label(ColProcedureType),
		Actor:                 str(ColActor),
		Recipient:             str(ColRecipient),
		Intermediary:          str(ColIntermediary),
		AgencyName:            str(ColAgencyName),
		OfficeCategory:        str(ColOfficeCategory),
		CrossMinistry:         str(ColCrossMinistry),
		ImplementingAuthority: str(ColImplementingAuthority),
		OnlineStatus:          label(ColOnlineStatus),
		OnlinePlan:            str(ColOnlinePlan),
		OnlineTiming:          str(ColOnlineTiming),
		IdentityMethod:        str(ColIdentityMethod),
		HasFee:                str(ColHasFee),
		FeeMethod:             str(ColFeeMethod),
		FeeIncentive:          str(ColFeeIncentive),
		ProcessingTimeOnline:  str(ColProcessingTimeOnline),
		ProcessingTimeOffline: str(ColProcessingTimeOffline),
		FilingSystems:         semi(ColFilingSystems),
		ProcessingSystems:     semi(ColProcessingSystems),
		TotalVolume:           count(ColTotalVolume),
		OnlineVolume:          count(ColOnlineVolume),
		OfflineVolume:         count(ColOfflineVolume),
		RequiredInfo:          multi(ColRequiredInfo),
		Attachments:           multi(ColAttachments),
		AttachmentWaiver:      semi(ColAttachmentWaiver),
		AttachmentMethod:      semi(ColAttachmentMethod),
		AttachmentSignature:   str(ColAttachmentSignature),
		AttachmentFormatRule:  str(ColAttachmentFormatRule),
		PersonalEvents:        multi(ColPersonalEvents),
		CorporateEvents:       multi(ColCorporateEvents),
		Professions:           multi(ColProfessions),
		SubmissionOrgs:        semi(ColSubmissionOrgs),
	}, nil
}

// OnlineRate returns the per-record onlinization rate as a percentage with
// two decimals. Zero total volume yields 0, never a division fault.
// OnlineVolume exceeding TotalVolume is a known source inconsistency and is
// reported as-is (rates above 100 are possible).
func (r Record) OnlineRate() float64 {
	if r.TotalVolume == 0 {
		return 0
	}
	rate := float64(r.OnlineVolume) / float64(r.TotalVolume) * 100
	return float64(int64(rate*100+0.5)) / 100
}

// Equal reports whether two records are field-for-field identical. Used to
// tell harmless duplicate rows apart from conflicting ones.
func (r Record) Equal(o Record) bool {
	return r.ProcedureID == o.ProcedureID &&
		r.Authority == o.Authority &&
		r.Name == o.Name &&
		r.LawName == o.LawName &&
		r.LawNumber == o.LawNumber &&
		r.ArticleRef == o.ArticleRef &&
		r.ProcedureType == o.ProcedureType &&
		r.Actor == o.Actor &&
		r.Recipient == o.Recipient &&
		r.Intermediary == o.Intermediary &&
		r.AgencyName == o.AgencyName &&
		r.OfficeCategory == o.OfficeCategory &&
		r.CrossMinistry == o.CrossMinistry &&
		r.ImplementingAuthority == o.ImplementingAuthority &&
		r.OnlineStatus == o.OnlineStatus &&
		r.OnlinePlan == o.OnlinePlan &&
		r.OnlineTiming == o.OnlineTiming &&
		r.IdentityMethod == o.IdentityMethod &&
		r.HasFee == o.HasFee &&
		r.FeeMethod == o.FeeMethod &&
		r.FeeIncentive == o.FeeIncentive &&
		r.ProcessingTimeOnline == o.ProcessingTimeOnline &&
		r.ProcessingTimeOffline == o.ProcessingTimeOffline &&
		slices.Equal(r.FilingSystems, o.FilingSystems) &&
		slices.Equal(r.ProcessingSystems, o.ProcessingSystems) &&
		r.TotalVolume == o.TotalVolume &&
		r.OnlineVolume == o.OnlineVolume &&
		r.OfflineVolume == o.OfflineVolume &&
		slices.Equal(r.RequiredInfo, o.RequiredInfo) &&
		slices.Equal(r.Attachments, o.Attachments) &&
		slices.Equal(r.AttachmentWaiver, o.AttachmentWaiver) &&
		slices.Equal(r.AttachmentMethod, o.AttachmentMethod) &&
		r.AttachmentSignature == o.AttachmentSignature &&
		r.AttachmentFormatRule == o.AttachmentFormatRule &&
		slices.Equal(r.PersonalEvents, o.PersonalEvents) &&
		slices.Equal(r.CorporateEvents, o.CorporateEvents) &&
		slices.Equal(r.Professions, o.Professions) &&
		slices.Equal(r.SubmissionOrgs, o.SubmissionOrgs)
}
