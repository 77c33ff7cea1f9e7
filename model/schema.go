package model

// FieldKind describes how a raw column value is decoded onto the Record.
type FieldKind uint8

const (
	// KindString keeps the trimmed raw value verbatim.
	KindString FieldKind = iota
	// KindLabel is a categorical value that is normalized before storage.
	KindLabel
	// KindUint is a non-negative count; unparseable values decode to zero.
	KindUint
	// KindMulti is a list split on Japanese enumeration separators.
	KindMulti
	// KindMultiSemicolon is a list split on semicolons only.
	KindMultiSemicolon
)

// Field is one column of the source schema.
type Field struct {
	// Name is the source column header (informational; parsing is positional).
	Name string
	// Wire is the stable identifier used in serialized output. It never
	// changes even if the source column order does.
	Wire string
	// Kind selects the decoder for the raw value.
	Kind FieldKind
}

// Column positions in source order. The two header lines of the source file
// do not carry this schema; it is fixed by the dataset release.
const (
	ColProcedureID = iota
	ColAuthority
	ColName
	ColLawName
	ColLawNumber
	ColArticleRef
	ColProcedureType
	ColActor
	ColRecipient
	ColIntermediary
	ColAgencyName
	ColOfficeCategory
	ColCrossMinistry
	ColImplementingAuthority
	ColOnlineStatus
	ColOnlinePlan
	ColOnlineTiming
	ColIdentityMethod
	ColHasFee
	ColFeeMethod
	ColFeeIncentive
	ColProcessingTimeOnline
	ColProcessingTimeOffline
	ColFilingSystems
	ColProcessingSystems
	ColTotalVolume
	ColOnlineVolume
	ColOfflineVolume
	ColRequiredInfo
	ColAttachments
	ColAttachmentWaiver
	ColAttachmentMethod
	ColAttachmentSignature
	ColAttachmentFormatRule
	ColPersonalEvents
	ColCorporateEvents
	ColProfessions
	ColSubmissionOrgs

	numFields
)

// FieldCount is the fixed number of columns every decoded row must have.
// Shorter source rows are padded with empty values up to this count.
const FieldCount = int(numFields)

// Schema lists the source columns in order. Indexed by the Col* constants.
var Schema = [FieldCount]Field{
	ColProcedureID:           {Name: "手続ID", Wire: "procedure_id", Kind: KindString},
	ColAuthority:             {Name: "所管府省庁", Wire: "authority", Kind: KindString},
	ColName:                  {Name: "手続名", Wire: "name", Kind: KindString},
	ColLawName:               {Name: "法令名", Wire: "law_name", Kind: KindString},
	ColLawNumber:             {Name: "法令番号", Wire: "law_number", Kind: KindString},
	ColArticleRef:            {Name: "根拠条項号", Wire: "article_ref", Kind: KindString},
	ColProcedureType:         {Name: "手続類型", Wire: "procedure_type", Kind: KindLabel},
	ColActor:                 {Name: "手続主体", Wire: "actor", Kind: KindString},
	ColRecipient:             {Name: "手続の受け手", Wire: "recipient", Kind: KindString},
	ColIntermediary:          {Name: "経由機関", Wire: "intermediary", Kind: KindString},
	ColAgencyName:            {Name: "独立行政法人等の名称", Wire: "agency_name", Kind: KindString},
	ColOfficeCategory:        {Name: "事務区分", Wire: "office_category", Kind: KindString},
	ColCrossMinistry:         {Name: "府省共通手続", Wire: "cross_ministry", Kind: KindString},
	ColImplementingAuthority: {Name: "実施府省庁", Wire: "implementing_authority", Kind: KindString},
	ColOnlineStatus:          {Name: "オンライン化の実施状況", Wire: "online_status", Kind: KindLabel},
	ColOnlinePlan:            {Name: "オンライン化の実施予定及び検討時の懸念点", Wire: "online_plan", Kind: KindString},
	ColOnlineTiming:          {Name: "オンライン化実施時期", Wire: "online_timing", Kind: KindString},
	ColIdentityMethod:        {Name: "申請等における本人確認手法", Wire: "identity_method", Kind: KindString},
	ColHasFee:                {Name: "手数料等の納付有無", Wire: "has_fee", Kind: KindString},
	ColFeeMethod:             {Name: "手数料等の納付方法", Wire: "fee_method", Kind: KindString},
	ColFeeIncentive:          {Name: "手数料等のオンライン納付時の優遇措置", Wire: "fee_incentive", Kind: KindString},
	ColProcessingTimeOnline:  {Name: "処理期間(オンライン)", Wire: "processing_time_online", Kind: KindString},
	ColProcessingTimeOffline: {Name: "処理期間(非オンライン)", Wire: "processing_time_offline", Kind: KindString},
	ColFilingSystems:         {Name: "情報システム(申請)", Wire: "filing_systems", Kind: KindMultiSemicolon},
	ColProcessingSystems:     {Name: "情報システム(事務処理)", Wire: "processing_systems", Kind: KindMultiSemicolon},
	ColTotalVolume:           {Name: "総手続件数", Wire: "total_volume", Kind: KindUint},
	ColOnlineVolume:          {Name: "オンライン手続件数", Wire: "online_volume", Kind: KindUint},
	ColOfflineVolume:         {Name: "非オンライン手続件数", Wire: "offline_volume", Kind: KindUint},
	ColRequiredInfo:          {Name: "申請書等に記載させる情報", Wire: "required_info", Kind: KindMulti},
	ColAttachments:           {Name: "申請時に添付させる書類", Wire: "attachments", Kind: KindMulti},
	ColAttachmentWaiver:      {Name: "添付書類等提出の撤廃/省略状況", Wire: "attachment_waiver", Kind: KindMultiSemicolon},
	ColAttachmentMethod:      {Name: "添付書類等の提出方法", Wire: "attachment_method", Kind: KindMultiSemicolon},
	ColAttachmentSignature:   {Name: "添付書類等への電子署名", Wire: "attachment_signature", Kind: KindString},
	ColAttachmentFormatRule:  {Name: "添付形式等が定められた規定", Wire: "attachment_format_rule", Kind: KindString},
	ColPersonalEvents:        {Name: "手続が行われるイベント(個人)", Wire: "personal_events", Kind: KindMulti},
	ColCorporateEvents:       {Name: "手続が行われるイベント(法人)", Wire: "corporate_events", Kind: KindMulti},
	ColProfessions:           {Name: "申請に関連する士業", Wire: "professions", Kind: KindMulti},
	ColSubmissionOrgs:        {Name: "申請を提出する機関", Wire: "submission_orgs", Kind: KindMultiSemicolon},
}
