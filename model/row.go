package model

import (
	"strconv"
	"strings"
)

// Row renders the record back into source column order, for tabular
// export. Multi-valued fields are re-joined with the separator their
// column kind splits on; counts render as plain digits.
func (r Record) Row() []string {
	row := make([]string, FieldCount)
	row[ColProcedureID] = r.ProcedureID
	row[ColAuthority] = r.Authority
	row[ColName] = r.Name
	row[ColLawName] = r.LawName
	row[ColLawNumber] = r.LawNumber
	row[ColArticleRef] = r.ArticleRef
	row[ColProcedureType] = r.ProcedureType
	row[ColActor] = r.Actor
	row[ColRecipient] = r.Recipient
	row[ColIntermediary] = r.Intermediary
	row[ColAgencyName] = r.AgencyName
	row[ColOfficeCategory] = r.OfficeCategory
	row[ColCrossMinistry] = r.CrossMinistry
	row[ColImplementingAuthority] = r.ImplementingAuthority
	row[ColOnlineStatus] = r.OnlineStatus
	row[ColOnlinePlan] = r.OnlinePlan
	row[ColOnlineTiming] = r.OnlineTiming
	row[ColIdentityMethod] = r.IdentityMethod
	row[ColHasFee] = r.HasFee
	row[ColFeeMethod] = r.FeeMethod
	row[ColFeeIncentive] = r.FeeIncentive
	row[ColProcessingTimeOnline] = r.ProcessingTimeOnline
	row[ColProcessingTimeOffline] = r.ProcessingTimeOffline
	row[ColFilingSystems] = strings.Join(r.FilingSystems, ";")
	row[ColProcessingSystems] = strings.Join(r.ProcessingSystems, ";")
	row[ColTotalVolume] = strconv.FormatUint(r.TotalVolume, 10)
	row[ColOnlineVolume] = strconv.FormatUint(r.OnlineVolume, 10)
	row[ColOfflineVolume] = strconv.FormatUint(r.OfflineVolume, 10)
	row[ColRequiredInfo] = strings.Join(r.RequiredInfo, "、")
	row[ColAttachments] = strings.Join(r.Attachments, "、")
	row[ColAttachmentWaiver] = strings.Join(r.AttachmentWaiver, ";")
	row[ColAttachmentMethod] = strings.Join(r.AttachmentMethod, ";")
	row[ColAttachmentSignature] = r.AttachmentSignature
	row[ColAttachmentFormatRule] = r.AttachmentFormatRule
	row[ColPersonalEvents] = strings.Join(r.PersonalEvents, "、")
	row[ColCorporateEvents] = strings.Join(r.CorporateEvents, "、")
	row[ColProfessions] = strings.Join(r.Professions, "、")
	row[ColSubmissionOrgs] = strings.Join(r.SubmissionOrgs, ";")
	return row
}
