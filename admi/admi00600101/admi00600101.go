// Package admi00600101 implements the resend request admi.006.001.01. FedNow
// participants use it to ask for messages they did not receive.
package admi00600101

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "admi.006.001.01"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "ResendRequestV01",
		Root: "RsndReq",
		New:  func() iso.Message { return new(ResendRequestV01) },
	})
}

var (
	externalEnquiryRequestType1Code        = iso.NewTextType("ExternalEnquiryRequestType1Code", iso.Length(1, 4))
	externalPaymentControlRequestType1Code = iso.NewTextType("ExternalPaymentControlRequestType1Code", iso.Length(1, 4))
)

type ResendRequestV01 struct {
	MsgHdr      MessageHeader7              `xml:"MsgHdr" json:"MsgHdr"`
	RsndSchCrit []ResendSearchCriteria2     `xml:"RsndSchCrit" json:"RsndSchCrit"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *ResendRequestV01) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.MsgHdr.Validate(p.Field("MsgHdr")) },
		func() error { return iso.Occurs(p.Field("RsndSchCrit"), len(m.RsndSchCrit), 1, -1) },
		func() error { return iso.Each(p.Field("RsndSchCrit"), m.RsndSchCrit) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type MessageHeader7 struct {
	MsgId       common.Max35Text        `xml:"MsgId" json:"MsgId"`
	CreDtTm     *common.ISODateTime     `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	ReqTp       *RequestType4Choice     `xml:"ReqTp,omitempty" json:"ReqTp,omitempty"`
	OrgnlBizQry *OriginalBusinessQuery1 `xml:"OrgnlBizQry,omitempty" json:"OrgnlBizQry,omitempty"`
	QryNm       *common.Max35Text       `xml:"QryNm,omitempty" json:"QryNm,omitempty"`
}

func (h *MessageHeader7) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.MsgId.Validate(p.Field("MsgId")) },
		func() error { return iso.Optional(p.Field("CreDtTm"), h.CreDtTm) },
		func() error { return iso.Optional(p.Field("ReqTp"), h.ReqTp) },
		func() error { return iso.Optional(p.Field("OrgnlBizQry"), h.OrgnlBizQry) },
		func() error { return iso.Optional(p.Field("QryNm"), h.QryNm) },
	)
}

type ExternalEnquiryRequestType1Code string

func (v ExternalEnquiryRequestType1Code) Validate(p iso.PathRef) error {
	return externalEnquiryRequestType1Code.Check(p, string(v))
}
func (ExternalEnquiryRequestType1Code) SimpleType() iso.SimpleType { return externalEnquiryRequestType1Code }

type ExternalPaymentControlRequestType1Code string

func (v ExternalPaymentControlRequestType1Code) Validate(p iso.PathRef) error {
	return externalPaymentControlRequestType1Code.Check(p, string(v))
}
func (ExternalPaymentControlRequestType1Code) SimpleType() iso.SimpleType {
	return externalPaymentControlRequestType1Code
}

type RequestType4Choice struct {
	PmtCtrl *ExternalPaymentControlRequestType1Code `xml:"PmtCtrl,omitempty" json:"PmtCtrl,omitempty"`
	Enqry   *ExternalEnquiryRequestType1Code        `xml:"Enqry,omitempty" json:"Enqry,omitempty"`
	Prtry   *GenericIdentification1                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *RequestType4Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.PmtCtrl != nil, c.Enqry != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("PmtCtrl"), c.PmtCtrl) },
		func() error { return iso.Optional(p.Field("Enqry"), c.Enqry) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type GenericIdentification1 struct {
	Id      common.Max35Text  `xml:"Id" json:"Id"`
	SchmeNm *common.Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *common.Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericIdentification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
		func() error { return iso.Optional(p.Field("Issr"), g.Issr) },
	)
}

type OriginalBusinessQuery1 struct {
	MsgId   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	MsgNmId *common.Max35Text   `xml:"MsgNmId,omitempty" json:"MsgNmId,omitempty"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
}

func (q *OriginalBusinessQuery1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return q.MsgId.Validate(p.Field("MsgId")) },
		func() error { return iso.Optional(p.Field("MsgNmId"), q.MsgNmId) },
		func() error { return iso.Optional(p.Field("CreDtTm"), q.CreDtTm) },
	)
}

// ResendSearchCriteria2 selects the messages to resend by business date,
// sequence number or range, original message name or file, for one
// recipient.
type ResendSearchCriteria2 struct {
	BizDt        *common.ISODate              `xml:"BizDt,omitempty" json:"BizDt,omitempty"`
	SeqNb        *common.Max35Text            `xml:"SeqNb,omitempty" json:"SeqNb,omitempty"`
	SeqRg        *common.SequenceRange1Choice `xml:"SeqRg,omitempty" json:"SeqRg,omitempty"`
	OrgnlMsgNmId *common.Max35Text            `xml:"OrgnlMsgNmId,omitempty" json:"OrgnlMsgNmId,omitempty"`
	FileRef      *common.Max35Text            `xml:"FileRef,omitempty" json:"FileRef,omitempty"`
	Rcpt         PartyIdentification136       `xml:"Rcpt" json:"Rcpt"`
}

func (c *ResendSearchCriteria2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("BizDt"), c.BizDt) },
		func() error { return iso.Optional(p.Field("SeqNb"), c.SeqNb) },
		func() error { return iso.Optional(p.Field("SeqRg"), c.SeqRg) },
		func() error { return iso.Optional(p.Field("OrgnlMsgNmId"), c.OrgnlMsgNmId) },
		func() error { return iso.Optional(p.Field("FileRef"), c.FileRef) },
		func() error { return c.Rcpt.Validate(p.Field("Rcpt")) },
	)
}

type PartyIdentification136 struct {
	Id  PartyIdentification120Choice `xml:"Id" json:"Id"`
	LEI *common.LEIIdentifier        `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

func (pi *PartyIdentification136) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return pi.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("LEI"), pi.LEI) },
	)
}

type PartyIdentification120Choice struct {
	AnyBIC   *common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryId  *GenericIdentification36        `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *NameAndAddress5                `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (c *PartyIdentification120Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.AnyBIC != nil, c.PrtryId != nil, c.NmAndAdr != nil) },
		func() error { return iso.Optional(p.Field("AnyBIC"), c.AnyBIC) },
		func() error { return iso.Optional(p.Field("PrtryId"), c.PrtryId) },
		func() error { return iso.Optional(p.Field("NmAndAdr"), c.NmAndAdr) },
	)
}

type GenericIdentification36 struct {
	Id      common.Max35Text  `xml:"Id" json:"Id"`
	Issr    common.Max35Text  `xml:"Issr" json:"Issr"`
	SchmeNm *common.Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g *GenericIdentification36) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return g.Issr.Validate(p.Field("Issr")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
	)
}

type NameAndAddress5 struct {
	Nm  common.Max350Text `xml:"Nm" json:"Nm"`
	Adr *PostalAddress1   `xml:"Adr,omitempty" json:"Adr,omitempty"`
}

func (n *NameAndAddress5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return n.Nm.Validate(p.Field("Nm")) },
		func() error { return iso.Optional(p.Field("Adr"), n.Adr) },
	)
}

// PostalAddress1 is the older unstructured address; Ctry is mandatory.
type PostalAddress1 struct {
	AdrTp       *common.AddressType2Code `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	AdrLine     []common.Max70Text       `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
	StrtNm      *common.Max70Text        `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *common.Max16Text        `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *common.Max16Text        `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *common.Max35Text        `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *common.Max35Text        `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        common.CountryCode       `xml:"Ctry" json:"Ctry"`
}

func (a *PostalAddress1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("AdrTp"), a.AdrTp) },
		func() error { return iso.Occurs(p.Field("AdrLine"), len(a.AdrLine), 0, 5) },
		func() error { return iso.Each(p.Field("AdrLine"), a.AdrLine) },
		func() error { return iso.Optional(p.Field("StrtNm"), a.StrtNm) },
		func() error { return iso.Optional(p.Field("BldgNb"), a.BldgNb) },
		func() error { return iso.Optional(p.Field("PstCd"), a.PstCd) },
		func() error { return iso.Optional(p.Field("TwnNm"), a.TwnNm) },
		func() error { return iso.Optional(p.Field("CtrySubDvsn"), a.CtrySubDvsn) },
		func() error { return a.Ctry.Validate(p.Field("Ctry")) },
	)
}
