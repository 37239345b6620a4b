// Package admi00700101 implements the receipt acknowledgement admi.007.001.01.
package admi00700101

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "admi.007.001.01"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "ReceiptAcknowledgementV01",
		Root: "RctAck",
		New:  func() iso.Message { return new(ReceiptAcknowledgementV01) },
	})
}

// ReceiptAcknowledgementV01 acknowledges one or more received messages.
type ReceiptAcknowledgementV01 struct {
	MsgId       MessageHeader10                 `xml:"MsgId" json:"MsgId"`
	Rpt         []ReceiptAcknowledgementReport2 `xml:"Rpt" json:"Rpt"`
	SplmtryData []common.SupplementaryData1     `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *ReceiptAcknowledgementV01) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.MsgId.Validate(p.Field("MsgId")) },
		func() error { return iso.Occurs(p.Field("Rpt"), len(m.Rpt), 1, -1) },
		func() error { return iso.Each(p.Field("Rpt"), m.Rpt) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type MessageHeader10 struct {
	MsgId   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	QryNm   *common.Max35Text   `xml:"QryNm,omitempty" json:"QryNm,omitempty"`
}

func (h *MessageHeader10) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.MsgId.Validate(p.Field("MsgId")) },
		func() error { return iso.Optional(p.Field("CreDtTm"), h.CreDtTm) },
		func() error { return iso.Optional(p.Field("QryNm"), h.QryNm) },
	)
}

type ReceiptAcknowledgementReport2 struct {
	RltdRef MessageReference1 `xml:"RltdRef" json:"RltdRef"`
	ReqHdlg RequestHandling2  `xml:"ReqHdlg" json:"ReqHdlg"`
}

func (r *ReceiptAcknowledgementReport2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.RltdRef.Validate(p.Field("RltdRef")) },
		func() error { return r.ReqHdlg.Validate(p.Field("ReqHdlg")) },
	)
}

type MessageReference1 struct {
	Ref     common.Max35Text        `xml:"Ref" json:"Ref"`
	MsgNm   *common.Max35Text       `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
	RefIssr *PartyIdentification136 `xml:"RefIssr,omitempty" json:"RefIssr,omitempty"`
}

func (r *MessageReference1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.Ref.Validate(p.Field("Ref")) },
		func() error { return iso.Optional(p.Field("MsgNm"), r.MsgNm) },
		func() error { return iso.Optional(p.Field("RefIssr"), r.RefIssr) },
	)
}

// RequestHandling2 reports how the referenced message was handled.
type RequestHandling2 struct {
	StsCd   common.Max4AlphaNumericText `xml:"StsCd" json:"StsCd"`
	StsDtTm *common.ISODateTime         `xml:"StsDtTm,omitempty" json:"StsDtTm,omitempty"`
	Desc    *common.Max140Text          `xml:"Desc,omitempty" json:"Desc,omitempty"`
}

func (r *RequestHandling2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.StsCd.Validate(p.Field("StsCd")) },
		func() error { return iso.Optional(p.Field("StsDtTm"), r.StsDtTm) },
		func() error { return iso.Optional(p.Field("Desc"), r.Desc) },
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

// PostalAddress1 is the older address form with a mandatory country.
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
