// Package head00100102 implements the business application header
// head.001.001.02. The header travels next to a Document rather than inside
// one, so it is not part of the Document registry.
package head00100102

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const (
	ID        = "head.001.001.02"
	Namespace = iso.NamespacePrefix + ID
)

// BusinessApplicationHeaderV02 is the AppHdr element.
type BusinessApplicationHeaderV02 struct {
	CharSet    *UnicodeChartsCode            `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice                 `xml:"Fr" json:"Fr"`
	To         Party44Choice                 `xml:"To" json:"To"`
	BizMsgIdr  common.Max35Text              `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  common.Max35Text              `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *common.Max35Text             `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	MktPrctc   *ImplementationSpecification1 `xml:"MktPrctc,omitempty" json:"MktPrctc,omitempty"`
	CreDt      common.ISODateTime            `xml:"CreDt" json:"CreDt"`
	BizPrcgDt  *common.ISODateTime           `xml:"BizPrcgDt,omitempty" json:"BizPrcgDt,omitempty"`
	CpyDplct   *common.CopyDuplicate1Code    `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *common.YesNoIndicator        `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *BusinessMessagePriorityCode  `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope            `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
	Rltd       []BusinessApplicationHeader5  `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
}

func (h *BusinessApplicationHeaderV02) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("CharSet"), h.CharSet) },
		func() error { return h.Fr.Validate(p.Field("Fr")) },
		func() error { return h.To.Validate(p.Field("To")) },
		func() error { return h.BizMsgIdr.Validate(p.Field("BizMsgIdr")) },
		func() error { return h.MsgDefIdr.Validate(p.Field("MsgDefIdr")) },
		func() error { return iso.Optional(p.Field("BizSvc"), h.BizSvc) },
		func() error { return iso.Optional(p.Field("MktPrctc"), h.MktPrctc) },
		func() error { return h.CreDt.Validate(p.Field("CreDt")) },
		func() error { return iso.Optional(p.Field("BizPrcgDt"), h.BizPrcgDt) },
		func() error { return iso.Optional(p.Field("CpyDplct"), h.CpyDplct) },
		func() error { return iso.Optional(p.Field("PssblDplct"), h.PssblDplct) },
		func() error { return iso.Optional(p.Field("Prty"), h.Prty) },
		func() error { return iso.Optional(p.Field("Sgntr"), h.Sgntr) },
		func() error { return iso.Each(p.Field("Rltd"), h.Rltd) },
	)
}

// BusinessApplicationHeader5 is the header of a related message.
type BusinessApplicationHeader5 struct {
	CharSet    *UnicodeChartsCode           `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice                `xml:"Fr" json:"Fr"`
	To         Party44Choice                `xml:"To" json:"To"`
	BizMsgIdr  common.Max35Text             `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  common.Max35Text             `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *common.Max35Text            `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	CreDt      common.ISODateTime           `xml:"CreDt" json:"CreDt"`
	CpyDplct   *common.CopyDuplicate1Code   `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *common.YesNoIndicator       `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *BusinessMessagePriorityCode `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope           `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
}

func (h *BusinessApplicationHeader5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("CharSet"), h.CharSet) },
		func() error { return h.Fr.Validate(p.Field("Fr")) },
		func() error { return h.To.Validate(p.Field("To")) },
		func() error { return h.BizMsgIdr.Validate(p.Field("BizMsgIdr")) },
		func() error { return h.MsgDefIdr.Validate(p.Field("MsgDefIdr")) },
		func() error { return iso.Optional(p.Field("BizSvc"), h.BizSvc) },
		func() error { return h.CreDt.Validate(p.Field("CreDt")) },
		func() error { return iso.Optional(p.Field("CpyDplct"), h.CpyDplct) },
		func() error { return iso.Optional(p.Field("PssblDplct"), h.PssblDplct) },
		func() error { return iso.Optional(p.Field("Prty"), h.Prty) },
		func() error { return iso.Optional(p.Field("Sgntr"), h.Sgntr) },
	)
}

// Party44Choice names the sender or receiver as an organisation or as a
// financial institution.
type Party44Choice struct {
	OrgId *common.PartyIdentification135                       `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	FIId  *common.BranchAndFinancialInstitutionIdentification6 `xml:"FIId,omitempty" json:"FIId,omitempty"`
}

func (c *Party44Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.OrgId != nil, c.FIId != nil) },
		func() error { return iso.Optional(p.Field("OrgId"), c.OrgId) },
		func() error { return iso.Optional(p.Field("FIId"), c.FIId) },
	)
}

type ImplementationSpecification1 struct {
	Regy common.Max350Text  `xml:"Regy" json:"Regy"`
	Id   common.Max2048Text `xml:"Id" json:"Id"`
}

func (s *ImplementationSpecification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return s.Regy.Validate(p.Field("Regy")) },
		func() error { return s.Id.Validate(p.Field("Id")) },
	)
}

// UnicodeChartsCode names a character set; no values are imposed.
type UnicodeChartsCode string

func (UnicodeChartsCode) Validate(iso.PathRef) error { return nil }
func (UnicodeChartsCode) SimpleType() iso.SimpleType { return iso.AlwaysValid }

// BusinessMessagePriorityCode is agreed bilaterally; no values are imposed.
type BusinessMessagePriorityCode string

func (BusinessMessagePriorityCode) Validate(iso.PathRef) error { return nil }
func (BusinessMessagePriorityCode) SimpleType() iso.SimpleType { return iso.AlwaysValid }

// SignatureEnvelope holds an XML signature, kept verbatim.
type SignatureEnvelope struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}

func (*SignatureEnvelope) Validate(iso.PathRef) error { return nil }
