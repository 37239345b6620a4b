// Package camt05500109 implements the customer payment cancellation
// request camt.055.001.09. FedNow carries it as a request for payment
// cancellation sent by the creditor.
package camt05500109

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "camt.055.001.09"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "CustomerPaymentCancellationRequestV09",
		Root: "CstmrPmtCxlReq",
		New:  func() iso.Message { return new(CustomerPaymentCancellationRequestV09) },
	})
}

var externalCancellationReason1Code = iso.NewTextType("ExternalCancellationReason1Code", iso.Length(1, 4))

type CustomerPaymentCancellationRequestV09 struct {
	Assgnmt     CaseAssignment5             `xml:"Assgnmt" json:"Assgnmt"`
	Case        *Case5                      `xml:"Case,omitempty" json:"Case,omitempty"`
	CtrlData    *ControlData1               `xml:"CtrlData,omitempty" json:"CtrlData,omitempty"`
	Undrlyg     []UnderlyingTransaction27   `xml:"Undrlyg" json:"Undrlyg"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *CustomerPaymentCancellationRequestV09) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.Assgnmt.Validate(p.Field("Assgnmt")) },
		func() error { return iso.Optional(p.Field("Case"), m.Case) },
		func() error { return iso.Optional(p.Field("CtrlData"), m.CtrlData) },
		func() error { return iso.Occurs(p.Field("Undrlyg"), len(m.Undrlyg), 1, -1) },
		func() error { return iso.Each(p.Field("Undrlyg"), m.Undrlyg) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

// CaseAssignment5 names who sent the request to whom.
type CaseAssignment5 struct {
	Id      common.Max35Text     `xml:"Id" json:"Id"`
	Assgnr  common.Party40Choice `xml:"Assgnr" json:"Assgnr"`
	Assgne  common.Party40Choice `xml:"Assgne" json:"Assgne"`
	CreDtTm common.ISODateTime   `xml:"CreDtTm" json:"CreDtTm"`
}

func (a *CaseAssignment5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return a.Id.Validate(p.Field("Id")) },
		func() error { return a.Assgnr.Validate(p.Field("Assgnr")) },
		func() error { return a.Assgne.Validate(p.Field("Assgne")) },
		func() error { return a.CreDtTm.Validate(p.Field("CreDtTm")) },
	)
}

type Case5 struct {
	Id             common.Max35Text       `xml:"Id" json:"Id"`
	Cretr          common.Party40Choice   `xml:"Cretr" json:"Cretr"`
	ReopCaseIndctn *common.YesNoIndicator `xml:"ReopCaseIndctn,omitempty" json:"ReopCaseIndctn,omitempty"`
}

func (c *Case5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return c.Id.Validate(p.Field("Id")) },
		func() error { return c.Cretr.Validate(p.Field("Cretr")) },
		func() error { return iso.Optional(p.Field("ReopCaseIndctn"), c.ReopCaseIndctn) },
	)
}

type ControlData1 struct {
	NbOfTxs common.Max15NumericText `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum *common.DecimalNumber   `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
}

func (d *ControlData1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return d.NbOfTxs.Validate(p.Field("NbOfTxs")) },
		func() error { return iso.Optional(p.Field("CtrlSum"), d.CtrlSum) },
	)
}

type UnderlyingTransaction27 struct {
	OrgnlGrpInfAndCxl *OriginalGroupHeader15         `xml:"OrgnlGrpInfAndCxl,omitempty" json:"OrgnlGrpInfAndCxl,omitempty"`
	OrgnlPmtInfAndCxl []OriginalPaymentInstruction36 `xml:"OrgnlPmtInfAndCxl,omitempty" json:"OrgnlPmtInfAndCxl,omitempty"`
}

func (u *UnderlyingTransaction27) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("OrgnlGrpInfAndCxl"), u.OrgnlGrpInfAndCxl) },
		func() error { return iso.Each(p.Field("OrgnlPmtInfAndCxl"), u.OrgnlPmtInfAndCxl) },
	)
}

type OriginalGroupHeader15 struct {
	GrpCxlId     *common.Max35Text            `xml:"GrpCxlId,omitempty" json:"GrpCxlId,omitempty"`
	Case         *Case5                       `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlMsgId   common.Max35Text             `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId common.Max35Text             `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *common.ISODateTime          `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	NbOfTxs      *common.Max15NumericText     `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum      *common.DecimalNumber        `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	GrpCxl       *common.TrueFalseIndicator   `xml:"GrpCxl,omitempty" json:"GrpCxl,omitempty"`
	CxlRsnInf    []PaymentCancellationReason5 `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty"`
}

func (h *OriginalGroupHeader15) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("GrpCxlId"), h.GrpCxlId) },
		func() error { return iso.Optional(p.Field("Case"), h.Case) },
		func() error { return h.OrgnlMsgId.Validate(p.Field("OrgnlMsgId")) },
		func() error { return h.OrgnlMsgNmId.Validate(p.Field("OrgnlMsgNmId")) },
		func() error { return iso.Optional(p.Field("OrgnlCreDtTm"), h.OrgnlCreDtTm) },
		func() error { return iso.Optional(p.Field("NbOfTxs"), h.NbOfTxs) },
		func() error { return iso.Optional(p.Field("CtrlSum"), h.CtrlSum) },
		func() error { return iso.Optional(p.Field("GrpCxl"), h.GrpCxl) },
		func() error { return iso.Each(p.Field("CxlRsnInf"), h.CxlRsnInf) },
	)
}

// OriginalPaymentInstruction36 identifies the payment information block of
// the original request for payment and the transactions to cancel in it.
type OriginalPaymentInstruction36 struct {
	PmtCxlId      *common.Max35Text                  `xml:"PmtCxlId,omitempty" json:"PmtCxlId,omitempty"`
	Case          *Case5                             `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlPmtInfId common.Max35Text                   `xml:"OrgnlPmtInfId" json:"OrgnlPmtInfId"`
	OrgnlGrpInf   *common.OriginalGroupInformation29 `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	NbOfTxs       *common.Max15NumericText           `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum       *common.DecimalNumber              `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	PmtInfCxl     *common.TrueFalseIndicator         `xml:"PmtInfCxl,omitempty" json:"PmtInfCxl,omitempty"`
	CxlRsnInf     []PaymentCancellationReason5       `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty"`
	TxInf         []PaymentTransaction124            `xml:"TxInf,omitempty" json:"TxInf,omitempty"`
}

func (i *OriginalPaymentInstruction36) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("PmtCxlId"), i.PmtCxlId) },
		func() error { return iso.Optional(p.Field("Case"), i.Case) },
		func() error { return i.OrgnlPmtInfId.Validate(p.Field("OrgnlPmtInfId")) },
		func() error { return iso.Optional(p.Field("OrgnlGrpInf"), i.OrgnlGrpInf) },
		func() error { return iso.Optional(p.Field("NbOfTxs"), i.NbOfTxs) },
		func() error { return iso.Optional(p.Field("CtrlSum"), i.CtrlSum) },
		func() error { return iso.Optional(p.Field("PmtInfCxl"), i.PmtInfCxl) },
		func() error { return iso.Each(p.Field("CxlRsnInf"), i.CxlRsnInf) },
		func() error { return iso.Each(p.Field("TxInf"), i.TxInf) },
	)
}

type PaymentCancellationReason5 struct {
	Orgtr    *common.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *CancellationReason33Choice    `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []common.Max105Text            `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (r *PaymentCancellationReason5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Orgtr"), r.Orgtr) },
		func() error { return iso.Optional(p.Field("Rsn"), r.Rsn) },
		func() error { return iso.Each(p.Field("AddtlInf"), r.AddtlInf) },
	)
}

// ExternalCancellationReason1Code is a cancellation reason such as DUPL or
// CUST.
type ExternalCancellationReason1Code string

func (v ExternalCancellationReason1Code) Validate(p iso.PathRef) error {
	return externalCancellationReason1Code.Check(p, string(v))
}
func (ExternalCancellationReason1Code) SimpleType() iso.SimpleType { return externalCancellationReason1Code }

type CancellationReason33Choice struct {
	Cd    *ExternalCancellationReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CancellationReason33Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type PaymentTransaction124 struct {
	CxlId             *common.Max35Text                         `xml:"CxlId,omitempty" json:"CxlId,omitempty"`
	Case              *Case5                                    `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlInstrId      *common.Max35Text                         `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId   *common.Max35Text                         `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlUETR         *common.UUIDv4Identifier                  `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	OrgnlInstdAmt     *common.ActiveOrHistoricCurrencyAndAmount `xml:"OrgnlInstdAmt,omitempty" json:"OrgnlInstdAmt,omitempty"`
	OrgnlReqdExctnDt  *common.DateAndDateTime2Choice            `xml:"OrgnlReqdExctnDt,omitempty" json:"OrgnlReqdExctnDt,omitempty"`
	OrgnlReqdColltnDt *common.ISODate                           `xml:"OrgnlReqdColltnDt,omitempty" json:"OrgnlReqdColltnDt,omitempty"`
	CxlRsnInf         []PaymentCancellationReason5              `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty"`
	OrgnlTxRef        *common.OriginalTransactionReference31    `xml:"OrgnlTxRef,omitempty" json:"OrgnlTxRef,omitempty"`
	SplmtryData       []common.SupplementaryData1               `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (t *PaymentTransaction124) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("CxlId"), t.CxlId) },
		func() error { return iso.Optional(p.Field("Case"), t.Case) },
		func() error { return iso.Optional(p.Field("OrgnlInstrId"), t.OrgnlInstrId) },
		func() error { return iso.Optional(p.Field("OrgnlEndToEndId"), t.OrgnlEndToEndId) },
		func() error { return iso.Optional(p.Field("OrgnlUETR"), t.OrgnlUETR) },
		func() error { return iso.Optional(p.Field("OrgnlInstdAmt"), t.OrgnlInstdAmt) },
		func() error { return iso.Optional(p.Field("OrgnlReqdExctnDt"), t.OrgnlReqdExctnDt) },
		func() error { return iso.Optional(p.Field("OrgnlReqdColltnDt"), t.OrgnlReqdColltnDt) },
		func() error { return iso.Each(p.Field("CxlRsnInf"), t.CxlRsnInf) },
		func() error { return iso.Optional(p.Field("OrgnlTxRef"), t.OrgnlTxRef) },
		func() error { return iso.Each(p.Field("SplmtryData"), t.SplmtryData) },
	)
}
