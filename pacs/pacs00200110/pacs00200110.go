// Package pacs00200110 implements the FI to FI payment status report
// pacs.002.001.10.
package pacs00200110

import (
	"context"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/rules"
)

const (
	ID   = "pacs.002.001.10"
	Root = "FIToFIPmtStsRpt"
)

// Transaction status codes used by the rules below.
const (
	StatusAccepted common.ExternalPaymentTransactionStatus1Code = "ACSC"
	StatusPending  common.ExternalPaymentTransactionStatus1Code = "PDNG"
	StatusRejected common.ExternalPaymentTransactionStatus1Code = "RJCT"
)

func init() {
	iso.Register(iso.MessageType{
		ID:    ID,
		Name:  "FIToFIPaymentStatusReportV10",
		Root:  Root,
		New:   func() iso.Message { return new(FIToFIPaymentStatusReportV10) },
		Rules: checkRules,
	})
}

var BusinessRules = []rules.Rule[*FIToFIPaymentStatusReportV10]{
	rules.UniqueBy[*FIToFIPaymentStatusReportV10]("/TxInfAndSts", "StsId"),
	rejectionsCarryReason,
	rules.CurrencyPrecision[*FIToFIPaymentStatusReportV10]("/TxInfAndSts/*/OrgnlTxRef/IntrBkSttlmAmt"),
}

func checkRules(ctx context.Context, m iso.Message) error {
	return rules.Run(ctx, iso.Root().Field(Root), m.(*FIToFIPaymentStatusReportV10), BusinessRules...)
}

// rejectionsCarryReason requires a status reason on every rejected
// transaction.
func rejectionsCarryReason(d iso.DomainCtx[*FIToFIPaymentStatusReportV10], m *FIToFIPaymentStatusReportV10) []iso.Issue {
	var out []iso.Issue
	for i, tx := range m.TxInfAndSts {
		if tx.TxSts != nil && *tx.TxSts == StatusRejected && len(tx.StsRsnInf) == 0 {
			p := d.Ref.Field("TxInfAndSts").Index(i).Field("StsRsnInf")
			out = append(out, iso.ViolationIssue(p, iso.CodeBusinessRule, "RejectionReason", map[string]any{"status": string(StatusRejected)}))
		}
	}
	return out
}

type FIToFIPaymentStatusReportV10 struct {
	GrpHdr            GroupHeader91               `xml:"GrpHdr" json:"GrpHdr"`
	OrgnlGrpInfAndSts []OriginalGroupHeader17     `xml:"OrgnlGrpInfAndSts,omitempty" json:"OrgnlGrpInfAndSts,omitempty"`
	TxInfAndSts       []PaymentTransaction110     `xml:"TxInfAndSts,omitempty" json:"TxInfAndSts,omitempty"`
	SplmtryData       []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *FIToFIPaymentStatusReportV10) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.GrpHdr.Validate(p.Field("GrpHdr")) },
		func() error { return iso.Each(p.Field("OrgnlGrpInfAndSts"), m.OrgnlGrpInfAndSts) },
		func() error { return iso.Each(p.Field("TxInfAndSts"), m.TxInfAndSts) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type GroupHeader91 struct {
	MsgId    common.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm  common.ISODateTime                                   `xml:"CreDtTm" json:"CreDtTm"`
	InstgAgt *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (h *GroupHeader91) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.MsgId.Validate(p.Field("MsgId")) },
		func() error { return h.CreDtTm.Validate(p.Field("CreDtTm")) },
		func() error { return iso.Optional(p.Field("InstgAgt"), h.InstgAgt) },
		func() error { return iso.Optional(p.Field("InstdAgt"), h.InstdAgt) },
	)
}

// OriginalGroupHeader17 reports on a whole original message.
type OriginalGroupHeader17 struct {
	OrgnlMsgId    common.Max35Text                        `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId  common.Max35Text                        `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm  *common.ISODateTime                     `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	OrgnlNbOfTxs  *common.Max15NumericText                `xml:"OrgnlNbOfTxs,omitempty" json:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum  *common.DecimalNumber                   `xml:"OrgnlCtrlSum,omitempty" json:"OrgnlCtrlSum,omitempty"`
	GrpSts        *common.ExternalPaymentGroupStatus1Code `xml:"GrpSts,omitempty" json:"GrpSts,omitempty"`
	StsRsnInf     []StatusReasonInformation12             `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
	NbOfTxsPerSts []NumberOfTransactionsPerStatus5        `xml:"NbOfTxsPerSts,omitempty" json:"NbOfTxsPerSts,omitempty"`
}

func (g *OriginalGroupHeader17) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.OrgnlMsgId.Validate(p.Field("OrgnlMsgId")) },
		func() error { return g.OrgnlMsgNmId.Validate(p.Field("OrgnlMsgNmId")) },
		func() error { return iso.Optional(p.Field("OrgnlCreDtTm"), g.OrgnlCreDtTm) },
		func() error { return iso.Optional(p.Field("OrgnlNbOfTxs"), g.OrgnlNbOfTxs) },
		func() error { return iso.Optional(p.Field("OrgnlCtrlSum"), g.OrgnlCtrlSum) },
		func() error { return iso.Optional(p.Field("GrpSts"), g.GrpSts) },
		func() error { return iso.Each(p.Field("StsRsnInf"), g.StsRsnInf) },
		func() error { return iso.Each(p.Field("NbOfTxsPerSts"), g.NbOfTxsPerSts) },
	)
}

type StatusReasonInformation12 struct {
	Orgtr    *common.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *StatusReason6Choice           `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []common.Max105Text            `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (s *StatusReasonInformation12) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Orgtr"), s.Orgtr) },
		func() error { return iso.Optional(p.Field("Rsn"), s.Rsn) },
		func() error { return iso.Each(p.Field("AddtlInf"), s.AddtlInf) },
	)
}

type StatusReason6Choice struct {
	Cd    *common.ExternalStatusReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *StatusReason6Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type NumberOfTransactionsPerStatus5 struct {
	DtldNbOfTxs common.Max15NumericText                      `xml:"DtldNbOfTxs" json:"DtldNbOfTxs"`
	DtldSts     common.ExternalPaymentTransactionStatus1Code `xml:"DtldSts" json:"DtldSts"`
	DtldCtrlSum *common.DecimalNumber                        `xml:"DtldCtrlSum,omitempty" json:"DtldCtrlSum,omitempty"`
}

func (n *NumberOfTransactionsPerStatus5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return n.DtldNbOfTxs.Validate(p.Field("DtldNbOfTxs")) },
		func() error { return n.DtldSts.Validate(p.Field("DtldSts")) },
		func() error { return iso.Optional(p.Field("DtldCtrlSum"), n.DtldCtrlSum) },
	)
}

// PaymentTransaction110 reports the status of one original transaction.
type PaymentTransaction110 struct {
	StsId             *common.Max35Text                                    `xml:"StsId,omitempty" json:"StsId,omitempty"`
	OrgnlGrpInf       *OriginalGroupInformation29                          `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId      *common.Max35Text                                    `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId   *common.Max35Text                                    `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId         *common.Max35Text                                    `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR         *common.UUIDv4Identifier                             `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	TxSts             *common.ExternalPaymentTransactionStatus1Code        `xml:"TxSts,omitempty" json:"TxSts,omitempty"`
	StsRsnInf         []StatusReasonInformation12                          `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
	ChrgsInf          []common.Charges7                                    `xml:"ChrgsInf,omitempty" json:"ChrgsInf,omitempty"`
	AccptncDtTm       *common.ISODateTime                                  `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	FctvIntrBkSttlmDt *DateAndDateTime2Choice                              `xml:"FctvIntrBkSttlmDt,omitempty" json:"FctvIntrBkSttlmDt,omitempty"`
	AcctSvcrRef       *common.Max35Text                                    `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	ClrSysRef         *common.Max35Text                                    `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
	InstgAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	OrgnlTxRef        *OriginalTransactionReference28                      `xml:"OrgnlTxRef,omitempty" json:"OrgnlTxRef,omitempty"`
	SplmtryData       []common.SupplementaryData1                          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (tx *PaymentTransaction110) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("StsId"), tx.StsId) },
		func() error { return iso.Optional(p.Field("OrgnlGrpInf"), tx.OrgnlGrpInf) },
		func() error { return iso.Optional(p.Field("OrgnlInstrId"), tx.OrgnlInstrId) },
		func() error { return iso.Optional(p.Field("OrgnlEndToEndId"), tx.OrgnlEndToEndId) },
		func() error { return iso.Optional(p.Field("OrgnlTxId"), tx.OrgnlTxId) },
		func() error { return iso.Optional(p.Field("OrgnlUETR"), tx.OrgnlUETR) },
		func() error { return iso.Optional(p.Field("TxSts"), tx.TxSts) },
		func() error { return iso.Each(p.Field("StsRsnInf"), tx.StsRsnInf) },
		func() error { return iso.Each(p.Field("ChrgsInf"), tx.ChrgsInf) },
		func() error { return iso.Optional(p.Field("AccptncDtTm"), tx.AccptncDtTm) },
		func() error { return iso.Optional(p.Field("FctvIntrBkSttlmDt"), tx.FctvIntrBkSttlmDt) },
		func() error { return iso.Optional(p.Field("AcctSvcrRef"), tx.AcctSvcrRef) },
		func() error { return iso.Optional(p.Field("ClrSysRef"), tx.ClrSysRef) },
		func() error { return iso.Optional(p.Field("InstgAgt"), tx.InstgAgt) },
		func() error { return iso.Optional(p.Field("InstdAgt"), tx.InstdAgt) },
		func() error { return iso.Optional(p.Field("OrgnlTxRef"), tx.OrgnlTxRef) },
		func() error { return iso.Each(p.Field("SplmtryData"), tx.SplmtryData) },
	)
}

type OriginalGroupInformation29 struct {
	OrgnlMsgId   common.Max35Text    `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId common.Max35Text    `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *common.ISODateTime `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (g *OriginalGroupInformation29) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.OrgnlMsgId.Validate(p.Field("OrgnlMsgId")) },
		func() error { return g.OrgnlMsgNmId.Validate(p.Field("OrgnlMsgNmId")) },
		func() error { return iso.Optional(p.Field("OrgnlCreDtTm"), g.OrgnlCreDtTm) },
	)
}

type DateAndDateTime2Choice struct {
	Dt   *common.ISODate     `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *common.ISODateTime `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (c *DateAndDateTime2Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Dt != nil, c.DtTm != nil) },
		func() error { return iso.Optional(p.Field("Dt"), c.Dt) },
		func() error { return iso.Optional(p.Field("DtTm"), c.DtTm) },
	)
}

// OriginalTransactionReference28 echoes key elements of the original
// transaction.
type OriginalTransactionReference28 struct {
	IntrBkSttlmAmt *common.ActiveOrHistoricCurrencyAndAmount            `xml:"IntrBkSttlmAmt,omitempty" json:"IntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt  *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf       *common.SettlementInstruction7                       `xml:"SttlmInf,omitempty" json:"SttlmInf,omitempty"`
	PmtTpInf       *common.PaymentTypeInformation28                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	RmtInf         *common.RemittanceInformation16                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	UltmtDbtr      *common.Party40Choice                                `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Dbtr           *common.Party40Choice                                `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct       *common.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt        *common.BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	CdtrAgt        *common.BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	Cdtr           *common.Party40Choice                                `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct       *common.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr      *common.Party40Choice                                `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
}

func (r *OriginalTransactionReference28) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("IntrBkSttlmAmt"), r.IntrBkSttlmAmt) },
		func() error { return iso.Optional(p.Field("IntrBkSttlmDt"), r.IntrBkSttlmDt) },
		func() error { return iso.Optional(p.Field("SttlmInf"), r.SttlmInf) },
		func() error { return iso.Optional(p.Field("PmtTpInf"), r.PmtTpInf) },
		func() error { return iso.Optional(p.Field("RmtInf"), r.RmtInf) },
		func() error { return iso.Optional(p.Field("UltmtDbtr"), r.UltmtDbtr) },
		func() error { return iso.Optional(p.Field("Dbtr"), r.Dbtr) },
		func() error { return iso.Optional(p.Field("DbtrAcct"), r.DbtrAcct) },
		func() error { return iso.Optional(p.Field("DbtrAgt"), r.DbtrAgt) },
		func() error { return iso.Optional(p.Field("CdtrAgt"), r.CdtrAgt) },
		func() error { return iso.Optional(p.Field("Cdtr"), r.Cdtr) },
		func() error { return iso.Optional(p.Field("CdtrAcct"), r.CdtrAcct) },
		func() error { return iso.Optional(p.Field("UltmtCdtr"), r.UltmtCdtr) },
	)
}
