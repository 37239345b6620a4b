// Package pacs00400110 implements the payment return pacs.004.001.10. A
// FedNow participant uses it to send back the funds of a settled credit
// transfer.
package pacs00400110

import (
	"context"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/rules"
)

const (
	ID   = "pacs.004.001.10"
	Root = "PmtRtr"
)

func init() {
	iso.Register(iso.MessageType{
		ID:    ID,
		Name:  "PaymentReturnV10",
		Root:  Root,
		New:   func() iso.Message { return new(PaymentReturnV10) },
		Rules: checkRules,
	})
}

// BusinessRules are the cross-field checks of the message definition.
var BusinessRules = []rules.Rule[*PaymentReturnV10]{
	rules.CountEquals[*PaymentReturnV10]("/GrpHdr/NbOfTxs", "/TxInf"),
	rules.SumEquals[*PaymentReturnV10]("/GrpHdr/CtrlSum", "/TxInf", "RtrdIntrBkSttlmAmt"),
	rules.SumEquals[*PaymentReturnV10]("/GrpHdr/TtlRtrdIntrBkSttlmAmt", "/TxInf", "RtrdIntrBkSttlmAmt"),
	rules.SameValue[*PaymentReturnV10]("/TxInf/*/RtrdIntrBkSttlmAmt/Ccy"),
	rules.CurrencyPrecision[*PaymentReturnV10]("/GrpHdr/TtlRtrdIntrBkSttlmAmt", "/TxInf/*/RtrdIntrBkSttlmAmt"),
}

func checkRules(ctx context.Context, m iso.Message) error {
	return rules.Run(ctx, iso.Root().Field(Root), m.(*PaymentReturnV10), BusinessRules...)
}

var (
	authorisation1Code                    = iso.NewTextType("Authorisation1Code", iso.Enum("AUTH", "FDET", "FSUM", "ILEV"))
	externalReturnReason1Code             = iso.NewTextType("ExternalReturnReason1Code", iso.Length(1, 4))
	externalCreditorAgentInstruction1Code = iso.NewTextType("ExternalCreditorAgentInstruction1Code", iso.Length(1, 4))
)

type PaymentReturnV10 struct {
	GrpHdr      GroupHeader90               `xml:"GrpHdr" json:"GrpHdr"`
	OrgnlGrpInf *OriginalGroupHeader18      `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	TxInf       []PaymentTransaction118     `xml:"TxInf,omitempty" json:"TxInf,omitempty"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *PaymentReturnV10) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.GrpHdr.Validate(p.Field("GrpHdr")) },
		func() error { return iso.Optional(p.Field("OrgnlGrpInf"), m.OrgnlGrpInf) },
		func() error { return iso.Each(p.Field("TxInf"), m.TxInf) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type GroupHeader90 struct {
	MsgId                 common.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm               common.ISODateTime                                   `xml:"CreDtTm" json:"CreDtTm"`
	Authstn               []Authorisation1Choice                               `xml:"Authstn,omitempty" json:"Authstn,omitempty"`
	BtchBookg             *common.TrueFalseIndicator                           `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs               common.Max15NumericText                              `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum               *common.DecimalNumber                                `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	GrpRtr                *common.TrueFalseIndicator                           `xml:"GrpRtr,omitempty" json:"GrpRtr,omitempty"`
	TtlRtrdIntrBkSttlmAmt *common.ActiveCurrencyAndAmount                      `xml:"TtlRtrdIntrBkSttlmAmt,omitempty" json:"TtlRtrdIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt         *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf              common.SettlementInstruction7                        `xml:"SttlmInf" json:"SttlmInf"`
	InstgAgt              *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt              *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (h *GroupHeader90) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.MsgId.Validate(p.Field("MsgId")) },
		func() error { return h.CreDtTm.Validate(p.Field("CreDtTm")) },
		func() error { return iso.Occurs(p.Field("Authstn"), len(h.Authstn), 0, 2) },
		func() error { return iso.Each(p.Field("Authstn"), h.Authstn) },
		func() error { return iso.Optional(p.Field("BtchBookg"), h.BtchBookg) },
		func() error { return h.NbOfTxs.Validate(p.Field("NbOfTxs")) },
		func() error { return iso.Optional(p.Field("CtrlSum"), h.CtrlSum) },
		func() error { return iso.Optional(p.Field("GrpRtr"), h.GrpRtr) },
		func() error { return iso.Optional(p.Field("TtlRtrdIntrBkSttlmAmt"), h.TtlRtrdIntrBkSttlmAmt) },
		func() error { return iso.Optional(p.Field("IntrBkSttlmDt"), h.IntrBkSttlmDt) },
		func() error { return h.SttlmInf.Validate(p.Field("SttlmInf")) },
		func() error { return iso.Optional(p.Field("InstgAgt"), h.InstgAgt) },
		func() error { return iso.Optional(p.Field("InstdAgt"), h.InstdAgt) },
	)
}

type Authorisation1Code string

func (v Authorisation1Code) Validate(p iso.PathRef) error {
	return authorisation1Code.Check(p, string(v))
}
func (Authorisation1Code) SimpleType() iso.SimpleType { return authorisation1Code }

type Authorisation1Choice struct {
	Cd    *Authorisation1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max128Text  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *Authorisation1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type OriginalGroupHeader18 struct {
	OrgnlMsgId   common.Max35Text       `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId common.Max35Text       `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *common.ISODateTime    `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	RtrRsnInf    []PaymentReturnReason6 `xml:"RtrRsnInf,omitempty" json:"RtrRsnInf,omitempty"`
}

func (h *OriginalGroupHeader18) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.OrgnlMsgId.Validate(p.Field("OrgnlMsgId")) },
		func() error { return h.OrgnlMsgNmId.Validate(p.Field("OrgnlMsgNmId")) },
		func() error { return iso.Optional(p.Field("OrgnlCreDtTm"), h.OrgnlCreDtTm) },
		func() error { return iso.Each(p.Field("RtrRsnInf"), h.RtrRsnInf) },
	)
}

type PaymentReturnReason6 struct {
	Orgtr    *common.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *ReturnReason5Choice           `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []common.Max105Text            `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (r *PaymentReturnReason6) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Orgtr"), r.Orgtr) },
		func() error { return iso.Optional(p.Field("Rsn"), r.Rsn) },
		func() error { return iso.Each(p.Field("AddtlInf"), r.AddtlInf) },
	)
}

// ExternalReturnReason1Code is a return reason such as AC04 or FOCR.
type ExternalReturnReason1Code string

func (v ExternalReturnReason1Code) Validate(p iso.PathRef) error {
	return externalReturnReason1Code.Check(p, string(v))
}
func (ExternalReturnReason1Code) SimpleType() iso.SimpleType { return externalReturnReason1Code }

type ReturnReason5Choice struct {
	Cd    *ExternalReturnReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ReturnReason5Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// PaymentTransaction118 is one returned transaction. Only the returned
// interbank settlement amount is mandatory.
type PaymentTransaction118 struct {
	RtrId               *common.Max35Text                                    `xml:"RtrId,omitempty" json:"RtrId,omitempty"`
	OrgnlGrpInf         *common.OriginalGroupInformation29                   `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *common.Max35Text                                    `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *common.Max35Text                                    `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *common.Max35Text                                    `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR           *common.UUIDv4Identifier                             `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	OrgnlClrSysRef      *common.Max35Text                                    `xml:"OrgnlClrSysRef,omitempty" json:"OrgnlClrSysRef,omitempty"`
	OrgnlIntrBkSttlmAmt *common.ActiveOrHistoricCurrencyAndAmount            `xml:"OrgnlIntrBkSttlmAmt,omitempty" json:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *common.ISODate                                      `xml:"OrgnlIntrBkSttlmDt,omitempty" json:"OrgnlIntrBkSttlmDt,omitempty"`
	RtrdIntrBkSttlmAmt  common.ActiveCurrencyAndAmount                       `xml:"RtrdIntrBkSttlmAmt" json:"RtrdIntrBkSttlmAmt"`
	IntrBkSttlmDt       *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmPrty           *common.Priority3Code                                `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	SttlmTmIndctn       *SettlementDateTimeIndication1                       `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	RtrdInstdAmt        *common.ActiveOrHistoricCurrencyAndAmount            `xml:"RtrdInstdAmt,omitempty" json:"RtrdInstdAmt,omitempty"`
	XchgRate            *common.BaseOneRate                                  `xml:"XchgRate,omitempty" json:"XchgRate,omitempty"`
	CompstnAmt          *common.ActiveOrHistoricCurrencyAndAmount            `xml:"CompstnAmt,omitempty" json:"CompstnAmt,omitempty"`
	ChrgBr              *common.ChargeBearerType1Code                        `xml:"ChrgBr,omitempty" json:"ChrgBr,omitempty"`
	ChrgsInf            []common.Charges7                                    `xml:"ChrgsInf,omitempty" json:"ChrgsInf,omitempty"`
	ClrSysRef           *common.Max35Text                                    `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
	InstgAgt            *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt            *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	RtrChain            *TransactionParties8                                 `xml:"RtrChain,omitempty" json:"RtrChain,omitempty"`
	RtrRsnInf           []PaymentReturnReason6                               `xml:"RtrRsnInf,omitempty" json:"RtrRsnInf,omitempty"`
	OrgnlTxRef          *OriginalTransactionReference32                      `xml:"OrgnlTxRef,omitempty" json:"OrgnlTxRef,omitempty"`
	SplmtryData         []common.SupplementaryData1                          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (t *PaymentTransaction118) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("RtrId"), t.RtrId) },
		func() error { return iso.Optional(p.Field("OrgnlGrpInf"), t.OrgnlGrpInf) },
		func() error { return iso.Optional(p.Field("OrgnlInstrId"), t.OrgnlInstrId) },
		func() error { return iso.Optional(p.Field("OrgnlEndToEndId"), t.OrgnlEndToEndId) },
		func() error { return iso.Optional(p.Field("OrgnlTxId"), t.OrgnlTxId) },
		func() error { return iso.Optional(p.Field("OrgnlUETR"), t.OrgnlUETR) },
		func() error { return iso.Optional(p.Field("OrgnlClrSysRef"), t.OrgnlClrSysRef) },
		func() error { return iso.Optional(p.Field("OrgnlIntrBkSttlmAmt"), t.OrgnlIntrBkSttlmAmt) },
		func() error { return iso.Optional(p.Field("OrgnlIntrBkSttlmDt"), t.OrgnlIntrBkSttlmDt) },
		func() error { return t.RtrdIntrBkSttlmAmt.Validate(p.Field("RtrdIntrBkSttlmAmt")) },
		func() error { return iso.Optional(p.Field("IntrBkSttlmDt"), t.IntrBkSttlmDt) },
		func() error { return iso.Optional(p.Field("SttlmPrty"), t.SttlmPrty) },
		func() error { return iso.Optional(p.Field("SttlmTmIndctn"), t.SttlmTmIndctn) },
		func() error { return iso.Optional(p.Field("RtrdInstdAmt"), t.RtrdInstdAmt) },
		func() error { return iso.Optional(p.Field("XchgRate"), t.XchgRate) },
		func() error { return iso.Optional(p.Field("CompstnAmt"), t.CompstnAmt) },
		func() error { return iso.Optional(p.Field("ChrgBr"), t.ChrgBr) },
		func() error { return iso.Each(p.Field("ChrgsInf"), t.ChrgsInf) },
		func() error { return iso.Optional(p.Field("ClrSysRef"), t.ClrSysRef) },
		func() error { return iso.Optional(p.Field("InstgAgt"), t.InstgAgt) },
		func() error { return iso.Optional(p.Field("InstdAgt"), t.InstdAgt) },
		func() error { return iso.Optional(p.Field("RtrChain"), t.RtrChain) },
		func() error { return iso.Each(p.Field("RtrRsnInf"), t.RtrRsnInf) },
		func() error { return iso.Optional(p.Field("OrgnlTxRef"), t.OrgnlTxRef) },
		func() error { return iso.Each(p.Field("SplmtryData"), t.SplmtryData) },
	)
}

type SettlementDateTimeIndication1 struct {
	DbtDtTm *common.ISODateTime `xml:"DbtDtTm,omitempty" json:"DbtDtTm,omitempty"`
	CdtDtTm *common.ISODateTime `xml:"CdtDtTm,omitempty" json:"CdtDtTm,omitempty"`
}

func (s *SettlementDateTimeIndication1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("DbtDtTm"), s.DbtDtTm) },
		func() error { return iso.Optional(p.Field("CdtDtTm"), s.CdtDtTm) },
	)
}

// TransactionParties8 is the chain of parties the return travels through.
type TransactionParties8 struct {
	UltmtDbtr         *common.Party40Choice                                `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Dbtr              common.Party40Choice                                 `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct          *common.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	InitgPty          *common.Party40Choice                                `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	DbtrAgt           *common.BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	DbtrAgtAcct       *common.CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	PrvsInstgAgt1     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt1,omitempty" json:"PrvsInstgAgt1,omitempty"`
	PrvsInstgAgt1Acct *common.CashAccount38                                `xml:"PrvsInstgAgt1Acct,omitempty" json:"PrvsInstgAgt1Acct,omitempty"`
	PrvsInstgAgt2     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt2,omitempty" json:"PrvsInstgAgt2,omitempty"`
	PrvsInstgAgt2Acct *common.CashAccount38                                `xml:"PrvsInstgAgt2Acct,omitempty" json:"PrvsInstgAgt2Acct,omitempty"`
	PrvsInstgAgt3     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt3,omitempty" json:"PrvsInstgAgt3,omitempty"`
	PrvsInstgAgt3Acct *common.CashAccount38                                `xml:"PrvsInstgAgt3Acct,omitempty" json:"PrvsInstgAgt3Acct,omitempty"`
	IntrmyAgt1        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct    *common.CashAccount38                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	IntrmyAgt2        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt2,omitempty" json:"IntrmyAgt2,omitempty"`
	IntrmyAgt2Acct    *common.CashAccount38                                `xml:"IntrmyAgt2Acct,omitempty" json:"IntrmyAgt2Acct,omitempty"`
	IntrmyAgt3        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt3,omitempty" json:"IntrmyAgt3,omitempty"`
	IntrmyAgt3Acct    *common.CashAccount38                                `xml:"IntrmyAgt3Acct,omitempty" json:"IntrmyAgt3Acct,omitempty"`
	CdtrAgt           *common.BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct       *common.CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr              common.Party40Choice                                 `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct          *common.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr         *common.Party40Choice                                `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
}

func (c *TransactionParties8) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("UltmtDbtr"), c.UltmtDbtr) },
		func() error { return c.Dbtr.Validate(p.Field("Dbtr")) },
		func() error { return iso.Optional(p.Field("DbtrAcct"), c.DbtrAcct) },
		func() error { return iso.Optional(p.Field("InitgPty"), c.InitgPty) },
		func() error { return iso.Optional(p.Field("DbtrAgt"), c.DbtrAgt) },
		func() error { return iso.Optional(p.Field("DbtrAgtAcct"), c.DbtrAgtAcct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt1"), c.PrvsInstgAgt1) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt1Acct"), c.PrvsInstgAgt1Acct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt2"), c.PrvsInstgAgt2) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt2Acct"), c.PrvsInstgAgt2Acct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt3"), c.PrvsInstgAgt3) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt3Acct"), c.PrvsInstgAgt3Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt1"), c.IntrmyAgt1) },
		func() error { return iso.Optional(p.Field("IntrmyAgt1Acct"), c.IntrmyAgt1Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt2"), c.IntrmyAgt2) },
		func() error { return iso.Optional(p.Field("IntrmyAgt2Acct"), c.IntrmyAgt2Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt3"), c.IntrmyAgt3) },
		func() error { return iso.Optional(p.Field("IntrmyAgt3Acct"), c.IntrmyAgt3Acct) },
		func() error { return iso.Optional(p.Field("CdtrAgt"), c.CdtrAgt) },
		func() error { return iso.Optional(p.Field("CdtrAgtAcct"), c.CdtrAgtAcct) },
		func() error { return c.Cdtr.Validate(p.Field("Cdtr")) },
		func() error { return iso.Optional(p.Field("CdtrAcct"), c.CdtrAcct) },
		func() error { return iso.Optional(p.Field("UltmtCdtr"), c.UltmtCdtr) },
	)
}

type OriginalTransactionReference32 struct {
	IntrBkSttlmAmt     *common.ActiveOrHistoricCurrencyAndAmount            `xml:"IntrBkSttlmAmt,omitempty" json:"IntrBkSttlmAmt,omitempty"`
	Amt                *common.AmountType4Choice                            `xml:"Amt,omitempty" json:"Amt,omitempty"`
	IntrBkSttlmDt      *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	ReqdColltnDt       *common.ISODate                                      `xml:"ReqdColltnDt,omitempty" json:"ReqdColltnDt,omitempty"`
	ReqdExctnDt        *common.DateAndDateTime2Choice                       `xml:"ReqdExctnDt,omitempty" json:"ReqdExctnDt,omitempty"`
	CdtrSchmeId        *common.PartyIdentification135                       `xml:"CdtrSchmeId,omitempty" json:"CdtrSchmeId,omitempty"`
	SttlmInf           *common.SettlementInstruction7                       `xml:"SttlmInf,omitempty" json:"SttlmInf,omitempty"`
	PmtTpInf           *common.PaymentTypeInformation27                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	PmtMtd             *common.PaymentMethod4Code                           `xml:"PmtMtd,omitempty" json:"PmtMtd,omitempty"`
	MndtRltdInf        *common.MandateRelatedData1Choice                    `xml:"MndtRltdInf,omitempty" json:"MndtRltdInf,omitempty"`
	RmtInf             *common.RemittanceInformation16                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	UltmtDbtr          *common.Party40Choice                                `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Dbtr               *common.Party40Choice                                `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct           *common.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt            *common.BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	DbtrAgtAcct        *common.CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt            *common.BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct        *common.CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr               *common.Party40Choice                                `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct           *common.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr          *common.Party40Choice                                `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	Purp               *common.Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
	UndrlygCstmrCdtTrf *CreditTransferTransaction45                         `xml:"UndrlygCstmrCdtTrf,omitempty" json:"UndrlygCstmrCdtTrf,omitempty"`
}

func (r *OriginalTransactionReference32) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("IntrBkSttlmAmt"), r.IntrBkSttlmAmt) },
		func() error { return iso.Optional(p.Field("Amt"), r.Amt) },
		func() error { return iso.Optional(p.Field("IntrBkSttlmDt"), r.IntrBkSttlmDt) },
		func() error { return iso.Optional(p.Field("ReqdColltnDt"), r.ReqdColltnDt) },
		func() error { return iso.Optional(p.Field("ReqdExctnDt"), r.ReqdExctnDt) },
		func() error { return iso.Optional(p.Field("CdtrSchmeId"), r.CdtrSchmeId) },
		func() error { return iso.Optional(p.Field("SttlmInf"), r.SttlmInf) },
		func() error { return iso.Optional(p.Field("PmtTpInf"), r.PmtTpInf) },
		func() error { return iso.Optional(p.Field("PmtMtd"), r.PmtMtd) },
		func() error { return iso.Optional(p.Field("MndtRltdInf"), r.MndtRltdInf) },
		func() error { return iso.Optional(p.Field("RmtInf"), r.RmtInf) },
		func() error { return iso.Optional(p.Field("UltmtDbtr"), r.UltmtDbtr) },
		func() error { return iso.Optional(p.Field("Dbtr"), r.Dbtr) },
		func() error { return iso.Optional(p.Field("DbtrAcct"), r.DbtrAcct) },
		func() error { return iso.Optional(p.Field("DbtrAgt"), r.DbtrAgt) },
		func() error { return iso.Optional(p.Field("DbtrAgtAcct"), r.DbtrAgtAcct) },
		func() error { return iso.Optional(p.Field("CdtrAgt"), r.CdtrAgt) },
		func() error { return iso.Optional(p.Field("CdtrAgtAcct"), r.CdtrAgtAcct) },
		func() error { return iso.Optional(p.Field("Cdtr"), r.Cdtr) },
		func() error { return iso.Optional(p.Field("CdtrAcct"), r.CdtrAcct) },
		func() error { return iso.Optional(p.Field("UltmtCdtr"), r.UltmtCdtr) },
		func() error { return iso.Optional(p.Field("Purp"), r.Purp) },
		func() error { return iso.Optional(p.Field("UndrlygCstmrCdtTrf"), r.UndrlygCstmrCdtTrf) },
	)
}

// CreditTransferTransaction45 is the underlying customer credit transfer
// of the returned payment.
type CreditTransferTransaction45 struct {
	UltmtDbtr         *common.PartyIdentification135                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	InitgPty          *common.PartyIdentification135                       `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr              common.PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct          *common.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt           common.BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct       *common.CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	PrvsInstgAgt1     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt1,omitempty" json:"PrvsInstgAgt1,omitempty"`
	PrvsInstgAgt1Acct *common.CashAccount38                                `xml:"PrvsInstgAgt1Acct,omitempty" json:"PrvsInstgAgt1Acct,omitempty"`
	PrvsInstgAgt2     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt2,omitempty" json:"PrvsInstgAgt2,omitempty"`
	PrvsInstgAgt2Acct *common.CashAccount38                                `xml:"PrvsInstgAgt2Acct,omitempty" json:"PrvsInstgAgt2Acct,omitempty"`
	PrvsInstgAgt3     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt3,omitempty" json:"PrvsInstgAgt3,omitempty"`
	PrvsInstgAgt3Acct *common.CashAccount38                                `xml:"PrvsInstgAgt3Acct,omitempty" json:"PrvsInstgAgt3Acct,omitempty"`
	IntrmyAgt1        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct    *common.CashAccount38                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	IntrmyAgt2        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt2,omitempty" json:"IntrmyAgt2,omitempty"`
	IntrmyAgt2Acct    *common.CashAccount38                                `xml:"IntrmyAgt2Acct,omitempty" json:"IntrmyAgt2Acct,omitempty"`
	IntrmyAgt3        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt3,omitempty" json:"IntrmyAgt3,omitempty"`
	IntrmyAgt3Acct    *common.CashAccount38                                `xml:"IntrmyAgt3Acct,omitempty" json:"IntrmyAgt3Acct,omitempty"`
	CdtrAgt           common.BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	CdtrAgtAcct       *common.CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr              common.PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct          *common.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr         *common.PartyIdentification135                       `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt   []InstructionForCreditorAgent3                       `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt    []common.InstructionForNextAgent1                    `xml:"InstrForNxtAgt,omitempty" json:"InstrForNxtAgt,omitempty"`
	Tax               *common.TaxInformation8                              `xml:"Tax,omitempty" json:"Tax,omitempty"`
	RmtInf            *common.RemittanceInformation16                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	InstdAmt          *common.ActiveOrHistoricCurrencyAndAmount            `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
}

func (t *CreditTransferTransaction45) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("UltmtDbtr"), t.UltmtDbtr) },
		func() error { return iso.Optional(p.Field("InitgPty"), t.InitgPty) },
		func() error { return t.Dbtr.Validate(p.Field("Dbtr")) },
		func() error { return iso.Optional(p.Field("DbtrAcct"), t.DbtrAcct) },
		func() error { return t.DbtrAgt.Validate(p.Field("DbtrAgt")) },
		func() error { return iso.Optional(p.Field("DbtrAgtAcct"), t.DbtrAgtAcct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt1"), t.PrvsInstgAgt1) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt1Acct"), t.PrvsInstgAgt1Acct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt2"), t.PrvsInstgAgt2) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt2Acct"), t.PrvsInstgAgt2Acct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt3"), t.PrvsInstgAgt3) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt3Acct"), t.PrvsInstgAgt3Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt1"), t.IntrmyAgt1) },
		func() error { return iso.Optional(p.Field("IntrmyAgt1Acct"), t.IntrmyAgt1Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt2"), t.IntrmyAgt2) },
		func() error { return iso.Optional(p.Field("IntrmyAgt2Acct"), t.IntrmyAgt2Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt3"), t.IntrmyAgt3) },
		func() error { return iso.Optional(p.Field("IntrmyAgt3Acct"), t.IntrmyAgt3Acct) },
		func() error { return t.CdtrAgt.Validate(p.Field("CdtrAgt")) },
		func() error { return iso.Optional(p.Field("CdtrAgtAcct"), t.CdtrAgtAcct) },
		func() error { return t.Cdtr.Validate(p.Field("Cdtr")) },
		func() error { return iso.Optional(p.Field("CdtrAcct"), t.CdtrAcct) },
		func() error { return iso.Optional(p.Field("UltmtCdtr"), t.UltmtCdtr) },
		func() error { return iso.Each(p.Field("InstrForCdtrAgt"), t.InstrForCdtrAgt) },
		func() error { return iso.Each(p.Field("InstrForNxtAgt"), t.InstrForNxtAgt) },
		func() error { return iso.Optional(p.Field("Tax"), t.Tax) },
		func() error { return iso.Optional(p.Field("RmtInf"), t.RmtInf) },
		func() error { return iso.Optional(p.Field("InstdAmt"), t.InstdAmt) },
	)
}

type ExternalCreditorAgentInstruction1Code string

func (v ExternalCreditorAgentInstruction1Code) Validate(p iso.PathRef) error {
	return externalCreditorAgentInstruction1Code.Check(p, string(v))
}
func (ExternalCreditorAgentInstruction1Code) SimpleType() iso.SimpleType { return externalCreditorAgentInstruction1Code }

type InstructionForCreditorAgent3 struct {
	Cd       *ExternalCreditorAgentInstruction1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *common.Max140Text                     `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i *InstructionForCreditorAgent3) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Cd"), i.Cd) },
		func() error { return iso.Optional(p.Field("InstrInf"), i.InstrInf) },
	)
}
