// Package camt06000105 implements the account reporting request
// camt.060.001.05. FedNow participants send it to ask for an account
// activity or balance report.
package camt06000105

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "camt.060.001.05"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "AccountReportingRequestV05",
		Root: "AcctRptgReq",
		New:  func() iso.Message { return new(AccountReportingRequestV05) },
	})
}

var (
	messageNameIdentificationFRS1 = iso.NewTextType("MessageNameIdentification_FRS_1", iso.Pattern(`[a-z]{4,4}[.]{1,1}[0-9]{3,3}[.]{1,1}001[.]{1,1}[0-9]{2,2}`))
	queryType3Code                = iso.NewTextType("QueryType3Code", iso.Enum("ALLL", "CHNG", "MODF"))
	floorLimitType1Code           = iso.NewTextType("FloorLimitType1Code", iso.Enum("CRED", "DEBT", "BOTH"))
	externalEntryStatus1Code      = iso.NewTextType("ExternalEntryStatus1Code", iso.Length(1, 4))
	externalBalanceType1Code      = iso.NewTextType("ExternalBalanceType1Code", iso.Length(1, 4))
	externalBalanceSubType1Code   = iso.NewTextType("ExternalBalanceSubType1Code", iso.Length(1, 4))
)

type AccountReportingRequestV05 struct {
	GrpHdr      GroupHeader77               `xml:"GrpHdr" json:"GrpHdr"`
	RptgReq     []ReportingRequest5         `xml:"RptgReq" json:"RptgReq"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *AccountReportingRequestV05) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.GrpHdr.Validate(p.Field("GrpHdr")) },
		func() error { return iso.Occurs(p.Field("RptgReq"), len(m.RptgReq), 1, -1) },
		func() error { return iso.Each(p.Field("RptgReq"), m.RptgReq) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type GroupHeader77 struct {
	MsgId   common.Max35Text      `xml:"MsgId" json:"MsgId"`
	CreDtTm common.ISODateTime    `xml:"CreDtTm" json:"CreDtTm"`
	MsgSndr *common.Party40Choice `xml:"MsgSndr,omitempty" json:"MsgSndr,omitempty"`
}

func (h *GroupHeader77) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.MsgId.Validate(p.Field("MsgId")) },
		func() error { return h.CreDtTm.Validate(p.Field("CreDtTm")) },
		func() error { return iso.Optional(p.Field("MsgSndr"), h.MsgSndr) },
	)
}

// MessageNameIdentificationFRS1 is a message identifier such as
// camt.052.001.08.
type MessageNameIdentificationFRS1 string

func (v MessageNameIdentificationFRS1) Validate(p iso.PathRef) error {
	return messageNameIdentificationFRS1.Check(p, string(v))
}
func (MessageNameIdentificationFRS1) SimpleType() iso.SimpleType { return messageNameIdentificationFRS1 }

// ReportingRequest5 names the report wanted, the account it covers and the
// window of entries or balances to include.
type ReportingRequest5 struct {
	Id          *common.Max35Text                                    `xml:"Id,omitempty" json:"Id,omitempty"`
	ReqdMsgNmId MessageNameIdentificationFRS1                        `xml:"ReqdMsgNmId" json:"ReqdMsgNmId"`
	Acct        *common.CashAccount38                                `xml:"Acct,omitempty" json:"Acct,omitempty"`
	AcctOwnr    common.Party40Choice                                 `xml:"AcctOwnr" json:"AcctOwnr"`
	AcctSvcr    *common.BranchAndFinancialInstitutionIdentification6 `xml:"AcctSvcr,omitempty" json:"AcctSvcr,omitempty"`
	RptgPrd     *ReportingPeriod2                                    `xml:"RptgPrd,omitempty" json:"RptgPrd,omitempty"`
	RptgSeq     *common.SequenceRange1Choice                         `xml:"RptgSeq,omitempty" json:"RptgSeq,omitempty"`
	ReqdTxTp    *TransactionType2                                    `xml:"ReqdTxTp,omitempty" json:"ReqdTxTp,omitempty"`
	ReqdBalTp   []BalanceType13                                      `xml:"ReqdBalTp,omitempty" json:"ReqdBalTp,omitempty"`
}

func (r *ReportingRequest5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Id"), r.Id) },
		func() error { return r.ReqdMsgNmId.Validate(p.Field("ReqdMsgNmId")) },
		func() error { return iso.Optional(p.Field("Acct"), r.Acct) },
		func() error { return r.AcctOwnr.Validate(p.Field("AcctOwnr")) },
		func() error { return iso.Optional(p.Field("AcctSvcr"), r.AcctSvcr) },
		func() error { return iso.Optional(p.Field("RptgPrd"), r.RptgPrd) },
		func() error { return iso.Optional(p.Field("RptgSeq"), r.RptgSeq) },
		func() error { return iso.Optional(p.Field("ReqdTxTp"), r.ReqdTxTp) },
		func() error { return iso.Each(p.Field("ReqdBalTp"), r.ReqdBalTp) },
	)
}

type ReportingPeriod2 struct {
	FrToDt DatePeriodDetails1  `xml:"FrToDt" json:"FrToDt"`
	FrToTm *TimePeriodDetails1 `xml:"FrToTm,omitempty" json:"FrToTm,omitempty"`
	Tp     QueryType3Code      `xml:"Tp" json:"Tp"`
}

func (r *ReportingPeriod2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.FrToDt.Validate(p.Field("FrToDt")) },
		func() error { return iso.Optional(p.Field("FrToTm"), r.FrToTm) },
		func() error { return r.Tp.Validate(p.Field("Tp")) },
	)
}

type DatePeriodDetails1 struct {
	FrDt common.ISODate  `xml:"FrDt" json:"FrDt"`
	ToDt *common.ISODate `xml:"ToDt,omitempty" json:"ToDt,omitempty"`
}

func (d *DatePeriodDetails1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return d.FrDt.Validate(p.Field("FrDt")) },
		func() error { return iso.Optional(p.Field("ToDt"), d.ToDt) },
	)
}

type TimePeriodDetails1 struct {
	FrTm common.ISOTime  `xml:"FrTm" json:"FrTm"`
	ToTm *common.ISOTime `xml:"ToTm,omitempty" json:"ToTm,omitempty"`
}

func (t *TimePeriodDetails1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return t.FrTm.Validate(p.Field("FrTm")) },
		func() error { return iso.Optional(p.Field("ToTm"), t.ToTm) },
	)
}

type QueryType3Code string

func (v QueryType3Code) Validate(p iso.PathRef) error {
	return queryType3Code.Check(p, string(v))
}
func (QueryType3Code) SimpleType() iso.SimpleType { return queryType3Code }

type TransactionType2 struct {
	Sts       EntryStatus1Choice     `xml:"Sts" json:"Sts"`
	CdtDbtInd common.CreditDebitCode `xml:"CdtDbtInd" json:"CdtDbtInd"`
	FlrLmt    []Limit2               `xml:"FlrLmt,omitempty" json:"FlrLmt,omitempty"`
}

func (t *TransactionType2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return t.Sts.Validate(p.Field("Sts")) },
		func() error { return t.CdtDbtInd.Validate(p.Field("CdtDbtInd")) },
		func() error { return iso.Occurs(p.Field("FlrLmt"), len(t.FlrLmt), 0, 2) },
		func() error { return iso.Each(p.Field("FlrLmt"), t.FlrLmt) },
	)
}

type ExternalEntryStatus1Code string

func (v ExternalEntryStatus1Code) Validate(p iso.PathRef) error {
	return externalEntryStatus1Code.Check(p, string(v))
}
func (ExternalEntryStatus1Code) SimpleType() iso.SimpleType { return externalEntryStatus1Code }

type EntryStatus1Choice struct {
	Cd    *ExternalEntryStatus1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *EntryStatus1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type FloorLimitType1Code string

func (v FloorLimitType1Code) Validate(p iso.PathRef) error {
	return floorLimitType1Code.Check(p, string(v))
}
func (FloorLimitType1Code) SimpleType() iso.SimpleType { return floorLimitType1Code }

// Limit2 is a floor below which entries are left out of the report.
type Limit2 struct {
	Amt       common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd FloorLimitType1Code                      `xml:"CdtDbtInd" json:"CdtDbtInd"`
}

func (l *Limit2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return l.Amt.Validate(p.Field("Amt")) },
		func() error { return l.CdtDbtInd.Validate(p.Field("CdtDbtInd")) },
	)
}

type BalanceType13 struct {
	CdOrPrtry BalanceType10Choice    `xml:"CdOrPrtry" json:"CdOrPrtry"`
	SubTp     *BalanceSubType1Choice `xml:"SubTp,omitempty" json:"SubTp,omitempty"`
}

func (b *BalanceType13) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return b.CdOrPrtry.Validate(p.Field("CdOrPrtry")) },
		func() error { return iso.Optional(p.Field("SubTp"), b.SubTp) },
	)
}

type ExternalBalanceType1Code string

func (v ExternalBalanceType1Code) Validate(p iso.PathRef) error {
	return externalBalanceType1Code.Check(p, string(v))
}
func (ExternalBalanceType1Code) SimpleType() iso.SimpleType { return externalBalanceType1Code }

type BalanceType10Choice struct {
	Cd    *ExternalBalanceType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *BalanceType10Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type ExternalBalanceSubType1Code string

func (v ExternalBalanceSubType1Code) Validate(p iso.PathRef) error {
	return externalBalanceSubType1Code.Check(p, string(v))
}
func (ExternalBalanceSubType1Code) SimpleType() iso.SimpleType { return externalBalanceSubType1Code }

type BalanceSubType1Choice struct {
	Cd    *ExternalBalanceSubType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *BalanceSubType1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}
