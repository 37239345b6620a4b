// Package pacs00800108 implements the FI to FI customer credit transfer
// pacs.008.001.08.
package pacs00800108

import (
	"context"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/rules"
)

const (
	ID   = "pacs.008.001.08"
	Root = "FIToFICstmrCdtTrf"
)

func init() {
	iso.Register(iso.MessageType{
		ID:    ID,
		Name:  "FIToFICustomerCreditTransferV08",
		Root:  Root,
		New:   func() iso.Message { return new(FIToFICustomerCreditTransferV08) },
		Rules: checkRules,
	})
}

// BusinessRules are the cross-field checks of the message definition.
var BusinessRules = []rules.Rule[*FIToFICustomerCreditTransferV08]{
	rules.CountEquals[*FIToFICustomerCreditTransferV08]("/GrpHdr/NbOfTxs", "/CdtTrfTxInf"),
	rules.SumEquals[*FIToFICustomerCreditTransferV08]("/GrpHdr/CtrlSum", "/CdtTrfTxInf", "IntrBkSttlmAmt"),
	rules.SumEquals[*FIToFICustomerCreditTransferV08]("/GrpHdr/TtlIntrBkSttlmAmt", "/CdtTrfTxInf", "IntrBkSttlmAmt"),
	rules.SameValue[*FIToFICustomerCreditTransferV08]("/CdtTrfTxInf/*/IntrBkSttlmAmt/Ccy"),
	rules.CurrencyPrecision[*FIToFICustomerCreditTransferV08](
		"/GrpHdr/TtlIntrBkSttlmAmt",
		"/CdtTrfTxInf/*/IntrBkSttlmAmt",
		"/CdtTrfTxInf/*/InstdAmt",
	),
	rules.UniqueBy[*FIToFICustomerCreditTransferV08]("/CdtTrfTxInf", "PmtId/TxId"),
}

func checkRules(ctx context.Context, m iso.Message) error {
	return rules.Run(ctx, iso.Root().Field(Root), m.(*FIToFICustomerCreditTransferV08), BusinessRules...)
}

type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93                 `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction39 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
	SplmtryData []common.SupplementaryData1   `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *FIToFICustomerCreditTransferV08) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.GrpHdr.Validate(p.Field("GrpHdr")) },
		func() error { return iso.Occurs(p.Field("CdtTrfTxInf"), len(m.CdtTrfTxInf), 1, -1) },
		func() error { return iso.Each(p.Field("CdtTrfTxInf"), m.CdtTrfTxInf) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type GroupHeader93 struct {
	MsgId             common.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm           common.ISODateTime                                   `xml:"CreDtTm" json:"CreDtTm"`
	BtchBookg         *common.TrueFalseIndicator                           `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs           common.Max15NumericText                              `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum           *common.DecimalNumber                                `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *common.ActiveCurrencyAndAmount                      `xml:"TtlIntrBkSttlmAmt,omitempty" json:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf          common.SettlementInstruction7                        `xml:"SttlmInf" json:"SttlmInf"`
	PmtTpInf          *common.PaymentTypeInformation28                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	InstgAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (h *GroupHeader93) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return h.MsgId.Validate(p.Field("MsgId")) },
		func() error { return h.CreDtTm.Validate(p.Field("CreDtTm")) },
		func() error { return iso.Optional(p.Field("BtchBookg"), h.BtchBookg) },
		func() error { return h.NbOfTxs.Validate(p.Field("NbOfTxs")) },
		func() error { return iso.Optional(p.Field("CtrlSum"), h.CtrlSum) },
		func() error { return iso.Optional(p.Field("TtlIntrBkSttlmAmt"), h.TtlIntrBkSttlmAmt) },
		func() error { return iso.Optional(p.Field("IntrBkSttlmDt"), h.IntrBkSttlmDt) },
		func() error { return h.SttlmInf.Validate(p.Field("SttlmInf")) },
		func() error { return iso.Optional(p.Field("PmtTpInf"), h.PmtTpInf) },
		func() error { return iso.Optional(p.Field("InstgAgt"), h.InstgAgt) },
		func() error { return iso.Optional(p.Field("InstdAgt"), h.InstdAgt) },
	)
}

// CreditTransferTransaction39 is one customer payment.
type CreditTransferTransaction39 struct {
	PmtId             PaymentIdentification7                               `xml:"PmtId" json:"PmtId"`
	PmtTpInf          *common.PaymentTypeInformation28                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt    common.ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt     *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmPrty         *common.Priority3Code                                `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	SttlmTmIndctn     *SettlementDateTimeIndication1                       `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	SttlmTmReq        *SettlementTimeRequest2                              `xml:"SttlmTmReq,omitempty" json:"SttlmTmReq,omitempty"`
	AccptncDtTm       *common.ISODateTime                                  `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	PoolgAdjstmntDt   *common.ISODate                                      `xml:"PoolgAdjstmntDt,omitempty" json:"PoolgAdjstmntDt,omitempty"`
	InstdAmt          *common.ActiveOrHistoricCurrencyAndAmount            `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	XchgRate          *common.BaseOneRate                                  `xml:"XchgRate,omitempty" json:"XchgRate,omitempty"`
	ChrgBr            common.ChargeBearerType1Code                         `xml:"ChrgBr" json:"ChrgBr"`
	ChrgsInf          []common.Charges7                                    `xml:"ChrgsInf,omitempty" json:"ChrgsInf,omitempty"`
	PrvsInstgAgt1     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt1,omitempty" json:"PrvsInstgAgt1,omitempty"`
	PrvsInstgAgt1Acct *common.CashAccount38                                `xml:"PrvsInstgAgt1Acct,omitempty" json:"PrvsInstgAgt1Acct,omitempty"`
	PrvsInstgAgt2     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt2,omitempty" json:"PrvsInstgAgt2,omitempty"`
	PrvsInstgAgt2Acct *common.CashAccount38                                `xml:"PrvsInstgAgt2Acct,omitempty" json:"PrvsInstgAgt2Acct,omitempty"`
	PrvsInstgAgt3     *common.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt3,omitempty" json:"PrvsInstgAgt3,omitempty"`
	PrvsInstgAgt3Acct *common.CashAccount38                                `xml:"PrvsInstgAgt3Acct,omitempty" json:"PrvsInstgAgt3Acct,omitempty"`
	InstgAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	IntrmyAgt1        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct    *common.CashAccount38                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	IntrmyAgt2        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt2,omitempty" json:"IntrmyAgt2,omitempty"`
	IntrmyAgt2Acct    *common.CashAccount38                                `xml:"IntrmyAgt2Acct,omitempty" json:"IntrmyAgt2Acct,omitempty"`
	IntrmyAgt3        *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt3,omitempty" json:"IntrmyAgt3,omitempty"`
	IntrmyAgt3Acct    *common.CashAccount38                                `xml:"IntrmyAgt3Acct,omitempty" json:"IntrmyAgt3Acct,omitempty"`
	UltmtDbtr         *common.PartyIdentification135                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	InitgPty          *common.PartyIdentification135                       `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr              common.PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct          *common.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt           common.BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct       *common.CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt           common.BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	CdtrAgtAcct       *common.CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr              common.PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct          *common.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr         *common.PartyIdentification135                       `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt   []common.InstructionForCreditorAgent1                `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt    []common.InstructionForNextAgent1                    `xml:"InstrForNxtAgt,omitempty" json:"InstrForNxtAgt,omitempty"`
	Purp              *common.Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RgltryRptg        []common.RegulatoryReporting3                        `xml:"RgltryRptg,omitempty" json:"RgltryRptg,omitempty"`
	Tax               *common.TaxInformation8                              `xml:"Tax,omitempty" json:"Tax,omitempty"`
	RltdRmtInf        []common.RemittanceLocation7                         `xml:"RltdRmtInf,omitempty" json:"RltdRmtInf,omitempty"`
	RmtInf            *common.RemittanceInformation16                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	SplmtryData       []common.SupplementaryData1                          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (tx *CreditTransferTransaction39) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return tx.PmtId.Validate(p.Field("PmtId")) },
		func() error { return iso.Optional(p.Field("PmtTpInf"), tx.PmtTpInf) },
		func() error { return tx.IntrBkSttlmAmt.Validate(p.Field("IntrBkSttlmAmt")) },
		func() error { return iso.Optional(p.Field("IntrBkSttlmDt"), tx.IntrBkSttlmDt) },
		func() error { return iso.Optional(p.Field("SttlmPrty"), tx.SttlmPrty) },
		func() error { return iso.Optional(p.Field("SttlmTmIndctn"), tx.SttlmTmIndctn) },
		func() error { return iso.Optional(p.Field("SttlmTmReq"), tx.SttlmTmReq) },
		func() error { return iso.Optional(p.Field("AccptncDtTm"), tx.AccptncDtTm) },
		func() error { return iso.Optional(p.Field("PoolgAdjstmntDt"), tx.PoolgAdjstmntDt) },
		func() error { return iso.Optional(p.Field("InstdAmt"), tx.InstdAmt) },
		func() error { return iso.Optional(p.Field("XchgRate"), tx.XchgRate) },
		func() error { return tx.ChrgBr.Validate(p.Field("ChrgBr")) },
		func() error { return iso.Each(p.Field("ChrgsInf"), tx.ChrgsInf) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt1"), tx.PrvsInstgAgt1) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt1Acct"), tx.PrvsInstgAgt1Acct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt2"), tx.PrvsInstgAgt2) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt2Acct"), tx.PrvsInstgAgt2Acct) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt3"), tx.PrvsInstgAgt3) },
		func() error { return iso.Optional(p.Field("PrvsInstgAgt3Acct"), tx.PrvsInstgAgt3Acct) },
		func() error { return iso.Optional(p.Field("InstgAgt"), tx.InstgAgt) },
		func() error { return iso.Optional(p.Field("InstdAgt"), tx.InstdAgt) },
		func() error { return iso.Optional(p.Field("IntrmyAgt1"), tx.IntrmyAgt1) },
		func() error { return iso.Optional(p.Field("IntrmyAgt1Acct"), tx.IntrmyAgt1Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt2"), tx.IntrmyAgt2) },
		func() error { return iso.Optional(p.Field("IntrmyAgt2Acct"), tx.IntrmyAgt2Acct) },
		func() error { return iso.Optional(p.Field("IntrmyAgt3"), tx.IntrmyAgt3) },
		func() error { return iso.Optional(p.Field("IntrmyAgt3Acct"), tx.IntrmyAgt3Acct) },
		func() error { return iso.Optional(p.Field("UltmtDbtr"), tx.UltmtDbtr) },
		func() error { return iso.Optional(p.Field("InitgPty"), tx.InitgPty) },
		func() error { return tx.Dbtr.Validate(p.Field("Dbtr")) },
		func() error { return iso.Optional(p.Field("DbtrAcct"), tx.DbtrAcct) },
		func() error { return tx.DbtrAgt.Validate(p.Field("DbtrAgt")) },
		func() error { return iso.Optional(p.Field("DbtrAgtAcct"), tx.DbtrAgtAcct) },
		func() error { return tx.CdtrAgt.Validate(p.Field("CdtrAgt")) },
		func() error { return iso.Optional(p.Field("CdtrAgtAcct"), tx.CdtrAgtAcct) },
		func() error { return tx.Cdtr.Validate(p.Field("Cdtr")) },
		func() error { return iso.Optional(p.Field("CdtrAcct"), tx.CdtrAcct) },
		func() error { return iso.Optional(p.Field("UltmtCdtr"), tx.UltmtCdtr) },
		func() error { return iso.Occurs(p.Field("InstrForCdtrAgt"), len(tx.InstrForCdtrAgt), 0, 2) },
		func() error { return iso.Each(p.Field("InstrForCdtrAgt"), tx.InstrForCdtrAgt) },
		func() error { return iso.Occurs(p.Field("InstrForNxtAgt"), len(tx.InstrForNxtAgt), 0, 6) },
		func() error { return iso.Each(p.Field("InstrForNxtAgt"), tx.InstrForNxtAgt) },
		func() error { return iso.Optional(p.Field("Purp"), tx.Purp) },
		func() error { return iso.Occurs(p.Field("RgltryRptg"), len(tx.RgltryRptg), 0, 10) },
		func() error { return iso.Each(p.Field("RgltryRptg"), tx.RgltryRptg) },
		func() error { return iso.Optional(p.Field("Tax"), tx.Tax) },
		func() error { return iso.Occurs(p.Field("RltdRmtInf"), len(tx.RltdRmtInf), 0, 10) },
		func() error { return iso.Each(p.Field("RltdRmtInf"), tx.RltdRmtInf) },
		func() error { return iso.Optional(p.Field("RmtInf"), tx.RmtInf) },
		func() error { return iso.Each(p.Field("SplmtryData"), tx.SplmtryData) },
	)
}

type PaymentIdentification7 struct {
	InstrId    *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId common.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *common.Max35Text        `xml:"TxId,omitempty" json:"TxId,omitempty"`
	UETR       *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
	ClrSysRef  *common.Max35Text        `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
}

func (id *PaymentIdentification7) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("InstrId"), id.InstrId) },
		func() error { return id.EndToEndId.Validate(p.Field("EndToEndId")) },
		func() error { return iso.Optional(p.Field("TxId"), id.TxId) },
		func() error { return iso.Optional(p.Field("UETR"), id.UETR) },
		func() error { return iso.Optional(p.Field("ClrSysRef"), id.ClrSysRef) },
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

// SettlementTimeRequest2 asks for settlement at, before or after a time of
// day.
type SettlementTimeRequest2 struct {
	CLSTm  *common.ISOTime `xml:"CLSTm,omitempty" json:"CLSTm,omitempty"`
	TillTm *common.ISOTime `xml:"TillTm,omitempty" json:"TillTm,omitempty"`
	FrTm   *common.ISOTime `xml:"FrTm,omitempty" json:"FrTm,omitempty"`
	RjctTm *common.ISOTime `xml:"RjctTm,omitempty" json:"RjctTm,omitempty"`
}

func (s *SettlementTimeRequest2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("CLSTm"), s.CLSTm) },
		func() error { return iso.Optional(p.Field("TillTm"), s.TillTm) },
		func() error { return iso.Optional(p.Field("FrTm"), s.FrTm) },
		func() error { return iso.Optional(p.Field("RjctTm"), s.RjctTm) },
	)
}
