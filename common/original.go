package common

import iso "github.com/reoring/iso20022"

var (
	paymentMethod4Code = iso.NewTextType("PaymentMethod4Code", iso.Enum("CHK", "TRF", "DD", "TRA"))
	sequenceType3Code  = iso.NewTextType("SequenceType3Code", iso.Enum("FRST", "RCUR", "FNAL", "OOFF", "RPRE"))
)

type PaymentMethod4Code string

func (v PaymentMethod4Code) Validate(p iso.PathRef) error {
	return paymentMethod4Code.Check(p, string(v))
}
func (PaymentMethod4Code) SimpleType() iso.SimpleType { return paymentMethod4Code }

type SequenceType3Code string

func (v SequenceType3Code) Validate(p iso.PathRef) error {
	return sequenceType3Code.Check(p, string(v))
}
func (SequenceType3Code) SimpleType() iso.SimpleType { return sequenceType3Code }

// OriginalGroupInformation29 points back at the message an exception
// or investigation refers to.
type OriginalGroupInformation29 struct {
	OrgnlMsgId   Max35Text    `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId Max35Text    `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *ISODateTime `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (g *OriginalGroupInformation29) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.OrgnlMsgId.Validate(p.Field("OrgnlMsgId")) },
		func() error { return g.OrgnlMsgNmId.Validate(p.Field("OrgnlMsgNmId")) },
		func() error { return iso.Optional(p.Field("OrgnlCreDtTm"), g.OrgnlCreDtTm) },
	)
}

type PaymentTypeInformation27 struct {
	InstrPrty *Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *ClearingChannel2Code   `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []ServiceLevel8Choice   `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	SeqTp     *SequenceType3Code      `xml:"SeqTp,omitempty" json:"SeqTp,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (t *PaymentTypeInformation27) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("InstrPrty"), t.InstrPrty) },
		func() error { return iso.Optional(p.Field("ClrChanl"), t.ClrChanl) },
		func() error { return iso.Each(p.Field("SvcLvl"), t.SvcLvl) },
		func() error { return iso.Optional(p.Field("LclInstrm"), t.LclInstrm) },
		func() error { return iso.Optional(p.Field("SeqTp"), t.SeqTp) },
		func() error { return iso.Optional(p.Field("CtgyPurp"), t.CtgyPurp) },
	)
}

type AmountType4Choice struct {
	InstdAmt *ActiveOrHistoricCurrencyAndAmount `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	EqvtAmt  *EquivalentAmount2                 `xml:"EqvtAmt,omitempty" json:"EqvtAmt,omitempty"`
}

func (c *AmountType4Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.InstdAmt != nil, c.EqvtAmt != nil) },
		func() error { return iso.Optional(p.Field("InstdAmt"), c.InstdAmt) },
		func() error { return iso.Optional(p.Field("EqvtAmt"), c.EqvtAmt) },
	)
}

type EquivalentAmount2 struct {
	Amt      ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CcyOfTrf ActiveOrHistoricCurrencyCode      `xml:"CcyOfTrf" json:"CcyOfTrf"`
}

func (e *EquivalentAmount2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return e.Amt.Validate(p.Field("Amt")) },
		func() error { return e.CcyOfTrf.Validate(p.Field("CcyOfTrf")) },
	)
}

type DateAndDateTime2Choice struct {
	Dt   *ISODate     `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *ISODateTime `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (c *DateAndDateTime2Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Dt != nil, c.DtTm != nil) },
		func() error { return iso.Optional(p.Field("Dt"), c.Dt) },
		func() error { return iso.Optional(p.Field("DtTm"), c.DtTm) },
	)
}

// OriginalTransactionReference31 repeats the key elements of the original
// transaction so the receiver can match it.
type OriginalTransactionReference31 struct {
	IntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount            `xml:"IntrBkSttlmAmt,omitempty" json:"IntrBkSttlmAmt,omitempty"`
	Amt            *AmountType4Choice                            `xml:"Amt,omitempty" json:"Amt,omitempty"`
	IntrBkSttlmDt  *ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	ReqdColltnDt   *ISODate                                      `xml:"ReqdColltnDt,omitempty" json:"ReqdColltnDt,omitempty"`
	ReqdExctnDt    *DateAndDateTime2Choice                       `xml:"ReqdExctnDt,omitempty" json:"ReqdExctnDt,omitempty"`
	CdtrSchmeId    *PartyIdentification135                       `xml:"CdtrSchmeId,omitempty" json:"CdtrSchmeId,omitempty"`
	SttlmInf       *SettlementInstruction7                       `xml:"SttlmInf,omitempty" json:"SttlmInf,omitempty"`
	PmtTpInf       *PaymentTypeInformation27                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	PmtMtd         *PaymentMethod4Code                           `xml:"PmtMtd,omitempty" json:"PmtMtd,omitempty"`
	MndtRltdInf    *MandateRelatedData1Choice                    `xml:"MndtRltdInf,omitempty" json:"MndtRltdInf,omitempty"`
	RmtInf         *RemittanceInformation16                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	UltmtDbtr      *Party40Choice                                `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Dbtr           *Party40Choice                                `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct       *CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt        *BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	DbtrAgtAcct    *CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt        *BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct    *CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr           *Party40Choice                                `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct       *CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr      *Party40Choice                                `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	Purp           *Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
}

func (r *OriginalTransactionReference31) Validate(p iso.PathRef) error {
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
	)
}
