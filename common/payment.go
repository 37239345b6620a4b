package common

import iso "github.com/reoring/iso20022"

// PaymentTypeInformation28 describes the type of a payment: priority, clearing
// channel, service level, local instrument and category purpose.
type PaymentTypeInformation28 struct {
	InstrPrty *Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *ClearingChannel2Code   `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []ServiceLevel8Choice   `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (t *PaymentTypeInformation28) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("InstrPrty"), t.InstrPrty) },
		func() error { return iso.Optional(p.Field("ClrChanl"), t.ClrChanl) },
		func() error { return iso.Each(p.Field("SvcLvl"), t.SvcLvl) },
		func() error { return iso.Optional(p.Field("LclInstrm"), t.LclInstrm) },
		func() error { return iso.Optional(p.Field("CtgyPurp"), t.CtgyPurp) },
	)
}

type ServiceLevel8Choice struct {
	Cd    *ExternalServiceLevel1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ServiceLevel8Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// LocalInstrument2Choice; FedNow puts its proprietary instrument
// (e.g. "STANDARD") under Prtry.
type LocalInstrument2Choice struct {
	Cd    *ExternalLocalInstrument1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *LocalInstrument2Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type CategoryPurpose1Choice struct {
	Cd    *ExternalCategoryPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CategoryPurpose1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type Purpose2Choice struct {
	Cd    *ExternalPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *Purpose2Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// SettlementInstruction7 says how interbank settlement takes place.
type SettlementInstruction7 struct {
	SttlmMtd             SettlementMethod1Code                         `xml:"SttlmMtd" json:"SttlmMtd"`
	SttlmAcct            *CashAccount38                                `xml:"SttlmAcct,omitempty" json:"SttlmAcct,omitempty"`
	ClrSys               *ClearingSystemIdentification3Choice          `xml:"ClrSys,omitempty" json:"ClrSys,omitempty"`
	InstgRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification6 `xml:"InstgRmbrsmntAgt,omitempty" json:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *CashAccount38                                `xml:"InstgRmbrsmntAgtAcct,omitempty" json:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification6 `xml:"InstdRmbrsmntAgt,omitempty" json:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *CashAccount38                                `xml:"InstdRmbrsmntAgtAcct,omitempty" json:"InstdRmbrsmntAgtAcct,omitempty"`
	ThrdRmbrsmntAgt      *BranchAndFinancialInstitutionIdentification6 `xml:"ThrdRmbrsmntAgt,omitempty" json:"ThrdRmbrsmntAgt,omitempty"`
	ThrdRmbrsmntAgtAcct  *CashAccount38                                `xml:"ThrdRmbrsmntAgtAcct,omitempty" json:"ThrdRmbrsmntAgtAcct,omitempty"`
}

func (s *SettlementInstruction7) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return s.SttlmMtd.Validate(p.Field("SttlmMtd")) },
		func() error { return iso.Optional(p.Field("SttlmAcct"), s.SttlmAcct) },
		func() error { return iso.Optional(p.Field("ClrSys"), s.ClrSys) },
		func() error { return iso.Optional(p.Field("InstgRmbrsmntAgt"), s.InstgRmbrsmntAgt) },
		func() error { return iso.Optional(p.Field("InstgRmbrsmntAgtAcct"), s.InstgRmbrsmntAgtAcct) },
		func() error { return iso.Optional(p.Field("InstdRmbrsmntAgt"), s.InstdRmbrsmntAgt) },
		func() error { return iso.Optional(p.Field("InstdRmbrsmntAgtAcct"), s.InstdRmbrsmntAgtAcct) },
		func() error { return iso.Optional(p.Field("ThrdRmbrsmntAgt"), s.ThrdRmbrsmntAgt) },
		func() error { return iso.Optional(p.Field("ThrdRmbrsmntAgtAcct"), s.ThrdRmbrsmntAgtAcct) },
	)
}

// RemittanceInformation16 carries unstructured remittance lines or structured
// creditor references.
type RemittanceInformation16 struct {
	Ustrd []Max140Text                        `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation16 `xml:"Strd,omitempty" json:"Strd,omitempty"`
}

func (r *RemittanceInformation16) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Each(p.Field("Ustrd"), r.Ustrd) },
		func() error { return iso.Each(p.Field("Strd"), r.Strd) },
	)
}

type StructuredRemittanceInformation16 struct {
	CdtrRefInf  *CreditorReferenceInformation2 `xml:"CdtrRefInf,omitempty" json:"CdtrRefInf,omitempty"`
	Invcr       *PartyIdentification135        `xml:"Invcr,omitempty" json:"Invcr,omitempty"`
	Invcee      *PartyIdentification135        `xml:"Invcee,omitempty" json:"Invcee,omitempty"`
	AddtlRmtInf []Max140Text                   `xml:"AddtlRmtInf,omitempty" json:"AddtlRmtInf,omitempty"`
}

func (s *StructuredRemittanceInformation16) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("CdtrRefInf"), s.CdtrRefInf) },
		func() error { return iso.Optional(p.Field("Invcr"), s.Invcr) },
		func() error { return iso.Optional(p.Field("Invcee"), s.Invcee) },
		func() error { return iso.Occurs(p.Field("AddtlRmtInf"), len(s.AddtlRmtInf), 0, 3) },
		func() error { return iso.Each(p.Field("AddtlRmtInf"), s.AddtlRmtInf) },
	)
}

type CreditorReferenceInformation2 struct {
	Tp  *CreditorReferenceType2 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ref *Max35Text              `xml:"Ref,omitempty" json:"Ref,omitempty"`
}

func (c *CreditorReferenceInformation2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Tp"), c.Tp) },
		func() error { return iso.Optional(p.Field("Ref"), c.Ref) },
	)
}

type CreditorReferenceType2 struct {
	CdOrPrtry CreditorReferenceType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *Max35Text                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (c *CreditorReferenceType2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return c.CdOrPrtry.Validate(p.Field("CdOrPrtry")) },
		func() error { return iso.Optional(p.Field("Issr"), c.Issr) },
	)
}

var documentType3Code = iso.NewTextType("DocumentType3Code", iso.Enum("RADM", "RPIN", "FXDR", "DISP", "PUOR", "SCOR"))

type DocumentType3Code string

func (v DocumentType3Code) Validate(p iso.PathRef) error { return documentType3Code.Check(p, string(v)) }
func (DocumentType3Code) SimpleType() iso.SimpleType     { return documentType3Code }

type CreditorReferenceType1Choice struct {
	Cd    *DocumentType3Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CreditorReferenceType1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// InstructionForCreditorAgent1 is a coded or free-text instruction.
type InstructionForCreditorAgent1 struct {
	Cd       *Instruction3Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *Max140Text       `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i *InstructionForCreditorAgent1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Cd"), i.Cd) },
		func() error { return iso.Optional(p.Field("InstrInf"), i.InstrInf) },
	)
}

type InstructionForNextAgent1 struct {
	Cd       *Instruction4Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *Max140Text       `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i *InstructionForNextAgent1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Cd"), i.Cd) },
		func() error { return iso.Optional(p.Field("InstrInf"), i.InstrInf) },
	)
}

// Charges7 is one charge taken by an agent.
type Charges7 struct {
	Amt ActiveOrHistoricCurrencyAndAmount            `xml:"Amt" json:"Amt"`
	Agt BranchAndFinancialInstitutionIdentification6 `xml:"Agt" json:"Agt"`
}

func (c *Charges7) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return c.Amt.Validate(p.Field("Amt")) },
		func() error { return c.Agt.Validate(p.Field("Agt")) },
	)
}
