package common

import iso "github.com/reoring/iso20022"

var (
	mandateClassification1Code      = iso.NewTextType("MandateClassification1Code", iso.Enum("FIXE", "USGB", "VARI"))
	frequency6Code                  = iso.NewTextType("Frequency6Code", iso.Enum("YEAR", "MNTH", "QURT", "MIAN", "WEEK", "DAIL", "ADHO", "INDA", "FRTN"))
	externalMandateSetupReason1Code = iso.NewTextType("ExternalMandateSetupReason1Code", iso.Length(1, 4))
	exact2NumericText               = iso.NewTextType("Exact2NumericText", iso.Pattern(`[0-9]{2}`))
	max1025Text                     = iso.NewTextType("Max1025Text", iso.Length(1, 1025))
	max10KBinary                    = iso.NewTextType("Max10KBinary", iso.Length(1, 10240))
)

type MandateClassification1Code string

func (v MandateClassification1Code) Validate(p iso.PathRef) error {
	return mandateClassification1Code.Check(p, string(v))
}
func (MandateClassification1Code) SimpleType() iso.SimpleType { return mandateClassification1Code }

type Frequency6Code string

func (v Frequency6Code) Validate(p iso.PathRef) error {
	return frequency6Code.Check(p, string(v))
}
func (Frequency6Code) SimpleType() iso.SimpleType { return frequency6Code }

type ExternalMandateSetupReason1Code string

func (v ExternalMandateSetupReason1Code) Validate(p iso.PathRef) error {
	return externalMandateSetupReason1Code.Check(p, string(v))
}
func (ExternalMandateSetupReason1Code) SimpleType() iso.SimpleType { return externalMandateSetupReason1Code }

// Exact2NumericText is exactly two digits, such as a day count.
type Exact2NumericText string

func (v Exact2NumericText) Validate(p iso.PathRef) error {
	return exact2NumericText.Check(p, string(v))
}
func (Exact2NumericText) SimpleType() iso.SimpleType { return exact2NumericText }

type Max1025Text string

func (v Max1025Text) Validate(p iso.PathRef) error {
	return max1025Text.Check(p, string(v))
}
func (Max1025Text) SimpleType() iso.SimpleType { return max1025Text }

// Max10KBinary holds base64 content of at most 10240 characters.
type Max10KBinary string

func (v Max10KBinary) Validate(p iso.PathRef) error {
	return max10KBinary.Check(p, string(v))
}
func (Max10KBinary) SimpleType() iso.SimpleType { return max10KBinary }

// MandateRelatedData1Choice carries either a direct debit or a credit
// transfer mandate.
type MandateRelatedData1Choice struct {
	DrctDbtMndt *MandateRelatedInformation14 `xml:"DrctDbtMndt,omitempty" json:"DrctDbtMndt,omitempty"`
	CdtTrfMndt  *CreditTransferMandateData1  `xml:"CdtTrfMndt,omitempty" json:"CdtTrfMndt,omitempty"`
}

func (c *MandateRelatedData1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.DrctDbtMndt != nil, c.CdtTrfMndt != nil) },
		func() error { return iso.Optional(p.Field("DrctDbtMndt"), c.DrctDbtMndt) },
		func() error { return iso.Optional(p.Field("CdtTrfMndt"), c.CdtTrfMndt) },
	)
}

type MandateRelatedInformation14 struct {
	MndtId        *Max35Text                     `xml:"MndtId,omitempty" json:"MndtId,omitempty"`
	DtOfSgntr     *ISODate                       `xml:"DtOfSgntr,omitempty" json:"DtOfSgntr,omitempty"`
	AmdmntInd     *TrueFalseIndicator            `xml:"AmdmntInd,omitempty" json:"AmdmntInd,omitempty"`
	AmdmntInfDtls *AmendmentInformationDetails13 `xml:"AmdmntInfDtls,omitempty" json:"AmdmntInfDtls,omitempty"`
	ElctrncSgntr  *Max1025Text                   `xml:"ElctrncSgntr,omitempty" json:"ElctrncSgntr,omitempty"`
	FrstColltnDt  *ISODate                       `xml:"FrstColltnDt,omitempty" json:"FrstColltnDt,omitempty"`
	FnlColltnDt   *ISODate                       `xml:"FnlColltnDt,omitempty" json:"FnlColltnDt,omitempty"`
	Frqcy         *Frequency36Choice             `xml:"Frqcy,omitempty" json:"Frqcy,omitempty"`
	Rsn           *MandateSetupReason1Choice     `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	TrckgDays     *Exact2NumericText             `xml:"TrckgDays,omitempty" json:"TrckgDays,omitempty"`
}

func (m *MandateRelatedInformation14) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("MndtId"), m.MndtId) },
		func() error { return iso.Optional(p.Field("DtOfSgntr"), m.DtOfSgntr) },
		func() error { return iso.Optional(p.Field("AmdmntInd"), m.AmdmntInd) },
		func() error { return iso.Optional(p.Field("AmdmntInfDtls"), m.AmdmntInfDtls) },
		func() error { return iso.Optional(p.Field("ElctrncSgntr"), m.ElctrncSgntr) },
		func() error { return iso.Optional(p.Field("FrstColltnDt"), m.FrstColltnDt) },
		func() error { return iso.Optional(p.Field("FnlColltnDt"), m.FnlColltnDt) },
		func() error { return iso.Optional(p.Field("Frqcy"), m.Frqcy) },
		func() error { return iso.Optional(p.Field("Rsn"), m.Rsn) },
		func() error { return iso.Optional(p.Field("TrckgDays"), m.TrckgDays) },
	)
}

type AmendmentInformationDetails13 struct {
	OrgnlMndtId      *Max35Text                                    `xml:"OrgnlMndtId,omitempty" json:"OrgnlMndtId,omitempty"`
	OrgnlCdtrSchmeId *PartyIdentification135                       `xml:"OrgnlCdtrSchmeId,omitempty" json:"OrgnlCdtrSchmeId,omitempty"`
	OrgnlCdtrAgt     *BranchAndFinancialInstitutionIdentification6 `xml:"OrgnlCdtrAgt,omitempty" json:"OrgnlCdtrAgt,omitempty"`
	OrgnlCdtrAgtAcct *CashAccount38                                `xml:"OrgnlCdtrAgtAcct,omitempty" json:"OrgnlCdtrAgtAcct,omitempty"`
	OrgnlDbtr        *PartyIdentification135                       `xml:"OrgnlDbtr,omitempty" json:"OrgnlDbtr,omitempty"`
	OrgnlDbtrAcct    *CashAccount38                                `xml:"OrgnlDbtrAcct,omitempty" json:"OrgnlDbtrAcct,omitempty"`
	OrgnlDbtrAgt     *BranchAndFinancialInstitutionIdentification6 `xml:"OrgnlDbtrAgt,omitempty" json:"OrgnlDbtrAgt,omitempty"`
	OrgnlDbtrAgtAcct *CashAccount38                                `xml:"OrgnlDbtrAgtAcct,omitempty" json:"OrgnlDbtrAgtAcct,omitempty"`
	OrgnlFnlColltnDt *ISODate                                      `xml:"OrgnlFnlColltnDt,omitempty" json:"OrgnlFnlColltnDt,omitempty"`
	OrgnlFrqcy       *Frequency36Choice                            `xml:"OrgnlFrqcy,omitempty" json:"OrgnlFrqcy,omitempty"`
	OrgnlRsn         *MandateSetupReason1Choice                    `xml:"OrgnlRsn,omitempty" json:"OrgnlRsn,omitempty"`
	OrgnlTrckgDays   *Exact2NumericText                            `xml:"OrgnlTrckgDays,omitempty" json:"OrgnlTrckgDays,omitempty"`
}

func (a *AmendmentInformationDetails13) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("OrgnlMndtId"), a.OrgnlMndtId) },
		func() error { return iso.Optional(p.Field("OrgnlCdtrSchmeId"), a.OrgnlCdtrSchmeId) },
		func() error { return iso.Optional(p.Field("OrgnlCdtrAgt"), a.OrgnlCdtrAgt) },
		func() error { return iso.Optional(p.Field("OrgnlCdtrAgtAcct"), a.OrgnlCdtrAgtAcct) },
		func() error { return iso.Optional(p.Field("OrgnlDbtr"), a.OrgnlDbtr) },
		func() error { return iso.Optional(p.Field("OrgnlDbtrAcct"), a.OrgnlDbtrAcct) },
		func() error { return iso.Optional(p.Field("OrgnlDbtrAgt"), a.OrgnlDbtrAgt) },
		func() error { return iso.Optional(p.Field("OrgnlDbtrAgtAcct"), a.OrgnlDbtrAgtAcct) },
		func() error { return iso.Optional(p.Field("OrgnlFnlColltnDt"), a.OrgnlFnlColltnDt) },
		func() error { return iso.Optional(p.Field("OrgnlFrqcy"), a.OrgnlFrqcy) },
		func() error { return iso.Optional(p.Field("OrgnlRsn"), a.OrgnlRsn) },
		func() error { return iso.Optional(p.Field("OrgnlTrckgDays"), a.OrgnlTrckgDays) },
	)
}

type CreditTransferMandateData1 struct {
	MndtId       *Max35Text                 `xml:"MndtId,omitempty" json:"MndtId,omitempty"`
	Tp           *MandateTypeInformation2   `xml:"Tp,omitempty" json:"Tp,omitempty"`
	DtOfSgntr    *ISODate                   `xml:"DtOfSgntr,omitempty" json:"DtOfSgntr,omitempty"`
	DtOfVrfctn   *ISODateTime               `xml:"DtOfVrfctn,omitempty" json:"DtOfVrfctn,omitempty"`
	ElctrncSgntr *Max10KBinary              `xml:"ElctrncSgntr,omitempty" json:"ElctrncSgntr,omitempty"`
	FrstPmtDt    *ISODate                   `xml:"FrstPmtDt,omitempty" json:"FrstPmtDt,omitempty"`
	FnlPmtDt     *ISODate                   `xml:"FnlPmtDt,omitempty" json:"FnlPmtDt,omitempty"`
	Frqcy        *Frequency36Choice         `xml:"Frqcy,omitempty" json:"Frqcy,omitempty"`
	Rsn          *MandateSetupReason1Choice `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
}

func (m *CreditTransferMandateData1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("MndtId"), m.MndtId) },
		func() error { return iso.Optional(p.Field("Tp"), m.Tp) },
		func() error { return iso.Optional(p.Field("DtOfSgntr"), m.DtOfSgntr) },
		func() error { return iso.Optional(p.Field("DtOfVrfctn"), m.DtOfVrfctn) },
		func() error { return iso.Optional(p.Field("ElctrncSgntr"), m.ElctrncSgntr) },
		func() error { return iso.Optional(p.Field("FrstPmtDt"), m.FrstPmtDt) },
		func() error { return iso.Optional(p.Field("FnlPmtDt"), m.FnlPmtDt) },
		func() error { return iso.Optional(p.Field("Frqcy"), m.Frqcy) },
		func() error { return iso.Optional(p.Field("Rsn"), m.Rsn) },
	)
}

type MandateTypeInformation2 struct {
	SvcLvl    *ServiceLevel8Choice          `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice       `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice       `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
	Clssfctn  *MandateClassification1Choice `xml:"Clssfctn,omitempty" json:"Clssfctn,omitempty"`
}

func (t *MandateTypeInformation2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("SvcLvl"), t.SvcLvl) },
		func() error { return iso.Optional(p.Field("LclInstrm"), t.LclInstrm) },
		func() error { return iso.Optional(p.Field("CtgyPurp"), t.CtgyPurp) },
		func() error { return iso.Optional(p.Field("Clssfctn"), t.Clssfctn) },
	)
}

type MandateClassification1Choice struct {
	Cd    *MandateClassification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *MandateClassification1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type MandateSetupReason1Choice struct {
	Cd    *ExternalMandateSetupReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max70Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *MandateSetupReason1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// Frequency36Choice gives a frequency as a plain code, a count per period,
// or a point in time within the period.
type Frequency36Choice struct {
	Tp     *Frequency6Code      `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Prd    *FrequencyPeriod1    `xml:"Prd,omitempty" json:"Prd,omitempty"`
	PtInTm *FrequencyAndMoment1 `xml:"PtInTm,omitempty" json:"PtInTm,omitempty"`
}

func (c *Frequency36Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Tp != nil, c.Prd != nil, c.PtInTm != nil) },
		func() error { return iso.Optional(p.Field("Tp"), c.Tp) },
		func() error { return iso.Optional(p.Field("Prd"), c.Prd) },
		func() error { return iso.Optional(p.Field("PtInTm"), c.PtInTm) },
	)
}

type FrequencyPeriod1 struct {
	Tp        Frequency6Code `xml:"Tp" json:"Tp"`
	CntPerPrd DecimalNumber  `xml:"CntPerPrd" json:"CntPerPrd"`
}

func (f *FrequencyPeriod1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return f.Tp.Validate(p.Field("Tp")) },
		func() error { return f.CntPerPrd.Validate(p.Field("CntPerPrd")) },
	)
}

type FrequencyAndMoment1 struct {
	Tp     Frequency6Code    `xml:"Tp" json:"Tp"`
	PtInTm Exact2NumericText `xml:"PtInTm" json:"PtInTm"`
}

func (f *FrequencyAndMoment1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return f.Tp.Validate(p.Field("Tp")) },
		func() error { return f.PtInTm.Validate(p.Field("PtInTm")) },
	)
}
