package common

import iso "github.com/reoring/iso20022"

var (
	regulatoryReportingType1Code  = iso.NewTextType("RegulatoryReportingType1Code", iso.Enum("CRED", "DEBT", "BOTH"))
	remittanceLocationMethod2Code = iso.NewTextType("RemittanceLocationMethod2Code", iso.Enum("FAXI", "EDIC", "URID", "EMAL", "POST", "SMSM"))
	taxRecordPeriod1Code          = iso.NewTextType("TaxRecordPeriod1Code", iso.Enum(
		"MM01", "MM02", "MM03", "MM04", "MM05", "MM06", "MM07", "MM08", "MM09", "MM10", "MM11", "MM12",
		"QTR1", "QTR2", "QTR3", "QTR4", "HLF1", "HLF2"))
)

// RegulatoryReportingType1Code says which side of the transaction the
// regulatory information applies to.
type RegulatoryReportingType1Code string

func (v RegulatoryReportingType1Code) Validate(p iso.PathRef) error {
	return regulatoryReportingType1Code.Check(p, string(v))
}
func (RegulatoryReportingType1Code) SimpleType() iso.SimpleType { return regulatoryReportingType1Code }

type RemittanceLocationMethod2Code string

func (v RemittanceLocationMethod2Code) Validate(p iso.PathRef) error {
	return remittanceLocationMethod2Code.Check(p, string(v))
}
func (RemittanceLocationMethod2Code) SimpleType() iso.SimpleType { return remittanceLocationMethod2Code }

type TaxRecordPeriod1Code string

func (v TaxRecordPeriod1Code) Validate(p iso.PathRef) error {
	return taxRecordPeriod1Code.Check(p, string(v))
}
func (TaxRecordPeriod1Code) SimpleType() iso.SimpleType { return taxRecordPeriod1Code }

// RegulatoryReporting3 carries the information a central bank or other
// authority requires for the transaction.
type RegulatoryReporting3 struct {
	DbtCdtRptgInd *RegulatoryReportingType1Code    `xml:"DbtCdtRptgInd,omitempty" json:"DbtCdtRptgInd,omitempty"`
	Authrty       *RegulatoryAuthority2            `xml:"Authrty,omitempty" json:"Authrty,omitempty"`
	Dtls          []StructuredRegulatoryReporting3 `xml:"Dtls,omitempty" json:"Dtls,omitempty"`
}

func (r *RegulatoryReporting3) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("DbtCdtRptgInd"), r.DbtCdtRptgInd) },
		func() error { return iso.Optional(p.Field("Authrty"), r.Authrty) },
		func() error { return iso.Each(p.Field("Dtls"), r.Dtls) },
	)
}

type RegulatoryAuthority2 struct {
	Nm   *Max140Text  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Ctry *CountryCode `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
}

func (a *RegulatoryAuthority2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Nm"), a.Nm) },
		func() error { return iso.Optional(p.Field("Ctry"), a.Ctry) },
	)
}

type StructuredRegulatoryReporting3 struct {
	Tp   *Max35Text                         `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Dt   *ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	Ctry *CountryCode                       `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	Cd   *Max10Text                         `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Amt  *ActiveOrHistoricCurrencyAndAmount `xml:"Amt,omitempty" json:"Amt,omitempty"`
	Inf  []Max35Text                        `xml:"Inf,omitempty" json:"Inf,omitempty"`
}

func (s *StructuredRegulatoryReporting3) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Tp"), s.Tp) },
		func() error { return iso.Optional(p.Field("Dt"), s.Dt) },
		func() error { return iso.Optional(p.Field("Ctry"), s.Ctry) },
		func() error { return iso.Optional(p.Field("Cd"), s.Cd) },
		func() error { return iso.Optional(p.Field("Amt"), s.Amt) },
		func() error { return iso.Each(p.Field("Inf"), s.Inf) },
	)
}

// TaxInformation8 details the tax paid or due on the transaction.
type TaxInformation8 struct {
	Cdtr            *TaxParty1                         `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	Dbtr            *TaxParty2                         `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	AdmstnZone      *Max35Text                         `xml:"AdmstnZone,omitempty" json:"AdmstnZone,omitempty"`
	RefNb           *Max140Text                        `xml:"RefNb,omitempty" json:"RefNb,omitempty"`
	Mtd             *Max35Text                         `xml:"Mtd,omitempty" json:"Mtd,omitempty"`
	TtlTaxblBaseAmt *ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxblBaseAmt,omitempty" json:"TtlTaxblBaseAmt,omitempty"`
	TtlTaxAmt       *ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxAmt,omitempty" json:"TtlTaxAmt,omitempty"`
	Dt              *ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	SeqNb           *Number                            `xml:"SeqNb,omitempty" json:"SeqNb,omitempty"`
	Rcrd            []TaxRecord2                       `xml:"Rcrd,omitempty" json:"Rcrd,omitempty"`
}

func (t *TaxInformation8) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Cdtr"), t.Cdtr) },
		func() error { return iso.Optional(p.Field("Dbtr"), t.Dbtr) },
		func() error { return iso.Optional(p.Field("AdmstnZone"), t.AdmstnZone) },
		func() error { return iso.Optional(p.Field("RefNb"), t.RefNb) },
		func() error { return iso.Optional(p.Field("Mtd"), t.Mtd) },
		func() error { return iso.Optional(p.Field("TtlTaxblBaseAmt"), t.TtlTaxblBaseAmt) },
		func() error { return iso.Optional(p.Field("TtlTaxAmt"), t.TtlTaxAmt) },
		func() error { return iso.Optional(p.Field("Dt"), t.Dt) },
		func() error { return iso.Optional(p.Field("SeqNb"), t.SeqNb) },
		func() error { return iso.Each(p.Field("Rcrd"), t.Rcrd) },
	)
}

type TaxParty1 struct {
	TaxId  *Max35Text `xml:"TaxId,omitempty" json:"TaxId,omitempty"`
	RegnId *Max35Text `xml:"RegnId,omitempty" json:"RegnId,omitempty"`
	TaxTp  *Max35Text `xml:"TaxTp,omitempty" json:"TaxTp,omitempty"`
}

func (t *TaxParty1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("TaxId"), t.TaxId) },
		func() error { return iso.Optional(p.Field("RegnId"), t.RegnId) },
		func() error { return iso.Optional(p.Field("TaxTp"), t.TaxTp) },
	)
}

type TaxParty2 struct {
	TaxId   *Max35Text         `xml:"TaxId,omitempty" json:"TaxId,omitempty"`
	RegnId  *Max35Text         `xml:"RegnId,omitempty" json:"RegnId,omitempty"`
	TaxTp   *Max35Text         `xml:"TaxTp,omitempty" json:"TaxTp,omitempty"`
	Authstn *TaxAuthorisation1 `xml:"Authstn,omitempty" json:"Authstn,omitempty"`
}

func (t *TaxParty2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("TaxId"), t.TaxId) },
		func() error { return iso.Optional(p.Field("RegnId"), t.RegnId) },
		func() error { return iso.Optional(p.Field("TaxTp"), t.TaxTp) },
		func() error { return iso.Optional(p.Field("Authstn"), t.Authstn) },
	)
}

type TaxAuthorisation1 struct {
	Titl *Max35Text  `xml:"Titl,omitempty" json:"Titl,omitempty"`
	Nm   *Max140Text `xml:"Nm,omitempty" json:"Nm,omitempty"`
}

func (a *TaxAuthorisation1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Titl"), a.Titl) },
		func() error { return iso.Optional(p.Field("Nm"), a.Nm) },
	)
}

type TaxRecord2 struct {
	Tp       *Max35Text  `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ctgy     *Max35Text  `xml:"Ctgy,omitempty" json:"Ctgy,omitempty"`
	CtgyDtls *Max35Text  `xml:"CtgyDtls,omitempty" json:"CtgyDtls,omitempty"`
	DbtrSts  *Max35Text  `xml:"DbtrSts,omitempty" json:"DbtrSts,omitempty"`
	CertId   *Max35Text  `xml:"CertId,omitempty" json:"CertId,omitempty"`
	FrmsCd   *Max35Text  `xml:"FrmsCd,omitempty" json:"FrmsCd,omitempty"`
	Prd      *TaxPeriod2 `xml:"Prd,omitempty" json:"Prd,omitempty"`
	TaxAmt   *TaxAmount2 `xml:"TaxAmt,omitempty" json:"TaxAmt,omitempty"`
	AddtlInf *Max140Text `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (r *TaxRecord2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Tp"), r.Tp) },
		func() error { return iso.Optional(p.Field("Ctgy"), r.Ctgy) },
		func() error { return iso.Optional(p.Field("CtgyDtls"), r.CtgyDtls) },
		func() error { return iso.Optional(p.Field("DbtrSts"), r.DbtrSts) },
		func() error { return iso.Optional(p.Field("CertId"), r.CertId) },
		func() error { return iso.Optional(p.Field("FrmsCd"), r.FrmsCd) },
		func() error { return iso.Optional(p.Field("Prd"), r.Prd) },
		func() error { return iso.Optional(p.Field("TaxAmt"), r.TaxAmt) },
		func() error { return iso.Optional(p.Field("AddtlInf"), r.AddtlInf) },
	)
}

type TaxPeriod2 struct {
	Yr     *ISODate              `xml:"Yr,omitempty" json:"Yr,omitempty"`
	Tp     *TaxRecordPeriod1Code `xml:"Tp,omitempty" json:"Tp,omitempty"`
	FrToDt *DatePeriod2          `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
}

func (t *TaxPeriod2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Yr"), t.Yr) },
		func() error { return iso.Optional(p.Field("Tp"), t.Tp) },
		func() error { return iso.Optional(p.Field("FrToDt"), t.FrToDt) },
	)
}

type DatePeriod2 struct {
	FrDt ISODate `xml:"FrDt" json:"FrDt"`
	ToDt ISODate `xml:"ToDt" json:"ToDt"`
}

func (d *DatePeriod2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return d.FrDt.Validate(p.Field("FrDt")) },
		func() error { return d.ToDt.Validate(p.Field("ToDt")) },
	)
}

type TaxAmount2 struct {
	Rate         *PercentageRate                    `xml:"Rate,omitempty" json:"Rate,omitempty"`
	TaxblBaseAmt *ActiveOrHistoricCurrencyAndAmount `xml:"TaxblBaseAmt,omitempty" json:"TaxblBaseAmt,omitempty"`
	TtlAmt       *ActiveOrHistoricCurrencyAndAmount `xml:"TtlAmt,omitempty" json:"TtlAmt,omitempty"`
	Dtls         []TaxRecordDetails2                `xml:"Dtls,omitempty" json:"Dtls,omitempty"`
}

func (t *TaxAmount2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Rate"), t.Rate) },
		func() error { return iso.Optional(p.Field("TaxblBaseAmt"), t.TaxblBaseAmt) },
		func() error { return iso.Optional(p.Field("TtlAmt"), t.TtlAmt) },
		func() error { return iso.Each(p.Field("Dtls"), t.Dtls) },
	)
}

type TaxRecordDetails2 struct {
	Prd *TaxPeriod2                       `xml:"Prd,omitempty" json:"Prd,omitempty"`
	Amt ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
}

func (t *TaxRecordDetails2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Prd"), t.Prd) },
		func() error { return t.Amt.Validate(p.Field("Amt")) },
	)
}

// RemittanceLocation7 says where the remittance advice was sent.
type RemittanceLocation7 struct {
	RmtId       *Max35Text                `xml:"RmtId,omitempty" json:"RmtId,omitempty"`
	RmtLctnDtls []RemittanceLocationData1 `xml:"RmtLctnDtls,omitempty" json:"RmtLctnDtls,omitempty"`
}

func (r *RemittanceLocation7) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("RmtId"), r.RmtId) },
		func() error { return iso.Each(p.Field("RmtLctnDtls"), r.RmtLctnDtls) },
	)
}

type RemittanceLocationData1 struct {
	Mtd        RemittanceLocationMethod2Code `xml:"Mtd" json:"Mtd"`
	ElctrncAdr *Max2048Text                  `xml:"ElctrncAdr,omitempty" json:"ElctrncAdr,omitempty"`
	PstlAdr    *NameAndAddress16             `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (r *RemittanceLocationData1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.Mtd.Validate(p.Field("Mtd")) },
		func() error { return iso.Optional(p.Field("ElctrncAdr"), r.ElctrncAdr) },
		func() error { return iso.Optional(p.Field("PstlAdr"), r.PstlAdr) },
	)
}
