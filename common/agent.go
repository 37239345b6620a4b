package common

import iso "github.com/reoring/iso20022"

// BranchAndFinancialInstitutionIdentification6 identifies an agent and,
// optionally, one of its branches.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData3                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return b.FinInstnId.Validate(p.Field("FinInstnId")) },
		func() error { return iso.Optional(p.Field("BrnchId"), b.BrnchId) },
	)
}

// FinancialInstitutionIdentification18 identifies a financial institution by
// BIC, clearing system member id, LEI, name and address or a proprietary id.
type FinancialInstitutionIdentification18 struct {
	BICFI       *BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *Max140Text                          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("BICFI"), f.BICFI) },
		func() error { return iso.Optional(p.Field("ClrSysMmbId"), f.ClrSysMmbId) },
		func() error { return iso.Optional(p.Field("LEI"), f.LEI) },
		func() error { return iso.Optional(p.Field("Nm"), f.Nm) },
		func() error { return iso.Optional(p.Field("PstlAdr"), f.PstlAdr) },
		func() error { return iso.Optional(p.Field("Othr"), f.Othr) },
	)
}

// ClearingSystemMemberIdentification2 carries a member id such as a US
// routing number (ClrSysId/Cd "USABA").
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbId    Max35Text                            `xml:"MmbId" json:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("ClrSysId"), c.ClrSysId) },
		func() error { return c.MmbId.Validate(p.Field("MmbId")) },
	)
}

type ClearingSystemIdentification2Choice struct {
	Cd    *ExternalClearingSystemIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// ClearingSystemIdentification3Choice names the settlement clearing system.
type ClearingSystemIdentification3Choice struct {
	Cd    *ExternalCashClearingSystem1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification3Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type BranchData3 struct {
	Id      *Max35Text       `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *LEIIdentifier   `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b *BranchData3) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Id"), b.Id) },
		func() error { return iso.Optional(p.Field("LEI"), b.LEI) },
		func() error { return iso.Optional(p.Field("Nm"), b.Nm) },
		func() error { return iso.Optional(p.Field("PstlAdr"), b.PstlAdr) },
	)
}

type GenericFinancialIdentification1 struct {
	Id      Max35Text                                 `xml:"Id" json:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericFinancialIdentification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
		func() error { return iso.Optional(p.Field("Issr"), g.Issr) },
	)
}

type FinancialIdentificationSchemeName1Choice struct {
	Cd    *ExternalFinancialInstitutionIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *FinancialIdentificationSchemeName1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}
