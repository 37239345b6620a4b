package common

import iso "github.com/reoring/iso20022"

// PostalAddress24 is a structured or unstructured (AdrLine) postal address.
type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	Dept        *Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *Max70Text          `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *Max35Text          `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text          `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *Max35Text          `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *Max35Text          `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a *PostalAddress24) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("AdrTp"), a.AdrTp) },
		func() error { return iso.Optional(p.Field("Dept"), a.Dept) },
		func() error { return iso.Optional(p.Field("SubDept"), a.SubDept) },
		func() error { return iso.Optional(p.Field("StrtNm"), a.StrtNm) },
		func() error { return iso.Optional(p.Field("BldgNb"), a.BldgNb) },
		func() error { return iso.Optional(p.Field("BldgNm"), a.BldgNm) },
		func() error { return iso.Optional(p.Field("Flr"), a.Flr) },
		func() error { return iso.Optional(p.Field("PstBx"), a.PstBx) },
		func() error { return iso.Optional(p.Field("Room"), a.Room) },
		func() error { return iso.Optional(p.Field("PstCd"), a.PstCd) },
		func() error { return iso.Optional(p.Field("TwnNm"), a.TwnNm) },
		func() error { return iso.Optional(p.Field("TwnLctnNm"), a.TwnLctnNm) },
		func() error { return iso.Optional(p.Field("DstrctNm"), a.DstrctNm) },
		func() error { return iso.Optional(p.Field("CtrySubDvsn"), a.CtrySubDvsn) },
		func() error { return iso.Optional(p.Field("Ctry"), a.Ctry) },
		func() error { return iso.Occurs(p.Field("AdrLine"), len(a.AdrLine), 0, 7) },
		func() error { return iso.Each(p.Field("AdrLine"), a.AdrLine) },
	)
}

type AddressType3Choice struct {
	Cd    *AddressType2Code        `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification30 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *AddressType3Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type GenericIdentification30 struct {
	Id      Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    Max35Text              `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g *GenericIdentification30) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return g.Issr.Validate(p.Field("Issr")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
	)
}

// PartyIdentification135 identifies a debtor, creditor or other party.
type PartyIdentification135 struct {
	Nm        *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party38Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *CountryCode     `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (pi *PartyIdentification135) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Nm"), pi.Nm) },
		func() error { return iso.Optional(p.Field("PstlAdr"), pi.PstlAdr) },
		func() error { return iso.Optional(p.Field("Id"), pi.Id) },
		func() error { return iso.Optional(p.Field("CtryOfRes"), pi.CtryOfRes) },
		func() error { return iso.Optional(p.Field("CtctDtls"), pi.CtctDtls) },
	)
}

// Party38Choice identifies a party as an organisation or a private person.
type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (c *Party38Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.OrgId != nil, c.PrvtId != nil) },
		func() error { return iso.Optional(p.Field("OrgId"), c.OrgId) },
		func() error { return iso.Optional(p.Field("PrvtId"), c.PrvtId) },
	)
}

type OrganisationIdentification29 struct {
	AnyBIC *AnyBICDec2014Identifier             `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (o *OrganisationIdentification29) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("AnyBIC"), o.AnyBIC) },
		func() error { return iso.Optional(p.Field("LEI"), o.LEI) },
		func() error { return iso.Each(p.Field("Othr"), o.Othr) },
	)
}

type GenericOrganisationIdentification1 struct {
	Id      Max35Text                                    `xml:"Id" json:"Id"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericOrganisationIdentification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
		func() error { return iso.Optional(p.Field("Issr"), g.Issr) },
	)
}

type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *ExternalOrganisationIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                               `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *OrganisationIdentificationSchemeName1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (pi *PersonIdentification13) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("DtAndPlcOfBirth"), pi.DtAndPlcOfBirth) },
		func() error { return iso.Each(p.Field("Othr"), pi.Othr) },
	)
}

type DateAndPlaceOfBirth1 struct {
	BirthDt     ISODate     `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth Max35Text   `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

func (d *DateAndPlaceOfBirth1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return d.BirthDt.Validate(p.Field("BirthDt")) },
		func() error { return iso.Optional(p.Field("PrvcOfBirth"), d.PrvcOfBirth) },
		func() error { return d.CityOfBirth.Validate(p.Field("CityOfBirth")) },
		func() error { return d.CtryOfBirth.Validate(p.Field("CtryOfBirth")) },
	)
}

type GenericPersonIdentification1 struct {
	Id      Max35Text                              `xml:"Id" json:"Id"`
	SchmeNm *PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                             `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericPersonIdentification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
		func() error { return iso.Optional(p.Field("Issr"), g.Issr) },
	)
}

type PersonIdentificationSchemeName1Choice struct {
	Cd    *ExternalPersonIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *PersonIdentificationSchemeName1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// Contact4 holds the contact details of a party.
type Contact4 struct {
	NmPrfx    *NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	EmailAdr  *Max2048Text                 `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []OtherContact1              `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrefrdMtd *PreferredContactMethod1Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

func (c *Contact4) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("NmPrfx"), c.NmPrfx) },
		func() error { return iso.Optional(p.Field("Nm"), c.Nm) },
		func() error { return iso.Optional(p.Field("PhneNb"), c.PhneNb) },
		func() error { return iso.Optional(p.Field("MobNb"), c.MobNb) },
		func() error { return iso.Optional(p.Field("FaxNb"), c.FaxNb) },
		func() error { return iso.Optional(p.Field("EmailAdr"), c.EmailAdr) },
		func() error { return iso.Optional(p.Field("EmailPurp"), c.EmailPurp) },
		func() error { return iso.Optional(p.Field("JobTitl"), c.JobTitl) },
		func() error { return iso.Optional(p.Field("Rspnsblty"), c.Rspnsblty) },
		func() error { return iso.Optional(p.Field("Dept"), c.Dept) },
		func() error { return iso.Each(p.Field("Othr"), c.Othr) },
		func() error { return iso.Optional(p.Field("PrefrdMtd"), c.PrefrdMtd) },
	)
}

type OtherContact1 struct {
	ChanlTp Max4Text    `xml:"ChanlTp" json:"ChanlTp"`
	Id      *Max128Text `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (o *OtherContact1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return o.ChanlTp.Validate(p.Field("ChanlTp")) },
		func() error { return iso.Optional(p.Field("Id"), o.Id) },
	)
}

type NameAndAddress16 struct {
	Nm  Max140Text      `xml:"Nm" json:"Nm"`
	Adr PostalAddress24 `xml:"Adr" json:"Adr"`
}

func (n *NameAndAddress16) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return n.Nm.Validate(p.Field("Nm")) },
		func() error { return n.Adr.Validate(p.Field("Adr")) },
	)
}

// Party40Choice identifies a party either as a person or organisation or as
// an agent.
type Party40Choice struct {
	Pty *PartyIdentification135                       `xml:"Pty,omitempty" json:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification6 `xml:"Agt,omitempty" json:"Agt,omitempty"`
}

func (c *Party40Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Pty != nil, c.Agt != nil) },
		func() error { return iso.Optional(p.Field("Pty"), c.Pty) },
		func() error { return iso.Optional(p.Field("Agt"), c.Agt) },
	)
}
