package common

import iso "github.com/reoring/iso20022"

// CashAccount38 identifies an account by IBAN or proprietary number, with an
// optional proxy (alias).
type CashAccount38 struct {
	Id   AccountIdentification4Choice  `xml:"Id" json:"Id"`
	Tp   *CashAccountType2Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (a *CashAccount38) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return a.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("Tp"), a.Tp) },
		func() error { return iso.Optional(p.Field("Ccy"), a.Ccy) },
		func() error { return iso.Optional(p.Field("Nm"), a.Nm) },
		func() error { return iso.Optional(p.Field("Prxy"), a.Prxy) },
	)
}

type AccountIdentification4Choice struct {
	IBAN *IBAN2007Identifier            `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c *AccountIdentification4Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.IBAN != nil, c.Othr != nil) },
		func() error { return iso.Optional(p.Field("IBAN"), c.IBAN) },
		func() error { return iso.Optional(p.Field("Othr"), c.Othr) },
	)
}

type GenericAccountIdentification1 struct {
	Id      Max34Text                 `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericAccountIdentification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return g.Id.Validate(p.Field("Id")) },
		func() error { return iso.Optional(p.Field("SchmeNm"), g.SchmeNm) },
		func() error { return iso.Optional(p.Field("Issr"), g.Issr) },
	)
}

type AccountSchemeName1Choice struct {
	Cd    *ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *AccountSchemeName1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

type CashAccountType2Choice struct {
	Cd    *ExternalCashAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CashAccountType2Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}

// ProxyAccountIdentification1 is an account alias such as a phone number or
// e-mail address.
type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id Max2048Text              `xml:"Id" json:"Id"`
}

func (x *ProxyAccountIdentification1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("Tp"), x.Tp) },
		func() error { return x.Id.Validate(p.Field("Id")) },
	)
}

type ProxyAccountType1Choice struct {
	Cd    *ExternalProxyAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ProxyAccountType1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, c.Cd != nil, c.Prtry != nil) },
		func() error { return iso.Optional(p.Field("Cd"), c.Cd) },
		func() error { return iso.Optional(p.Field("Prtry"), c.Prtry) },
	)
}
