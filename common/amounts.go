package common

import iso "github.com/reoring/iso20022"

var (
	activeCurrencyAndAmountSimpleType = iso.NewDecimalType("ActiveCurrencyAndAmount_SimpleType",
		iso.FractionDigits(5), iso.TotalDigits(18), iso.MinInclusive("0"))
	activeOrHistoricCurrencyAndAmountSimpleType = iso.NewDecimalType("ActiveOrHistoricCurrencyAndAmount_SimpleType",
		iso.FractionDigits(5), iso.TotalDigits(18), iso.MinInclusive("0"))
	decimalNumber  = iso.NewDecimalType("DecimalNumber", iso.FractionDigits(17), iso.TotalDigits(18))
	baseOneRate    = iso.NewDecimalType("BaseOneRate", iso.FractionDigits(10), iso.TotalDigits(11))
	percentageRate = iso.NewDecimalType("PercentageRate", iso.FractionDigits(10), iso.TotalDigits(11))
	number         = iso.NewDecimalType("Number", iso.FractionDigits(0), iso.TotalDigits(18))
)

// ActiveCurrencyAndAmount is an amount in a currency in current use:
//
//	<IntrBkSttlmAmt Ccy="USD">100.00</IntrBkSttlmAmt>
//
// In JSON and YAML the amount is keyed "$value".
type ActiveCurrencyAndAmount struct {
	Ccy   ActiveCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
	Value iso.Decimal        `xml:",chardata" json:"$value"`
}

func (a *ActiveCurrencyAndAmount) Validate(p iso.PathRef) error {
	if err := a.Ccy.Validate(p.Field("Ccy")); err != nil {
		return err
	}
	return activeCurrencyAndAmountSimpleType.Check(p, a.Value)
}

func (a ActiveCurrencyAndAmount) Currency() string    { return string(a.Ccy) }
func (a ActiveCurrencyAndAmount) Amount() iso.Decimal { return a.Value }

// ActiveOrHistoricCurrencyAndAmount is an amount in any ISO 4217 currency.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   ActiveOrHistoricCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
	Value iso.Decimal                  `xml:",chardata" json:"$value"`
}

func (a *ActiveOrHistoricCurrencyAndAmount) Validate(p iso.PathRef) error {
	if err := a.Ccy.Validate(p.Field("Ccy")); err != nil {
		return err
	}
	return activeOrHistoricCurrencyAndAmountSimpleType.Check(p, a.Value)
}

func (a ActiveOrHistoricCurrencyAndAmount) Currency() string    { return string(a.Ccy) }
func (a ActiveOrHistoricCurrencyAndAmount) Amount() iso.Decimal { return a.Value }

// DecimalNumber is a decimal of up to 18 digits, 17 of them fractional.
type DecimalNumber iso.Decimal

func (v DecimalNumber) Validate(p iso.PathRef) error {
	return decimalNumber.Check(p, iso.Decimal(v))
}
func (DecimalNumber) SimpleType() iso.SimpleType { return decimalNumber }
func (v DecimalNumber) Decimal() iso.Decimal     { return iso.Decimal(v) }

// Defined types drop the Decimal methods; forward the wire ones.
func (v DecimalNumber) MarshalText() ([]byte, error)  { return iso.Decimal(v).MarshalText() }
func (v *DecimalNumber) UnmarshalText(b []byte) error { return (*iso.Decimal)(v).UnmarshalText(b) }
func (v DecimalNumber) MarshalJSON() ([]byte, error)  { return iso.Decimal(v).MarshalJSON() }
func (v *DecimalNumber) UnmarshalJSON(b []byte) error { return (*iso.Decimal)(v).UnmarshalJSON(b) }

// BaseOneRate is a rate expressed as a decimal fraction (0.7 is 70%).
type BaseOneRate iso.Decimal

func (v BaseOneRate) Validate(p iso.PathRef) error { return baseOneRate.Check(p, iso.Decimal(v)) }
func (BaseOneRate) SimpleType() iso.SimpleType     { return baseOneRate }

func (v BaseOneRate) MarshalText() ([]byte, error)  { return iso.Decimal(v).MarshalText() }
func (v *BaseOneRate) UnmarshalText(b []byte) error { return (*iso.Decimal)(v).UnmarshalText(b) }
func (v BaseOneRate) MarshalJSON() ([]byte, error)  { return iso.Decimal(v).MarshalJSON() }
func (v *BaseOneRate) UnmarshalJSON(b []byte) error { return (*iso.Decimal)(v).UnmarshalJSON(b) }

// PercentageRate is a rate expressed as a percentage (70 is 70%).
type PercentageRate iso.Decimal

func (v PercentageRate) Validate(p iso.PathRef) error {
	return percentageRate.Check(p, iso.Decimal(v))
}
func (PercentageRate) SimpleType() iso.SimpleType { return percentageRate }

func (v PercentageRate) MarshalText() ([]byte, error)  { return iso.Decimal(v).MarshalText() }
func (v *PercentageRate) UnmarshalText(b []byte) error { return (*iso.Decimal)(v).UnmarshalText(b) }
func (v PercentageRate) MarshalJSON() ([]byte, error)  { return iso.Decimal(v).MarshalJSON() }
func (v *PercentageRate) UnmarshalJSON(b []byte) error { return (*iso.Decimal)(v).UnmarshalJSON(b) }

// Number is a whole number of up to 18 digits.
type Number iso.Decimal

func (v Number) Validate(p iso.PathRef) error { return number.Check(p, iso.Decimal(v)) }
func (Number) SimpleType() iso.SimpleType     { return number }

func (v Number) MarshalText() ([]byte, error)  { return iso.Decimal(v).MarshalText() }
func (v *Number) UnmarshalText(b []byte) error { return (*iso.Decimal)(v).UnmarshalText(b) }
func (v Number) MarshalJSON() ([]byte, error)  { return iso.Decimal(v).MarshalJSON() }
func (v *Number) UnmarshalJSON(b []byte) error { return (*iso.Decimal)(v).UnmarshalJSON(b) }
