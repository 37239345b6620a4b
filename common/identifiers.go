package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	iso "github.com/reoring/iso20022"
)

var (
	bicfiDec2014Identifier  = iso.NewTextType("BICFIDec2014Identifier", iso.Pattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`))
	anyBICDec2014Identifier = iso.NewTextType("AnyBICDec2014Identifier", iso.Pattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`))
	leiIdentifier           = iso.NewTextType("LEIIdentifier", iso.Pattern(`[A-Z0-9]{18,18}[0-9]{2,2}`))
	iban2007Identifier      = iso.NewTextType("IBAN2007Identifier",
		iso.Pattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`),
		iso.Lexical("iban", checkIBAN))
	uuidv4Identifier = iso.NewTextType("UUIDv4Identifier",
		iso.Pattern(`[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`))
	countryCode = iso.NewTextType("CountryCode",
		iso.Pattern(`[A-Z]{2,2}`),
		iso.Lexical("iso3166", checkCountry))
	activeCurrencyCode = iso.NewTextType("ActiveCurrencyCode",
		iso.Pattern(`[A-Z]{3,3}`),
		iso.Lexical("iso4217", checkCurrency))
	activeOrHistoricCurrencyCode = iso.NewTextType("ActiveOrHistoricCurrencyCode", iso.Pattern(`[A-Z]{3,3}`))
)

// BICFIDec2014Identifier is the BIC of a financial institution.
type BICFIDec2014Identifier string

func (v BICFIDec2014Identifier) Validate(p iso.PathRef) error {
	return bicfiDec2014Identifier.Check(p, string(v))
}
func (BICFIDec2014Identifier) SimpleType() iso.SimpleType { return bicfiDec2014Identifier }

// AnyBICDec2014Identifier is a BIC of any party.
type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate(p iso.PathRef) error {
	return anyBICDec2014Identifier.Check(p, string(v))
}
func (AnyBICDec2014Identifier) SimpleType() iso.SimpleType { return anyBICDec2014Identifier }

// LEIIdentifier is an ISO 17442 legal entity identifier.
type LEIIdentifier string

func (v LEIIdentifier) Validate(p iso.PathRef) error { return leiIdentifier.Check(p, string(v)) }
func (LEIIdentifier) SimpleType() iso.SimpleType     { return leiIdentifier }

// IBAN2007Identifier is an ISO 13616 account number. Besides the pattern the
// mod-97 check digits must verify.
type IBAN2007Identifier string

func (v IBAN2007Identifier) Validate(p iso.PathRef) error {
	return iban2007Identifier.Check(p, string(v))
}
func (IBAN2007Identifier) SimpleType() iso.SimpleType { return iban2007Identifier }

// UUIDv4Identifier is a lower-case RFC 4122 version 4 UUID (UETR).
type UUIDv4Identifier string

func (v UUIDv4Identifier) Validate(p iso.PathRef) error {
	return uuidv4Identifier.Check(p, string(v))
}
func (UUIDv4Identifier) SimpleType() iso.SimpleType { return uuidv4Identifier }

// CountryCode is an ISO 3166 alpha-2 country code.
type CountryCode string

func (v CountryCode) Validate(p iso.PathRef) error { return countryCode.Check(p, string(v)) }
func (CountryCode) SimpleType() iso.SimpleType     { return countryCode }

// ActiveCurrencyCode is an ISO 4217 currency code in current use.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate(p iso.PathRef) error {
	return activeCurrencyCode.Check(p, string(v))
}
func (ActiveCurrencyCode) SimpleType() iso.SimpleType { return activeCurrencyCode }

// ActiveOrHistoricCurrencyCode accepts withdrawn ISO 4217 codes too, so only
// the shape is checked.
type ActiveOrHistoricCurrencyCode string

func (v ActiveOrHistoricCurrencyCode) Validate(p iso.PathRef) error {
	return activeOrHistoricCurrencyCode.Check(p, string(v))
}
func (ActiveOrHistoricCurrencyCode) SimpleType() iso.SimpleType {
	return activeOrHistoricCurrencyCode
}

var errIBANChecksum = errors.New("iban check digits do not verify")

// checkIBAN runs the ISO 7064 mod 97-10 check.
func checkIBAN(s string) error {
	rearranged := strings.ToUpper(s[4:] + s[:4])
	var digits strings.Builder
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			fmt.Fprintf(&digits, "%d", r-'A'+10)
		default:
			return fmt.Errorf("invalid iban character %q", r)
		}
	}
	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return errIBANChecksum
	}
	if new(big.Int).Mod(n, big.NewInt(97)).Int64() != 1 {
		return errIBANChecksum
	}
	return nil
}

func checkCountry(s string) error {
	r, err := language.ParseRegion(s)
	if err != nil {
		return err
	}
	if !r.IsCountry() {
		return fmt.Errorf("%s is not a country", s)
	}
	return nil
}

func checkCurrency(s string) error {
	_, err := currency.ParseISO(s)
	return err
}
