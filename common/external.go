package common

import iso "github.com/reoring/iso20022"

// External code sets are published outside the message schemas and change
// without a schema release, so only their length is checked here.
var (
	externalAccountIdentification1Code              = iso.NewTextType("ExternalAccountIdentification1Code", iso.Length(1, 4))
	externalCashAccountType1Code                    = iso.NewTextType("ExternalCashAccountType1Code", iso.Length(1, 4))
	externalCashClearingSystem1Code                 = iso.NewTextType("ExternalCashClearingSystem1Code", iso.Length(1, 3))
	externalCategoryPurpose1Code                    = iso.NewTextType("ExternalCategoryPurpose1Code", iso.Length(1, 4))
	externalClearingSystemIdentification1Code       = iso.NewTextType("ExternalClearingSystemIdentification1Code", iso.Length(1, 5))
	externalFinancialInstitutionIdentification1Code = iso.NewTextType("ExternalFinancialInstitutionIdentification1Code", iso.Length(1, 4))
	externalLocalInstrument1Code                    = iso.NewTextType("ExternalLocalInstrument1Code", iso.Length(1, 35))
	externalOrganisationIdentification1Code         = iso.NewTextType("ExternalOrganisationIdentification1Code", iso.Length(1, 4))
	externalPersonIdentification1Code               = iso.NewTextType("ExternalPersonIdentification1Code", iso.Length(1, 4))
	externalProxyAccountType1Code                   = iso.NewTextType("ExternalProxyAccountType1Code", iso.Length(1, 4))
	externalPurpose1Code                            = iso.NewTextType("ExternalPurpose1Code", iso.Length(1, 4))
	externalServiceLevel1Code                       = iso.NewTextType("ExternalServiceLevel1Code", iso.Length(1, 4))
	externalPaymentTransactionStatus1Code           = iso.NewTextType("ExternalPaymentTransactionStatus1Code", iso.Length(1, 4))
	externalStatusReason1Code                       = iso.NewTextType("ExternalStatusReason1Code", iso.Length(1, 4))
	externalPaymentGroupStatus1Code                 = iso.NewTextType("ExternalPaymentGroupStatus1Code", iso.Length(1, 4))
)

type ExternalAccountIdentification1Code string

func (v ExternalAccountIdentification1Code) Validate(p iso.PathRef) error {
	return externalAccountIdentification1Code.Check(p, string(v))
}
func (ExternalAccountIdentification1Code) SimpleType() iso.SimpleType { return externalAccountIdentification1Code }

type ExternalCashAccountType1Code string

func (v ExternalCashAccountType1Code) Validate(p iso.PathRef) error {
	return externalCashAccountType1Code.Check(p, string(v))
}
func (ExternalCashAccountType1Code) SimpleType() iso.SimpleType { return externalCashAccountType1Code }

type ExternalCashClearingSystem1Code string

func (v ExternalCashClearingSystem1Code) Validate(p iso.PathRef) error {
	return externalCashClearingSystem1Code.Check(p, string(v))
}
func (ExternalCashClearingSystem1Code) SimpleType() iso.SimpleType { return externalCashClearingSystem1Code }

type ExternalCategoryPurpose1Code string

func (v ExternalCategoryPurpose1Code) Validate(p iso.PathRef) error {
	return externalCategoryPurpose1Code.Check(p, string(v))
}
func (ExternalCategoryPurpose1Code) SimpleType() iso.SimpleType { return externalCategoryPurpose1Code }

type ExternalClearingSystemIdentification1Code string

func (v ExternalClearingSystemIdentification1Code) Validate(p iso.PathRef) error {
	return externalClearingSystemIdentification1Code.Check(p, string(v))
}
func (ExternalClearingSystemIdentification1Code) SimpleType() iso.SimpleType { return externalClearingSystemIdentification1Code }

type ExternalFinancialInstitutionIdentification1Code string

func (v ExternalFinancialInstitutionIdentification1Code) Validate(p iso.PathRef) error {
	return externalFinancialInstitutionIdentification1Code.Check(p, string(v))
}
func (ExternalFinancialInstitutionIdentification1Code) SimpleType() iso.SimpleType { return externalFinancialInstitutionIdentification1Code }

type ExternalLocalInstrument1Code string

func (v ExternalLocalInstrument1Code) Validate(p iso.PathRef) error {
	return externalLocalInstrument1Code.Check(p, string(v))
}
func (ExternalLocalInstrument1Code) SimpleType() iso.SimpleType { return externalLocalInstrument1Code }

type ExternalOrganisationIdentification1Code string

func (v ExternalOrganisationIdentification1Code) Validate(p iso.PathRef) error {
	return externalOrganisationIdentification1Code.Check(p, string(v))
}
func (ExternalOrganisationIdentification1Code) SimpleType() iso.SimpleType { return externalOrganisationIdentification1Code }

type ExternalPersonIdentification1Code string

func (v ExternalPersonIdentification1Code) Validate(p iso.PathRef) error {
	return externalPersonIdentification1Code.Check(p, string(v))
}
func (ExternalPersonIdentification1Code) SimpleType() iso.SimpleType { return externalPersonIdentification1Code }

type ExternalProxyAccountType1Code string

func (v ExternalProxyAccountType1Code) Validate(p iso.PathRef) error {
	return externalProxyAccountType1Code.Check(p, string(v))
}
func (ExternalProxyAccountType1Code) SimpleType() iso.SimpleType { return externalProxyAccountType1Code }

type ExternalPurpose1Code string

func (v ExternalPurpose1Code) Validate(p iso.PathRef) error {
	return externalPurpose1Code.Check(p, string(v))
}
func (ExternalPurpose1Code) SimpleType() iso.SimpleType { return externalPurpose1Code }

type ExternalServiceLevel1Code string

func (v ExternalServiceLevel1Code) Validate(p iso.PathRef) error {
	return externalServiceLevel1Code.Check(p, string(v))
}
func (ExternalServiceLevel1Code) SimpleType() iso.SimpleType { return externalServiceLevel1Code }

type ExternalPaymentTransactionStatus1Code string

func (v ExternalPaymentTransactionStatus1Code) Validate(p iso.PathRef) error {
	return externalPaymentTransactionStatus1Code.Check(p, string(v))
}
func (ExternalPaymentTransactionStatus1Code) SimpleType() iso.SimpleType { return externalPaymentTransactionStatus1Code }

type ExternalStatusReason1Code string

func (v ExternalStatusReason1Code) Validate(p iso.PathRef) error {
	return externalStatusReason1Code.Check(p, string(v))
}
func (ExternalStatusReason1Code) SimpleType() iso.SimpleType { return externalStatusReason1Code }

type ExternalPaymentGroupStatus1Code string

func (v ExternalPaymentGroupStatus1Code) Validate(p iso.PathRef) error {
	return externalPaymentGroupStatus1Code.Check(p, string(v))
}
func (ExternalPaymentGroupStatus1Code) SimpleType() iso.SimpleType { return externalPaymentGroupStatus1Code }
