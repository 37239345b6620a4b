package common

import iso "github.com/reoring/iso20022"

// Closed ISO code lists.
var (
	addressType2Code            = iso.NewTextType("AddressType2Code", iso.Enum("ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY"))
	chargeBearerType1Code       = iso.NewTextType("ChargeBearerType1Code", iso.Enum("DEBT", "CRED", "SHAR", "SLEV"))
	clearingChannel2Code        = iso.NewTextType("ClearingChannel2Code", iso.Enum("RTGS", "RTNS", "MPNS", "BOOK"))
	settlementMethod1Code       = iso.NewTextType("SettlementMethod1Code", iso.Enum("INDA", "INGA", "COVE", "CLRG"))
	priority2Code               = iso.NewTextType("Priority2Code", iso.Enum("HIGH", "NORM"))
	priority3Code               = iso.NewTextType("Priority3Code", iso.Enum("URGT", "HIGH", "NORM"))
	creditDebitCode             = iso.NewTextType("CreditDebitCode", iso.Enum("CRDT", "DBIT"))
	namePrefix2Code             = iso.NewTextType("NamePrefix2Code", iso.Enum("DOCT", "MADM", "MISS", "MIST", "MIKS"))
	preferredContactMethod1Code = iso.NewTextType("PreferredContactMethod1Code", iso.Enum("LETT", "MAIL", "PHON", "FAXX", "CELL"))
	instruction3Code            = iso.NewTextType("Instruction3Code", iso.Enum("CHQB", "HOLD", "PHOB", "TELB"))
	instruction4Code            = iso.NewTextType("Instruction4Code", iso.Enum("PHOA", "TELA"))
	copyDuplicate1Code          = iso.NewTextType("CopyDuplicate1Code", iso.Enum("CODU", "COPY", "DUPL"))
)

type AddressType2Code string

func (v AddressType2Code) Validate(p iso.PathRef) error { return addressType2Code.Check(p, string(v)) }
func (AddressType2Code) SimpleType() iso.SimpleType     { return addressType2Code }

// ChargeBearerType1Code says which party bears the charges.
type ChargeBearerType1Code string

func (v ChargeBearerType1Code) Validate(p iso.PathRef) error {
	return chargeBearerType1Code.Check(p, string(v))
}
func (ChargeBearerType1Code) SimpleType() iso.SimpleType { return chargeBearerType1Code }

type ClearingChannel2Code string

func (v ClearingChannel2Code) Validate(p iso.PathRef) error {
	return clearingChannel2Code.Check(p, string(v))
}
func (ClearingChannel2Code) SimpleType() iso.SimpleType { return clearingChannel2Code }

// SettlementMethod1Code; FedNow only accepts CLRG.
type SettlementMethod1Code string

func (v SettlementMethod1Code) Validate(p iso.PathRef) error {
	return settlementMethod1Code.Check(p, string(v))
}
func (SettlementMethod1Code) SimpleType() iso.SimpleType { return settlementMethod1Code }

type Priority2Code string

func (v Priority2Code) Validate(p iso.PathRef) error { return priority2Code.Check(p, string(v)) }
func (Priority2Code) SimpleType() iso.SimpleType     { return priority2Code }

type Priority3Code string

func (v Priority3Code) Validate(p iso.PathRef) error { return priority3Code.Check(p, string(v)) }
func (Priority3Code) SimpleType() iso.SimpleType     { return priority3Code }

type CreditDebitCode string

func (v CreditDebitCode) Validate(p iso.PathRef) error { return creditDebitCode.Check(p, string(v)) }
func (CreditDebitCode) SimpleType() iso.SimpleType     { return creditDebitCode }

type NamePrefix2Code string

func (v NamePrefix2Code) Validate(p iso.PathRef) error { return namePrefix2Code.Check(p, string(v)) }
func (NamePrefix2Code) SimpleType() iso.SimpleType     { return namePrefix2Code }

type PreferredContactMethod1Code string

func (v PreferredContactMethod1Code) Validate(p iso.PathRef) error {
	return preferredContactMethod1Code.Check(p, string(v))
}
func (PreferredContactMethod1Code) SimpleType() iso.SimpleType { return preferredContactMethod1Code }

// Instruction3Code is an instruction for the creditor agent.
type Instruction3Code string

func (v Instruction3Code) Validate(p iso.PathRef) error { return instruction3Code.Check(p, string(v)) }
func (Instruction3Code) SimpleType() iso.SimpleType     { return instruction3Code }

// Instruction4Code is an instruction for the next agent.
type Instruction4Code string

func (v Instruction4Code) Validate(p iso.PathRef) error { return instruction4Code.Check(p, string(v)) }
func (Instruction4Code) SimpleType() iso.SimpleType     { return instruction4Code }

type CopyDuplicate1Code string

func (v CopyDuplicate1Code) Validate(p iso.PathRef) error {
	return copyDuplicate1Code.Check(p, string(v))
}
func (CopyDuplicate1Code) SimpleType() iso.SimpleType { return copyDuplicate1Code }
