package common

import iso "github.com/reoring/iso20022"

var (
	max4Text               = iso.NewTextType("Max4Text", iso.Length(1, 4))
	max10Text              = iso.NewTextType("Max10Text", iso.Length(1, 10))
	max16Text              = iso.NewTextType("Max16Text", iso.Length(1, 16))
	max34Text              = iso.NewTextType("Max34Text", iso.Length(1, 34))
	max35Text              = iso.NewTextType("Max35Text", iso.Length(1, 35))
	max70Text              = iso.NewTextType("Max70Text", iso.Length(1, 70))
	max105Text             = iso.NewTextType("Max105Text", iso.Length(1, 105))
	max128Text             = iso.NewTextType("Max128Text", iso.Length(1, 128))
	max140Text             = iso.NewTextType("Max140Text", iso.Length(1, 140))
	max350Text             = iso.NewTextType("Max350Text", iso.Length(1, 350))
	max1000Text            = iso.NewTextType("Max1000Text", iso.Length(1, 1000))
	max2048Text            = iso.NewTextType("Max2048Text", iso.Length(1, 2048))
	max20000Text           = iso.NewTextType("Max20000Text", iso.Length(1, 20000))
	max4AlphaNumericText   = iso.NewTextType("Max4AlphaNumericText", iso.Length(1, 4), iso.Pattern(`[a-zA-Z0-9]{1,4}`))
	max15NumericText       = iso.NewTextType("Max15NumericText", iso.Pattern(`[0-9]{1,15}`))
	exact4AlphaNumericText = iso.NewTextType("Exact4AlphaNumericText", iso.Pattern(`[a-zA-Z0-9]{4}`))
	phoneNumber            = iso.NewTextType("PhoneNumber", iso.Pattern(`\+[0-9]{1,3}-[0-9()+\-]{1,30}`))
)

// Max4Text is text of 1 to 4 characters.
type Max4Text string

func (v Max4Text) Validate(p iso.PathRef) error { return max4Text.Check(p, string(v)) }
func (Max4Text) SimpleType() iso.SimpleType     { return max4Text }

// Max10Text is text of 1 to 10 characters.
type Max10Text string

func (v Max10Text) Validate(p iso.PathRef) error { return max10Text.Check(p, string(v)) }
func (Max10Text) SimpleType() iso.SimpleType     { return max10Text }

// Max16Text is text of 1 to 16 characters.
type Max16Text string

func (v Max16Text) Validate(p iso.PathRef) error { return max16Text.Check(p, string(v)) }
func (Max16Text) SimpleType() iso.SimpleType     { return max16Text }

// Max34Text is text of 1 to 34 characters.
type Max34Text string

func (v Max34Text) Validate(p iso.PathRef) error { return max34Text.Check(p, string(v)) }
func (Max34Text) SimpleType() iso.SimpleType     { return max34Text }

// Max35Text is text of 1 to 35 characters.
type Max35Text string

func (v Max35Text) Validate(p iso.PathRef) error { return max35Text.Check(p, string(v)) }
func (Max35Text) SimpleType() iso.SimpleType     { return max35Text }

// Max70Text is text of 1 to 70 characters.
type Max70Text string

func (v Max70Text) Validate(p iso.PathRef) error { return max70Text.Check(p, string(v)) }
func (Max70Text) SimpleType() iso.SimpleType     { return max70Text }

// Max105Text is text of 1 to 105 characters.
type Max105Text string

func (v Max105Text) Validate(p iso.PathRef) error { return max105Text.Check(p, string(v)) }
func (Max105Text) SimpleType() iso.SimpleType     { return max105Text }

// Max128Text is text of 1 to 128 characters.
type Max128Text string

func (v Max128Text) Validate(p iso.PathRef) error { return max128Text.Check(p, string(v)) }
func (Max128Text) SimpleType() iso.SimpleType     { return max128Text }

// Max140Text is text of 1 to 140 characters.
type Max140Text string

func (v Max140Text) Validate(p iso.PathRef) error { return max140Text.Check(p, string(v)) }
func (Max140Text) SimpleType() iso.SimpleType     { return max140Text }

// Max350Text is text of 1 to 350 characters.
type Max350Text string

func (v Max350Text) Validate(p iso.PathRef) error { return max350Text.Check(p, string(v)) }
func (Max350Text) SimpleType() iso.SimpleType     { return max350Text }

// Max1000Text is text of 1 to 1000 characters.
type Max1000Text string

func (v Max1000Text) Validate(p iso.PathRef) error { return max1000Text.Check(p, string(v)) }
func (Max1000Text) SimpleType() iso.SimpleType     { return max1000Text }

// Max2048Text is text of 1 to 2048 characters.
type Max2048Text string

func (v Max2048Text) Validate(p iso.PathRef) error { return max2048Text.Check(p, string(v)) }
func (Max2048Text) SimpleType() iso.SimpleType     { return max2048Text }

// Max20000Text is text of 1 to 20000 characters.
type Max20000Text string

func (v Max20000Text) Validate(p iso.PathRef) error { return max20000Text.Check(p, string(v)) }
func (Max20000Text) SimpleType() iso.SimpleType     { return max20000Text }

// Max4AlphaNumericText is 1 to 4 letters or digits.
type Max4AlphaNumericText string

func (v Max4AlphaNumericText) Validate(p iso.PathRef) error {
	return max4AlphaNumericText.Check(p, string(v))
}
func (Max4AlphaNumericText) SimpleType() iso.SimpleType { return max4AlphaNumericText }

// Max15NumericText is 1 to 15 decimal digits.
type Max15NumericText string

func (v Max15NumericText) Validate(p iso.PathRef) error {
	return max15NumericText.Check(p, string(v))
}
func (Max15NumericText) SimpleType() iso.SimpleType { return max15NumericText }

type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate(p iso.PathRef) error {
	return exact4AlphaNumericText.Check(p, string(v))
}
func (Exact4AlphaNumericText) SimpleType() iso.SimpleType { return exact4AlphaNumericText }

// PhoneNumber is "+" country code "-" number, e.g. "+1-212-5551234".
type PhoneNumber string

func (v PhoneNumber) Validate(p iso.PathRef) error { return phoneNumber.Check(p, string(v)) }
func (PhoneNumber) SimpleType() iso.SimpleType     { return phoneNumber }

// TrueFalseIndicator is xs:boolean; any decoded value is valid.
type TrueFalseIndicator bool

func (TrueFalseIndicator) Validate(iso.PathRef) error { return nil }

// YesNoIndicator is xs:boolean; any decoded value is valid.
type YesNoIndicator bool

func (YesNoIndicator) Validate(iso.PathRef) error { return nil }
