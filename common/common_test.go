package common

import (
	"testing"

	iso "github.com/reoring/iso20022"
)

func ptr[T any](v T) *T { return &v }

func firstIssue(t *testing.T, err error) iso.Issue {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a violation, got nil")
	}
	iss, ok := iso.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	first, _ := iss.First()
	return first
}

func TestMax35Text_Bounds(t *testing.T) {
	if err := Max35Text("MSG-0001").Validate(iso.Root().Field("MsgId")); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	is := firstIssue(t, Max35Text("").Validate(iso.Root().Field("MsgId")))
	if is.Code != iso.CodeTooShort || is.Path != "/MsgId" || is.Rule != "Max35Text" {
		t.Fatalf("unexpected issue: %+v", is)
	}
	if is.Message != "MsgId is shorter than the minimum length of 1" {
		t.Fatalf("unexpected message: %q", is.Message)
	}
	long := Max35Text("0123456789012345678901234567890123456")
	is = firstIssue(t, long.Validate(iso.Root().Field("MsgId")))
	if is.Code != iso.CodeTooLong || is.Number() != 1002 || is.Params["max"] != 35 {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestMaxText_CountsRunes(t *testing.T) {
	// four runes, eight bytes
	if err := Max4Text("ÄÖÜß").Validate(iso.Root()); err != nil {
		t.Fatalf("runes must be counted, not bytes: %v", err)
	}
}

func TestPatternTypes(t *testing.T) {
	cases := []struct {
		name string
		v    iso.Validator
		ok   bool
	}{
		{"bic8", BICFIDec2014Identifier("DEUTDEFF"), true},
		{"bic11", BICFIDec2014Identifier("DEUTDEFF500"), true},
		{"bic lower", BICFIDec2014Identifier("deutdeff"), false},
		{"bic embedded", BICFIDec2014Identifier("xxDEUTDEFF"), false},
		{"lei", LEIIdentifier("5493001KJTIIGC8Y1R12"), true},
		{"lei short", LEIIdentifier("5493001KJTIIGC8Y1R1"), false},
		{"uuid", UUIDv4Identifier("8a562c67-ca16-48ba-b074-65581be6f001"), true},
		{"uuid upper", UUIDv4Identifier("8A562C67-CA16-48BA-B074-65581BE6F001"), false},
		{"uuid v1", UUIDv4Identifier("8a562c67-ca16-18ba-b074-65581be6f001"), false},
		{"numeric", Max15NumericText("011000015"), true},
		{"numeric alpha", Max15NumericText("01100001A"), false},
		{"phone", PhoneNumber("+1-212-5551234"), true},
		{"phone bare", PhoneNumber("2125551234"), false},
		{"exact4", Exact4AlphaNumericText("AB12"), true},
		{"exact4 long", Exact4AlphaNumericText("AB123"), false},
	}
	for _, tc := range cases {
		err := tc.v.Validate(iso.Root().Field("X"))
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected %v", tc.name, err)
		}
		if !tc.ok {
			if is := firstIssue(t, err); is.Code != iso.CodePattern {
				t.Fatalf("%s: want pattern, got %+v", tc.name, is)
			}
		}
	}
}

func TestRegistryBackedCodes(t *testing.T) {
	if err := CountryCode("US").Validate(iso.Root()); err != nil {
		t.Fatalf("US: %v", err)
	}
	if is := firstIssue(t, CountryCode("us").Validate(iso.Root())); is.Code != iso.CodePattern {
		t.Fatalf("lower case should fail the pattern first: %+v", is)
	}
	if is := firstIssue(t, CountryCode("QQ").Validate(iso.Root().Field("Ctry"))); is.Code != iso.CodeInvalidFormat || is.Params["format"] != "iso3166" {
		t.Fatalf("unknown region: %+v", is)
	}
	if err := ActiveCurrencyCode("USD").Validate(iso.Root()); err != nil {
		t.Fatalf("USD: %v", err)
	}
	if is := firstIssue(t, ActiveCurrencyCode("ABC").Validate(iso.Root())); is.Code != iso.CodeInvalidFormat || is.Cause == nil {
		t.Fatalf("unknown currency: %+v", is)
	}
	// historic codes only need the shape
	if err := ActiveOrHistoricCurrencyCode("ABC").Validate(iso.Root()); err != nil {
		t.Fatalf("ABC: %v", err)
	}
}

func TestIBANChecksum(t *testing.T) {
	if err := IBAN2007Identifier("GB82WEST12345698765432").Validate(iso.Root()); err != nil {
		t.Fatalf("valid iban: %v", err)
	}
	is := firstIssue(t, IBAN2007Identifier("GB82WEST12345698765431").Validate(iso.Root().Field("IBAN")))
	if is.Code != iso.CodeInvalidFormat || is.Path != "/IBAN" {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestEnumerations(t *testing.T) {
	if err := ChargeBearerType1Code("SLEV").Validate(iso.Root()); err != nil {
		t.Fatalf("SLEV: %v", err)
	}
	is := firstIssue(t, SettlementMethod1Code("WIRE").Validate(iso.Root().Field("SttlmMtd")))
	if is.Code != iso.CodeInvalidEnum || is.Params["got"] != "WIRE" || is.Rule != "SettlementMethod1Code" {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestDateTypes(t *testing.T) {
	if err := ISODate("2024-02-29").Validate(iso.Root()); err != nil {
		t.Fatalf("leap day: %v", err)
	}
	if is := firstIssue(t, ISODate("2023-02-29").Validate(iso.Root())); is.Code != iso.CodeInvalidFormat {
		t.Fatalf("unexpected issue: %+v", is)
	}
	if err := ISODateTime("2024-05-01T09:30:00-04:00").Validate(iso.Root()); err != nil {
		t.Fatalf("datetime: %v", err)
	}
	if firstIssue(t, ISODateTime("2024-05-01").Validate(iso.Root())).Code != iso.CodeInvalidFormat {
		t.Fatalf("a date is not a date-time")
	}
	tm, err := ISODateTime("2024-05-01T09:30:00Z").Time()
	if err != nil || tm.Hour() != 9 {
		t.Fatalf("parse: %v %v", tm, err)
	}
	if got := NewISODate(tm); got != "2024-05-01" {
		t.Fatalf("format: %s", got)
	}
}

func TestAmounts(t *testing.T) {
	ok := ActiveCurrencyAndAmount{Ccy: "USD", Value: iso.MustDecimal("1234.56")}
	if err := ok.Validate(iso.Root()); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	cases := []struct {
		amt  ActiveCurrencyAndAmount
		path string
		code string
	}{
		{ActiveCurrencyAndAmount{Ccy: "usd", Value: iso.MustDecimal("1")}, "/Amt/Ccy", iso.CodePattern},
		{ActiveCurrencyAndAmount{Ccy: "USD", Value: iso.MustDecimal("1.123456")}, "/Amt", iso.CodeDigits},
		{ActiveCurrencyAndAmount{Ccy: "USD", Value: iso.MustDecimal("1234567890123456789")}, "/Amt", iso.CodeDigits},
		{ActiveCurrencyAndAmount{Ccy: "USD", Value: iso.MustDecimal("-1")}, "/Amt", iso.CodeTooSmall},
	}
	for _, tc := range cases {
		is := firstIssue(t, tc.amt.Validate(iso.Root().Field("Amt")))
		if is.Path != tc.path || is.Code != tc.code {
			t.Fatalf("%s %s: got %+v", tc.amt.Ccy, tc.amt.Value, is)
		}
	}
	// trailing zeros do not count as fraction digits
	if err := DecimalNumber(iso.MustDecimal("1.500000000000000000")).Validate(iso.Root()); err != nil {
		t.Fatalf("reduced value fits: %v", err)
	}
	if firstIssue(t, BaseOneRate(iso.MustDecimal("0.12345678901")).Validate(iso.Root())).Code != iso.CodeDigits {
		t.Fatalf("eleven fraction digits exceed BaseOneRate")
	}
}

func TestPostalAddress_FirstFailureInDeclarationOrder(t *testing.T) {
	long := Max70Text("0123456789012345678901234567890123456789012345678901234567890123456789X")
	adr := PostalAddress24{
		Dept: &long,
		Ctry: ptr(CountryCode("usa")),
	}
	is := firstIssue(t, adr.Validate(iso.Root().Field("PstlAdr")))
	if is.Path != "/PstlAdr/Dept" || is.Code != iso.CodeTooLong {
		t.Fatalf("Dept precedes Ctry: %+v", is)
	}
	adr.Dept = nil
	is = firstIssue(t, adr.Validate(iso.Root().Field("PstlAdr")))
	if is.Path != "/PstlAdr/Ctry" || is.Code != iso.CodePattern {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestPostalAddress_AddressLines(t *testing.T) {
	adr := PostalAddress24{AdrLine: []Max70Text{"1", "2", "3", "4", "5", "6", "7", "8"}}
	is := firstIssue(t, adr.Validate(iso.Root()))
	if is.Code != iso.CodeTooMany || is.Path != "/AdrLine" {
		t.Fatalf("unexpected issue: %+v", is)
	}
	adr.AdrLine = []Max70Text{"Main Street 1", ""}
	is = firstIssue(t, adr.Validate(iso.Root()))
	if is.Code != iso.CodeTooShort || is.Path != "/AdrLine/1" || is.Message != "AdrLine is shorter than the minimum length of 1" {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestChoice_ExactlyOne(t *testing.T) {
	both := AccountIdentification4Choice{
		IBAN: ptr(IBAN2007Identifier("GB82WEST12345698765432")),
		Othr: &GenericAccountIdentification1{Id: "12345"},
	}
	is := firstIssue(t, both.Validate(iso.Root().Field("Id")))
	if is.Code != iso.CodeInvalidChoice || is.Path != "/Id" || is.Params["got"] != 2 {
		t.Fatalf("unexpected issue: %+v", is)
	}
	none := Party38Choice{}
	if firstIssue(t, none.Validate(iso.Root())).Code != iso.CodeInvalidChoice {
		t.Fatalf("empty choice must fail")
	}
	one := Party38Choice{OrgId: &OrganisationIdentification29{LEI: ptr(LEIIdentifier("5493001KJTIIGC8Y1R12"))}}
	if err := one.Validate(iso.Root()); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestAgent_NestedPath(t *testing.T) {
	agt := BranchAndFinancialInstitutionIdentification6{
		FinInstnId: FinancialInstitutionIdentification18{
			ClrSysMmbId: &ClearingSystemMemberIdentification2{
				ClrSysId: &ClearingSystemIdentification2Choice{Cd: ptr(ExternalClearingSystemIdentification1Code("USABA"))},
				MmbId:    "",
			},
		},
	}
	is := firstIssue(t, agt.Validate(iso.Root().Field("DbtrAgt")))
	if is.Path != "/DbtrAgt/FinInstnId/ClrSysMmbId/MmbId" || is.Code != iso.CodeTooShort {
		t.Fatalf("unexpected issue: %+v", is)
	}
	agt.FinInstnId.ClrSysMmbId.MmbId = "011000015"
	if err := agt.Validate(iso.Root()); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestBooleanIndicatorsAlwaysValid(t *testing.T) {
	if TrueFalseIndicator(false).Validate(iso.Root()) != nil || YesNoIndicator(true).Validate(iso.Root()) != nil {
		t.Fatalf("indicators have no constraint")
	}
}
