package rules

import (
	"context"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

type line struct {
	Id  common.Max35Text               `xml:"Id"`
	Amt common.ActiveCurrencyAndAmount `xml:"Amt"`
	Ref *common.Max35Text              `xml:"Ref,omitempty"`
}

type batch struct {
	NbOfTxs  common.Max15NumericText      `xml:"NbOfTxs"`
	CtrlSum  *common.DecimalNumber        `xml:"CtrlSum,omitempty"`
	SttlmMtd common.SettlementMethod1Code `xml:"SttlmMtd"`
	Lines    []line                       `xml:"Line"`
}

func amt(ccy, v string) common.ActiveCurrencyAndAmount {
	return common.ActiveCurrencyAndAmount{Ccy: common.ActiveCurrencyCode(ccy), Value: iso.MustDecimal(v)}
}

func sum(v string) *common.DecimalNumber {
	d := common.DecimalNumber(iso.MustDecimal(v))
	return &d
}

func run(t *testing.T, b *batch, rules ...Rule[*batch]) iso.Issues {
	t.Helper()
	err := Run(context.Background(), iso.Root().Field("Batch"), b, rules...)
	if err == nil {
		return nil
	}
	iss, ok := iso.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T", err)
	}
	return iss
}

func validBatch() *batch {
	return &batch{
		NbOfTxs:  "2",
		CtrlSum:  sum("15.50"),
		SttlmMtd: "CLRG",
		Lines: []line{
			{Id: "A", Amt: amt("USD", "10.25")},
			{Id: "B", Amt: amt("USD", "5.25")},
		},
	}
}

func TestCountAndSum(t *testing.T) {
	b := validBatch()
	if iss := run(t, b, CountEquals[*batch]("/NbOfTxs", "/Line"), SumEquals[*batch]("/CtrlSum", "/Line", "Amt")); iss != nil {
		t.Fatalf("unexpected: %v", iss)
	}
	b.NbOfTxs = "3"
	b.CtrlSum = sum("15.5")
	iss := run(t, b, CountEquals[*batch]("/NbOfTxs", "/Line"), SumEquals[*batch]("/CtrlSum", "/Line", "Amt"))
	if len(iss) != 1 || iss[0].Path != "/Batch/NbOfTxs" || iss[0].Code != iso.CodeAggregateViolation {
		t.Fatalf("only the count is wrong (15.5 == 15.50): %v", iss)
	}
	b.NbOfTxs = "2"
	b.CtrlSum = sum("16")
	iss = run(t, b, SumEquals[*batch]("/CtrlSum", "/Line", "Amt"))
	if len(iss) != 1 || iss[0].Path != "/Batch/CtrlSum" || iss[0].Params["want"] != "15.50" {
		t.Fatalf("unexpected: %v", iss)
	}
	// an absent control sum is not checked
	b.CtrlSum = nil
	if iss := run(t, b, SumEquals[*batch]("/CtrlSum", "/Line", "Amt")); iss != nil {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestEqualsAndConditional(t *testing.T) {
	b := validBatch()
	if iss := run(t, b, Equals[*batch]("/SttlmMtd", "CLRG")); iss != nil {
		t.Fatalf("named string types compare by text: %v", iss)
	}
	b.SttlmMtd = "INDA"
	iss := run(t, b, Equals[*batch]("/SttlmMtd", "CLRG"))
	if len(iss) != 1 || iss[0].Rule != "Equals" || iss[0].Params["got"] != "INDA" {
		t.Fatalf("unexpected: %v", iss)
	}
	onlyClrg := If[*batch]("/SttlmMtd", Eq, "CLRG").Then(Equals[*batch]("/Line/*/Amt/Ccy", "EUR"))
	if iss := run(t, b, onlyClrg); iss != nil {
		t.Fatalf("condition is false for INDA: %v", iss)
	}
	b.SttlmMtd = "CLRG"
	iss = run(t, b, onlyClrg)
	if len(iss) != 2 || iss[1].Path != "/Batch/Line/1/Amt/Ccy" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestFailFastStopsAfterFirstRule(t *testing.T) {
	b := validBatch()
	b.NbOfTxs = "9"
	b.SttlmMtd = "INDA"
	rs := []Rule[*batch]{CountEquals[*batch]("/NbOfTxs", "/Line"), Equals[*batch]("/SttlmMtd", "CLRG")}
	if iss := run(t, b, rs...); len(iss) != 2 {
		t.Fatalf("collect mode: %v", iss)
	}
	ctx := iso.WithFailFast(context.Background(), true)
	err := Run(ctx, iso.Root(), b, rs...)
	iss, _ := iso.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/NbOfTxs" {
		t.Fatalf("fail-fast: %v", iss)
	}
}

func TestUniqueByAndPresent(t *testing.T) {
	b := validBatch()
	b.Lines[1].Id = "A"
	iss := run(t, b, UniqueBy[*batch]("/Line", "Id"))
	if len(iss) != 1 || iss[0].Code != iso.CodeUniqueness || iss[0].Path != "/Batch/Line/1/Id" {
		t.Fatalf("unexpected: %v", iss)
	}
	ref := common.Max35Text("R1")
	b.Lines[0].Ref = &ref
	iss = run(t, b, Present[*batch]("/Line/*/Ref"))
	if len(iss) != 1 || iss[0].Path != "/Batch/Line/1/Ref" {
		t.Fatalf("unexpected: %v", iss)
	}
	b.Lines = nil
	iss = run(t, b, AtLeastOne[*batch]("/Line"))
	if len(iss) != 1 || iss[0].Code != iso.CodeTooFew {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestCurrencyPrecision(t *testing.T) {
	b := validBatch()
	b.Lines = append(b.Lines, line{Id: "C", Amt: amt("JPY", "100.5")}, line{Id: "D", Amt: amt("USD", "1.001")})
	iss := run(t, b, CurrencyPrecision[*batch]("/Line/*/Amt"))
	if len(iss) != 2 {
		t.Fatalf("want JPY and USD issues: %v", iss)
	}
	if iss[0].Path != "/Batch/Line/2/Amt" || iss[0].Params["max"] != 0 || iss[0].Params["currency"] != "JPY" {
		t.Fatalf("unexpected: %+v", iss[0])
	}
	if iss[1].Params["max"] != 2 || iss[1].Params["got"] != 3 {
		t.Fatalf("unexpected: %+v", iss[1])
	}
}

func TestSameValueAndOr(t *testing.T) {
	b := validBatch()
	b.Lines[1].Amt = amt("EUR", "5.25")
	iss := run(t, b, SameValue[*batch]("/Line/*/Amt/Ccy"))
	if len(iss) != 1 || iss[0].Params["want"] != "USD" || iss[0].Params["got"] != "EUR" {
		t.Fatalf("unexpected: %v", iss)
	}
	either := Or(Equals[*batch]("/SttlmMtd", "INDA"), Equals[*batch]("/SttlmMtd", "CLRG"))
	if iss := run(t, b, either); iss != nil {
		t.Fatalf("unexpected: %v", iss)
	}
}
