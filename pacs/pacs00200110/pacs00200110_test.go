package pacs00200110

import (
	"context"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

func ptr[T any](v T) *T { return &v }

const rejectedJSON = `{
  "xmlns": "urn:iso:std:iso:20022:tech:xsd:pacs.002.001.10",
  "FIToFIPmtStsRpt": {
    "GrpHdr": {"MsgId": "STS-0001", "CreDtTm": "2024-05-01T09:30:05Z"},
    "TxInfAndSts": [{
      "StsId": "S1",
      "OrgnlGrpInf": {"OrgnlMsgId": "20240501021000021FDN00000001", "OrgnlMsgNmId": "pacs.008.001.08"},
      "OrgnlEndToEndId": "E2E-0001",
      "OrgnlUETR": "8a562c67-ca16-48ba-b074-65581be6f001",
      "TxSts": "RJCT",
      "StsRsnInf": [{"Rsn": {"Cd": "AC04"}, "AddtlInf": ["account closed"]}],
      "FctvIntrBkSttlmDt": {"Dt": "2024-05-01"},
      "OrgnlTxRef": {"IntrBkSttlmAmt": {"Ccy": "USD", "$value": 1250.75}}
    }]
  }
}`

func parse(t *testing.T, src string) (*FIToFIPaymentStatusReportV10, error) {
	t.Helper()
	doc, err := iso.ParseBytes(context.Background(), []byte(src), iso.ParseOpt{Rules: true})
	if doc == nil {
		t.Fatalf("decode: %v", err)
	}
	return doc.Message.(*FIToFIPaymentStatusReportV10), err
}

func TestParseRejection(t *testing.T) {
	m, err := parse(t, rejectedJSON)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	tx := m.TxInfAndSts[0]
	if *tx.TxSts != StatusRejected || *tx.StsRsnInf[0].Rsn.Cd != "AC04" {
		t.Fatalf("unexpected: %+v", tx)
	}
	if tx.OrgnlTxRef.IntrBkSttlmAmt.Value.String() != "1250.75" {
		t.Fatalf("amount: %s", tx.OrgnlTxRef.IntrBkSttlmAmt.Value)
	}
}

func TestRejectionNeedsReason(t *testing.T) {
	src := strings.Replace(rejectedJSON, `"StsRsnInf": [{"Rsn": {"Cd": "AC04"}, "AddtlInf": ["account closed"]}],`, "", 1)
	_, err := parse(t, src)
	iss, ok := iso.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("want one issue, got %v", err)
	}
	if iss[0].Path != "/FIToFIPmtStsRpt/TxInfAndSts/0/StsRsnInf" || iss[0].Rule != "RejectionReason" || iss[0].Code != iso.CodeBusinessRule {
		t.Fatalf("unexpected: %+v", iss[0])
	}
}

func TestStatusReasonChoice(t *testing.T) {
	rsn := StatusReason6Choice{Cd: ptr(common.ExternalStatusReason1Code("AC04")), Prtry: ptr(common.Max35Text("X"))}
	err := rsn.Validate(iso.Root().Field("Rsn"))
	iss, _ := iso.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != iso.CodeInvalidChoice {
		t.Fatalf("unexpected: %v", err)
	}
	rsn.Prtry = nil
	rsn.Cd = ptr(common.ExternalStatusReason1Code("AC045"))
	iss, _ = iso.AsIssues(rsn.Validate(iso.Root().Field("Rsn")))
	if len(iss) != 1 || iss[0].Path != "/Rsn/Cd" || iss[0].Code != iso.CodeTooLong {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestDuplicateStatusIds(t *testing.T) {
	m := &FIToFIPaymentStatusReportV10{
		GrpHdr: GroupHeader91{MsgId: "STS-2", CreDtTm: "2024-05-01T09:30:05Z"},
		TxInfAndSts: []PaymentTransaction110{
			{StsId: ptr(common.Max35Text("S1")), TxSts: ptr(StatusAccepted)},
			{StsId: ptr(common.Max35Text("S1")), TxSts: ptr(StatusPending)},
		},
	}
	if err := iso.Validate(m); err != nil {
		t.Fatalf("structurally valid: %v", err)
	}
	iss, _ := iso.AsIssues(checkRules(context.Background(), m))
	if len(iss) != 1 || iss[0].Code != iso.CodeUniqueness || iss[0].Path != "/FIToFIPmtStsRpt/TxInfAndSts/1/StsId" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestGroupStatusReport(t *testing.T) {
	m := &FIToFIPaymentStatusReportV10{
		GrpHdr: GroupHeader91{MsgId: "STS-3", CreDtTm: "2024-05-01T09:30:05Z"},
		OrgnlGrpInfAndSts: []OriginalGroupHeader17{{
			OrgnlMsgId:   "M1",
			OrgnlMsgNmId: "pacs.008.001.08",
			NbOfTxsPerSts: []NumberOfTransactionsPerStatus5{
				{DtldNbOfTxs: "1", DtldSts: "ACSC"},
				{DtldNbOfTxs: "x", DtldSts: "RJCT"},
			},
		}},
	}
	iss, _ := iso.AsIssues(iso.Validate(m))
	if len(iss) != 1 || iss[0].Path != "/OrgnlGrpInfAndSts/0/NbOfTxsPerSts/1/DtldNbOfTxs" || iss[0].Code != iso.CodePattern {
		t.Fatalf("unexpected: %v", iss)
	}
}
