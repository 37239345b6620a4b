package pacs00400110

import (
	"bytes"
	"context"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
)

const returnJSON = `{
  "xmlns": "urn:iso:std:iso:20022:tech:xsd:pacs.004.001.10",
  "PmtRtr": {
    "GrpHdr": {
      "MsgId": "20240501021000021FDN00000009",
      "CreDtTm": "2024-05-01T11:15:00-04:00",
      "NbOfTxs": "1",
      "CtrlSum": 1250.75,
      "TtlRtrdIntrBkSttlmAmt": {"Ccy": "USD", "$value": 1250.75},
      "SttlmInf": {"SttlmMtd": "CLRG", "ClrSys": {"Cd": "FDN"}}
    },
    "TxInf": [{
      "RtrId": "RTR-0001",
      "OrgnlGrpInf": {"OrgnlMsgId": "20240501021000089FDN00000001", "OrgnlMsgNmId": "pacs.008.001.08"},
      "OrgnlEndToEndId": "E2E-0001",
      "OrgnlUETR": "8a562c67-ca16-48ba-b074-65581be6f001",
      "RtrdIntrBkSttlmAmt": {"Ccy": "USD", "$value": 1250.75},
      "IntrBkSttlmDt": "2024-05-01",
      "ChrgBr": "SLEV",
      "RtrRsnInf": [{"Rsn": {"Cd": "AC04"}, "AddtlInf": ["account closed"]}],
      "OrgnlTxRef": {
        "PmtTpInf": {"LclInstrm": {"Prtry": "FDNA"}, "SeqTp": "OOFF"},
        "Dbtr": {"Pty": {"Nm": "Corner Bakery"}},
        "Cdtr": {"Pty": {"Nm": "Flour Supply Co"}}
      }
    }]
  }
}`

func parse(t *testing.T, src string) (*PaymentReturnV10, error) {
	t.Helper()
	doc, err := iso.ParseBytes(context.Background(), []byte(src), iso.ParseOpt{Rules: true})
	if doc == nil {
		t.Fatalf("decode: %v", err)
	}
	return doc.Message.(*PaymentReturnV10), err
}

func TestParseReturn(t *testing.T) {
	doc, err := iso.ParseBytes(context.Background(), []byte(returnJSON), iso.ParseOpt{Rules: true})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	tx := doc.Message.(*PaymentReturnV10).TxInf[0]
	if *tx.RtrRsnInf[0].Rsn.Cd != "AC04" || tx.RtrdIntrBkSttlmAmt.Value.String() != "1250.75" {
		t.Fatalf("unexpected: %+v", tx)
	}
	if *tx.OrgnlTxRef.PmtTpInf.SeqTp != "OOFF" {
		t.Fatalf("sequence type: %+v", tx.OrgnlTxRef.PmtTpInf)
	}
	var out bytes.Buffer
	if err := iso.Encode(&out, doc, iso.FormatXML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "<PmtRtr>") || !strings.Contains(out.String(), "<Cd>AC04</Cd>") {
		t.Fatalf("xml:\n%s", out.String())
	}
}

func TestReturnControlSum(t *testing.T) {
	src := strings.Replace(returnJSON, `"CtrlSum": 1250.75`, `"CtrlSum": 1250.70`, 1)
	_, err := parse(t, src)
	iss, ok := iso.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("want one issue, got %v", err)
	}
	if is := iss[0]; is.Path != "/PmtRtr/GrpHdr/CtrlSum" || is.Code != iso.CodeAggregateViolation {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestReturnStructure(t *testing.T) {
	cases := []struct {
		name string
		edit func(string) string
		path string
		code string
	}{
		{
			name: "unknown sequence type",
			edit: func(s string) string { return strings.Replace(s, `"OOFF"`, `"ONCE"`, 1) },
			path: "/PmtRtr/TxInf/0/OrgnlTxRef/PmtTpInf/SeqTp",
			code: iso.CodeInvalidEnum,
		},
		{
			name: "reason without code",
			edit: func(s string) string { return strings.Replace(s, `{"Cd": "AC04"}`, `{}`, 1) },
			path: "/PmtRtr/TxInf/0/RtrRsnInf/0/Rsn",
			code: iso.CodeInvalidChoice,
		},
		{
			name: "long additional information",
			edit: func(s string) string {
				return strings.Replace(s, `"account closed"`, `"`+strings.Repeat("x", 106)+`"`, 1)
			},
			path: "/PmtRtr/TxInf/0/RtrRsnInf/0/AddtlInf/0",
			code: iso.CodeTooLong,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse(t, c.edit(returnJSON))
			iss, _ := iso.AsIssues(err)
			if len(iss) != 1 || iss[0].Path != c.path || iss[0].Code != c.code {
				t.Fatalf("got %v, want %s at %s", iss, c.code, c.path)
			}
		})
	}
}
