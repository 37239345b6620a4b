package admi00600101

import (
	"bytes"
	"context"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const resend = `{
  "xmlns": "urn:iso:std:iso:20022:tech:xsd:admi.006.001.01",
  "RsndReq": {
    "MsgHdr": {
      "MsgId": "20240501021000089RSND0001",
      "CreDtTm": "2024-05-01T10:00:00-04:00"
    },
    "RsndSchCrit": [{
      "BizDt": "2024-05-01",
      "SeqRg": {"FrToSeq": [{"FrSeq": "000120", "ToSeq": "000135"}]},
      "Rcpt": {"Id": {"AnyBIC": "FEDUUS33XXX"}}
    }]
  }
}`

func TestParseResendRequest(t *testing.T) {
	doc, err := iso.ParseBytes(context.Background(), []byte(resend))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := doc.Message.(*ResendRequestV01)
	if len(m.RsndSchCrit) != 1 || m.RsndSchCrit[0].SeqRg.FrToSeq[0].ToSeq != "000135" {
		t.Fatalf("unexpected criteria: %+v", m.RsndSchCrit)
	}
	var out bytes.Buffer
	if err := iso.Encode(&out, doc, iso.FormatXML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "<FrSeq>000120</FrSeq>") {
		t.Fatalf("xml:\n%s", out.String())
	}
}

func TestResendRequestRules(t *testing.T) {
	cases := []struct {
		name string
		msg  ResendRequestV01
		path string
		code string
	}{
		{
			name: "no criteria",
			msg:  ResendRequestV01{MsgHdr: MessageHeader7{MsgId: "M1"}},
			path: "/RsndSchCrit",
			code: iso.CodeTooFew,
		},
		{
			name: "empty sequence range",
			msg: ResendRequestV01{
				MsgHdr: MessageHeader7{MsgId: "M1"},
				RsndSchCrit: []ResendSearchCriteria2{{
					SeqRg: &common.SequenceRange1Choice{},
					Rcpt:  PartyIdentification136{Id: PartyIdentification120Choice{AnyBIC: bic("FEDUUS33XXX")}},
				}},
			},
			path: "/RsndSchCrit/0/SeqRg",
			code: iso.CodeInvalidChoice,
		},
		{
			name: "recipient without identification",
			msg: ResendRequestV01{
				MsgHdr:      MessageHeader7{MsgId: "M1"},
				RsndSchCrit: []ResendSearchCriteria2{{}},
			},
			path: "/RsndSchCrit/0/Rcpt/Id",
			code: iso.CodeInvalidChoice,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			iss, _ := iso.AsIssues(c.msg.Validate(iso.Root()))
			if len(iss) != 1 || iss[0].Path != c.path || iss[0].Code != c.code {
				t.Fatalf("got %v, want %s at %s", iss, c.code, c.path)
			}
		})
	}
}

func bic(s string) *common.AnyBICDec2014Identifier {
	v := common.AnyBICDec2014Identifier(s)
	return &v
}
