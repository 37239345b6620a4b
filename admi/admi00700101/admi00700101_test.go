package admi00700101

import (
	"context"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ack = `
xmlns: urn:iso:std:iso:20022:tech:xsd:admi.007.001.01
RctAck:
  MsgId:
    MsgId: ACK-20240501-0001
  Rpt:
    - RltdRef:
        Ref: 20240501021000021FDN00000001
        MsgNm: pacs.008.001.08
      ReqHdlg:
        StsCd: TS01
        Desc: Accepted for processing
`

func TestParseAcknowledgement(t *testing.T) {
	doc, err := iso.ParseBytes(context.Background(), []byte(ack))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := doc.Message.(*ReceiptAcknowledgementV01)
	if len(m.Rpt) != 1 || m.Rpt[0].ReqHdlg.StsCd != "TS01" {
		t.Fatalf("unexpected report: %+v", m.Rpt)
	}
}

func TestReportRequired(t *testing.T) {
	m := &ReceiptAcknowledgementV01{MsgId: MessageHeader10{MsgId: "ACK-1"}}
	iss, _ := iso.AsIssues(iso.Validate(m))
	if len(iss) != 1 || iss[0].Code != iso.CodeTooFew || iss[0].Path != "/Rpt" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestIssuerChoice(t *testing.T) {
	bic := common.AnyBICDec2014Identifier("FRNYUS33XXX")
	r := &MessageReference1{
		Ref: "REF",
		RefIssr: &PartyIdentification136{Id: PartyIdentification120Choice{
			AnyBIC:   &bic,
			NmAndAdr: &NameAndAddress5{Nm: "Federal Reserve Bank"},
		}},
	}
	iss, _ := iso.AsIssues(r.Validate(iso.Root()))
	if len(iss) != 1 || iss[0].Code != iso.CodeInvalidChoice || iss[0].Path != "/RefIssr/Id" {
		t.Fatalf("unexpected: %v", iss)
	}
	r.RefIssr.Id.NmAndAdr = nil
	if err := r.Validate(iso.Root()); err != nil {
		t.Fatalf("single branch: %v", err)
	}
}

func TestPostalAddressLines(t *testing.T) {
	a := &PostalAddress1{Ctry: "US"}
	for i := 0; i < 6; i++ {
		a.AdrLine = append(a.AdrLine, "line")
	}
	iss, _ := iso.AsIssues(a.Validate(iso.Root()))
	if len(iss) != 1 || iss[0].Code != iso.CodeTooMany || iss[0].Params["max"] != 5 {
		t.Fatalf("unexpected: %v", iss)
	}
}
