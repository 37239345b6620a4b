package head00100102

import (
	"encoding/xml"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const appHdr = `<AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">
  <Fr><FIId><FinInstnId><ClrSysMmbId><MmbId>021000021</MmbId></ClrSysMmbId></FinInstnId></FIId></Fr>
  <To><FIId><FinInstnId><ClrSysMmbId><MmbId>021150706</MmbId></ClrSysMmbId></FinInstnId></FIId></To>
  <BizMsgIdr>B20240501-1</BizMsgIdr>
  <MsgDefIdr>pacs.008.001.08</MsgDefIdr>
  <CreDt>2024-05-01T13:30:00Z</CreDt>
  <Sgntr><ds:Signature xmlns:ds="http://www.w3.org/2000/09/xmldsig#"><ds:SignatureValue>AAAA</ds:SignatureValue></ds:Signature></Sgntr>
</AppHdr>`

func decode(t *testing.T, s string) *BusinessApplicationHeaderV02 {
	t.Helper()
	var h BusinessApplicationHeaderV02
	if err := xml.Unmarshal([]byte(s), &h); err != nil {
		t.Fatal(err)
	}
	return &h
}

func TestHeader(t *testing.T) {
	h := decode(t, appHdr)
	if err := h.Validate(iso.Root().Field("AppHdr")); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if h.MsgDefIdr != "pacs.008.001.08" || h.Fr.FIId == nil {
		t.Fatalf("unexpected header: %+v", h)
	}
	if h.Sgntr == nil || !strings.Contains(h.Sgntr.Content, "SignatureValue") {
		t.Fatalf("signature not kept: %+v", h.Sgntr)
	}
}

func TestSenderIsAChoice(t *testing.T) {
	h := decode(t, appHdr)
	nm := common.Max140Text("First Bank")
	h.Fr.OrgId = &common.PartyIdentification135{Nm: &nm}
	iss, _ := iso.AsIssues(h.Validate(iso.Root().Field("AppHdr")))
	if len(iss) != 1 || iss[0].Code != iso.CodeInvalidChoice || iss[0].Path != "/AppHdr/Fr" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestCreationDate(t *testing.T) {
	h := decode(t, strings.Replace(appHdr, "2024-05-01T13:30:00Z", "May 1st", 1))
	iss, _ := iso.AsIssues(h.Validate(iso.Root()))
	if len(iss) != 1 || iss[0].Path != "/CreDt" || iss[0].Code != iso.CodeInvalidFormat {
		t.Fatalf("unexpected: %v", iss)
	}
}
