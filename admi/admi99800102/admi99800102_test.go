package admi99800102

import (
	"context"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/fednow/participant"
)

const file = `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.998.001.02">
  <AdmstnPrtryMsg>
    <MsgId><Ref>PF20240501</Ref></MsgId>
    <PrtryData>
      <Tp>PtcptFile</Tp>
      <Data>
        <PtcptFile>
          <BizDay>2024-05-01</BizDay>
          <PtcptPrfl>
            <Id>021000021</Id>
            <Nm>First Bank</Nm>
            <Svcs>CTSR</Svcs>
            <Svcs>RFPR</Svcs>
          </PtcptPrfl>
          <PtcptPrfl>
            <Id>011000015</Id>
            <Nm>Second Bank</Nm>
            <Svcs>CTRO</Svcs>
          </PtcptPrfl>
        </PtcptFile>
      </Data>
    </PrtryData>
  </AdmstnPrtryMsg>
</Document>`

func TestParticipantFile(t *testing.T) {
	doc, err := iso.ParseBytes(context.Background(), []byte(file))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pf, ok := doc.Message.(*AdministrationProprietaryMessageV02).ParticipantFile()
	if !ok || len(pf.PtcptPrfl) != 2 {
		t.Fatalf("participant file: %+v", pf)
	}
	pr, ok := pf.Lookup("011000015")
	if !ok || !pr.Offers(participant.ServiceCreditTransferReceiveOnly) || pr.Offers(participant.ServiceRequestForPayment) {
		t.Fatalf("profile: %+v", pr)
	}
}

func TestParticipantFileServiceCode(t *testing.T) {
	in := strings.Replace(file, "<Svcs>CTRO</Svcs>", "<Svcs>ACH</Svcs>", 1)
	_, err := iso.ParseBytes(context.Background(), []byte(in))
	iss, _ := iso.AsIssues(err)
	want := "/AdmstnPrtryMsg/PrtryData/Data/PtcptFile/PtcptPrfl/1/Svcs/0"
	if len(iss) != 1 || iss[0].Path != want || iss[0].Code != iso.CodeInvalidEnum {
		t.Fatalf("got %v, want invalid_enum at %s", iss, want)
	}
}
