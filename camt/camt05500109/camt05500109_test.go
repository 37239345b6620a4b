package camt05500109

import (
	"bytes"
	"context"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
)

const cancellation = `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.055.001.09">
  <CstmrPmtCxlReq>
    <Assgnmt>
      <Id>20240501021000089RFPC0001</Id>
      <Assgnr><Agt><FinInstnId><ClrSysMmbId><ClrSysId><Cd>USABA</Cd></ClrSysId><MmbId>021000089</MmbId></ClrSysMmbId></FinInstnId></Agt></Assgnr>
      <Assgne><Agt><FinInstnId><ClrSysMmbId><ClrSysId><Cd>USABA</Cd></ClrSysId><MmbId>021000021</MmbId></ClrSysMmbId></FinInstnId></Agt></Assgne>
      <CreDtTm>2024-05-01T12:00:00-04:00</CreDtTm>
    </Assgnmt>
    <Undrlyg>
      <OrgnlPmtInfAndCxl>
        <OrgnlPmtInfId>RFP-0001</OrgnlPmtInfId>
        <OrgnlGrpInf>
          <OrgnlMsgId>20240501021000089RFP00001</OrgnlMsgId>
          <OrgnlMsgNmId>pain.013.001.07</OrgnlMsgNmId>
        </OrgnlGrpInf>
        <TxInf>
          <OrgnlEndToEndId>E2E-RFP-0001</OrgnlEndToEndId>
          <OrgnlInstdAmt Ccy="USD">89.00</OrgnlInstdAmt>
          <OrgnlReqdExctnDt><Dt>2024-05-03</Dt></OrgnlReqdExctnDt>
          <CxlRsnInf><Rsn><Cd>DUPL</Cd></Rsn></CxlRsnInf>
        </TxInf>
      </OrgnlPmtInfAndCxl>
    </Undrlyg>
  </CstmrPmtCxlReq>
</Document>`

func TestParseCancellationRequest(t *testing.T) {
	doc, err := iso.ParseBytes(context.Background(), []byte(cancellation))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := doc.Message.(*CustomerPaymentCancellationRequestV09)
	tx := m.Undrlyg[0].OrgnlPmtInfAndCxl[0].TxInf[0]
	if *tx.CxlRsnInf[0].Rsn.Cd != "DUPL" || *tx.OrgnlReqdExctnDt.Dt != "2024-05-03" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	var out bytes.Buffer
	if err := iso.Encode(&out, doc, iso.FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"OrgnlPmtInfId": "RFP-0001"`) {
		t.Fatalf("json:\n%s", out.String())
	}
}

func TestCancellationRequestStructure(t *testing.T) {
	cases := []struct {
		name string
		edit func(string) string
		path string
		code string
	}{
		{
			name: "no underlying",
			edit: func(s string) string {
				return s[:strings.Index(s, "<Undrlyg>")] + s[strings.Index(s, "</Undrlyg>")+len("</Undrlyg>"):]
			},
			path: "/CstmrPmtCxlReq/Undrlyg",
			code: iso.CodeTooFew,
		},
		{
			name: "both execution date forms",
			edit: func(s string) string {
				return strings.Replace(s, "<Dt>2024-05-03</Dt>", "<Dt>2024-05-03</Dt><DtTm>2024-05-03T09:00:00Z</DtTm>", 1)
			},
			path: "/CstmrPmtCxlReq/Undrlyg/0/OrgnlPmtInfAndCxl/0/TxInf/0/OrgnlReqdExctnDt",
			code: iso.CodeInvalidChoice,
		},
		{
			name: "long reason code",
			edit: func(s string) string { return strings.Replace(s, "<Cd>DUPL</Cd>", "<Cd>DUPLI</Cd>", 1) },
			path: "/CstmrPmtCxlReq/Undrlyg/0/OrgnlPmtInfAndCxl/0/TxInf/0/CxlRsnInf/0/Rsn/Cd",
			code: iso.CodeTooLong,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := iso.ParseBytes(context.Background(), []byte(c.edit(cancellation)))
			iss, _ := iso.AsIssues(err)
			if len(iss) != 1 || iss[0].Path != c.path || iss[0].Code != c.code {
				t.Fatalf("got %v, want %s at %s", iss, c.code, c.path)
			}
		})
	}
}
