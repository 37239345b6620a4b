package pacs00800108

import (
	"bytes"
	"context"
	"os"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

func load(t *testing.T) (*iso.Document, *FIToFICustomerCreditTransferV08) {
	t.Helper()
	data, err := os.ReadFile("testdata/fednow_ct.xml")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := iso.ParseBytes(context.Background(), data, iso.ParseOpt{Rules: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc, doc.Message.(*FIToFICustomerCreditTransferV08)
}

func firstIssue(t *testing.T, err error) iso.Issue {
	t.Helper()
	iss, ok := iso.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0]
}

func TestParseFixture(t *testing.T) {
	doc, m := load(t)
	if doc.ID() != ID || doc.Root != Root {
		t.Fatalf("resolved %q/%q", doc.ID(), doc.Root)
	}
	if m.GrpHdr.MsgId != "20240501021000021FDN00000001" {
		t.Fatalf("MsgId = %q", m.GrpHdr.MsgId)
	}
	tx := m.CdtTrfTxInf[0]
	if tx.IntrBkSttlmAmt.Ccy != "USD" || tx.IntrBkSttlmAmt.Value.String() != "1250.75" {
		t.Fatalf("amount = %+v", tx.IntrBkSttlmAmt)
	}
	if tx.PmtId.UETR == nil || *tx.PmtId.UETR != "8a562c67-ca16-48ba-b074-65581be6f001" {
		t.Fatalf("UETR = %v", tx.PmtId.UETR)
	}
	if got := *tx.Dbtr.PstlAdr.Ctry; got != "US" {
		t.Fatalf("Ctry = %q", got)
	}
}

func TestValidate_FirstViolationPath(t *testing.T) {
	_, m := load(t)
	m.CdtTrfTxInf[0].DbtrAgt.FinInstnId.ClrSysMmbId.MmbId = ""
	m.GrpHdr.NbOfTxs = "one"

	is := firstIssue(t, iso.Validate(m))
	if is.Path != "/GrpHdr/NbOfTxs" || is.Code != iso.CodePattern {
		t.Fatalf("group header is checked first: %+v", is)
	}
	m.GrpHdr.NbOfTxs = "1"
	is = firstIssue(t, iso.Validate(m))
	if is.Path != "/CdtTrfTxInf/0/DbtrAgt/FinInstnId/ClrSysMmbId/MmbId" || is.Code != iso.CodeTooShort {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestValidate_TransactionsRequired(t *testing.T) {
	_, m := load(t)
	m.CdtTrfTxInf = nil
	is := firstIssue(t, iso.Validate(m))
	if is.Path != "/CdtTrfTxInf" || is.Code != iso.CodeTooFew {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestDocumentPathsIncludeRoot(t *testing.T) {
	doc, m := load(t)
	m.CdtTrfTxInf[0].ChrgBr = "OURS"
	is := firstIssue(t, iso.Validate(doc))
	if is.Path != "/FIToFICstmrCdtTrf/CdtTrfTxInf/0/ChrgBr" || is.Code != iso.CodeInvalidEnum {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestBusinessRules(t *testing.T) {
	_, m := load(t)
	ctx := context.Background()
	if err := checkRules(ctx, m); err != nil {
		t.Fatalf("fixture breaks rules: %v", err)
	}

	m.GrpHdr.NbOfTxs = "2"
	is := firstIssue(t, checkRules(ctx, m))
	if is.Path != "/FIToFICstmrCdtTrf/GrpHdr/NbOfTxs" || is.Code != iso.CodeAggregateViolation {
		t.Fatalf("unexpected: %+v", is)
	}
	m.GrpHdr.NbOfTxs = "1"

	m.GrpHdr.TtlIntrBkSttlmAmt.Value = iso.MustDecimal("1250.70")
	is = firstIssue(t, checkRules(ctx, m))
	if is.Path != "/FIToFICstmrCdtTrf/GrpHdr/TtlIntrBkSttlmAmt" || is.Params["want"] != "1250.75" {
		t.Fatalf("unexpected: %+v", is)
	}
	m.GrpHdr.TtlIntrBkSttlmAmt.Value = iso.MustDecimal("1250.750")
	if err := checkRules(ctx, m); err != nil {
		t.Fatalf("trailing zero is the same total: %v", err)
	}

	m.GrpHdr.TtlIntrBkSttlmAmt = nil
	m.CdtTrfTxInf[0].IntrBkSttlmAmt.Value = iso.MustDecimal("1250.755")
	is = firstIssue(t, checkRules(ctx, m))
	if is.Rule != "CurrencyPrecision" || is.Path != "/FIToFICstmrCdtTrf/CdtTrfTxInf/0/IntrBkSttlmAmt" {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestBusinessRules_DuplicateTxId(t *testing.T) {
	_, m := load(t)
	id := common.Max35Text("TX1")
	tx := m.CdtTrfTxInf[0]
	tx.PmtId.TxId = &id
	m.CdtTrfTxInf = []CreditTransferTransaction39{tx, tx}
	m.GrpHdr.NbOfTxs = "2"
	m.GrpHdr.TtlIntrBkSttlmAmt.Value = iso.MustDecimal("2501.50")
	is := firstIssue(t, checkRules(context.Background(), m))
	if is.Code != iso.CodeUniqueness || is.Path != "/FIToFICstmrCdtTrf/CdtTrfTxInf/1/PmtId/TxId" {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestRoundTripFormats(t *testing.T) {
	doc, _ := load(t)
	for _, f := range []iso.Format{iso.FormatJSON, iso.FormatYAML, iso.FormatXML} {
		var buf bytes.Buffer
		if err := iso.Encode(&buf, doc, f); err != nil {
			t.Fatalf("%v encode: %v", f, err)
		}
		back, err := iso.ParseBytes(context.Background(), buf.Bytes(), iso.ParseOpt{Rules: true})
		if err != nil {
			t.Fatalf("%v reparse: %v\n%s", f, err, buf.String())
		}
		m := back.Message.(*FIToFICustomerCreditTransferV08)
		if got := m.CdtTrfTxInf[0].IntrBkSttlmAmt.Value.String(); got != "1250.75" {
			t.Fatalf("%v: amount %s", f, got)
		}
		if got := m.CdtTrfTxInf[0].IntrBkSttlmAmt.Ccy; got != "USD" {
			t.Fatalf("%v: currency %s", f, got)
		}
	}
}

const reportingXML = `<RgltryRptg>
        <DbtCdtRptgInd>CRED</DbtCdtRptgInd>
        <Authrty><Nm>Federal Reserve</Nm><Ctry>US</Ctry></Authrty>
        <Dtls><Cd>OTH</Cd><Amt Ccy="USD">1250.75</Amt><Inf>wire purpose 42</Inf></Dtls>
      </RgltryRptg>
      <Tax>
        <Cdtr><TaxId>12-3456789</TaxId></Cdtr>
        <Dbtr><TaxId>98-7654321</TaxId><Authstn><Titl>CFO</Titl></Authstn></Dbtr>
        <TtlTaxAmt Ccy="USD">12.50</TtlTaxAmt>
        <SeqNb>3</SeqNb>
        <Rcrd>
          <Tp>SALES</Tp>
          <Prd><Yr>2024-01-01</Yr><Tp>QTR1</Tp></Prd>
          <TaxAmt><Rate>1.5</Rate><TtlAmt Ccy="USD">12.50</TtlAmt><Dtls><Amt Ccy="USD">12.50</Amt></Dtls></TaxAmt>
        </Rcrd>
      </Tax>
      <RltdRmtInf>
        <RmtId>RA-7</RmtId>
        <RmtLctnDtls><Mtd>EMAL</Mtd><ElctrncAdr>ap@example.com</ElctrncAdr></RmtLctnDtls>
      </RltdRmtInf>
      <RmtInf>`

func TestRegulatoryTaxAndRemittanceLocation(t *testing.T) {
	data, err := os.ReadFile("testdata/fednow_ct.xml")
	if err != nil {
		t.Fatal(err)
	}
	data = bytes.Replace(data, []byte("<RmtInf>"), []byte(reportingXML), 1)
	ctx := context.Background()
	doc, err := iso.ParseBytes(ctx, data, iso.ParseOpt{Rules: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, f := range []iso.Format{iso.FormatJSON, iso.FormatYAML, iso.FormatXML} {
		var buf bytes.Buffer
		if err := iso.Encode(&buf, doc, f); err != nil {
			t.Fatalf("%v encode: %v", f, err)
		}
		back, err := iso.ParseBytes(ctx, buf.Bytes())
		if err != nil {
			t.Fatalf("%v reparse: %v\n%s", f, err, buf.String())
		}
		tx := back.Message.(*FIToFICustomerCreditTransferV08).CdtTrfTxInf[0]
		if len(tx.RgltryRptg) != 1 || *tx.RgltryRptg[0].Authrty.Ctry != "US" {
			t.Fatalf("%v: RgltryRptg = %+v", f, tx.RgltryRptg)
		}
		if tx.Tax == nil || tx.Tax.SeqNb == nil || iso.Decimal(*tx.Tax.SeqNb).String() != "3" {
			t.Fatalf("%v: Tax = %+v", f, tx.Tax)
		}
		if len(tx.RltdRmtInf) != 1 || tx.RltdRmtInf[0].RmtLctnDtls[0].Mtd != "EMAL" {
			t.Fatalf("%v: RltdRmtInf = %+v", f, tx.RltdRmtInf)
		}
	}

	m := doc.Message.(*FIToFICustomerCreditTransferV08)
	tx := &m.CdtTrfTxInf[0]
	bad := common.TaxRecordPeriod1Code("MM13")
	tx.Tax.Rcrd[0].Prd.Tp = &bad
	is := firstIssue(t, iso.Validate(m))
	if is.Path != "/CdtTrfTxInf/0/Tax/Rcrd/0/Prd/Tp" || is.Code != iso.CodeInvalidEnum {
		t.Fatalf("unexpected: %+v", is)
	}
	tx.Tax.Rcrd[0].Prd.Tp = nil

	seq := common.Number(iso.MustDecimal("3.5"))
	tx.Tax.SeqNb = &seq
	is = firstIssue(t, iso.Validate(m))
	if is.Path != "/CdtTrfTxInf/0/Tax/SeqNb" || is.Code != iso.CodeDigits {
		t.Fatalf("unexpected: %+v", is)
	}
	tx.Tax.SeqNb = nil

	for len(tx.RgltryRptg) <= 10 {
		tx.RgltryRptg = append(tx.RgltryRptg, tx.RgltryRptg[0])
	}
	is = firstIssue(t, iso.Validate(m))
	if is.Path != "/CdtTrfTxInf/0/RgltryRptg" || is.Code != iso.CodeTooMany {
		t.Fatalf("unexpected: %+v", is)
	}
}
