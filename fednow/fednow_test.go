package fednow

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow/participant"
	"github.com/reoring/iso20022/pacs/pacs00800108"
)

const ctPath = "/FedNowIncoming/FedNowIncomingMessage/FedNowCustomerCreditTransfer"

func load(t *testing.T) *Message {
	t.Helper()
	f, err := os.Open("testdata/incoming_ct.xml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	m, err := Parse(context.Background(), f, iso.ParseOpt{Rules: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func creditTransfer(t *testing.T, m *Message) *pacs00800108.FIToFICustomerCreditTransferV08 {
	t.Helper()
	env, ok := m.Envelope()
	if !ok {
		t.Fatal("no envelope")
	}
	ct, ok := env.Document.Message.(*pacs00800108.FIToFICustomerCreditTransferV08)
	if !ok {
		t.Fatalf("document is %T", env.Document.Message)
	}
	return ct
}

func issues(t *testing.T, err error) iso.Issues {
	t.Helper()
	if err == nil {
		return nil
	}
	iss, ok := iso.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	return iss
}

func TestParseIncomingCreditTransfer(t *testing.T) {
	m := load(t)
	if m.Root != RootIncoming || m.Outgoing != nil {
		t.Fatalf("root: %q", m.Root)
	}
	name, env, ok := m.Incoming.FedNowIncomingMessage.Selected()
	if !ok || name != "FedNowCustomerCreditTransfer" || env.ID() != pacs00800108.ID {
		t.Fatalf("selected %q %v", name, ok)
	}
	if env.AppHdr.BizMsgIdr != "20240501021000021FDN00000001" {
		t.Fatalf("BizMsgIdr: %q", env.AppHdr.BizMsgIdr)
	}
	if got := creditTransfer(t, m).CdtTrfTxInf[0].Cdtr.Nm; got == nil || *got != "Acme Corp" {
		t.Fatalf("creditor: %v", got)
	}
}

func TestValidatePathsThroughEnvelope(t *testing.T) {
	m := load(t)
	creditTransfer(t, m).GrpHdr.MsgId = ""
	iss := issues(t, iso.Validate(m))
	want := ctPath + "/Document/FIToFICstmrCdtTrf/GrpHdr/MsgId"
	if len(iss) != 1 || iss[0].Path != want || iss[0].Code != iso.CodeTooShort {
		t.Fatalf("got %v, want too_short at %s", iss, want)
	}
}

func TestMessageDefinitionMustMatchDocument(t *testing.T) {
	m := load(t)
	env, _ := m.Envelope()
	env.AppHdr.MsgDefIdr = "pacs.008.001.09"
	iss := issues(t, CheckRules(context.Background(), m))
	if len(iss) != 1 || iss[0].Path != ctPath+"/AppHdr/MsgDefIdr" || iss[0].Rule != "MessageDefinition" {
		t.Fatalf("unexpected: %v", iss)
	}
	if iss[0].Params["want"] != pacs00800108.ID {
		t.Fatalf("params: %v", iss[0].Params)
	}
}

func TestBranchMustCarryExpectedDocument(t *testing.T) {
	m := load(t)
	in := &m.Incoming.FedNowIncomingMessage
	in.FedNowPaymentStatus, in.FedNowCustomerCreditTransfer = in.FedNowCustomerCreditTransfer, nil
	if err := iso.Validate(m); err != nil {
		t.Fatalf("structure is still valid: %v", err)
	}
	iss := issues(t, CheckRules(context.Background(), m))
	if len(iss) == 0 || iss[0].Rule != "BranchDocument" ||
		iss[0].Path != "/FedNowIncoming/FedNowIncomingMessage/FedNowPaymentStatus/Document" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestCreditTransferRules(t *testing.T) {
	m := load(t)
	ct := creditTransfer(t, m)
	ct.GrpHdr.SttlmInf.SttlmMtd = "INDA"
	iss := issues(t, CheckRules(context.Background(), m))
	want := ctPath + "/Document/FIToFICstmrCdtTrf/GrpHdr/SttlmInf/SttlmMtd"
	if len(iss) != 1 || iss[0].Path != want || iss[0].Params["got"] != "INDA" {
		t.Fatalf("unexpected: %v", iss)
	}

	ct.GrpHdr.SttlmInf.SttlmMtd = "CLRG"
	ct.GrpHdr.NbOfTxs = "2"
	iss = issues(t, CheckRules(context.Background(), m))
	nb := ctPath + "/Document/FIToFICstmrCdtTrf/GrpHdr/NbOfTxs"
	// message definition count first, then the FedNow single transaction rule
	if len(iss) != 2 || iss[0].Code != iso.CodeAggregateViolation || iss[1].Code != iso.CodeBusinessRule {
		t.Fatalf("unexpected: %v", iss)
	}
	if iss[0].Path != nb || iss[1].Path != nb {
		t.Fatalf("paths: %s %s", iss[0].Path, iss[1].Path)
	}

	ctx := iso.WithFailFast(context.Background(), true)
	if iss := issues(t, CheckRules(ctx, m)); len(iss) != 1 {
		t.Fatalf("fail-fast: %v", iss)
	}
}

func TestUETRRequired(t *testing.T) {
	m := load(t)
	creditTransfer(t, m).CdtTrfTxInf[0].PmtId.UETR = nil
	iss := issues(t, CheckRules(context.Background(), m))
	if len(iss) != 1 || !strings.HasSuffix(iss[0].Path, "/CdtTrfTxInf/0/PmtId/UETR") {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestReachableCreditor(t *testing.T) {
	m := load(t)
	file := &participant.FedNowParticipantFile1{
		BizDay: "2024-05-01",
		PtcptPrfl: []participant.FedNowParticipantProfile1{
			{Id: "021000021", Nm: "First Bank", Svcs: []participant.ServicesFedNow1{participant.ServiceCreditTransferSendReceive}},
			{Id: "011000015", Nm: "Second Bank", Svcs: []participant.ServicesFedNow1{participant.ServiceRequestForPayment}},
		},
	}
	iss := issues(t, CheckRules(context.Background(), m, RuleOpt{Participants: file}))
	if len(iss) != 1 || iss[0].Rule != "ReachableCreditor" || iss[0].Params["id"] != "011000015" {
		t.Fatalf("unexpected: %v", iss)
	}
	file.PtcptPrfl[1].Svcs = append(file.PtcptPrfl[1].Svcs, participant.ServiceCreditTransferReceiveOnly)
	if err := CheckRules(context.Background(), m, RuleOpt{Participants: file}); err != nil {
		t.Fatalf("receive-only participant is reachable: %v", err)
	}
	file.PtcptPrfl = file.PtcptPrfl[:1]
	iss = issues(t, CheckRules(context.Background(), m, RuleOpt{Participants: file}))
	if len(iss) != 1 || iss[0].Params["reason"] != "not a participant" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestParticipantsFromContext(t *testing.T) {
	m := load(t)
	file := &participant.FedNowParticipantFile1{
		BizDay:    "2024-05-01",
		PtcptPrfl: []participant.FedNowParticipantProfile1{{Id: "021000021", Nm: "First Bank", Svcs: []participant.ServicesFedNow1{participant.ServiceCreditTransferSendReceive}}},
	}
	ctx := iso.WithReferenceData(context.Background(), file)
	iss := issues(t, CheckRules(ctx, m))
	if len(iss) != 1 || iss[0].Rule != "ReachableCreditor" {
		t.Fatalf("unexpected: %v", iss)
	}
	if _, ok := iso.ReferenceData[*participant.FedNowParticipantFile1](context.Background()); ok {
		t.Fatal("empty context carries no participant file")
	}
}

func TestEmptyIncomingMessage(t *testing.T) {
	m := NewIncoming(&Incoming{})
	iss := issues(t, iso.Validate(m))
	if len(iss) != 1 || iss[0].Code != iso.CodeInvalidChoice || iss[0].Path != "/FedNowIncoming/FedNowIncomingMessage" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestUnknownRoot(t *testing.T) {
	m, err := Decode(context.Background(), strings.NewReader(`<FedNowSideways><X/></FedNowSideways>`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Root != "FedNowSideways" {
		t.Fatalf("root: %q", m.Root)
	}
	iss := issues(t, iso.Validate(m))
	if len(iss) != 1 || iss[0].Code != iso.CodeUnknownDocument {
		t.Fatalf("unexpected: %v", iss)
	}
	if err := Encode(&bytes.Buffer{}, m, iso.FormatJSON); err == nil {
		t.Fatal("unknown message must not encode")
	}
}

func TestSignatureManagement(t *testing.T) {
	const in = `{"FedNowIncoming": {"FedNowIncomingMessage": {"FedNowIncomingMessageSignatureManagement": {
		"SenderId": "021000021",
		"FedNowMessageSignatureKeyExchange": {"KeyAddition": {"Key": {
			"FedNowKeyID": "key-2024_05",
			"Name": "Primary signing key",
			"EncodedPublicKey": "MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQc=",
			"Encoding": "X509",
			"Algorithm": "ES256"
		}}}
	}}}}`
	m, err := Parse(context.Background(), strings.NewReader(in), iso.ParseOpt{Rules: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := m.Envelope(); ok {
		t.Fatal("signature management carries no envelope")
	}
	key := m.Incoming.FedNowIncomingMessage.FedNowIncomingMessageSignatureManagement.FedNowMessageSignatureKeyExchange.KeyAddition.Key
	if b, err := key.EncodedPublicKey.Bytes(); err != nil || len(b) == 0 {
		t.Fatalf("key bytes: %v", err)
	}

	key.EncodedPublicKey = "not base64!"
	iss := issues(t, iso.Validate(m))
	if len(iss) != 1 || iss[0].Code != iso.CodeInvalidFormat || !strings.HasSuffix(iss[0].Path, "/Key/EncodedPublicKey") {
		t.Fatalf("unexpected: %v", iss)
	}

	key.EncodedPublicKey = "AAAA"
	key.FedNowKeyID = "key id"
	iss = issues(t, iso.Validate(m))
	if len(iss) != 1 || iss[0].Code != iso.CodePattern {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestKeyExchangeIsAChoice(t *testing.T) {
	x := &FedNowMessageSignatureKeyExchange{KeyAddition: &KeyAddition{}, KeyRevocation: &KeyRevocation{}}
	iss := issues(t, x.Validate(iso.Root()))
	if len(iss) != 1 || iss[0].Code != iso.CodeInvalidChoice {
		t.Fatalf("unexpected: %v", iss)
	}
	desc := Max300Text(strings.Repeat("x", 301))
	x = &FedNowMessageSignatureKeyExchange{KeyRevocation: &KeyRevocation{FedNowStatusDescription: &desc}}
	iss = issues(t, x.Validate(iso.Root()))
	if len(iss) != 1 || iss[0].Code != iso.CodeTooLong || iss[0].Path != "/KeyRevocation/FedNowStatusDescription" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestOutgoingSignatureResponse(t *testing.T) {
	code := Max50AlphaNumericString("E001")
	m := NewOutgoing(&Outgoing{FedNowOutgoingMessage: OutgoingMessage{
		FedNowOutgoingMessageSignatureManagement: &OutgoingSignatureManagement{
			FedNowCustomerMessageSignatureKeyOperationResponse: &FedNowCustomerMessageSignatureKeyOperationResponse{
				FedNowKeyID: "key-1",
				Status:      "REJECTED",
				ErrorCode:   &code,
			},
		},
	}})
	if err := iso.Validate(m); err != nil {
		t.Fatalf("validate: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, m, iso.FormatXML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<FedNowOutgoing>") || !strings.Contains(buf.String(), "<ErrorCode>E001</ErrorCode>") {
		t.Fatalf("xml:\n%s", buf.String())
	}
	back, err := Parse(context.Background(), &buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if back.Outgoing == nil || back.Incoming != nil {
		t.Fatal("direction lost")
	}
}

func TestRoundTripFormats(t *testing.T) {
	m := load(t)
	var first bytes.Buffer
	if err := Encode(&first, m, iso.FormatXML); err != nil {
		t.Fatal(err)
	}
	for _, f := range []iso.Format{iso.FormatJSON, iso.FormatYAML, iso.FormatXML} {
		var buf bytes.Buffer
		if err := Encode(&buf, m, f); err != nil {
			t.Fatalf("%v: encode: %v", f, err)
		}
		back, err := Parse(context.Background(), &buf, iso.ParseOpt{Rules: true})
		if err != nil {
			t.Fatalf("%v: parse: %v\n%s", f, err, buf.String())
		}
		var again bytes.Buffer
		if err := Encode(&again, back, iso.FormatXML); err != nil {
			t.Fatal(err)
		}
		if again.String() != first.String() {
			t.Fatalf("%v: round trip changed the message\n%s\n---\n%s", f, first.String(), again.String())
		}
	}
}

func TestNewEnvelopeSetsMessageDefinition(t *testing.T) {
	m := load(t)
	env, _ := m.Envelope()
	fresh, err := NewEnvelope(env.AppHdr, pacs00800108.ID, creditTransfer(t, m))
	if err != nil {
		t.Fatal(err)
	}
	if fresh.AppHdr.MsgDefIdr != common.Max35Text(pacs00800108.ID) || fresh.ID() != pacs00800108.ID {
		t.Fatalf("unexpected envelope: %+v", fresh.AppHdr)
	}
	if _, err := NewEnvelope(env.AppHdr, "pacs.999.001.01", creditTransfer(t, m)); err == nil {
		t.Fatal("unregistered id must fail")
	}
}

func TestTechnicalHeaderSurvivesEveryFormat(t *testing.T) {
	raw, err := os.ReadFile("testdata/incoming_ct.xml")
	if err != nil {
		t.Fatal(err)
	}
	const inner = `<Priority>HIGH</Priority><TraceId>0001</TraceId>`
	src := strings.Replace(string(raw), "<FedNowIncoming>",
		"<FedNowIncoming><FedNowTechnicalHeader>"+inner+"</FedNowTechnicalHeader>", 1)
	m, err := Parse(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Incoming.FedNowTechnicalHeader == nil || m.Incoming.FedNowTechnicalHeader.Inner != inner {
		t.Fatalf("header: %+v", m.Incoming.FedNowTechnicalHeader)
	}
	for _, f := range []iso.Format{iso.FormatJSON, iso.FormatYAML} {
		var buf bytes.Buffer
		if err := Encode(&buf, m, f); err != nil {
			t.Fatalf("%v: encode: %v", f, err)
		}
		back, err := Parse(context.Background(), &buf)
		if err != nil {
			t.Fatalf("%v: parse: %v", f, err)
		}
		h := back.Incoming.FedNowTechnicalHeader
		if h == nil || h.Inner != inner {
			t.Fatalf("%v: header lost: %+v", f, h)
		}
		var xmlOut bytes.Buffer
		if err := Encode(&xmlOut, back, iso.FormatXML); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(xmlOut.String(), "<FedNowTechnicalHeader>"+inner+"</FedNowTechnicalHeader>") {
			t.Fatalf("%v: xml:\n%s", f, xmlOut.String())
		}
	}
}
