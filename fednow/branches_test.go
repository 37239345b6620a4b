package fednow

import (
	"bytes"
	"context"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/admi/admi00600101"
	"github.com/reoring/iso20022/admi/admi01100101"
	"github.com/reoring/iso20022/camt/camt05500109"
	"github.com/reoring/iso20022/camt/camt06000105"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/pacs/pacs00400110"
)

func agent(routing string) common.Party40Choice {
	return common.Party40Choice{Agt: &common.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: common.FinancialInstitutionIdentification18{
			ClrSysMmbId: &common.ClearingSystemMemberIdentification2{MmbId: common.Max35Text(routing)},
		},
	}}
}

func resendRequest() iso.Message {
	seq := common.Max35Text("000120")
	bic := common.AnyBICDec2014Identifier("FEDUUS33XXX")
	return &admi00600101.ResendRequestV01{
		MsgHdr: admi00600101.MessageHeader7{MsgId: "20240501021000021RSND0001"},
		RsndSchCrit: []admi00600101.ResendSearchCriteria2{{
			SeqNb: &seq,
			Rcpt:  admi00600101.PartyIdentification136{Id: admi00600101.PartyIdentification120Choice{AnyBIC: &bic}},
		}},
	}
}

func systemAcknowledgement() iso.Message {
	return &admi01100101.SystemEventAcknowledgementV01{
		MsgId:   "20240501FEDNOW0000000001",
		AckDtls: &admi01100101.Event1{EvtCd: "PING"},
	}
}

func paymentReturn() iso.Message {
	return &pacs00400110.PaymentReturnV10{
		GrpHdr: pacs00400110.GroupHeader90{
			MsgId:    "20240501021000021FDN00000009",
			CreDtTm:  "2024-05-01T11:15:00-04:00",
			NbOfTxs:  "1",
			SttlmInf: common.SettlementInstruction7{SttlmMtd: "CLRG"},
		},
		TxInf: []pacs00400110.PaymentTransaction118{{
			RtrdIntrBkSttlmAmt: common.ActiveCurrencyAndAmount{Ccy: "USD", Value: iso.MustDecimal("1250.75")},
		}},
	}
}

func cancellationRequest() iso.Message {
	return &camt05500109.CustomerPaymentCancellationRequestV09{
		Assgnmt: camt05500109.CaseAssignment5{
			Id:      "20240501021000021RFPC0001",
			Assgnr:  agent("021000021"),
			Assgne:  agent("021150706"),
			CreDtTm: "2024-05-01T12:00:00-04:00",
		},
		Undrlyg: []camt05500109.UnderlyingTransaction27{{
			OrgnlPmtInfAndCxl: []camt05500109.OriginalPaymentInstruction36{{OrgnlPmtInfId: "RFP-0001"}},
		}},
	}
}

func reportingRequest() iso.Message {
	return &camt06000105.AccountReportingRequestV05{
		GrpHdr: camt06000105.GroupHeader77{MsgId: "20240501021000021ARR00001", CreDtTm: "2024-05-01T17:00:00-04:00"},
		RptgReq: []camt06000105.ReportingRequest5{{
			ReqdMsgNmId: "camt.052.001.08",
			AcctOwnr:    agent("021000021"),
		}},
	}
}

func TestRegisteredBranches(t *testing.T) {
	tmpl, _ := load(t).Envelope()
	cases := []struct {
		branch string
		id     string
		msg    func() iso.Message
		wrap   func(*Envelope) *Message
	}{
		{"FedNowRetrievalRequest", admi00600101.ID, resendRequest, func(e *Envelope) *Message {
			return NewIncoming(&Incoming{FedNowIncomingMessage: IncomingMessage{FedNowRetrievalRequest: e}})
		}},
		{"FedNowPaymentReturn", pacs00400110.ID, paymentReturn, func(e *Envelope) *Message {
			return NewIncoming(&Incoming{FedNowIncomingMessage: IncomingMessage{FedNowPaymentReturn: e}})
		}},
		{"FedNowRequestForPaymentCancellationRequest", camt05500109.ID, cancellationRequest, func(e *Envelope) *Message {
			return NewIncoming(&Incoming{FedNowIncomingMessage: IncomingMessage{FedNowRequestForPaymentCancellationRequest: e}})
		}},
		{"FedNowAccountReportingRequest", camt06000105.ID, reportingRequest, func(e *Envelope) *Message {
			return NewIncoming(&Incoming{FedNowIncomingMessage: IncomingMessage{FedNowAccountReportingRequest: e}})
		}},
		{"FedNowSystemResponse", admi01100101.ID, systemAcknowledgement, func(e *Envelope) *Message {
			return NewOutgoing(&Outgoing{FedNowOutgoingMessage: OutgoingMessage{FedNowSystemResponse: e}})
		}},
		{"FedNowPaymentReturn", pacs00400110.ID, paymentReturn, func(e *Envelope) *Message {
			return NewOutgoing(&Outgoing{FedNowOutgoingMessage: OutgoingMessage{FedNowPaymentReturn: e}})
		}},
		{"FedNowRequestForPaymentCancellationRequest", camt05500109.ID, cancellationRequest, func(e *Envelope) *Message {
			return NewOutgoing(&Outgoing{FedNowOutgoingMessage: OutgoingMessage{FedNowRequestForPaymentCancellationRequest: e}})
		}},
	}
	for _, c := range cases {
		env, err := NewEnvelope(tmpl.AppHdr, c.id, c.msg())
		if err != nil {
			t.Fatalf("%s: %v", c.id, err)
		}
		m := c.wrap(env)
		t.Run(m.Root+"/"+c.branch, func(t *testing.T) {
			if err := iso.Validate(m); err != nil {
				t.Fatalf("validate: %v", err)
			}
			if err := CheckRules(context.Background(), m); err != nil {
				t.Fatalf("rules: %v", err)
			}
			var buf bytes.Buffer
			if err := Encode(&buf, m, iso.FormatXML); err != nil {
				t.Fatal(err)
			}
			back, err := Parse(context.Background(), &buf, iso.ParseOpt{Rules: true})
			if err != nil {
				t.Fatalf("reparse: %v\n%s", err, buf.String())
			}
			name, got := selectedBranch(back)
			if name != c.branch || got.ID() != c.id || got.Document.Type == nil {
				t.Fatalf("selected %q carrying %s", name, got.ID())
			}
		})
	}
}

func TestPaymentReturnInWrongBranch(t *testing.T) {
	tmpl, _ := load(t).Envelope()
	env, err := NewEnvelope(tmpl.AppHdr, pacs00400110.ID, paymentReturn())
	if err != nil {
		t.Fatal(err)
	}
	m := NewIncoming(&Incoming{FedNowIncomingMessage: IncomingMessage{FedNowReturnRequest: env}})
	iss := issues(t, CheckRules(context.Background(), m))
	if len(iss) != 1 || iss[0].Rule != "BranchDocument" || iss[0].Params["got"] != pacs00400110.ID {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestPaymentReturnRulesThroughEnvelope(t *testing.T) {
	tmpl, _ := load(t).Envelope()
	ret := paymentReturn().(*pacs00400110.PaymentReturnV10)
	ret.GrpHdr.NbOfTxs = "2"
	env, err := NewEnvelope(tmpl.AppHdr, pacs00400110.ID, ret)
	if err != nil {
		t.Fatal(err)
	}
	m := NewOutgoing(&Outgoing{FedNowOutgoingMessage: OutgoingMessage{FedNowPaymentReturn: env}})
	iss := issues(t, CheckRules(context.Background(), m))
	want := "/FedNowOutgoing/FedNowOutgoingMessage/FedNowPaymentReturn/Document/PmtRtr/GrpHdr/NbOfTxs"
	if len(iss) != 1 || iss[0].Path != want || iss[0].Code != iso.CodeAggregateViolation {
		t.Fatalf("unexpected: %v", iss)
	}
}

func selectedBranch(m *Message) (string, *Envelope) {
	if m.Incoming != nil {
		name, env, _ := m.Incoming.FedNowIncomingMessage.Selected()
		return name, env
	}
	name, env, _ := m.Outgoing.FedNowOutgoingMessage.Selected()
	return name, env
}
