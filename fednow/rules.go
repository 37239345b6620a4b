package fednow

import (
	"context"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow/participant"
	"github.com/reoring/iso20022/pacs/pacs00800108"
	"github.com/reoring/iso20022/rules"
)

// ClearingSystem is the proprietary clearing system code of FedNow.
const ClearingSystem = "FDN"

// CustomerCreditTransferRules are the FedNow usage guideline restrictions on
// pacs.008: one transaction per message, settled through the FedNow
// clearing system in USD, identified by a UETR.
var CustomerCreditTransferRules = []rules.Rule[*pacs00800108.FIToFICustomerCreditTransferV08]{
	rules.Equals[*pacs00800108.FIToFICustomerCreditTransferV08]("/GrpHdr/NbOfTxs", "1"),
	rules.Equals[*pacs00800108.FIToFICustomerCreditTransferV08]("/GrpHdr/SttlmInf/SttlmMtd", "CLRG"),
	rules.Equals[*pacs00800108.FIToFICustomerCreditTransferV08]("/GrpHdr/SttlmInf/ClrSys/Prtry", ClearingSystem),
	rules.Equals[*pacs00800108.FIToFICustomerCreditTransferV08]("/CdtTrfTxInf/*/IntrBkSttlmAmt/Ccy", "USD"),
	rules.Present[*pacs00800108.FIToFICustomerCreditTransferV08]("/CdtTrfTxInf/*/PmtId/UETR"),
}

// RuleOpt configures CheckRules.
type RuleOpt struct {
	// Participants enables the reachability check of creditor agents
	// against a participant file. When nil, a file stored in the context
	// with iso.WithReferenceData is used.
	Participants *participant.FedNowParticipantFile1
}

// CheckRules runs the business rules of a validated message:
//   - AppHdr/MsgDefIdr names the enclosed document's message id,
//   - the document id is the one expected for the envelope branch,
//   - the document type's own rules,
//   - CustomerCreditTransferRules for pacs.008.
//
// Issue paths start at the message root.
func CheckRules(ctx context.Context, m *Message, opts ...RuleOpt) error {
	var opt RuleOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Participants == nil {
		opt.Participants, _ = iso.ReferenceData[*participant.FedNowParticipantFile1](ctx)
	}
	p, b, ok := m.selected()
	if !ok {
		return nil
	}
	env := b.env
	var iss iso.Issues
	stop := func() bool { return len(iss) > 0 && iso.IsFailFast(ctx) }

	if got, want := string(env.AppHdr.MsgDefIdr), env.ID(); got != want {
		iss = append(iss, iso.ViolationIssue(p.Field("AppHdr").Field("MsgDefIdr"), iso.CodeBusinessRule, "MessageDefinition",
			map[string]any{"want": want, "got": got}))
	}
	if got := env.ID(); !stop() && got != b.id {
		iss = append(iss, iso.ViolationIssue(p.Field("Document"), iso.CodeBusinessRule, "BranchDocument",
			map[string]any{"branch": b.name, "want": b.id, "got": got}))
	}
	doc := env.Document
	if stop() || doc.Type == nil {
		return issuesOrNil(iss)
	}
	if doc.Type.Rules != nil {
		if err := doc.Type.Rules(ctx, doc.Message); err != nil {
			prefix := p.Field("Document").Pointer()
			for _, it := range iso.ToIssues(err) {
				it.Path = prefix + it.Path
				iss = append(iss, it)
			}
		}
	}
	if ct, ok := doc.Message.(*pacs00800108.FIToFICustomerCreditTransferV08); ok && !stop() {
		rs := CustomerCreditTransferRules
		if opt.Participants != nil {
			rs = append(rs[:len(rs):len(rs)], ReachableCreditor(opt.Participants))
		}
		ref := p.Field("Document").Field(pacs00800108.Root)
		if err := rules.Run(ctx, ref, ct, rs...); err != nil {
			iss = append(iss, iso.ToIssues(err)...)
		}
	}
	return issuesOrNil(iss)
}

// ReachableCreditor requires every creditor agent identified by a routing
// number to appear in the participant file with a service that receives
// credit transfers.
func ReachableCreditor(file *participant.FedNowParticipantFile1) rules.Rule[*pacs00800108.FIToFICustomerCreditTransferV08] {
	return func(d iso.DomainCtx[*pacs00800108.FIToFICustomerCreditTransferV08], m *pacs00800108.FIToFICustomerCreditTransferV08) []iso.Issue {
		var out []iso.Issue
		for i := range m.CdtTrfTxInf {
			mmb := m.CdtTrfTxInf[i].CdtrAgt.FinInstnId.ClrSysMmbId
			if mmb == nil {
				continue
			}
			p := d.Ref.Field("CdtTrfTxInf").Index(i).Field("CdtrAgt").Field("FinInstnId").Field("ClrSysMmbId").Field("MmbId")
			if msg, ok := reachable(file, mmb.MmbId); !ok {
				out = append(out, iso.ViolationIssue(p, iso.CodeBusinessRule, "ReachableCreditor",
					map[string]any{"id": string(mmb.MmbId), "reason": msg}))
			}
		}
		return out
	}
}

func reachable(file *participant.FedNowParticipantFile1, id common.Max35Text) (string, bool) {
	pr, ok := file.Lookup(participant.RoutingNumberFRS1(id))
	if !ok {
		return "not a participant", false
	}
	if !pr.Offers(participant.ServiceCreditTransferSendReceive) && !pr.Offers(participant.ServiceCreditTransferReceiveOnly) {
		return "does not receive credit transfers", false
	}
	return "", true
}

func issuesOrNil(iss iso.Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}
