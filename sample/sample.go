// Package sample generates pacs.008.001.08 customer credit transfers that
// pass structural validation and the business rules, for tests and demos.
package sample

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow"
	head "github.com/reoring/iso20022/head/head00100102"
	"github.com/reoring/iso20022/pacs/pacs00800108"
)

// clearingSystemCode identifies US routing numbers in ClrSysMmbId.
const clearingSystemCode = "USABA"

// Generator builds messages from a Config. It is not safe for concurrent
// use when a custom ID source is not.
type Generator struct {
	cfg   Config
	now   func() time.Time
	newID func() uuid.UUID
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock sets the time source for creation timestamps and settlement
// dates.
func WithClock(now func() time.Time) Option { return func(g *Generator) { g.now = now } }

// WithIDs sets the source of message ids and UETRs. The ids must be version
// 4 UUIDs for the UETR to validate.
func WithIDs(next func() uuid.UUID) Option { return func(g *Generator) { g.newID = next } }

// New returns a generator for cfg. Zero fields of cfg take Defaults.
func New(cfg Config, opts ...Option) (*Generator, error) {
	cfg = cfg.Merge(Defaults())
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, now: time.Now, newID: uuid.New}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// CreditTransfer builds one message with cfg.Transactions transactions of
// cfg.Amount each. Group totals are filled so that the sum rules hold.
func (g *Generator) CreditTransfer() (*pacs00800108.FIToFICustomerCreditTransferV08, error) {
	amt, err := iso.ParseDecimal(g.cfg.Amount)
	if err != nil {
		return nil, err
	}
	now := g.now().UTC()
	ccy := common.ActiveCurrencyCode(g.cfg.Currency)
	msgID := strings.ReplaceAll(g.newID().String(), "-", "")
	sttlmDt := common.NewISODate(now)
	prtry := common.Max35Text(fednow.ClearingSystem)

	total := iso.NewDecimal(0, 0)
	txs := make([]pacs00800108.CreditTransferTransaction39, g.cfg.Transactions)
	for i := range txs {
		if total, err = total.Add(amt); err != nil {
			return nil, err
		}
		ref := fmt.Sprintf("%.24s-%d", msgID, i+1)
		txID := common.Max35Text(ref)
		uetr := common.UUIDv4Identifier(g.newID().String())
		txs[i] = pacs00800108.CreditTransferTransaction39{
			PmtId: pacs00800108.PaymentIdentification7{
				EndToEndId: common.Max35Text(ref),
				TxId:       &txID,
				UETR:       &uetr,
			},
			IntrBkSttlmAmt: common.ActiveCurrencyAndAmount{Ccy: ccy, Value: amt},
			IntrBkSttlmDt:  &sttlmDt,
			ChrgBr:         "SLEV",
			Dbtr:           party(g.cfg.Debtor),
			DbtrAcct:       account(g.cfg.Debtor),
			DbtrAgt:        agent(g.cfg.Debtor.Routing),
			CdtrAgt:        agent(g.cfg.Creditor.Routing),
			Cdtr:           party(g.cfg.Creditor),
			CdtrAcct:       account(g.cfg.Creditor),
		}
	}

	ctrl := common.DecimalNumber(total)
	return &pacs00800108.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs00800108.GroupHeader93{
			MsgId:             common.Max35Text(msgID),
			CreDtTm:           common.NewISODateTime(now),
			NbOfTxs:           common.Max15NumericText(fmt.Sprint(len(txs))),
			CtrlSum:           &ctrl,
			TtlIntrBkSttlmAmt: &common.ActiveCurrencyAndAmount{Ccy: ccy, Value: total},
			IntrBkSttlmDt:     &sttlmDt,
			SttlmInf: common.SettlementInstruction7{
				SttlmMtd: "CLRG",
				ClrSys:   &common.ClearingSystemIdentification3Choice{Prtry: &prtry},
			},
		},
		CdtTrfTxInf: txs,
	}, nil
}

// Document wraps a fresh CreditTransfer in a Document.
func (g *Generator) Document() (*iso.Document, error) {
	m, err := g.CreditTransfer()
	if err != nil {
		return nil, err
	}
	return iso.NewDocument(pacs00800108.ID, m)
}

// FedNow wraps a fresh CreditTransfer in a FedNowIncoming customer credit
// transfer sent by the debtor agent to cfg.Service.
func (g *Generator) FedNow() (*fednow.Message, error) {
	m, err := g.CreditTransfer()
	if err != nil {
		return nil, err
	}
	fr, to := agent(g.cfg.Debtor.Routing), agent(g.cfg.Service)
	hdr := head.BusinessApplicationHeaderV02{
		Fr:        head.Party44Choice{FIId: &fr},
		To:        head.Party44Choice{FIId: &to},
		BizMsgIdr: m.GrpHdr.MsgId,
		CreDt:     m.GrpHdr.CreDtTm,
	}
	env, err := fednow.NewEnvelope(hdr, pacs00800108.ID, m)
	if err != nil {
		return nil, err
	}
	return fednow.NewIncoming(&fednow.Incoming{
		FedNowIncomingMessage: fednow.IncomingMessage{FedNowCustomerCreditTransfer: env},
	}), nil
}

func party(p Party) common.PartyIdentification135 {
	nm := common.Max140Text(p.Name)
	out := common.PartyIdentification135{Nm: &nm}
	if p.Country != "" {
		ctry := common.CountryCode(p.Country)
		out.CtryOfRes = &ctry
	}
	return out
}

func account(p Party) *common.CashAccount38 {
	return &common.CashAccount38{
		Id: common.AccountIdentification4Choice{
			Othr: &common.GenericAccountIdentification1{Id: common.Max34Text(p.Account)},
		},
	}
}

func agent(routing string) common.BranchAndFinancialInstitutionIdentification6 {
	cd := common.ExternalClearingSystemIdentification1Code(clearingSystemCode)
	return common.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: common.FinancialInstitutionIdentification18{
			ClrSysMmbId: &common.ClearingSystemMemberIdentification2{
				ClrSysId: &common.ClearingSystemIdentification2Choice{Cd: &cd},
				MmbId:    common.Max35Text(routing),
			},
		},
	}
}
