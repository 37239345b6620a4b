package fednow

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/admi/admi00200101"
	"github.com/reoring/iso20022/admi/admi00400102"
	"github.com/reoring/iso20022/admi/admi00700101"
	"github.com/reoring/iso20022/admi/admi01100101"
	"github.com/reoring/iso20022/admi/admi99800102"
	"github.com/reoring/iso20022/camt/camt05500109"
	"github.com/reoring/iso20022/pacs/pacs00200110"
	"github.com/reoring/iso20022/pacs/pacs00400110"
	"github.com/reoring/iso20022/pacs/pacs00800108"
)

// Outgoing is the FedNowOutgoing root: a message sent by the service to a
// participant.
type Outgoing struct {
	FedNowTechnicalHeader *TechnicalHeader `xml:"FedNowTechnicalHeader,omitempty" json:"FedNowTechnicalHeader,omitempty"`
	FedNowOutgoingMessage OutgoingMessage  `xml:"FedNowOutgoingMessage" json:"FedNowOutgoingMessage"`
}

func (out *Outgoing) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("FedNowTechnicalHeader"), out.FedNowTechnicalHeader) },
		func() error { return out.FedNowOutgoingMessage.Validate(p.Field("FedNowOutgoingMessage")) },
	)
}

// OutgoingMessage holds exactly one of its branches. The debit/credit
// notification branch has no FedNow prefix on the wire.
type OutgoingMessage struct {
	FedNowMessageReject                                *Envelope                    `xml:"FedNowMessageReject,omitempty" json:"FedNowMessageReject,omitempty"`
	FedNowBroadcast                                    *Envelope                    `xml:"FedNowBroadcast,omitempty" json:"FedNowBroadcast,omitempty"`
	FedNowReceiptAcknowledgement                       *Envelope                    `xml:"FedNowReceiptAcknowledgement,omitempty" json:"FedNowReceiptAcknowledgement,omitempty"`
	FedNowSystemResponse                               *Envelope                    `xml:"FedNowSystemResponse,omitempty" json:"FedNowSystemResponse,omitempty"`
	FedNowParticipantFile                              *Envelope                    `xml:"FedNowParticipantFile,omitempty" json:"FedNowParticipantFile,omitempty"`
	FedNowPaymentStatus                                *Envelope                    `xml:"FedNowPaymentStatus,omitempty" json:"FedNowPaymentStatus,omitempty"`
	FedNowPaymentReturn                                *Envelope                    `xml:"FedNowPaymentReturn,omitempty" json:"FedNowPaymentReturn,omitempty"`
	FedNowCustomerCreditTransfer                       *Envelope                    `xml:"FedNowCustomerCreditTransfer,omitempty" json:"FedNowCustomerCreditTransfer,omitempty"`
	FedNowInstitutionCreditTransfer                    *Envelope                    `xml:"FedNowInstitutionCreditTransfer,omitempty" json:"FedNowInstitutionCreditTransfer,omitempty"`
	FedNowPaymentStatusRequest                         *Envelope                    `xml:"FedNowPaymentStatusRequest,omitempty" json:"FedNowPaymentStatusRequest,omitempty"`
	FedNowRequestForPayment                            *Envelope                    `xml:"FedNowRequestForPayment,omitempty" json:"FedNowRequestForPayment,omitempty"`
	FedNowRequestForPaymentResponse                    *Envelope                    `xml:"FedNowRequestForPaymentResponse,omitempty" json:"FedNowRequestForPaymentResponse,omitempty"`
	FedNowInformationRequest                           *Envelope                    `xml:"FedNowInformationRequest,omitempty" json:"FedNowInformationRequest,omitempty"`
	FedNowAdditionalPaymentInformation                 *Envelope                    `xml:"FedNowAdditionalPaymentInformation,omitempty" json:"FedNowAdditionalPaymentInformation,omitempty"`
	FedNowReturnRequestResponse                        *Envelope                    `xml:"FedNowReturnRequestResponse,omitempty" json:"FedNowReturnRequestResponse,omitempty"`
	FedNowInformationRequestResponse                   *Envelope                    `xml:"FedNowInformationRequestResponse,omitempty" json:"FedNowInformationRequestResponse,omitempty"`
	FedNowAccountActivityDetailsReport                 *Envelope                    `xml:"FedNowAccountActivityDetailsReport,omitempty" json:"FedNowAccountActivityDetailsReport,omitempty"`
	FedNowAccountActivityTotalsReport                  *Envelope                    `xml:"FedNowAccountActivityTotalsReport,omitempty" json:"FedNowAccountActivityTotalsReport,omitempty"`
	FedNowAccountBalanceReport                         *Envelope                    `xml:"FedNowAccountBalanceReport,omitempty" json:"FedNowAccountBalanceReport,omitempty"`
	AccountDebitCreditNotification                     *Envelope                    `xml:"AccountDebitCreditNotification,omitempty" json:"AccountDebitCreditNotification,omitempty"`
	FedNowRequestForPaymentCancellationRequest         *Envelope                    `xml:"FedNowRequestForPaymentCancellationRequest,omitempty" json:"FedNowRequestForPaymentCancellationRequest,omitempty"`
	FedNowRequestForPaymentCancellationRequestResponse *Envelope                    `xml:"FedNowRequestForPaymentCancellationRequestResponse,omitempty" json:"FedNowRequestForPaymentCancellationRequestResponse,omitempty"`
	FedNowReturnRequest                                *Envelope                    `xml:"FedNowReturnRequest,omitempty" json:"FedNowReturnRequest,omitempty"`
	FedNowOutgoingMessageSignatureManagement           *OutgoingSignatureManagement `xml:"FedNowOutgoingMessageSignatureManagement,omitempty" json:"FedNowOutgoingMessageSignatureManagement,omitempty"`
}

func (m *OutgoingMessage) branches() []branch {
	return []branch{
		{"FedNowMessageReject", admi00200101.ID, m.FedNowMessageReject},
		{"FedNowBroadcast", admi00400102.ID, m.FedNowBroadcast},
		{"FedNowReceiptAcknowledgement", admi00700101.ID, m.FedNowReceiptAcknowledgement},
		{"FedNowSystemResponse", admi01100101.ID, m.FedNowSystemResponse},
		{"FedNowParticipantFile", admi99800102.ID, m.FedNowParticipantFile},
		{"FedNowPaymentStatus", pacs00200110.ID, m.FedNowPaymentStatus},
		{"FedNowPaymentReturn", pacs00400110.ID, m.FedNowPaymentReturn},
		{"FedNowCustomerCreditTransfer", pacs00800108.ID, m.FedNowCustomerCreditTransfer},
		{"FedNowInstitutionCreditTransfer", idInstitutionCreditTransfer, m.FedNowInstitutionCreditTransfer},
		{"FedNowPaymentStatusRequest", idPaymentStatusRequest, m.FedNowPaymentStatusRequest},
		{"FedNowRequestForPayment", idRequestForPayment, m.FedNowRequestForPayment},
		{"FedNowRequestForPaymentResponse", idRequestForPaymentResp, m.FedNowRequestForPaymentResponse},
		{"FedNowInformationRequest", idInformationRequest, m.FedNowInformationRequest},
		{"FedNowAdditionalPaymentInformation", idAdditionalPaymentInfo, m.FedNowAdditionalPaymentInformation},
		{"FedNowReturnRequestResponse", idResolutionOfInvestigation, m.FedNowReturnRequestResponse},
		{"FedNowInformationRequestResponse", idResolutionOfInvestigation, m.FedNowInformationRequestResponse},
		{"FedNowAccountActivityDetailsReport", idAccountReport, m.FedNowAccountActivityDetailsReport},
		{"FedNowAccountActivityTotalsReport", idAccountReport, m.FedNowAccountActivityTotalsReport},
		{"FedNowAccountBalanceReport", idAccountReport, m.FedNowAccountBalanceReport},
		{"AccountDebitCreditNotification", idDebitCreditNotification, m.AccountDebitCreditNotification},
		{"FedNowRequestForPaymentCancellationRequest", camt05500109.ID, m.FedNowRequestForPaymentCancellationRequest},
		{"FedNowRequestForPaymentCancellationRequestResponse", idResolutionOfInvestigation, m.FedNowRequestForPaymentCancellationRequestResponse},
		{"FedNowReturnRequest", idReturnRequest, m.FedNowReturnRequest},
	}
}

func (m *OutgoingMessage) Validate(p iso.PathRef) error {
	bs := m.branches()
	if err := choose(p, bs, m.FedNowOutgoingMessageSignatureManagement != nil); err != nil {
		return err
	}
	if b, ok := selected(bs); ok {
		return b.env.Validate(p.Field(b.name))
	}
	return m.FedNowOutgoingMessageSignatureManagement.Validate(p.Field("FedNowOutgoingMessageSignatureManagement"))
}

// Selected returns the branch name and envelope of the message. ok is false
// for signature management and for an empty message.
func (m *OutgoingMessage) Selected() (name string, env *Envelope, ok bool) {
	b, ok := selected(m.branches())
	return b.name, b.env, ok
}
