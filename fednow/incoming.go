package fednow

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/admi/admi00200101"
	"github.com/reoring/iso20022/admi/admi00400102"
	"github.com/reoring/iso20022/admi/admi00600101"
	"github.com/reoring/iso20022/admi/admi00700101"
	"github.com/reoring/iso20022/camt/camt05500109"
	"github.com/reoring/iso20022/camt/camt06000105"
	"github.com/reoring/iso20022/pacs/pacs00200110"
	"github.com/reoring/iso20022/pacs/pacs00400110"
	"github.com/reoring/iso20022/pacs/pacs00800108"
)

// Message ids of FedNow flows whose document types are not registered in
// this module. Envelopes carrying them decode to unknown documents.
const (
	idInstitutionCreditTransfer = "pacs.009.001.08"
	idPaymentStatusRequest      = "pacs.028.001.03"
	idRequestForPayment         = "pain.013.001.07"
	idRequestForPaymentResp     = "pain.014.001.07"
	idInformationRequest        = "camt.026.001.07"
	idAdditionalPaymentInfo     = "camt.028.001.09"
	idResolutionOfInvestigation = "camt.029.001.09"
	idAccountReport             = "camt.052.001.08"
	idDebitCreditNotification   = "camt.054.001.08"
	idReturnRequest             = "camt.056.001.08"
)

// Incoming is the FedNowIncoming root: a message sent by a participant to
// the service.
type Incoming struct {
	FedNowTechnicalHeader *TechnicalHeader `xml:"FedNowTechnicalHeader,omitempty" json:"FedNowTechnicalHeader,omitempty"`
	FedNowIncomingMessage IncomingMessage  `xml:"FedNowIncomingMessage" json:"FedNowIncomingMessage"`
}

func (in *Incoming) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("FedNowTechnicalHeader"), in.FedNowTechnicalHeader) },
		func() error { return in.FedNowIncomingMessage.Validate(p.Field("FedNowIncomingMessage")) },
	)
}

// IncomingMessage holds exactly one of its branches.
type IncomingMessage struct {
	FedNowMessageReject                                *Envelope                    `xml:"FedNowMessageReject,omitempty" json:"FedNowMessageReject,omitempty"`
	FedNowParticipantBroadcast                         *Envelope                    `xml:"FedNowParticipantBroadcast,omitempty" json:"FedNowParticipantBroadcast,omitempty"`
	FedNowRetrievalRequest                             *Envelope                    `xml:"FedNowRetrievalRequest,omitempty" json:"FedNowRetrievalRequest,omitempty"`
	FedNowReceiptAcknowledgement                       *Envelope                    `xml:"FedNowReceiptAcknowledgement,omitempty" json:"FedNowReceiptAcknowledgement,omitempty"`
	FedNowPaymentStatus                                *Envelope                    `xml:"FedNowPaymentStatus,omitempty" json:"FedNowPaymentStatus,omitempty"`
	FedNowPaymentReturn                                *Envelope                    `xml:"FedNowPaymentReturn,omitempty" json:"FedNowPaymentReturn,omitempty"`
	FedNowCustomerCreditTransfer                       *Envelope                    `xml:"FedNowCustomerCreditTransfer,omitempty" json:"FedNowCustomerCreditTransfer,omitempty"`
	FedNowInstitutionCreditTransfer                    *Envelope                    `xml:"FedNowInstitutionCreditTransfer,omitempty" json:"FedNowInstitutionCreditTransfer,omitempty"`
	FedNowPaymentStatusRequest                         *Envelope                    `xml:"FedNowPaymentStatusRequest,omitempty" json:"FedNowPaymentStatusRequest,omitempty"`
	FedNowRequestForPayment                            *Envelope                    `xml:"FedNowRequestForPayment,omitempty" json:"FedNowRequestForPayment,omitempty"`
	FedNowRequestForPaymentResponse                    *Envelope                    `xml:"FedNowRequestForPaymentResponse,omitempty" json:"FedNowRequestForPaymentResponse,omitempty"`
	FedNowInformationRequest                           *Envelope                    `xml:"FedNowInformationRequest,omitempty" json:"FedNowInformationRequest,omitempty"`
	FedNowAdditionalPaymentInformation                 *Envelope                    `xml:"FedNowAdditionalPaymentInformation,omitempty" json:"FedNowAdditionalPaymentInformation,omitempty"`
	FedNowInformationRequestResponse                   *Envelope                    `xml:"FedNowInformationRequestResponse,omitempty" json:"FedNowInformationRequestResponse,omitempty"`
	FedNowRequestForPaymentCancellationRequestResponse *Envelope                    `xml:"FedNowRequestForPaymentCancellationRequestResponse,omitempty" json:"FedNowRequestForPaymentCancellationRequestResponse,omitempty"`
	FedNowReturnRequestResponse                        *Envelope                    `xml:"FedNowReturnRequestResponse,omitempty" json:"FedNowReturnRequestResponse,omitempty"`
	FedNowRequestForPaymentCancellationRequest         *Envelope                    `xml:"FedNowRequestForPaymentCancellationRequest,omitempty" json:"FedNowRequestForPaymentCancellationRequest,omitempty"`
	FedNowReturnRequest                                *Envelope                    `xml:"FedNowReturnRequest,omitempty" json:"FedNowReturnRequest,omitempty"`
	FedNowAccountReportingRequest                      *Envelope                    `xml:"FedNowAccountReportingRequest,omitempty" json:"FedNowAccountReportingRequest,omitempty"`
	FedNowIncomingMessageSignatureManagement           *IncomingSignatureManagement `xml:"FedNowIncomingMessageSignatureManagement,omitempty" json:"FedNowIncomingMessageSignatureManagement,omitempty"`
}

// branch is one envelope member of a message choice and the message id it
// must carry.
type branch struct {
	name string
	id   string
	env  *Envelope
}

func (m *IncomingMessage) branches() []branch {
	return []branch{
		{"FedNowMessageReject", admi00200101.ID, m.FedNowMessageReject},
		{"FedNowParticipantBroadcast", admi00400102.ID, m.FedNowParticipantBroadcast},
		{"FedNowRetrievalRequest", admi00600101.ID, m.FedNowRetrievalRequest},
		{"FedNowReceiptAcknowledgement", admi00700101.ID, m.FedNowReceiptAcknowledgement},
		{"FedNowPaymentStatus", pacs00200110.ID, m.FedNowPaymentStatus},
		{"FedNowPaymentReturn", pacs00400110.ID, m.FedNowPaymentReturn},
		{"FedNowCustomerCreditTransfer", pacs00800108.ID, m.FedNowCustomerCreditTransfer},
		{"FedNowInstitutionCreditTransfer", idInstitutionCreditTransfer, m.FedNowInstitutionCreditTransfer},
		{"FedNowPaymentStatusRequest", idPaymentStatusRequest, m.FedNowPaymentStatusRequest},
		{"FedNowRequestForPayment", idRequestForPayment, m.FedNowRequestForPayment},
		{"FedNowRequestForPaymentResponse", idRequestForPaymentResp, m.FedNowRequestForPaymentResponse},
		{"FedNowInformationRequest", idInformationRequest, m.FedNowInformationRequest},
		{"FedNowAdditionalPaymentInformation", idAdditionalPaymentInfo, m.FedNowAdditionalPaymentInformation},
		{"FedNowInformationRequestResponse", idResolutionOfInvestigation, m.FedNowInformationRequestResponse},
		{"FedNowRequestForPaymentCancellationRequestResponse", idResolutionOfInvestigation, m.FedNowRequestForPaymentCancellationRequestResponse},
		{"FedNowReturnRequestResponse", idResolutionOfInvestigation, m.FedNowReturnRequestResponse},
		{"FedNowRequestForPaymentCancellationRequest", camt05500109.ID, m.FedNowRequestForPaymentCancellationRequest},
		{"FedNowReturnRequest", idReturnRequest, m.FedNowReturnRequest},
		{"FedNowAccountReportingRequest", camt06000105.ID, m.FedNowAccountReportingRequest},
	}
}

func (m *IncomingMessage) Validate(p iso.PathRef) error {
	bs := m.branches()
	if err := choose(p, bs, m.FedNowIncomingMessageSignatureManagement != nil); err != nil {
		return err
	}
	if b, ok := selected(bs); ok {
		return b.env.Validate(p.Field(b.name))
	}
	return m.FedNowIncomingMessageSignatureManagement.Validate(p.Field("FedNowIncomingMessageSignatureManagement"))
}

// Selected returns the branch name and envelope of the message. ok is false
// for signature management and for an empty message.
func (m *IncomingMessage) Selected() (name string, env *Envelope, ok bool) {
	b, ok := selected(m.branches())
	return b.name, b.env, ok
}

func choose(p iso.PathRef, bs []branch, others ...bool) error {
	present := make([]bool, 0, len(bs)+len(others))
	for _, b := range bs {
		present = append(present, b.env != nil)
	}
	return iso.Choice(p, append(present, others...)...)
}

func selected(bs []branch) (branch, bool) {
	for _, b := range bs {
		if b.env != nil {
			return b, true
		}
	}
	return branch{}, false
}
