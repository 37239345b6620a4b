// Package participant holds the FedNow participant file: the daily list of
// routing numbers reachable through the service, delivered inside the
// proprietary data of an admi.998 message.
package participant

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

var (
	routingNumber = iso.NewTextType("RoutingNumber_FRS_1", iso.Pattern(`[0-9]{9,9}`))
	servicesCodes = iso.NewTextType("Services_FedNow_1", iso.Enum("CTSR", "CTRO", "RFPR"))
)

// Service codes.
const (
	ServiceCreditTransferSendReceive ServicesFedNow1 = "CTSR"
	ServiceCreditTransferReceiveOnly ServicesFedNow1 = "CTRO"
	ServiceRequestForPayment         ServicesFedNow1 = "RFPR"
)

// RoutingNumberFRS1 is a nine digit ABA routing number.
type RoutingNumberFRS1 string

func (v RoutingNumberFRS1) Validate(p iso.PathRef) error { return routingNumber.Check(p, string(v)) }
func (RoutingNumberFRS1) SimpleType() iso.SimpleType     { return routingNumber }

type ServicesFedNow1 string

func (v ServicesFedNow1) Validate(p iso.PathRef) error { return servicesCodes.Check(p, string(v)) }
func (ServicesFedNow1) SimpleType() iso.SimpleType     { return servicesCodes }

// Admi998SuplDataV01 is the proprietary payload of the participant file
// broadcast.
type Admi998SuplDataV01 struct {
	PtcptFile *FedNowParticipantFile1 `xml:"PtcptFile,omitempty" json:"PtcptFile,omitempty"`
}

func (d *Admi998SuplDataV01) Validate(p iso.PathRef) error {
	return iso.Optional(p.Field("PtcptFile"), d.PtcptFile)
}

type FedNowParticipantFile1 struct {
	BizDay    common.ISODate              `xml:"BizDay" json:"BizDay"`
	PtcptPrfl []FedNowParticipantProfile1 `xml:"PtcptPrfl" json:"PtcptPrfl"`
}

func (f *FedNowParticipantFile1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return f.BizDay.Validate(p.Field("BizDay")) },
		func() error { return iso.Occurs(p.Field("PtcptPrfl"), len(f.PtcptPrfl), 1, -1) },
		func() error { return iso.Each(p.Field("PtcptPrfl"), f.PtcptPrfl) },
	)
}

// Lookup returns the profile of a routing number.
func (f *FedNowParticipantFile1) Lookup(id RoutingNumberFRS1) (FedNowParticipantProfile1, bool) {
	for _, pr := range f.PtcptPrfl {
		if pr.Id == id {
			return pr, true
		}
	}
	return FedNowParticipantProfile1{}, false
}

type FedNowParticipantProfile1 struct {
	Id   RoutingNumberFRS1 `xml:"Id" json:"Id"`
	Nm   common.Max140Text `xml:"Nm" json:"Nm"`
	Svcs []ServicesFedNow1 `xml:"Svcs,omitempty" json:"Svcs,omitempty"`
}

func (pr *FedNowParticipantProfile1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return pr.Id.Validate(p.Field("Id")) },
		func() error { return pr.Nm.Validate(p.Field("Nm")) },
		func() error { return iso.Each(p.Field("Svcs"), pr.Svcs) },
	)
}

// Offers reports whether the participant has signed up for s.
func (pr FedNowParticipantProfile1) Offers(s ServicesFedNow1) bool {
	for _, have := range pr.Svcs {
		if have == s {
			return true
		}
	}
	return false
}
