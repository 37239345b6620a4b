// Package admi00400102 implements the system event notification
// admi.004.001.02, used by FedNow for participant broadcasts.
package admi00400102

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "admi.004.001.02"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "SystemEventNotificationV02",
		Root: "SysEvtNtfctn",
		New:  func() iso.Message { return new(SystemEventNotificationV02) },
	})
}

type SystemEventNotificationV02 struct {
	EvtInf Event2 `xml:"EvtInf" json:"EvtInf"`
}

func (m *SystemEventNotificationV02) Validate(p iso.PathRef) error {
	return m.EvtInf.Validate(p.Field("EvtInf"))
}

// Event2 is a coded system event with optional parameters.
type Event2 struct {
	EvtCd    common.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd"`
	EvtParam []common.Max35Text          `xml:"EvtParam,omitempty" json:"EvtParam,omitempty"`
	EvtDesc  *common.Max1000Text         `xml:"EvtDesc,omitempty" json:"EvtDesc,omitempty"`
	EvtTm    *common.ISODateTime         `xml:"EvtTm,omitempty" json:"EvtTm,omitempty"`
}

func (e *Event2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return e.EvtCd.Validate(p.Field("EvtCd")) },
		func() error { return iso.Each(p.Field("EvtParam"), e.EvtParam) },
		func() error { return iso.Optional(p.Field("EvtDesc"), e.EvtDesc) },
		func() error { return iso.Optional(p.Field("EvtTm"), e.EvtTm) },
	)
}
