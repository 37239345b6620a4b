// Package admi01100101 implements the system event acknowledgement
// admi.011.001.01, which FedNow sends as its system response.
package admi01100101

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "admi.011.001.01"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "SystemEventAcknowledgementV01",
		Root: "SysEvtAck",
		New:  func() iso.Message { return new(SystemEventAcknowledgementV01) },
	})
}

type SystemEventAcknowledgementV01 struct {
	MsgId       common.Max35Text               `xml:"MsgId" json:"MsgId"`
	OrgtrRef    *common.Max35Text              `xml:"OrgtrRef,omitempty" json:"OrgtrRef,omitempty"`
	SttlmSsnIdr *common.Exact4AlphaNumericText `xml:"SttlmSsnIdr,omitempty" json:"SttlmSsnIdr,omitempty"`
	AckDtls     *Event1                        `xml:"AckDtls,omitempty" json:"AckDtls,omitempty"`
	SplmtryData []common.SupplementaryData1    `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *SystemEventAcknowledgementV01) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.MsgId.Validate(p.Field("MsgId")) },
		func() error { return iso.Optional(p.Field("OrgtrRef"), m.OrgtrRef) },
		func() error { return iso.Optional(p.Field("SttlmSsnIdr"), m.SttlmSsnIdr) },
		func() error { return iso.Optional(p.Field("AckDtls"), m.AckDtls) },
		func() error { return iso.Each(p.Field("SplmtryData"), m.SplmtryData) },
	)
}

type Event1 struct {
	EvtCd    common.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd"`
	EvtParam []common.Max35Text          `xml:"EvtParam,omitempty" json:"EvtParam,omitempty"`
	EvtDesc  *common.Max350Text          `xml:"EvtDesc,omitempty" json:"EvtDesc,omitempty"`
	EvtTm    *common.ISODateTime         `xml:"EvtTm,omitempty" json:"EvtTm,omitempty"`
}

func (e *Event1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return e.EvtCd.Validate(p.Field("EvtCd")) },
		func() error { return iso.Each(p.Field("EvtParam"), e.EvtParam) },
		func() error { return iso.Optional(p.Field("EvtDesc"), e.EvtDesc) },
		func() error { return iso.Optional(p.Field("EvtTm"), e.EvtTm) },
	)
}
