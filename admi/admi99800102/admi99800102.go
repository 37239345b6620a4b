// Package admi99800102 implements the administration proprietary message
// admi.998.001.02. FedNow uses it to distribute the participant file.
package admi99800102

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow/participant"
)

const ID = "admi.998.001.02"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "AdministrationProprietaryMessageV02",
		Root: "AdmstnPrtryMsg",
		New:  func() iso.Message { return new(AdministrationProprietaryMessageV02) },
	})
}

type AdministrationProprietaryMessageV02 struct {
	MsgId     *MessageReference `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
	Rltd      *MessageReference `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
	Prvs      *MessageReference `xml:"Prvs,omitempty" json:"Prvs,omitempty"`
	Othr      *MessageReference `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrtryData ProprietaryData5  `xml:"PrtryData" json:"PrtryData"`
}

func (m *AdministrationProprietaryMessageV02) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("MsgId"), m.MsgId) },
		func() error { return iso.Optional(p.Field("Rltd"), m.Rltd) },
		func() error { return iso.Optional(p.Field("Prvs"), m.Prvs) },
		func() error { return iso.Optional(p.Field("Othr"), m.Othr) },
		func() error { return m.PrtryData.Validate(p.Field("PrtryData")) },
	)
}

// ParticipantFile returns the participant file carried by the message, if
// any.
func (m *AdministrationProprietaryMessageV02) ParticipantFile() (*participant.FedNowParticipantFile1, bool) {
	f := m.PrtryData.Data.PtcptFile
	return f, f != nil
}

type MessageReference struct {
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
}

func (r *MessageReference) Validate(p iso.PathRef) error { return r.Ref.Validate(p.Field("Ref")) }

// ProprietaryData5 carries a typed proprietary payload. Tp names the payload
// kind, for example "PtcptFile".
type ProprietaryData5 struct {
	Tp   common.Max35Text               `xml:"Tp" json:"Tp"`
	Data participant.Admi998SuplDataV01 `xml:"Data" json:"Data"`
}

func (d *ProprietaryData5) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return d.Tp.Validate(p.Field("Tp")) },
		func() error { return d.Data.Validate(p.Field("Data")) },
	)
}
