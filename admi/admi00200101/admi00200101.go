// Package admi00200101 implements the message reject admi.002.001.01. The
// schema names its message element after the identifier itself.
package admi00200101

import (
	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

const ID = "admi.002.001.01"

func init() {
	iso.Register(iso.MessageType{
		ID:   ID,
		Name: "MessageRejectV01",
		Root: "admi.002.001.01",
		New:  func() iso.Message { return new(MessageRejectV01) },
	})
}

// MessageRejectV01 rejects a received message that could not be processed.
type MessageRejectV01 struct {
	RltdRef MessageReference `xml:"RltdRef" json:"RltdRef"`
	Rsn     RejectionReason2 `xml:"Rsn" json:"Rsn"`
}

func (m *MessageRejectV01) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.RltdRef.Validate(p.Field("RltdRef")) },
		func() error { return m.Rsn.Validate(p.Field("Rsn")) },
	)
}

type MessageReference struct {
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
}

func (r *MessageReference) Validate(p iso.PathRef) error { return r.Ref.Validate(p.Field("Ref")) }

// RejectionReason2 explains the rejection; ErrLctn points at the offending
// element.
type RejectionReason2 struct {
	RjctgPtyRsn common.Max35Text     `xml:"RjctgPtyRsn" json:"RjctgPtyRsn"`
	RjctnDtTm   *common.ISODateTime  `xml:"RjctnDtTm,omitempty" json:"RjctnDtTm,omitempty"`
	ErrLctn     *common.Max350Text   `xml:"ErrLctn,omitempty" json:"ErrLctn,omitempty"`
	RsnDesc     *common.Max350Text   `xml:"RsnDesc,omitempty" json:"RsnDesc,omitempty"`
	AddtlData   *common.Max20000Text `xml:"AddtlData,omitempty" json:"AddtlData,omitempty"`
}

func (r *RejectionReason2) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.RjctgPtyRsn.Validate(p.Field("RjctgPtyRsn")) },
		func() error { return iso.Optional(p.Field("RjctnDtTm"), r.RjctnDtTm) },
		func() error { return iso.Optional(p.Field("ErrLctn"), r.ErrLctn) },
		func() error { return iso.Optional(p.Field("RsnDesc"), r.RsnDesc) },
		func() error { return iso.Optional(p.Field("AddtlData"), r.AddtlData) },
	)
}
