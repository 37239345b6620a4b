package fednow

import (
	"encoding/xml"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	head "github.com/reoring/iso20022/head/head00100102"
)

// Envelope is one FedNow message: the business application header followed
// by the ISO 20022 document it describes.
type Envelope struct {
	AppHdr   head.BusinessApplicationHeaderV02 `xml:"AppHdr" json:"AppHdr"`
	Document iso.Document                      `xml:"Document" json:"Document"`
}

// NewEnvelope builds an envelope around m and sets AppHdr.MsgDefIdr to the
// message type id.
func NewEnvelope(hdr head.BusinessApplicationHeaderV02, id string, m iso.Message) (*Envelope, error) {
	doc, err := iso.NewDocument(id, m)
	if err != nil {
		return nil, err
	}
	hdr.MsgDefIdr = common.Max35Text(id)
	return &Envelope{AppHdr: hdr, Document: *doc}, nil
}

// ID returns the message id of the enclosed document.
func (e *Envelope) ID() string { return e.Document.ID() }

func (e *Envelope) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return e.AppHdr.Validate(p.Field("AppHdr")) },
		func() error { return e.Document.Validate(p.Field("Document")) },
	)
}

// MarshalXML writes AppHdr in the head namespace. Decoding accepts AppHdr
// in any namespace.
func (e Envelope) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	hdr := xml.StartElement{Name: xml.Name{Space: head.Namespace, Local: "AppHdr"}}
	if err := enc.EncodeElement(e.AppHdr, hdr); err != nil {
		return err
	}
	if err := enc.EncodeElement(e.Document, xml.StartElement{Name: xml.Name{Local: "Document"}}); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// TechnicalHeader carries transport data set by the FedNow service. Its
// content is not interpreted; XML input is kept verbatim. JSON and YAML
// carry the same inner XML as a string.
type TechnicalHeader struct {
	Inner string `xml:",innerxml" json:"-"`
}

func (*TechnicalHeader) Validate(iso.PathRef) error { return nil }

func (h TechnicalHeader) MarshalJSON() ([]byte, error) {
	return iso.CurrentJSONDriver().Marshal(h.Inner)
}

func (h *TechnicalHeader) UnmarshalJSON(data []byte) error {
	return iso.CurrentJSONDriver().Unmarshal(data, &h.Inner)
}
