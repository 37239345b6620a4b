package common

import iso "github.com/reoring/iso20022"

// SupplementaryData1 carries data outside the message definition. The
// envelope content is kept as raw XML.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

func (s *SupplementaryData1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("PlcAndNm"), s.PlcAndNm) },
		func() error { return s.Envlp.Validate(p.Field("Envlp")) },
	)
}

type SupplementaryDataEnvelope1 struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}

// Validate accepts any content; the envelope is opaque to the message.
func (*SupplementaryDataEnvelope1) Validate(iso.PathRef) error { return nil }
