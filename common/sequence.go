package common

import iso "github.com/reoring/iso20022"

// SequenceRange1Choice selects sequence numbers by lower bound, upper
// bound, ranges, explicit values or exclusions.
type SequenceRange1Choice struct {
	FrSeq   *Max35Text       `xml:"FrSeq,omitempty" json:"FrSeq,omitempty"`
	ToSeq   *Max35Text       `xml:"ToSeq,omitempty" json:"ToSeq,omitempty"`
	FrToSeq []SequenceRange1 `xml:"FrToSeq,omitempty" json:"FrToSeq,omitempty"`
	EQSeq   []Max35Text      `xml:"EQSeq,omitempty" json:"EQSeq,omitempty"`
	NEQSeq  []Max35Text      `xml:"NEQSeq,omitempty" json:"NEQSeq,omitempty"`
}

func (c *SequenceRange1Choice) Validate(p iso.PathRef) error {
	return iso.All(
		func() error {
			return iso.Choice(p, c.FrSeq != nil, c.ToSeq != nil, len(c.FrToSeq) > 0, len(c.EQSeq) > 0, len(c.NEQSeq) > 0)
		},
		func() error { return iso.Optional(p.Field("FrSeq"), c.FrSeq) },
		func() error { return iso.Optional(p.Field("ToSeq"), c.ToSeq) },
		func() error { return iso.Each(p.Field("FrToSeq"), c.FrToSeq) },
		func() error { return iso.Each(p.Field("EQSeq"), c.EQSeq) },
		func() error { return iso.Each(p.Field("NEQSeq"), c.NEQSeq) },
	)
}

type SequenceRange1 struct {
	FrSeq Max35Text `xml:"FrSeq" json:"FrSeq"`
	ToSeq Max35Text `xml:"ToSeq" json:"ToSeq"`
}

func (r *SequenceRange1) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.FrSeq.Validate(p.Field("FrSeq")) },
		func() error { return r.ToSeq.Validate(p.Field("ToSeq")) },
	)
}
