package iso20022_test

import (
	"context"
	"testing"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
)

// party is a two-branch choice.
type party struct {
	Nm *common.Max140Text `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Id *common.Max35Text  `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (c *party) Validate(p iso.PathRef) error {
	if err := iso.Choice(p, c.Nm != nil, c.Id != nil); err != nil {
		return err
	}
	return iso.All(
		func() error { return iso.Optional(p.Field("Nm"), c.Nm) },
		func() error { return iso.Optional(p.Field("Id"), c.Id) },
	)
}

type batch struct {
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
	Pty []party          `xml:"Pty" json:"Pty"`
}

func (b *batch) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return b.Ref.Validate(p.Field("Ref")) },
		func() error { return iso.Occurs(p.Field("Pty"), len(b.Pty), 1, 3) },
		func() error { return iso.Each(p.Field("Pty"), b.Pty) },
	)
}

func ptr[T any](v T) *T { return &v }

func TestChoice(t *testing.T) {
	cases := []struct {
		name string
		in   party
		want string
	}{
		{"name", party{Nm: ptr(common.Max140Text("ACME"))}, ""},
		{"id", party{Id: ptr(common.Max35Text("X1"))}, ""},
		{"none", party{}, iso.CodeInvalidChoice},
		{"both", party{Nm: ptr(common.Max140Text("ACME")), Id: ptr(common.Max35Text("X1"))}, iso.CodeInvalidChoice},
		{"branch invalid", party{Id: ptr(common.Max35Text(""))}, iso.CodeTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkCode(t, iso.Validate(&tc.in), tc.want)
		})
	}
}

func TestOccurs(t *testing.T) {
	one := party{Id: ptr(common.Max35Text("X"))}

	is := checkCode(t, iso.Validate(&batch{Ref: "R"}), iso.CodeTooFew)
	if is.Path != "/Pty" || is.Params["min"] != 1 {
		t.Fatalf("too few: %+v", is)
	}
	is = checkCode(t, iso.Validate(&batch{Ref: "R", Pty: []party{one, one, one, one}}), iso.CodeTooMany)
	if is.Params["max"] != 3 || is.Params["got"] != 4 {
		t.Fatalf("too many: %+v", is)
	}
	checkCode(t, iso.Occurs(iso.Root(), 1000, 0, -1), "")
}

func TestFirstViolationInDeclarationOrder(t *testing.T) {
	// Ref and the second party are both invalid; Ref is declared first
	b := &batch{Pty: []party{{Id: ptr(common.Max35Text("X"))}, {}}}
	is := checkCode(t, iso.Validate(b), iso.CodeTooShort)
	if is.Path != "/Ref" {
		t.Fatalf("path: %s", is.Path)
	}

	b.Ref = "R"
	is = checkCode(t, iso.Validate(b), iso.CodeInvalidChoice)
	if is.Path != "/Pty/1" {
		t.Fatalf("path: %s", is.Path)
	}
}

func TestViolationMessage(t *testing.T) {
	is := checkCode(t, iso.Validate(&batch{Ref: "R", Pty: []party{{Id: ptr(common.Max35Text("0123456789012345678901234567890123456789"))}}}), iso.CodeTooLong)
	if is.Path != "/Pty/0/Id" || is.Message != "Id is longer than the maximum length of 35" {
		t.Fatalf("unexpected: %+v", is)
	}
}

func TestPathRef(t *testing.T) {
	if iso.Root().Pointer() != "/" {
		t.Fatal("root pointer")
	}
	p := iso.Root().Field("a/b").Index(2).Field("c~d")
	if got := p.Pointer(); got != "/a~1b/2/c~0d" {
		t.Fatalf("escaped pointer: %s", got)
	}
	if got := iso.At("/GrpHdr/MsgId").Field("x").Pointer(); got != "/GrpHdr/MsgId/x" {
		t.Fatalf("At: %s", got)
	}
}

func TestFailFastContext(t *testing.T) {
	ctx := context.Background()
	if iso.IsFailFast(ctx) {
		t.Fatal("default is off")
	}
	if !iso.IsFailFast(iso.WithFailFast(ctx, true)) {
		t.Fatal("WithFailFast(true)")
	}
}

func TestValidateNil(t *testing.T) {
	if err := iso.Validate(nil); err != nil {
		t.Fatal(err)
	}
}
