package iso20022_test

import (
	"slices"
	"testing"

	iso "github.com/reoring/iso20022"
)

func TestDocumentSchema(t *testing.T) {
	mt, ok := iso.LookupType(solo)
	if !ok {
		t.Fatal("solo not registered")
	}
	s, err := iso.DocumentSchema(mt)
	if err != nil {
		t.Fatal(err)
	}
	if s.ID != iso.NamespacePrefix+solo || !slices.Equal(s.Required, []string{"Solo"}) {
		t.Fatalf("document: %+v", s)
	}
	if ns := s.Properties["xmlns"]; ns == nil || !slices.Equal(ns.Enum, []string{mt.Namespace()}) {
		t.Fatalf("xmlns: %+v", ns)
	}
	if s.Properties["Solo"].Ref != "#/$defs/tstMsg" {
		t.Fatalf("root ref: %+v", s.Properties["Solo"])
	}

	msg := s.Defs["tstMsg"]
	if msg == nil {
		t.Fatalf("defs: %v", s.Defs)
	}
	// Ccy is optional, Amt is a required repetition
	if !slices.Equal(msg.Required, []string{"Id", "Amt"}) {
		t.Fatalf("required: %v", msg.Required)
	}
	amt := msg.Properties["Amt"]
	if amt.Type != "array" || amt.MinItems == nil || *amt.MinItems != 1 {
		t.Fatalf("Amt: %+v", amt)
	}
	if msg.Properties["Id"].Ref != "#/$defs/Max35Text" {
		t.Fatalf("Id: %+v", msg.Properties["Id"])
	}
	if ml := s.Defs["Max35Text"].MaxLength; ml == nil || *ml != 35 {
		t.Fatalf("Max35Text: %+v", s.Defs["Max35Text"])
	}
	cur := s.Defs["ActiveCurrencyAndAmount"]
	if cur == nil || cur.Properties["$value"].Type != "number" {
		t.Fatalf("amount: %+v", cur)
	}
}

func TestJSONSchemaOfComponent(t *testing.T) {
	s, err := iso.JSONSchema(&party{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "party" || s.Type != "object" || len(s.Required) != 0 {
		t.Fatalf("party: %+v", s)
	}
	if _, ok := s.Defs["party"]; ok {
		t.Fatal("the top-level type must not stay in $defs")
	}
	if _, err := iso.JSONSchema(nil); err == nil {
		t.Fatal("nil must fail")
	}
}
