// Package fednow implements the FedNow Service message envelopes. A FedNow
// message is a FedNowIncoming or FedNowOutgoing root holding exactly one
// branch; most branches wrap a business application header and an ISO 20022
// document, the rest manage message signature keys.
package fednow

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	iso "github.com/reoring/iso20022"
)

// Root element names.
const (
	RootIncoming = "FedNowIncoming"
	RootOutgoing = "FedNowOutgoing"
)

// Message is a FedNow message in either direction, selected by its root
// element. Exactly one of Incoming and Outgoing is set after a successful
// decode of a known root.
type Message struct {
	Incoming *Incoming
	Outgoing *Outgoing

	// Root as found on the wire; kept for unknown roots.
	Root string
}

// NewIncoming wraps in as a FedNowIncoming message.
func NewIncoming(in *Incoming) *Message { return &Message{Incoming: in, Root: RootIncoming} }

// NewOutgoing wraps out as a FedNowOutgoing message.
func NewOutgoing(out *Outgoing) *Message { return &Message{Outgoing: out, Root: RootOutgoing} }

func (m *Message) Validate(p iso.PathRef) error {
	switch {
	case m.Incoming != nil:
		return m.Incoming.Validate(p.Field(RootIncoming))
	case m.Outgoing != nil:
		return m.Outgoing.Validate(p.Field(RootOutgoing))
	}
	return iso.Violation(p, iso.CodeUnknownDocument, "FednowMessage", map[string]any{"root": m.Root})
}

// Envelope returns the envelope carried by the message. ok is false for
// signature management messages and unknown roots.
func (m *Message) Envelope() (env *Envelope, ok bool) {
	_, b, ok := m.selected()
	return b.env, ok
}

// selected locates the envelope branch and its path.
func (m *Message) selected() (iso.PathRef, branch, bool) {
	switch {
	case m.Incoming != nil:
		b, ok := selected(m.Incoming.FedNowIncomingMessage.branches())
		return iso.Root().Field(RootIncoming).Field("FedNowIncomingMessage").Field(b.name), b, ok
	case m.Outgoing != nil:
		b, ok := selected(m.Outgoing.FedNowOutgoingMessage.branches())
		return iso.Root().Field(RootOutgoing).Field("FedNowOutgoingMessage").Field(b.name), b, ok
	}
	return iso.Root(), branch{}, false
}

func (m Message) body() (string, any, error) {
	switch {
	case m.Incoming != nil:
		return RootIncoming, m.Incoming, nil
	case m.Outgoing != nil:
		return RootOutgoing, m.Outgoing, nil
	}
	return "", nil, fmt.Errorf("fednow: cannot encode unknown message (root %q)", m.Root)
}

// ---- XML ----

func (m *Message) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	m.Root = start.Name.Local
	switch m.Root {
	case RootIncoming:
		m.Incoming = new(Incoming)
		return dec.DecodeElement(m.Incoming, &start)
	case RootOutgoing:
		m.Outgoing = new(Outgoing)
		return dec.DecodeElement(m.Outgoing, &start)
	}
	return dec.Skip()
}

func (m Message) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	root, v, err := m.body()
	if err != nil {
		return err
	}
	return enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: root}})
}

// ---- JSON / YAML ----

func (m Message) MarshalJSON() ([]byte, error) {
	root, v, err := m.body()
	if err != nil {
		return nil, err
	}
	return iso.CurrentJSONDriver().Marshal(map[string]any{root: v})
}

func (m *Message) UnmarshalJSON(data []byte) error {
	drv := iso.CurrentJSONDriver()
	var raw map[string]gojson.RawMessage
	if err := drv.Unmarshal(data, &raw); err != nil {
		return err
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) != 1 {
		return iso.Issues{{Path: "/", Code: iso.CodeParseError, Message: fmt.Sprintf("message must hold exactly one root element, found %d", len(keys)), Params: map[string]any{"keys": keys}}}
	}
	m.Root = keys[0]
	switch m.Root {
	case RootIncoming:
		m.Incoming = new(Incoming)
		return drv.Unmarshal(raw[m.Root], m.Incoming)
	case RootOutgoing:
		m.Outgoing = new(Outgoing)
		return drv.Unmarshal(raw[m.Root], m.Outgoing)
	}
	return nil
}

func (m Message) MarshalYAML() (any, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return iso.JSONToYAMLNode(data)
}

func (m *Message) UnmarshalYAML(n *yaml.Node) error {
	data, err := iso.YAMLNodeToJSON(n)
	if err != nil {
		return err
	}
	return m.UnmarshalJSON(data)
}

// ---- wire ----

// Decode reads one FedNow message without validating it. The format is
// sniffed unless opt.Format is set. An unknown root decodes to a Message
// with neither direction set.
func Decode(ctx context.Context, r io.Reader, opts ...iso.ParseOpt) (*Message, error) {
	opt := lastOpt(opts)
	data, err := iso.ReadLimited(r, opt.MaxBytes)
	if err != nil {
		return nil, err
	}
	f := opt.Format
	if f == iso.FormatAuto {
		f = iso.SniffFormat(data)
	}
	m := new(Message)
	switch f {
	case iso.FormatXML:
		if err := decodeXML(data, m); err != nil {
			return nil, err
		}
	case iso.FormatJSON:
		if err := iso.CheckJSONDuplicates(data, opt); err != nil {
			return nil, err
		}
		if err := m.UnmarshalJSON(data); err != nil {
			return nil, iso.WireIssues(err)
		}
	case iso.FormatYAML:
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, iso.WireIssues(err)
		}
	default:
		return nil, fmt.Errorf("fednow: unsupported format %v", f)
	}
	return m, nil
}

// Parse decodes and validates a FedNow message. With opt.Rules it also runs
// CheckRules. The decoded message is returned alongside validation errors.
func Parse(ctx context.Context, r io.Reader, opts ...iso.ParseOpt) (*Message, error) {
	opt := lastOpt(opts)
	if opt.FailFast {
		ctx = iso.WithFailFast(ctx, true)
	}
	m, err := Decode(ctx, r, opt)
	if err != nil {
		return nil, err
	}
	if err := iso.Validate(m); err != nil {
		return m, err
	}
	if opt.Rules {
		if err := CheckRules(ctx, m); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Encode writes m in format f, indented with two spaces.
func Encode(w io.Writer, m *Message, f iso.Format) error {
	if m == nil {
		return errors.New("fednow: nil message")
	}
	switch f {
	case iso.FormatXML, iso.FormatAuto:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(m); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case iso.FormatJSON:
		b, err := iso.CurrentJSONDriver().MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case iso.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("fednow: unsupported format %v", f)
}

func decodeXML(data []byte, m *Message) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return iso.Issues{{Path: "/", Code: iso.CodeParseError, Message: "no root element"}}
		}
		if err != nil {
			return iso.WireIssues(err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if err := dec.DecodeElement(m, &start); err != nil {
				return iso.WireIssues(err)
			}
			return nil
		}
	}
}

func lastOpt(opts []iso.ParseOpt) iso.ParseOpt {
	if len(opts) == 0 {
		return iso.ParseOpt{}
	}
	return opts[len(opts)-1]
}
