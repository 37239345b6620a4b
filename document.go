package iso20022

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the union of every registered message. On the wire it is the
// ISO 20022 <Document> element whose namespace names the message type:
//
//	<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
//	  <FIToFICstmrCdtTrf>...</FIToFICstmrCdtTrf>
//	</Document>
//
// JSON and YAML use {"xmlns": "<namespace>", "<Root>": {...}}. Without xmlns
// the root key alone selects the type when it is unambiguous.
type Document struct {
	// Type is nil when the namespace or root element is not registered.
	Type    *MessageType
	Message Message

	// Namespace and Root as found on the wire.
	Namespace string
	Root      string

	hint string
}

// NewDocument wraps m as a Document of the registered type id.
func NewDocument(id string, m Message) (*Document, error) {
	mt, ok := LookupType(id)
	if !ok {
		return nil, fmt.Errorf("iso20022: message type %q is not registered", id)
	}
	return &Document{Type: &mt, Message: m, Namespace: mt.Namespace(), Root: mt.Root}, nil
}

// ID returns the message identifier, or "" for an unknown document.
func (d *Document) ID() string {
	if d.Type == nil {
		return ""
	}
	return d.Type.ID
}

// Validate checks the enclosed message. An unknown document always fails.
func (d *Document) Validate(p PathRef) error {
	if d.Type == nil || d.Message == nil {
		return Violation(p, CodeUnknownDocument, "Document", map[string]any{"namespace": d.Namespace, "root": d.Root})
	}
	return d.Message.Validate(p.Field(d.Type.Root))
}

// resolve picks the message type for a namespace/root pair. A nil type with a
// nil error means the document is unknown.
func (d *Document) resolve(ns, root string) (*MessageType, error) {
	if ns != "" {
		mt, ok := LookupNamespace(ns)
		if !ok || mt.Root != root {
			return nil, nil
		}
		return &mt, nil
	}
	if d.hint != "" {
		mt, ok := LookupType(d.hint)
		if !ok || mt.Root != root {
			return nil, nil
		}
		return &mt, nil
	}
	cands := LookupRoot(root)
	switch len(cands) {
	case 0:
		return nil, nil
	case 1:
		return &cands[0], nil
	}
	ids := make([]string, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}
	return nil, Issues{{
		Path:    "/" + root,
		Code:    CodeParseError,
		Message: fmt.Sprintf("root element %s is shared by %s; set xmlns or a message type", root, strings.Join(ids, ", ")),
		Params:  map[string]any{"candidates": ids},
	}}
}

// ---- XML ----

func (d *Document) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	d.Namespace = start.Name.Space
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if d.Root != "" {
				// a second message element is not allowed; skip it
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			d.Root = t.Name.Local
			mt, err := d.resolve(d.Namespace, d.Root)
			if err != nil {
				return err
			}
			if mt == nil {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			msg := mt.New()
			if err := dec.DecodeElement(msg, &t); err != nil {
				return err
			}
			d.Type, d.Message = mt, msg
		case xml.EndElement:
			return nil
		}
	}
}

func (d Document) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	if d.Type == nil || d.Message == nil {
		return fmt.Errorf("iso20022: cannot encode unknown document (root %q)", d.Root)
	}
	start = xml.StartElement{Name: xml.Name{Space: d.Type.Namespace(), Local: "Document"}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeElement(d.Message, xml.StartElement{Name: xml.Name{Local: d.Type.Root}}); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// ---- JSON ----

const xmlnsKey = "xmlns"

func (d Document) MarshalJSON() ([]byte, error) {
	if d.Type == nil || d.Message == nil {
		return nil, fmt.Errorf("iso20022: cannot encode unknown document (root %q)", d.Root)
	}
	drv := getJSONDriver()
	ns, err := drv.Marshal(d.Type.Namespace())
	if err != nil {
		return nil, err
	}
	root, err := drv.Marshal(d.Type.Root)
	if err != nil {
		return nil, err
	}
	body, err := drv.Marshal(d.Message)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString(`{"` + xmlnsKey + `":`)
	b.Write(ns)
	b.WriteByte(',')
	b.Write(root)
	b.WriteByte(':')
	b.Write(body)
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	drv := getJSONDriver()
	var raw map[string]rawJSON
	if err := drv.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw[xmlnsKey]; ok {
		if err := drv.Unmarshal(v, &d.Namespace); err != nil {
			return Issues{{Path: "/" + xmlnsKey, Code: CodeInvalidType, Message: "xmlns must be a string", Cause: err}}
		}
		delete(raw, xmlnsKey)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) != 1 {
		return Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("document must hold exactly one message element, found %d", len(keys)), Params: map[string]any{"keys": keys}}}
	}
	d.Root = keys[0]
	mt, err := d.resolve(d.Namespace, d.Root)
	if err != nil || mt == nil {
		return err
	}
	msg := mt.New()
	if err := drv.Unmarshal(raw[d.Root], msg); err != nil {
		return err
	}
	d.Type, d.Message = mt, msg
	return nil
}

// ---- YAML ----
//
// YAML shares the JSON field names: documents are bridged through the JSON
// form so struct tags stay xml+json only, and scalars keep their lexical text
// (decimal amounts never pass through float64).

func (d Document) MarshalYAML() (any, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return JSONToYAMLNode(data)
}

func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	data, err := YAMLNodeToJSON(n)
	if err != nil {
		return err
	}
	return d.UnmarshalJSON(data)
}

// JSONToYAMLNode converts JSON produced by a MarshalJSON method into a block
// YAML node, for types that bridge YAML through their JSON form.
func JSONToYAMLNode(data []byte) (*yaml.Node, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	plainStyle(&n)
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		return n.Content[0], nil
	}
	return &n, nil
}

// YAMLNodeToJSON is the reverse of JSONToYAMLNode. Duplicate mapping keys
// fail with duplicate_key. Aliases are expanded up to maxAliasExpansion times
// the size of the node tree; a larger expansion fails with truncated.
func YAMLNodeToJSON(n *yaml.Node) ([]byte, error) {
	var b bytes.Buffer
	w := yamlWalker{b: &b, budget: maxAliasExpansion * countNodes(n)}
	if err := w.write(n); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

const maxAliasExpansion = 100

// countNodes counts the nodes of the tree without following aliases.
func countNodes(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	c := 1
	for _, child := range n.Content {
		c += countNodes(child)
	}
	return c
}

// plainStyle drops the flow/quoted styles inherited from JSON input so the
// encoder emits block YAML.
func plainStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plainStyle(c)
	}
}

var jsonNumber = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)

type yamlWalker struct {
	b      *bytes.Buffer
	budget int
}

func (w *yamlWalker) write(n *yaml.Node) error {
	if w.budget--; w.budget < 0 {
		return Issues{{Path: "/", Code: CodeTruncated, Message: "yaml alias expansion too large", Params: map[string]any{"ratio": maxAliasExpansion}}}
	}
	b, drv := w.b, getJSONDriver()
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			b.WriteString("null")
			return nil
		}
		return w.write(n.Content[0])
	case yaml.AliasNode:
		return w.write(n.Alias)
	case yaml.MappingNode:
		b.WriteByte('{')
		seen := make(map[string]struct{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if _, dup := seen[key]; dup {
				return Issues{{Path: "/", Code: CodeDuplicateKey, Message: fmt.Sprintf("key %q duplicated (line %d)", key, n.Content[i].Line), Params: map[string]any{"key": key}}}
			}
			seen[key] = struct{}{}
			if i > 0 {
				b.WriteByte(',')
			}
			k, err := drv.Marshal(key)
			if err != nil {
				return err
			}
			b.Write(k)
			b.WriteByte(':')
			if err := w.write(n.Content[i+1]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case yaml.SequenceNode:
		b.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := w.write(c); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			b.WriteString("null")
			return nil
		case "!!bool":
			b.WriteString(strings.ToLower(n.Value))
			return nil
		case "!!int", "!!float":
			if jsonNumber.MatchString(n.Value) {
				b.WriteString(n.Value)
				return nil
			}
		}
		s, err := drv.Marshal(n.Value)
		if err != nil {
			return err
		}
		b.Write(s)
	default:
		return fmt.Errorf("iso20022: unsupported yaml node kind %d", n.Kind)
	}
	return nil
}
