package iso20022

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads one document without validating it. An unregistered namespace
// or root element decodes to a Document with a nil Type.
func Decode(ctx context.Context, r io.Reader, opts ...ParseOpt) (*Document, error) {
	opt := lastOpt(opts)
	data, err := ReadLimited(r, opt.MaxBytes)
	if err != nil {
		return nil, err
	}
	return decodeBytes(data, opt)
}

// Parse decodes a document, validates it and, when ParseOpt.Rules is set,
// runs the business rules of its message type. On failure the decoded
// document is still returned when decoding itself succeeded.
func Parse(ctx context.Context, r io.Reader, opts ...ParseOpt) (*Document, error) {
	opt := lastOpt(opts)
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	doc, err := Decode(ctx, r, opt)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return doc, err
	}
	if opt.Rules && doc.Type.Rules != nil {
		if err := doc.Type.Rules(ctx, doc.Message); err != nil {
			return doc, ToIssues(err)
		}
	}
	return doc, nil
}

// ParseBytes is Parse over an in-memory input.
func ParseBytes(ctx context.Context, data []byte, opts ...ParseOpt) (*Document, error) {
	return Parse(ctx, bytes.NewReader(data), opts...)
}

// Encode writes doc in the given format. XML output starts with the XML
// declaration; all formats are indented with two spaces.
func Encode(w io.Writer, doc *Document, f Format) error {
	if doc == nil || doc.Type == nil {
		return errors.New("iso20022: cannot encode unknown document")
	}
	switch f {
	case FormatXML, FormatAuto:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case FormatJSON:
		b, err := getJSONDriver().MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("iso20022: unsupported format %v", f)
}

// Convert parses a document from r and writes it to w in format to.
func Convert(ctx context.Context, r io.Reader, w io.Writer, to Format, opts ...ParseOpt) (*Document, error) {
	doc, err := Parse(ctx, r, opts...)
	if err != nil {
		return doc, err
	}
	return doc, Encode(w, doc, to)
}

// SniffFormat guesses the wire format from the first non-space byte.
func SniffFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return FormatYAML
	}
	switch trimmed[0] {
	case '<':
		return FormatXML
	case '{':
		return FormatJSON
	}
	return FormatYAML
}

// ---- helpers (options, size cap, per-format decode, error mapping) ----

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

// ReadLimited reads r to the end. With maxBytes > 0 a longer input fails with
// a truncated issue.
func ReadLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		return data, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	if int64(len(data)) > maxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return data, nil
}

func decodeBytes(data []byte, opt ParseOpt) (*Document, error) {
	f := opt.Format
	if f == FormatAuto {
		f = SniffFormat(data)
	}
	doc := &Document{hint: opt.MessageType}
	switch f {
	case FormatXML:
		if err := decodeXML(data, doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := CheckJSONDuplicates(data, opt); err != nil {
			return nil, err
		}
		if err := doc.UnmarshalJSON(data); err != nil {
			return nil, WireIssues(err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, WireIssues(err)
		}
	default:
		return nil, fmt.Errorf("iso20022: unsupported format %v", f)
	}
	doc.hint = ""
	return doc, nil
}

func decodeXML(data []byte, doc *Document) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return singleIssue(CodeParseError, "no root element")
		}
		if err != nil {
			return WireIssues(err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "Document" {
			return Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("root element is %s, want Document", start.Name.Local)}}
		}
		if err := dec.DecodeElement(doc, &start); err != nil {
			return WireIssues(err)
		}
		return nil
	}
}

// CheckJSONDuplicates applies opt.Strictness to duplicate keys in a JSON
// input: Error fails, Warn reports through opt.OnWarning.
func CheckJSONDuplicates(data []byte, opt ParseOpt) error {
	if opt.Strictness.OnDuplicateKey == Ignore {
		return nil
	}
	iss, err := DetectJSONDuplicateKeysBytes(data, opt.Strictness, -1)
	if err != nil {
		return ToIssues(err)
	}
	if len(iss) == 0 {
		return nil
	}
	if opt.Strictness.OnDuplicateKey == Error {
		return iss
	}
	if opt.OnWarning != nil {
		for _, it := range iss {
			opt.OnWarning(it)
		}
	}
	return nil
}

// WireIssues maps decoder errors onto Issues, keeping Issues raised by
// custom unmarshalers and adding line hints for XML syntax errors.
func WireIssues(err error) Issues {
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	iss := Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		iss.Hint = fmt.Sprintf("line %d", se.Line)
	}
	var te *yaml.TypeError
	if errors.As(err, &te) {
		iss.Code = CodeInvalidType
	}
	return Issues{iss}
}
