package cli

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/fednow"
	"github.com/reoring/iso20022/fednow/participant"
)

// Error codes of command-level failures.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No message files found
	ErrCodeUnknownType = "E004" // Message type not registered
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBadArgs     = "E006" // Invalid flag value
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeJournal     = "E008" // Journal database error
	ErrCodeInvalid     = "E009" // Input message is invalid
)

// messageExts are the file extensions picked up when walking a directory.
var messageExts = map[string]bool{".xml": true, ".json": true, ".yaml": true, ".yml": true}

// collectFiles expands directories into the message files below them.
// Explicit file arguments are kept whatever their extension. Directory
// entries are sorted.
func collectFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && messageExts[strings.ToLower(filepath.Ext(path))] {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// loaded is one decoded input: a plain Document or a FedNow message.
type loaded struct {
	Path   string
	Doc    *iso.Document
	FedNow *fednow.Message
}

// MessageID returns the message identifier of the document (the enclosed
// document for FedNow).
func (l loaded) MessageID() string {
	switch {
	case l.Doc != nil:
		return l.Doc.ID()
	case l.FedNow != nil:
		if env, ok := l.FedNow.Envelope(); ok {
			return env.ID()
		}
		return l.FedNow.Root
	}
	return ""
}

// MsgID returns the business message identifier of a FedNow envelope.
func (l loaded) MsgID() string {
	if l.FedNow == nil {
		return ""
	}
	if env, ok := l.FedNow.Envelope(); ok {
		return string(env.AppHdr.BizMsgIdr)
	}
	return ""
}

func (l loaded) encode(w io.Writer, f iso.Format) error {
	if l.FedNow != nil {
		return fednow.Encode(w, l.FedNow, f)
	}
	return iso.Encode(w, l.Doc, f)
}

// readMessage parses the file at path. Inputs whose root is FedNowIncoming
// or FedNowOutgoing go through the fednow package, everything else is a
// Document. A decoded message is returned together with validation errors.
func readMessage(ctx context.Context, path string, opt iso.ParseOpt) (loaded, error) {
	l := loaded{Path: path}
	f, err := os.Open(path)
	if err != nil {
		return l, err
	}
	defer f.Close()
	data, err := iso.ReadLimited(f, opt.MaxBytes)
	if err != nil {
		return l, err
	}
	if opt.Format == iso.FormatAuto {
		opt.Format = formatOf(path, data)
	}
	switch rootName(data, opt.Format) {
	case fednow.RootIncoming, fednow.RootOutgoing:
		l.FedNow, err = fednow.Parse(ctx, bytes.NewReader(data), opt)
	default:
		l.Doc, err = iso.ParseBytes(ctx, data, opt)
	}
	return l, err
}

// formatOf picks the format from the file extension, sniffing the content
// for anything else.
func formatOf(path string, data []byte) iso.Format {
	if f, ok := iso.ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); ok && f != iso.FormatAuto {
		return f
	}
	return iso.SniffFormat(data)
}

// rootName returns the outermost element name: the XML root element, or the
// first key other than xmlns of a JSON or YAML mapping. It returns "" when
// the input cannot be read that far; the real decoder reports the error.
func rootName(data []byte, f iso.Format) string {
	if f == iso.FormatXML {
		dec := xml.NewDecoder(bytes.NewReader(data))
		for {
			tok, err := dec.Token()
			if err != nil {
				return ""
			}
			if start, ok := tok.(xml.StartElement); ok {
				return start.Name.Local
			}
		}
	}
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil || len(n.Content) == 0 {
		return ""
	}
	m := n.Content[0]
	if m.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if k := m.Content[i].Value; k != "xmlns" {
			return k
		}
	}
	return ""
}

// parseOpt builds the parse options of a command from the loaded settings
// and its flags.
func parseOpt(opts *RootOptions, rules bool, warn func(iso.Issue)) iso.ParseOpt {
	opt := iso.ParseOpt{
		MaxBytes:  opts.Config.MaxBytes,
		Rules:     rules || opts.Config.Rules,
		OnWarning: warn,
	}
	opt.Strictness.OnDuplicateKey = iso.Warn
	if opts.Config.StrictJSON {
		opt.Strictness.OnDuplicateKey = iso.Error
	}
	return opt
}

func describePath(l loaded) string {
	if id := l.MessageID(); id != "" {
		return fmt.Sprintf("%s (%s)", l.Path, id)
	}
	return l.Path
}

// loadParticipants reads a FedNow participant file in XML, JSON or YAML and
// validates it.
func loadParticipants(path string) (*participant.FedNowParticipantFile1, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file participant.FedNowParticipantFile1
	switch formatOf(path, data) {
	case iso.FormatXML:
		err = xml.Unmarshal(data, &file)
	case iso.FormatYAML:
		var n yaml.Node
		if err = yaml.Unmarshal(data, &n); err != nil {
			break
		}
		if data, err = iso.YAMLNodeToJSON(&n); err != nil {
			break
		}
		fallthrough
	default:
		err = iso.CurrentJSONDriver().Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("participants %s: %w", path, err)
	}
	if err := iso.Validate(&file); err != nil {
		return nil, fmt.Errorf("participants %s: %w", path, err)
	}
	return &file, nil
}
