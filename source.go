package iso20022

import (
	"bytes"
	stdjson "encoding/json"
	"sync"

	gojson "github.com/goccy/go-json"
)

// rawJSON holds an undecoded JSON value. goccy/go-json aliases the standard
// library type, so both drivers accept it.
type rawJSON = gojson.RawMessage

// JSONDriver performs JSON encoding and decoding via a pluggable SPI. The
// default implementation is goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the active driver.
func CurrentJSONDriver() JSONDriver { return getJSONDriver() }

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// goJSONDriver wraps goccy/go-json.
type goJSONDriver struct{}

func (goJSONDriver) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// MarshalIndent encodes compactly and indents the result. go-json's indenting
// encoder does not terminate on deeply recursive pointer types such as
// jsonschema.Schema.
func (goJSONDriver) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := gojson.Indent(&out, b, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
func (goJSONDriver) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (goJSONDriver) Name() string                       { return "go-json" }

// StdJSONDriver returns a driver backed by encoding/json, for callers that
// need byte-for-byte standard library output.
func StdJSONDriver() JSONDriver { return stdJSONDriver{} }

type stdJSONDriver struct{}

func (stdJSONDriver) Marshal(v any) ([]byte, error) { return stdjson.Marshal(v) }
func (stdJSONDriver) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return stdjson.MarshalIndent(v, prefix, indent)
}
func (stdJSONDriver) Unmarshal(data []byte, v any) error { return stdjson.Unmarshal(data, v) }
func (stdJSONDriver) Name() string                       { return "encoding/json" }
