package iso20022

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"

	js "github.com/reoring/iso20022/jsonschema"
)

var (
	simpleIface = reflect.TypeOf((*Simple)(nil)).Elem()
	decimalType = reflect.TypeOf(Decimal{})
	xmlNameType = reflect.TypeOf(xml.Name{})
)

// JSONSchema exports the JSON form of v (a message, component or simple
// type) as JSON Schema. Named types become $defs entries.
func JSONSchema(v any) (*js.Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("iso20022: nil value")
	}
	b := &schemaBuilder{defs: map[string]*js.Schema{}}
	s, err := b.typeSchema(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	out := *s
	if out.Ref != "" {
		name := strings.TrimPrefix(out.Ref, "#/$defs/")
		out = *b.defs[name]
		delete(b.defs, name)
	}
	out.SchemaURI = js.Draft
	if len(b.defs) > 0 {
		out.Defs = b.defs
	}
	return &out, nil
}

// DocumentSchema exports the JSON document shape of a registered message
// type: {"xmlns": "<namespace>", "<Root>": {...}}.
func DocumentSchema(mt MessageType) (*js.Schema, error) {
	b := &schemaBuilder{defs: map[string]*js.Schema{}}
	body, err := b.typeSchema(reflect.TypeOf(mt.New()))
	if err != nil {
		return nil, err
	}
	return &js.Schema{
		SchemaURI: js.Draft,
		ID:        mt.Namespace(),
		Title:     mt.Name,
		Type:      "object",
		Properties: map[string]*js.Schema{
			xmlnsKey: {Type: "string", Enum: []string{mt.Namespace()}},
			mt.Root:  body,
		},
		Required:             []string{mt.Root},
		AdditionalProperties: false,
		Defs:                 b.defs,
	}, nil
}

type schemaBuilder struct {
	defs map[string]*js.Schema
}

func ref(name string) *js.Schema { return &js.Schema{Ref: "#/$defs/" + name} }

func (b *schemaBuilder) simple(st SimpleType) *js.Schema {
	if _, ok := b.defs[st.Name()]; !ok {
		b.defs[st.Name()] = st.Describe()
	}
	return ref(st.Name())
}

func (b *schemaBuilder) typeSchema(t reflect.Type) (*js.Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(simpleIface) {
		return b.simple(reflect.New(t).Interface().(Simple).SimpleType()), nil
	}
	if t == decimalType {
		return &js.Schema{Type: "number"}, nil
	}
	switch t.Kind() {
	case reflect.Slice:
		items, err := b.typeSchema(t.Elem())
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	case reflect.String:
		return &js.Schema{Type: "string"}, nil
	case reflect.Bool:
		return &js.Schema{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &js.Schema{Type: "integer"}, nil
	case reflect.Struct:
		name := t.Name()
		if name == "" {
			return b.object(t)
		}
		if _, ok := b.defs[name]; ok {
			return ref(name), nil
		}
		// placeholder first so recursive types terminate
		slot := &js.Schema{}
		b.defs[name] = slot
		obj, err := b.object(t)
		if err != nil {
			return nil, err
		}
		*slot = *obj
		slot.Title = name
		return ref(name), nil
	}
	return nil, fmt.Errorf("iso20022: cannot describe %s", t)
}

func (b *schemaBuilder) object(t reflect.Type) (*js.Schema, error) {
	s := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}, AdditionalProperties: false}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type == xmlNameType {
			continue
		}
		key, omitempty := jsonKey(sf)
		if key == "-" {
			continue
		}
		fs, err := b.typeSchema(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		required := sf.Type.Kind() != reflect.Pointer && !omitempty
		if sf.Type.Kind() == reflect.Slice && required {
			fs.MinItems = js.Int(1)
		}
		s.Properties[key] = fs
		if required {
			s.Required = append(s.Required, key)
		}
	}
	return s, nil
}

func jsonKey(sf reflect.StructField) (string, bool) {
	jt := sf.Tag.Get("json")
	if jt == "" {
		return ResolveStructKey(sf), false
	}
	name, opts, _ := strings.Cut(jt, ",")
	if name == "" {
		name = sf.Name
	}
	return name, strings.Contains(opts, "omitempty")
}
