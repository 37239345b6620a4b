package jsonschema

// Draft is the dialect written into exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	SchemaURI   string             `json:"$schema,omitempty"`
	ID          string             `json:"$id,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Defs        map[string]*Schema `json:"$defs,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Default     any                `json:"default,omitempty"`

	// String
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty"`

	// Number
	Minimum          *Number `json:"minimum,omitempty"`
	Maximum          *Number `json:"maximum,omitempty"`
	ExclusiveMinimum *Number `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *Number `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *Number `json:"multipleOf,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	MinProperties        *int               `json:"minProperties,omitempty"`
	MaxProperties        *int               `json:"maxProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Int returns a pointer to n for the optional integer keywords.
func Int(n int) *int { return &n }

// Number is a decimal literal written to JSON without quotes, so bounds keep
// their exact lexical form.
type Number string

func (n Number) MarshalJSON() ([]byte, error) { return []byte(n), nil }

// Num returns a pointer to a Number for the optional numeric keywords.
func Num(s string) *Number { n := Number(s); return &n }
