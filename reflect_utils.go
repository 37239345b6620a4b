package iso20022

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key used by rule paths and schema export.
// Priority: xml element/attribute name > json tag name > field name; "-"
// disables the field. Character data fields (",chardata") resolve to the json
// key, since XML gives them no name.
func ResolveStructKey(sf reflect.StructField) string {
	if xt := sf.Tag.Get("xml"); xt != "" {
		if xt == "-" {
			return "-"
		}
		name, _, _ := strings.Cut(xt, ",")
		if name != "" {
			// "ns name" form: keep the local name
			if i := strings.LastIndexByte(name, ' '); i >= 0 {
				name = name[i+1:]
			}
			return name
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
