// Package iso20022 provides:
//
// - Go types for ISO 20022 messages that carry XML and JSON field tags
// - Recursive validation that returns the first violation as Issues (JSON Pointer, code, message)
// - A registry of message types keyed by identifier, namespace and root element
// - Document decoding and encoding across XML, JSON and YAML with duplicate-key and size enforcement
//
// Design policy:
// - Keep the shared model (facets, Decimal, Issues, Document) in the root package.
// - Place message definitions under <area>/<id> packages (pacs/pacs00800108) and shared components under common/.
// - Cross-field business rules live in rules/ and are opt-in.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	import (
//		iso "github.com/reoring/iso20022"
//		_ "github.com/reoring/iso20022/pacs/pacs00800108"
//	)
//
//	doc, err := iso.Parse(ctx, r, iso.ParseOpt{Rules: true})
//	if iss, ok := iso.AsIssues(err); ok {
//		first, _ := iss.First() // e.g. too_long at /FIToFICstmrCdtTrf/GrpHdr/MsgId
//	}
//	err = iso.Encode(w, doc, iso.FormatJSON)
package iso20022
