// Package common holds the simple types and message components shared by
// several ISO 20022 message definitions: restricted text, identifiers, codes,
// amounts, and the party, agent and account building blocks.
//
// Simple types are named Go types over string or iso20022.Decimal. Each one
// validates against a package-level iso20022.TextType or DecimalType, so the
// facets are compiled once and exported schemas carry the same constraints.
// Components are structs whose Validate walks fields in declaration order.
package common
