package iso20022

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NamespacePrefix is prepended to a message identifier to form its XML
// namespace.
const NamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// Message is a top-level message body (the element inside Document).
type Message interface {
	Validator
}

// MessageType describes one registered message definition.
type MessageType struct {
	ID   string // e.g. "pacs.008.001.08"
	Name string // e.g. "FIToFICustomerCreditTransferV08"
	Root string // element directly under Document, e.g. "FIToFICstmrCdtTrf"
	// New returns a zero message ready for decoding.
	New func() Message
	// Rules runs cross-field business rules after structural validation.
	// Optional.
	Rules func(ctx context.Context, m Message) error
}

// Namespace returns the XML namespace of the message type.
func (mt MessageType) Namespace() string { return NamespacePrefix + mt.ID }

// BusinessArea returns the four-letter business area ("pacs", "camt", ...).
func (mt MessageType) BusinessArea() string {
	area, _, _ := strings.Cut(mt.ID, ".")
	return area
}

var (
	registryMu sync.RWMutex
	byID       = map[string]MessageType{}
	byRoot     = map[string][]string{}
)

// Register adds a message type. It panics on an incomplete definition or a
// duplicate identifier; registration happens from package init.
func Register(mt MessageType) {
	if mt.ID == "" || mt.Root == "" || mt.New == nil {
		panic(fmt.Sprintf("iso20022: incomplete message type %+v", mt))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := byID[mt.ID]; dup {
		panic("iso20022: message type registered twice: " + mt.ID)
	}
	byID[mt.ID] = mt
	byRoot[mt.Root] = append(byRoot[mt.Root], mt.ID)
	sort.Strings(byRoot[mt.Root])
}

// LookupType finds a message type by identifier.
func LookupType(id string) (MessageType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	mt, ok := byID[id]
	return mt, ok
}

// LookupNamespace finds a message type by XML namespace.
func LookupNamespace(ns string) (MessageType, bool) {
	id, ok := strings.CutPrefix(ns, NamespacePrefix)
	if !ok {
		return MessageType{}, false
	}
	return LookupType(id)
}

// LookupRoot finds message types by root element. Several versions of the
// same message share a root, so more than one may be returned.
func LookupRoot(root string) []MessageType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := byRoot[root]
	out := make([]MessageType, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

// Types lists every registered message type ordered by identifier.
func Types() []MessageType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]MessageType, 0, len(byID))
	for _, mt := range byID {
		out = append(out, mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
