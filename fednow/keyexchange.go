package fednow

import (
	"encoding/base64"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow/participant"
)

var (
	max300AlphaNumericString = iso.NewTextType("Max300AlphaNumericString", iso.Pattern(`[A-Za-z0-9\-_]{1,300}`))
	max50AlphaNumericString  = iso.NewTextType("Max50AlphaNumericString", iso.Pattern(`[A-Za-z0-9\-_]{1,50}`))
	max300Text               = iso.NewTextType("Max300Text", iso.Length(1, 300))
	encodedPublicKey         = iso.NewTextType("EncodedPublicKey", iso.MinLength(1), iso.Lexical("base64", checkBase64))
)

func checkBase64(s string) error {
	_, err := base64.StdEncoding.DecodeString(s)
	return err
}

// Max300AlphaNumericString holds key identifiers.
type Max300AlphaNumericString string

func (v Max300AlphaNumericString) Validate(p iso.PathRef) error {
	return max300AlphaNumericString.Check(p, string(v))
}
func (Max300AlphaNumericString) SimpleType() iso.SimpleType { return max300AlphaNumericString }

type Max50AlphaNumericString string

func (v Max50AlphaNumericString) Validate(p iso.PathRef) error {
	return max50AlphaNumericString.Check(p, string(v))
}
func (Max50AlphaNumericString) SimpleType() iso.SimpleType { return max50AlphaNumericString }

type Max300Text string

func (v Max300Text) Validate(p iso.PathRef) error { return max300Text.Check(p, string(v)) }
func (Max300Text) SimpleType() iso.SimpleType     { return max300Text }

// EncodedPublicKey is a standard base64 public key.
type EncodedPublicKey string

func (v EncodedPublicKey) Validate(p iso.PathRef) error { return encodedPublicKey.Check(p, string(v)) }
func (EncodedPublicKey) SimpleType() iso.SimpleType     { return encodedPublicKey }

// Bytes decodes the key.
func (v EncodedPublicKey) Bytes() ([]byte, error) { return base64.StdEncoding.DecodeString(string(v)) }

// FedNowMessageSignatureKey is a public key used to sign messages.
type FedNowMessageSignatureKey struct {
	FedNowKeyID         Max300AlphaNumericString `xml:"FedNowKeyID" json:"FedNowKeyID"`
	Name                Max300Text               `xml:"Name" json:"Name"`
	EncodedPublicKey    EncodedPublicKey         `xml:"EncodedPublicKey" json:"EncodedPublicKey"`
	Encoding            Max50AlphaNumericString  `xml:"Encoding" json:"Encoding"`
	Algorithm           *Max50AlphaNumericString `xml:"Algorithm,omitempty" json:"Algorithm,omitempty"`
	KeyCreationDateTime *common.ISODateTime      `xml:"KeyCreationDateTime,omitempty" json:"KeyCreationDateTime,omitempty"`
}

func (k *FedNowMessageSignatureKey) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return k.FedNowKeyID.Validate(p.Field("FedNowKeyID")) },
		func() error { return k.Name.Validate(p.Field("Name")) },
		func() error { return k.EncodedPublicKey.Validate(p.Field("EncodedPublicKey")) },
		func() error { return k.Encoding.Validate(p.Field("Encoding")) },
		func() error { return iso.Optional(p.Field("Algorithm"), k.Algorithm) },
		func() error { return iso.Optional(p.Field("KeyCreationDateTime"), k.KeyCreationDateTime) },
	)
}

type FedNowMessageSignatureKeyStatus struct {
	KeyStatus      Max50AlphaNumericString `xml:"KeyStatus" json:"KeyStatus"`
	StatusDateTime common.ISODateTime      `xml:"StatusDateTime" json:"StatusDateTime"`
}

func (s *FedNowMessageSignatureKeyStatus) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return s.KeyStatus.Validate(p.Field("KeyStatus")) },
		func() error { return s.StatusDateTime.Validate(p.Field("StatusDateTime")) },
	)
}

type KeyAddition struct {
	Key *FedNowMessageSignatureKey `xml:"Key,omitempty" json:"Key,omitempty"`
}

func (a *KeyAddition) Validate(p iso.PathRef) error { return iso.Optional(p.Field("Key"), a.Key) }

type KeyRevocation struct {
	KeyRevocation           *Max50AlphaNumericString  `xml:"KeyRevocation,omitempty" json:"KeyRevocation,omitempty"`
	FedNowStatusDescription *Max300Text               `xml:"FedNowStatusDescription,omitempty" json:"FedNowStatusDescription,omitempty"`
	FedNowKeyID             *Max300AlphaNumericString `xml:"FedNowKeyID,omitempty" json:"FedNowKeyID,omitempty"`
}

func (r *KeyRevocation) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Optional(p.Field("KeyRevocation"), r.KeyRevocation) },
		func() error { return iso.Optional(p.Field("FedNowStatusDescription"), r.FedNowStatusDescription) },
		func() error { return iso.Optional(p.Field("FedNowKeyID"), r.FedNowKeyID) },
	)
}

// FedNowMessageSignatureKeyExchange adds or revokes one key.
type FedNowMessageSignatureKeyExchange struct {
	KeyAddition   *KeyAddition   `xml:"KeyAddition,omitempty" json:"KeyAddition,omitempty"`
	KeyRevocation *KeyRevocation `xml:"KeyRevocation,omitempty" json:"KeyRevocation,omitempty"`
}

func (x *FedNowMessageSignatureKeyExchange) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return iso.Choice(p, x.KeyAddition != nil, x.KeyRevocation != nil) },
		func() error { return iso.Optional(p.Field("KeyAddition"), x.KeyAddition) },
		func() error { return iso.Optional(p.Field("KeyRevocation"), x.KeyRevocation) },
	)
}

// GetAllFedNowActivePublicKeys and GetAllCustomerPublicKeys are empty
// requests; the element itself is the request.
type GetAllFedNowActivePublicKeys struct{}

func (*GetAllFedNowActivePublicKeys) Validate(iso.PathRef) error { return nil }

type GetAllCustomerPublicKeys struct{}

func (*GetAllCustomerPublicKeys) Validate(iso.PathRef) error { return nil }

// IncomingSignatureManagement is a participant's key management request.
type IncomingSignatureManagement struct {
	SenderId                          participant.RoutingNumberFRS1      `xml:"SenderId" json:"SenderId"`
	GetAllFedNowActivePublicKeys      *GetAllFedNowActivePublicKeys      `xml:"GetAllFedNowActivePublicKeys,omitempty" json:"GetAllFedNowActivePublicKeys,omitempty"`
	GetAllCustomerPublicKeys          *GetAllCustomerPublicKeys          `xml:"GetAllCustomerPublicKeys,omitempty" json:"GetAllCustomerPublicKeys,omitempty"`
	FedNowMessageSignatureKeyExchange *FedNowMessageSignatureKeyExchange `xml:"FedNowMessageSignatureKeyExchange,omitempty" json:"FedNowMessageSignatureKeyExchange,omitempty"`
}

func (m *IncomingSignatureManagement) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return m.SenderId.Validate(p.Field("SenderId")) },
		func() error {
			return iso.Choice(p, m.GetAllFedNowActivePublicKeys != nil, m.GetAllCustomerPublicKeys != nil, m.FedNowMessageSignatureKeyExchange != nil)
		},
		func() error { return iso.Optional(p.Field("GetAllFedNowActivePublicKeys"), m.GetAllFedNowActivePublicKeys) },
		func() error { return iso.Optional(p.Field("GetAllCustomerPublicKeys"), m.GetAllCustomerPublicKeys) },
		func() error {
			return iso.Optional(p.Field("FedNowMessageSignatureKeyExchange"), m.FedNowMessageSignatureKeyExchange)
		},
	)
}

type FedNowPublicKeyResponse struct {
	FedNowMessageSignatureKeyStatus FedNowMessageSignatureKeyStatus `xml:"FedNowMessageSignatureKeyStatus" json:"FedNowMessageSignatureKeyStatus"`
	FedNowMessageSignatureKey       FedNowMessageSignatureKey       `xml:"FedNowMessageSignatureKey" json:"FedNowMessageSignatureKey"`
}

func (r *FedNowPublicKeyResponse) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.FedNowMessageSignatureKeyStatus.Validate(p.Field("FedNowMessageSignatureKeyStatus")) },
		func() error { return r.FedNowMessageSignatureKey.Validate(p.Field("FedNowMessageSignatureKey")) },
	)
}

type FedNowPublicKeyResponses struct {
	PublicKeys []FedNowPublicKeyResponse `xml:"PublicKeys" json:"PublicKeys"`
}

func (r *FedNowPublicKeyResponses) Validate(p iso.PathRef) error {
	return iso.Each(p.Field("PublicKeys"), r.PublicKeys)
}

type FedNowCustomerMessageSignatureKeyOperationResponse struct {
	FedNowKeyID Max300AlphaNumericString `xml:"FedNowKeyID" json:"FedNowKeyID"`
	Status      Max50AlphaNumericString  `xml:"Status" json:"Status"`
	ErrorCode   *Max50AlphaNumericString `xml:"ErrorCode,omitempty" json:"ErrorCode,omitempty"`
}

func (r *FedNowCustomerMessageSignatureKeyOperationResponse) Validate(p iso.PathRef) error {
	return iso.All(
		func() error { return r.FedNowKeyID.Validate(p.Field("FedNowKeyID")) },
		func() error { return r.Status.Validate(p.Field("Status")) },
		func() error { return iso.Optional(p.Field("ErrorCode"), r.ErrorCode) },
	)
}

// OutgoingSignatureManagement is the service's answer to a key management
// request.
type OutgoingSignatureManagement struct {
	FedNowPublicKeyResponses                           *FedNowPublicKeyResponses                           `xml:"FedNowPublicKeyResponses,omitempty" json:"FedNowPublicKeyResponses,omitempty"`
	FedNowCustomerMessageSignatureKeyOperationResponse *FedNowCustomerMessageSignatureKeyOperationResponse `xml:"FedNowCustomerMessageSignatureKeyOperationResponse,omitempty" json:"FedNowCustomerMessageSignatureKeyOperationResponse,omitempty"`
}

func (m *OutgoingSignatureManagement) Validate(p iso.PathRef) error {
	return iso.All(
		func() error {
			return iso.Choice(p, m.FedNowPublicKeyResponses != nil, m.FedNowCustomerMessageSignatureKeyOperationResponse != nil)
		},
		func() error { return iso.Optional(p.Field("FedNowPublicKeyResponses"), m.FedNowPublicKeyResponses) },
		func() error {
			return iso.Optional(p.Field("FedNowCustomerMessageSignatureKeyOperationResponse"), m.FedNowCustomerMessageSignatureKeyOperationResponse)
		},
	)
}
