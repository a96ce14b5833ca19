package payload

import (
	"regexp"
	"vearn/internal/certificate"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
var walletIDs = []interface{}{"sync2", "veworld"}

type CertPayload struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type Certificate struct {
	Purpose   string      `json:"purpose"`
	Payload   CertPayload `json:"payload"`
	Domain    string      `json:"domain"`
	Timestamp int64       `json:"timestamp"`
	Signer    string      `json:"signer"`
	Signature string      `json:"signature"`
}

func (c Certificate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Purpose, validation.Required),
		validation.Field(&c.Domain, validation.Required),
		validation.Field(&c.Timestamp, validation.Required),
		validation.Field(&c.Signer, validation.Required, validation.Match(addressRegex)),
		validation.Field(&c.Signature, validation.Required),
	)
}

// AuthRequest carries a certificate the browser wallet already signed.
type AuthRequest struct {
	WalletID    string      `json:"walletId"`
	Certificate Certificate `json:"certificate"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.WalletID, validation.Required, validation.In(walletIDs...)),
		validation.Field(&a.Certificate),
	)
}

func (a AuthRequest) ToCertificate() certificate.Certificate {
	return certificate.Certificate{
		Purpose: a.Certificate.Purpose,
		Payload: certificate.Payload{
			Type:    a.Certificate.Payload.Type,
			Content: a.Certificate.Payload.Content,
		},
		Domain:    a.Certificate.Domain,
		Timestamp: a.Certificate.Timestamp,
		Signer:    a.Certificate.Signer,
		Signature: a.Certificate.Signature,
	}
}

// ConnectRequest asks the server side signer for the certificate.
type ConnectRequest struct {
	WalletID string `json:"walletId"`
	Signer   string `json:"signer"`
}

func (c ConnectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WalletID, validation.Required, validation.In(walletIDs...)),
		validation.Field(&c.Signer, validation.Match(addressRegex)),
	)
}
