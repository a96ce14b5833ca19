package certificate

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
)

const (
	PurposeIdentification = "identification"
	PurposeAgreement      = "agreement"
	ContentTypeText       = "text"

	// IdentificationContent is the message wallets show when connecting.
	IdentificationContent = "Sign a certificate to prove your identity."
)

var ErrMissingSignature error = errors.New("certificate is not signed")
var ErrInvalidSignature error = errors.New("invalid certificate signature")
var ErrSignerMismatch error = errors.New("certificate signer does not match signature")

type Payload struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Certificate is a wallet signed statement, as produced by Sync2 and VeWorld.
type Certificate struct {
	Purpose   string  `json:"purpose"`
	Payload   Payload `json:"payload"`
	Domain    string  `json:"domain"`
	Timestamp int64   `json:"timestamp"`
	Signer    string  `json:"signer"`
	Signature string  `json:"signature,omitempty"`
}

// NewIdentification builds the unsigned certificate used to connect a wallet.
func NewIdentification(domain, signer string, timestamp int64) Certificate {
	return Certificate{
		Purpose: PurposeIdentification,
		Payload: Payload{
			Type:    ContentTypeText,
			Content: IdentificationContent,
		},
		Domain:    domain,
		Timestamp: timestamp,
		Signer:    signer,
	}
}

// Encode renders the signed part of cert as JSON with sorted keys and a
// lowercase signer. The signature is never part of the encoding.
func Encode(cert Certificate) ([]byte, error) {
	fields := map[string]interface{}{
		"purpose": cert.Purpose,
		"payload": map[string]interface{}{
			"type":    cert.Payload.Type,
			"content": cert.Payload.Content,
		},
		"domain":    cert.Domain,
		"timestamp": cert.Timestamp,
		"signer":    strings.ToLower(cert.Signer),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SigningHash is blake2b-256 over Encode(cert).
func SigningHash(cert Certificate) ([]byte, error) {
	encoded, err := Encode(cert)
	if err != nil {
		return nil, err
	}
	hash := blake2b.Sum256(encoded)
	return hash[:], nil
}

// Verify checks that the signature was made by cert.Signer.
func Verify(cert Certificate) error {
	if cert.Signature == "" {
		return ErrMissingSignature
	}

	sig, err := hexutil.Decode(cert.Signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return fmt.Errorf("%w: malformed signature", ErrInvalidSignature)
	}

	hash, err := SigningHash(cert)
	if err != nil {
		return err
	}

	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if !common.IsHexAddress(cert.Signer) || recovered != common.HexToAddress(cert.Signer) {
		return fmt.Errorf("%w: recovered %s", ErrSignerMismatch, strings.ToLower(recovered.Hex()))
	}
	return nil
}

// Sign fills in signer and signature using key.
func Sign(cert Certificate, key *ecdsa.PrivateKey) (Certificate, error) {
	cert.Signer = strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	cert.Signature = ""

	hash, err := SigningHash(cert)
	if err != nil {
		return Certificate{}, err
	}

	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return Certificate{}, fmt.Errorf("sign certificate: %w", err)
	}

	cert.Signature = hexutil.Encode(sig)
	return cert, nil
}
