package certificate_test

import (
	"crypto/ecdsa"
	"strings"
	"vearn/internal/certificate"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Certificate", func() {
	var (
		key  *ecdsa.PrivateKey
		cert certificate.Certificate
	)

	BeforeEach(func() {
		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		cert = certificate.NewIdentification("vearn.app", "", 1600000000)
	})

	Describe("Encode", func() {
		It("sorts keys, lowercases the signer and leaves out the signature", func() {
			cert.Signer = "0x970248543238481b2AC9144a99CF7F47e28A90e0"
			cert.Signature = "0xdeadbeef"
			cert.Payload.Content = "a < b & c"

			encoded, err := certificate.Encode(cert)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(encoded)).To(Equal(
				`{"domain":"vearn.app","payload":{"content":"a < b & c","type":"text"},"purpose":"identification",` +
					`"signer":"0x970248543238481b2ac9144a99cf7f47e28a90e0","timestamp":1600000000}`))
		})
	})

	Describe("Sign and Verify", func() {
		var signed certificate.Certificate

		BeforeEach(func() {
			var err error
			signed, err = certificate.Sign(cert, key)
			Expect(err).NotTo(HaveOccurred())
		})

		It("verifies its own signature", func() {
			Expect(signed.Signer).To(Equal(strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())))
			Expect(certificate.Verify(signed)).To(Succeed())
		})

		It("accepts a checksummed signer", func() {
			signed.Signer = crypto.PubkeyToAddress(key.PublicKey).Hex()
			Expect(certificate.Verify(signed)).To(Succeed())
		})

		It("detects a tampered payload", func() {
			signed.Domain = "evil.app"
			Expect(certificate.Verify(signed)).To(MatchError(certificate.ErrSignerMismatch))
		})

		It("detects a foreign signer", func() {
			signed.Signer = "0x970248543238481b2ac9144a99cf7f47e28a90e0"
			Expect(certificate.Verify(signed)).To(MatchError(certificate.ErrSignerMismatch))
		})

		It("rejects a malformed signature", func() {
			signed.Signature = "0x1234"
			Expect(certificate.Verify(signed)).To(MatchError(certificate.ErrInvalidSignature))
		})

		It("rejects an unsigned certificate", func() {
			Expect(certificate.Verify(cert)).To(MatchError(certificate.ErrMissingSignature))
		})
	})
})
