package payload_test

import (
	"net/http/httptest"
	"strings"
	"vearn/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		body    string
		err     error
	)

	decode := func(object any) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		err = decoder.DecodeJSONPayload(req, object)
	}

	Describe("AuthRequest", func() {
		var req payload.AuthRequest

		BeforeEach(func() {
			req = payload.AuthRequest{}
			body = `{
				"walletId": "sync2",
				"certificate": {
					"purpose": "identification",
					"payload": {"type": "text", "content": "hi"},
					"domain": "vearn.app",
					"timestamp": 1700000000,
					"signer": "0x970248543238481B2AC9144A99CF7F47E28A90E0",
					"signature": "0x01"
				}
			}`
		})

		JustBeforeEach(func() {
			decode(&req)
		})

		It("decodes a signed certificate", func() {
			Expect(err).NotTo(HaveOccurred())
			cert := req.ToCertificate()
			Expect(cert.Purpose).To(Equal("identification"))
			Expect(cert.Payload.Type).To(Equal("text"))
			Expect(cert.Signer).To(Equal("0x970248543238481B2AC9144A99CF7F47E28A90E0"))
		})

		When("the wallet is unknown", func() {
			BeforeEach(func() {
				body = strings.Replace(body, "sync2", "metamask", 1)
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("walletId")))
			})
		})

		When("the signer is not an address", func() {
			BeforeEach(func() {
				body = strings.Replace(body, "0x970248543238481B2AC9144A99CF7F47E28A90E0", "alice", 1)
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("signer")))
			})
		})

		When("the body carries unknown fields", func() {
			BeforeEach(func() {
				body = `{"walletId":"sync2","password":"x"}`
			})

			It("is rejected", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("ConnectRequest", func() {
		It("accepts an empty signer hint", func() {
			body = `{"walletId":"veworld"}`
			var req payload.ConnectRequest
			decode(&req)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ReserveRequest", func() {
		It("requires an amount", func() {
			body = `{"amount":""}`
			var req payload.ReserveRequest
			decode(&req)
			Expect(err).To(MatchError(ContainSubstring("amount")))
		})
	})

	Describe("ConfigRequest", func() {
		It("requires both balances", func() {
			body = `{"triggerBalance":"10"}`
			var req payload.ConfigRequest
			decode(&req)
			Expect(err).To(MatchError(ContainSubstring("reserveBalance")))
		})
	})

	Describe("TrackRequest", func() {
		var req payload.TrackRequest

		JustBeforeEach(func() {
			req = payload.TrackRequest{}
			decode(&req)
		})

		When("the id is a 32 byte hash", func() {
			BeforeEach(func() {
				body = `{"txId":"0x` + strings.Repeat("ab", 32) + `"}`
			})

			It("passes", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the id is short", func() {
			BeforeEach(func() {
				body = `{"txId":"0xabc"}`
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("txId")))
			})
		})
	})
})
