package txn_test

import (
	"math/big"
	"vearn/internal/txn"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SigningRequest", func() {
	var (
		clauses []txn.Clause
		signer  string
		comment string

		req txn.SigningRequest
		err error
	)

	BeforeEach(func() {
		clauses = []txn.Clause{
			{To: "0x0000000000000000000000000000456E65726779", Value: "", Data: "0x095EA7B3"},
			{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e", Value: "10", Data: ""},
		}
		signer = "0x970248543238481b2AC9144a99CF7F47e28A90e0"
		comment = "Store Reserve Balance into the Vearn contract. "
	})

	JustBeforeEach(func() {
		req, err = txn.NewSigningRequest(clauses, signer, comment)
	})

	When("the input is valid", func() {
		It("keeps clause order and normalizes clauses", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Clauses()).To(Equal([]txn.Clause{
				{To: "0x0000000000000000000000000000456e65726779", Value: "0", Data: "0x095ea7b3"},
				{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e", Value: "10", Data: "0x"},
			}))
			Expect(req.Signer()).To(Equal("0x970248543238481b2ac9144a99cf7f47e28a90e0"))
			Expect(req.Comment()).To(Equal(comment))
		})

		It("does not share clause storage with callers", func() {
			clauses[0].To = "0x0000000000000000000000000000000000000000"
			got := req.Clauses()
			got[1].Value = "999"

			Expect(req.Clauses()[0].To).To(Equal("0x0000000000000000000000000000456e65726779"))
			Expect(req.Clauses()[1].Value).To(Equal("10"))
		})
	})

	When("no comment is given", func() {
		BeforeEach(func() {
			comment = ""
		})

		It("uses the default comment", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Comment()).To(Equal(txn.DefaultComment))
		})
	})

	When("there are no clauses", func() {
		BeforeEach(func() {
			clauses = nil
		})

		It("fails", func() {
			Expect(err).To(MatchError(txn.ErrNoClauses))
		})
	})

	When("the signer is not an address", func() {
		BeforeEach(func() {
			signer = "vearn"
		})

		It("fails", func() {
			Expect(err).To(MatchError(txn.ErrInvalidSigner))
		})
	})

	When("a clause is malformed", func() {
		DescribeTable("rejects it",
			func(c txn.Clause) {
				_, err := txn.NewSigningRequest([]txn.Clause{c}, signer, comment)
				Expect(err).To(MatchError(txn.ErrInvalidClause))
			},
			Entry("bad address", txn.Clause{To: "0x1234"}),
			Entry("negative value", txn.Clause{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e", Value: "-1"}),
			Entry("hex value", txn.Clause{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e", Value: "0x10"}),
			Entry("odd data", txn.Clause{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e", Data: "0x123"}),
			Entry("unprefixed data", txn.Clause{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e", Data: "abcd"}),
		)
	})

	Describe("NewClause", func() {
		It("renders canonical strings", func() {
			c := txn.NewClause(common.HexToAddress("0x0000000000000000000000000000456E65726779"), big.NewInt(5), []byte{0xab, 0xcd})
			Expect(c).To(Equal(txn.Clause{
				To:    "0x0000000000000000000000000000456e65726779",
				Value: "5",
				Data:  "0xabcd",
			}))
		})

		It("treats a nil value as zero", func() {
			c := txn.NewClause(common.Address{}, nil, nil)
			Expect(c.Value).To(Equal("0"))
			Expect(c.Data).To(Equal("0x"))
		})
	})
})
