package txn_test

import (
	"errors"
	"fmt"
	"vearn/internal/txn"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {
	var req txn.SigningRequest

	BeforeEach(func() {
		var err error
		req, err = txn.NewSigningRequest([]txn.Clause{{To: "0xde9c8d65c4f5b3a7cc4e5a9a0f62e1a1c8a4d50e"}}, testSigner, "")
		Expect(err).NotTo(HaveOccurred())
	})

	It("leaves earlier snapshots untouched", func() {
		built := txn.Built(req)
		submitted := built.Submit()
		pending := submitted.Accept(txn.Handle{TxID: testTxID})

		Expect(built.State).To(Equal(txn.StateBuilt))
		Expect(submitted.State).To(Equal(txn.StateSubmitted))
		Expect(submitted.Handle.TxID).To(BeEmpty())
		Expect(pending.State).To(Equal(txn.StatePending))
		Expect(pending.State.Terminal()).To(BeFalse())
	})

	DescribeTable("resolves the terminal state",
		func(receipt *txn.Receipt, err error, expected txn.State) {
			s := txn.Built(req).Submit().Accept(txn.Handle{TxID: testTxID}).Resolve(receipt, err)
			Expect(s.State).To(Equal(expected))
			Expect(s.State.Terminal()).To(BeTrue())
		},
		Entry("confirmed", &txn.Receipt{TxID: testTxID}, nil, txn.StateConfirmed),
		Entry("reverted", nil, &txn.RevertedError{TxID: testTxID, Receipt: &txn.Receipt{Reverted: true}}, txn.StateReverted),
		Entry("wrapped reverted", nil, fmt.Errorf("await: %w", &txn.RevertedError{TxID: testTxID}), txn.StateReverted),
		Entry("not found", nil, &txn.NotFoundError{TxID: testTxID, Attempts: 5}, txn.StateNotFound),
		Entry("transport failure", nil, errors.New("connection refused"), txn.StateFailed),
	)

	It("names every state", func() {
		Expect(txn.StateConfirmed.String()).To(Equal("confirmed"))
		Expect(txn.StateNotFound.String()).To(Equal("not_found"))
		Expect(txn.State(99).String()).To(Equal("unknown"))
	})

	It("maps lifecycle errors to user messages", func() {
		Expect(txn.UserMessage(nil)).To(BeEmpty())
		Expect(txn.UserMessage(fmt.Errorf("sign tx: %w", txn.ErrSignerDeclined))).To(Equal(txn.DeclinedMessage))
		Expect(txn.UserMessage(errors.New("boom"))).To(BeEmpty())
	})
})
