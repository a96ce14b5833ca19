package thor_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"
	"vearn/internal/thor"
	"vearn/internal/txn"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	testTxID    = "0x5eec87fb2abcf21e14a93618dd9c613aa510ee84a2e3514caa3caab67e340223"
	testAccount = "0x970248543238481b2ac9144a99cf7f47e28a90e0"
	genesisID   = "0x000000000b2bce3c70bc649a02749e8687721b09ed2e15997f466536b20bb127"
)

var _ = Describe("Client", func() {
	var (
		mux    *http.ServeMux
		server *httptest.Server
		client *thor.Client
		ctx    context.Context

		bestNumber atomic.Uint64
		bestCalls  atomic.Int32
		lastBody   []byte
	)

	BeforeEach(func() {
		ctx = context.Background()
		bestNumber.Store(100)
		bestCalls.Store(0)
		lastBody = nil

		mux = http.NewServeMux()
		mux.HandleFunc("/blocks/best", func(w http.ResponseWriter, r *http.Request) {
			bestCalls.Add(1)
			json.NewEncoder(w).Encode(thor.Block{ID: "0x00000064aa", Number: bestNumber.Load()})
		})
		mux.HandleFunc("/blocks/0", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(thor.Block{ID: genesisID, Number: 0})
		})
		mux.HandleFunc("/transactions/"+testTxID+"/receipt", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{
				"gasUsed": 36582,
				"gasPayer": "`+testAccount+`",
				"paid": "0x1fbad5f2e25570000",
				"reward": "0x9823e60d4b7f8000",
				"reverted": true,
				"meta": {
					"blockID": "0x00000065bb",
					"blockNumber": 101,
					"blockTimestamp": 1600000000,
					"txID": "`+testTxID+`",
					"txOrigin": "`+testAccount+`"
				}
			}`)
		})
		mux.HandleFunc("/transactions/0xabsent/receipt", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "null\n")
		})
		mux.HandleFunc("/transactions/0xbroken/receipt", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad txid", http.StatusBadRequest)
		})
		mux.HandleFunc("/transactions/0xslow/receipt", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			io.WriteString(w, "null\n")
		})
		mux.HandleFunc("/accounts/"+testAccount, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"balance":"0xde0b6b3a7640000","energy":"0x1bc16d674ec80000","hasCode":false}`)
		})
		mux.HandleFunc("/accounts/*", func(w http.ResponseWriter, r *http.Request) {
			lastBody, _ = io.ReadAll(r.Body)
			io.WriteString(w, `[{"data":"0x01","reverted":false,"vmError":"","gasUsed":1234}]`)
		})
		mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
			lastBody, _ = io.ReadAll(r.Body)
			io.WriteString(w, `{"id":"`+testTxID+`"}`)
		})

		server = httptest.NewServer(mux)
		client = thor.NewClient(server.URL, 10*time.Millisecond, time.Second)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Receipt", func() {
		It("maps a packed receipt", func() {
			receipt, err := client.Receipt(ctx, testTxID)
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt).To(Equal(&txn.Receipt{
				TxID:           testTxID,
				Reverted:       true,
				BlockID:        "0x00000065bb",
				BlockNumber:    101,
				BlockTimestamp: 1600000000,
				GasUsed:        36582,
				GasPayer:       testAccount,
				Paid:           "36582000000000000000",
				Reward:         "10962858862725529600",
				Origin:         testAccount,
			}))
		})

		It("returns nil for a pending transaction", func() {
			receipt, err := client.Receipt(ctx, "0xabsent")
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt).To(BeNil())
		})

		It("returns an APIError for non-200 answers", func() {
			_, err := client.Receipt(ctx, "0xbroken")

			var apiErr *thor.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.Status).To(Equal(http.StatusBadRequest))
			Expect(apiErr.Body).To(ContainSubstring("bad txid"))
		})

		It("fetches several receipts at once", func() {
			receipts, err := client.Receipts(ctx, []string{testTxID, "0xabsent", "0xbroken"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("0xbroken"))
			Expect(receipts).To(HaveLen(1))
			Expect(receipts).To(HaveKey(testTxID))
		})
	})

	Describe("chain metadata", func() {
		It("derives the chain tag from the genesis id", func() {
			tag, err := client.ChainTag(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal(byte(0x27)))
		})

		It("reads account balances", func() {
			account, err := client.Account(ctx, testAccount)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Balance.String()).To(Equal("1000000000000000000"))
			Expect(account.Energy.String()).To(Equal("2000000000000000000"))
		})
	})

	Describe("Call", func() {
		It("posts the clauses and the caller", func() {
			results, err := client.Call(ctx, testAccount, []txn.Clause{{To: testAccount, Value: "0", Data: "0xabcd"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(Equal([]thor.CallResult{{Data: "0x01", GasUsed: 1234}}))
			Expect(lastBody).To(MatchJSON(`{"clauses":[{"to":"` + testAccount + `","value":"0","data":"0xabcd"}],"caller":"` + testAccount + `"}`))
		})
	})

	Describe("SendRawTransaction", func() {
		It("posts the hex encoded transaction", func() {
			id, err := client.SendRawTransaction(ctx, []byte{0xf8, 0x01})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(testTxID))
			Expect(lastBody).To(MatchJSON(`{"raw":"0xf801"}`))
		})
	})

	Describe("Ticker", func() {
		It("resolves only after the head moves", func() {
			ticker := client.Ticker()
			done := make(chan error, 1)
			go func() {
				done <- ticker.Next(ctx)
			}()

			Consistently(done, 50*time.Millisecond).ShouldNot(Receive())
			bestNumber.Store(101)
			Eventually(done).Should(Receive(BeNil()))
		})

		It("needs another block for the following tick", func() {
			ticker := client.Ticker()
			bestNumber.Store(100)
			go func() {
				defer GinkgoRecover()
				time.Sleep(30 * time.Millisecond)
				bestNumber.Store(101)
			}()
			Expect(ticker.Next(ctx)).To(Succeed())

			callsBefore := bestCalls.Load()
			timeout, cancel := context.WithTimeout(ctx, 60*time.Millisecond)
			defer cancel()
			Expect(ticker.Next(timeout)).To(MatchError(context.DeadlineExceeded))
			Expect(bestCalls.Load()).To(BeNumerically(">", callsBefore))
		})

		It("stops when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			Expect(client.Ticker().Next(cancelled)).To(MatchError(context.Canceled))
		})
	})

	Describe("request deadline", func() {
		It("reports the context deadline when the node is slower", func() {
			timeout, cancel := context.WithTimeout(ctx, 60*time.Millisecond)
			defer cancel()

			_, err := client.Receipt(timeout, "0xslow")
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})
})
