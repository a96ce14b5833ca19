package core_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"time"
	"vearn/internal/certificate"
	"vearn/internal/contracts"
	"vearn/internal/core"
	"vearn/internal/core/fake"
	"vearn/internal/repository"
	"vearn/internal/thor"
	"vearn/internal/txn"
	"vearn/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	traderAddress = "0x3147e73faddf17c186bde71e8b4c19a462aa85c7"
	testAccount   = "0x970248543238481b2ac9144a99cf7f47e28a90e0"
	testTxID      = "0x5eec87fb2abcf21e14a93618dd9c613aa510ee84a2e3514caa3caab67e340223"
	testDomain    = "vearn.app"
)

func output(values ...*big.Int) string {
	out := "0x"
	for _, v := range values {
		out += common.Bytes2Hex(common.LeftPadBytes(v.Bytes(), 32))
	}
	return out
}

func selector(signature string) string {
	return "0x" + common.Bytes2Hex(crypto.Keccak256([]byte(signature))[:4])
}

var _ = Describe("Vearn", func() {
	var (
		fakeRepo    *fake.Repository
		fakeJWT     *fake.JWTIssuer
		fakeChain   *fake.ChainService
		fakeTxs     *fake.TxManager
		fakeSigner  *fake.CertSigner
		fakeMetrics *fake.Metrics
		vearn       *core.Vearn
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeChain = new(fake.ChainService)
		fakeTxs = new(fake.TxManager)
		fakeSigner = new(fake.CertSigner)
		fakeMetrics = new(fake.Metrics)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		trader, err := contracts.NewTrader(traderAddress)
		Expect(err).NotTo(HaveOccurred())
		energy, err := contracts.NewEnergy(contracts.EnergyAddress)
		Expect(err).NotTo(HaveOccurred())
		params, err := contracts.NewParams(contracts.ParamsAddress)
		Expect(err).NotTo(HaveOccurred())

		vearn = core.NewVearn(
			zap.NewNop().Sugar(),
			fakeRepo,
			fakeJWT,
			fakeChain,
			fakeTxs,
			fakeSigner,
			fakeMetrics,
			trader,
			energy,
			params,
			core.Options{VTHODecimals: 2, CertDomain: testDomain},
		)
	})

	Describe("Connect", func() {
		var (
			key     *ecdsa.PrivateKey
			cert    certificate.Certificate
			session core.Session
			err     error
		)

		BeforeEach(func() {
			key, err = crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())

			cert, err = certificate.Sign(certificate.NewIdentification(testDomain, "", time.Now().Unix()), key)
			Expect(err).NotTo(HaveOccurred())

			fakeJWT.IssueReturns("token", nil)
		})

		JustBeforeEach(func() {
			session, err = vearn.Connect(ctx, cert, "sync2")
		})

		When("the certificate is valid", func() {
			It("stores the account and issues a token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("token"))
				Expect(session.Account).To(Equal(cert.Signer))

				Expect(fakeRepo.SaveAccountCallCount()).To(Equal(1))
				_, account := fakeRepo.SaveAccountArgsForCall(0)
				Expect(account.Address).To(Equal(cert.Signer))
				Expect(account.WalletID).To(Equal("sync2"))
				Expect(account.CertTimestamp).To(Equal(cert.Timestamp))

				info := fakeJWT.IssueArgsForCall(0)
				Expect(info.Subject).To(Equal(cert.Signer))
				Expect(info.WalletID).To(Equal("sync2"))
				Expect(info.Expiration).To(Equal(24 * time.Hour))
			})
		})

		When("the signature was tampered with", func() {
			BeforeEach(func() {
				cert.Payload.Content = "Something else"
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(core.ErrInvalidCertificate))
				Expect(fakeRepo.SaveAccountCallCount()).To(BeZero())
				Expect(fakeJWT.IssueCallCount()).To(BeZero())
			})
		})

		When("the certificate is for another purpose", func() {
			BeforeEach(func() {
				cert.Purpose = certificate.PurposeAgreement
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(core.ErrInvalidCertificate))
			})
		})

		When("the certificate is for another domain", func() {
			BeforeEach(func() {
				cert, err = certificate.Sign(certificate.NewIdentification("evil.example", "", time.Now().Unix()), key)
				Expect(err).NotTo(HaveOccurred())
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(ContainSubstring("evil.example")))
			})
		})

		When("the certificate is stale", func() {
			BeforeEach(func() {
				cert, err = certificate.Sign(certificate.NewIdentification(testDomain, "", time.Now().Add(-time.Hour).Unix()), key)
				Expect(err).NotTo(HaveOccurred())
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(core.ErrInvalidCertificate))
			})
		})

		When("the account cannot be stored", func() {
			BeforeEach(func() {
				fakeRepo.SaveAccountReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeJWT.IssueCallCount()).To(BeZero())
			})
		})
	})

	Describe("ConnectWithSigner", func() {
		It("requests an identification certificate from the signer", func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())

			fakeSigner.SignCertCalls(func(_ context.Context, c certificate.Certificate) (certificate.Certificate, error) {
				c.Timestamp = time.Now().Unix()
				return certificate.Sign(c, key)
			})
			fakeJWT.IssueReturns("token", nil)

			session, err := vearn.ConnectWithSigner(ctx, "veworld", testAccount)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Account).To(Equal(strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())))

			_, unsigned := fakeSigner.SignCertArgsForCall(0)
			Expect(unsigned.Purpose).To(Equal(certificate.PurposeIdentification))
			Expect(unsigned.Payload.Content).To(Equal(certificate.IdentificationContent))
			Expect(unsigned.Domain).To(Equal(testDomain))
			Expect(unsigned.Signer).To(Equal(testAccount))
		})

		It("propagates a declined request", func() {
			fakeSigner.SignCertReturns(certificate.Certificate{}, txn.ErrSignerDeclined)

			_, err := vearn.ConnectWithSigner(ctx, "sync2", "")
			Expect(err).To(MatchError(txn.ErrSignerDeclined))
		})
	})

	Describe("Authorize", func() {
		It("requires a token", func() {
			_, err := vearn.Authorize(ctx, "")
			Expect(err).To(MatchError(core.ErrWalletNotConnected))
		})

		It("rejects invalid tokens", func() {
			fakeJWT.SubjectReturns("", fakeErr)
			_, err := vearn.Authorize(ctx, "token")
			Expect(err).To(MatchError(core.ErrWalletNotConnected))
		})

		It("rejects unknown accounts", func() {
			fakeJWT.SubjectReturns(testAccount, nil)
			fakeRepo.GetAccountReturns(repository.Account{}, repository.ErrAccountNotFound)
			_, err := vearn.Authorize(ctx, "token")
			Expect(err).To(MatchError(core.ErrWalletNotConnected))
		})

		It("returns the account", func() {
			fakeJWT.SubjectReturns(testAccount, nil)
			account, err := vearn.Authorize(ctx, "token")
			Expect(err).NotTo(HaveOccurred())
			Expect(account).To(Equal(testAccount))
		})
	})

	Describe("FetchBalance", func() {
		It("formats both balances and reads the base gas price", func() {
			fakeChain.AccountReturns(&thor.Account{
				Balance: units.MustExpand("1.5", units.Ether),
				Energy:  units.MustExpand("20", units.Ether),
			}, nil)
			fakeChain.CallReturns([]thor.CallResult{{Data: output(big.NewInt(1e15))}}, nil)

			balance, err := vearn.FetchBalance(ctx, testAccount)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(core.Balance{
				Account:      testAccount,
				VET:          "1.5",
				VTHO:         "20.0",
				BaseGasPrice: "1000000000000000",
			}))

			_, caller, clauses := fakeChain.CallArgsForCall(0)
			Expect(caller).To(BeEmpty())
			Expect(clauses).To(HaveLen(1))
			Expect(clauses[0].To).To(Equal(strings.ToLower(contracts.ParamsAddress)))
		})

		It("returns node errors", func() {
			fakeChain.AccountReturns(nil, fakeErr)
			_, err := vearn.FetchBalance(ctx, testAccount)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("FetchConfig", func() {
		It("truncates the balances to the display places", func() {
			fakeChain.CallReturns([]thor.CallResult{
				{Data: output(units.MustExpand("5.129", units.Ether), units.MustExpand("1", units.Ether))},
				{Data: output(contracts.MaxUint256())},
			}, nil)

			config, err := vearn.FetchConfig(ctx, testAccount)
			Expect(err).NotTo(HaveOccurred())
			Expect(config).To(Equal(core.TraderConfig{
				Account:        testAccount,
				TriggerBalance: "5.12",
				ReserveBalance: "1",
				Registered:     true,
			}))
		})

		It("fails when a read reverts", func() {
			fakeChain.CallReturns([]thor.CallResult{{Reverted: true, VMError: "bad"}, {}}, nil)
			_, err := vearn.FetchConfig(ctx, testAccount)
			Expect(err).To(MatchError(core.ErrCallReverted))
		})

		It("rejects a malformed account", func() {
			_, err := vearn.FetchConfig(ctx, "0x12")
			Expect(err).To(MatchError(core.ErrInvalidAccount))
		})
	})

	Describe("SaveReserveBalance", func() {
		var (
			amount    string
			allowance *big.Int
			result    core.TxResult
			err       error
		)

		BeforeEach(func() {
			amount = "50"
			allowance = big.NewInt(0)
			fakeTxs.ExecuteReturns(txn.Status{
				State:   txn.StateConfirmed,
				Handle:  txn.Handle{TxID: testTxID, Signer: testAccount},
				Receipt: &txn.Receipt{TxID: testTxID, BlockNumber: 12, GasUsed: 50000},
			}, nil)
		})

		JustBeforeEach(func() {
			fakeChain.CallReturns([]thor.CallResult{{Data: output(allowance)}}, nil)
			result, err = vearn.SaveReserveBalance(ctx, testAccount, amount)
		})

		When("the account never approved the trader", func() {
			It("registers with an unlimited approval after the save clause", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(core.TxResult{TxID: testTxID, State: "confirmed", BlockNumber: 12, GasUsed: 50000}))

				Expect(fakeTxs.ExecuteCallCount()).To(Equal(1))
				_, clauses, signer, comment, attempts, observe := fakeTxs.ExecuteArgsForCall(0)
				Expect(clauses).To(HaveLen(2))
				Expect(clauses[0].To).To(Equal(traderAddress))
				Expect(clauses[0].Data).To(HavePrefix(selector("saveReserveBalance(uint256)")))
				Expect(clauses[0].Data).To(HaveSuffix("000000000000000000000000000000000000000000000002b5e3af16b1880000"))
				Expect(clauses[1].To).To(Equal(strings.ToLower(contracts.EnergyAddress)))
				Expect(clauses[1].Data).To(HavePrefix(selector("approve(address,uint256)")))
				Expect(clauses[1].Data).To(HaveSuffix(strings.Repeat("f", 64)))
				Expect(signer).To(Equal(testAccount))
				Expect(comment).To(Equal(contracts.RegisterComment()))
				Expect(attempts).To(Equal(txn.DefaultMaxAttempts))
				Expect(observe).NotTo(BeNil())
			})
		})

		When("the trader is already approved", func() {
			BeforeEach(func() {
				allowance = contracts.MaxUint256()
			})

			It("only updates the reserve balance", func() {
				_, clauses, _, comment, _, _ := fakeTxs.ExecuteArgsForCall(0)
				Expect(clauses).To(HaveLen(1))
				Expect(comment).To(Equal(contracts.SaveReserveComment))
			})
		})

		When("the amount is malformed", func() {
			BeforeEach(func() {
				amount = "1.2.3"
			})

			It("fails before touching the chain", func() {
				Expect(err).To(MatchError(units.ErrFormat))
				Expect(fakeChain.CallCallCount()).To(BeZero())
				Expect(fakeTxs.ExecuteCallCount()).To(BeZero())
			})
		})

		When("the transaction is reverted", func() {
			BeforeEach(func() {
				receipt := &txn.Receipt{TxID: testTxID, Reverted: true}
				execErr := &txn.RevertedError{TxID: testTxID, Receipt: receipt}
				fakeTxs.ExecuteReturns(txn.Status{
					State:   txn.StateReverted,
					Handle:  txn.Handle{TxID: testTxID},
					Receipt: receipt,
					Err:     execErr,
				}, execErr)
			})

			It("reports the user message", func() {
				Expect(err).To(MatchError(txn.ErrReverted))
				Expect(result.State).To(Equal("reverted"))
				Expect(result.Reverted).To(BeTrue())
				Expect(result.Message).To(Equal(txn.RevertedMessage))
			})
		})

		When("the lifecycle is observed", func() {
			BeforeEach(func() {
				fakeTxs.ExecuteCalls(func(_ context.Context, clauses []txn.Clause, signer, comment string, _ int, observe txn.Observer) (txn.Status, error) {
					req, err := txn.NewSigningRequest(clauses, signer, comment)
					Expect(err).NotTo(HaveOccurred())

					s := txn.Built(req)
					observe(s)
					s = s.Submit()
					observe(s)
					s = s.Accept(txn.Handle{TxID: testTxID, Signer: signer})
					observe(s)
					s = s.Resolve(&txn.Receipt{TxID: testTxID, BlockNumber: 12}, nil)
					observe(s)
					return s, nil
				})
			})

			It("persists every state with a transaction id and counts the outcome", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(2))
				_, pending := fakeRepo.SaveTransactionArgsForCall(0)
				Expect(pending.State).To(Equal("pending"))
				Expect(pending.Account).To(Equal(testAccount))
				Expect(pending.Comment).To(Equal(contracts.RegisterComment()))
				_, confirmed := fakeRepo.SaveTransactionArgsForCall(1)
				Expect(confirmed.State).To(Equal("confirmed"))
				Expect(confirmed.BlockNumber).To(BeEquivalentTo(12))

				Expect(fakeMetrics.ObserveTransactionCallCount()).To(Equal(1))
				Expect(fakeMetrics.ObserveTransactionArgsForCall(0)).To(Equal("confirmed"))
				Expect(fakeMetrics.ObserveConfirmationCallCount()).To(Equal(1))
			})
		})
	})

	Describe("SaveConfig", func() {
		It("signs a single saveConfig clause", func() {
			fakeTxs.ExecuteReturns(txn.Status{State: txn.StateConfirmed, Receipt: &txn.Receipt{}}, nil)

			_, err := vearn.SaveConfig(ctx, testAccount, "100", "10")
			Expect(err).NotTo(HaveOccurred())

			_, clauses, _, comment, _, _ := fakeTxs.ExecuteArgsForCall(0)
			Expect(clauses).To(HaveLen(1))
			Expect(clauses[0].Data).To(HavePrefix(selector("saveConfig(uint256,uint256)")))
			Expect(comment).To(Equal(contracts.SaveConfigComment))
		})

		It("names the malformed balance", func() {
			_, err := vearn.SaveConfig(ctx, testAccount, "1", "x")
			Expect(err).To(MatchError(ContainSubstring("reserve balance")))
			Expect(err).To(MatchError(units.ErrFormat))
		})
	})

	Describe("TrackTransaction", func() {
		It("records the pending and the final state", func() {
			fakeTxs.AwaitReceiptReturns(&txn.Receipt{TxID: testTxID, BlockNumber: 3}, nil)

			result, err := vearn.TrackTransaction(ctx, testAccount, testTxID, "Browser tx")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal("confirmed"))

			_, handle, _ := fakeTxs.AwaitReceiptArgsForCall(0)
			Expect(handle.TxID).To(Equal(testTxID))

			Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(2))
			_, first := fakeRepo.SaveTransactionArgsForCall(0)
			Expect(first.State).To(Equal("pending"))
			Expect(first.Comment).To(Equal("Browser tx"))
		})

		It("reports transactions that never show up", func() {
			fakeTxs.AwaitReceiptReturns(nil, &txn.NotFoundError{TxID: testTxID, Attempts: 5})

			result, err := vearn.TrackTransaction(ctx, testAccount, testTxID, "")
			Expect(err).To(MatchError(txn.ErrNotFound))
			Expect(result.State).To(Equal("not_found"))
			Expect(result.Message).To(Equal(txn.NotFoundMessage))
			Expect(fakeMetrics.ObserveTransactionArgsForCall(0)).To(Equal("not_found"))
		})

		It("rejects malformed ids", func() {
			_, err := vearn.TrackTransaction(ctx, testAccount, "0x1234", "")
			Expect(err).To(MatchError(core.ErrInvalidTxID))
			Expect(fakeTxs.AwaitReceiptCallCount()).To(BeZero())
		})
	})

	Describe("History", func() {
		BeforeEach(func() {
			fakeRepo.GetHistoryReturns([]repository.TransactionRecord{
				{TxID: testTxID, Account: testAccount, State: "pending"},
				{TxID: "0x01", Account: testAccount, State: "confirmed", BlockNumber: 1},
			}, nil)
		})

		It("refreshes pending transactions from the chain", func() {
			fakeChain.ReceiptsReturns(map[string]*txn.Receipt{
				testTxID: {TxID: testTxID, Reverted: true, BlockNumber: 9},
			}, nil)

			records, err := vearn.History(ctx, testAccount)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].State).To(Equal("reverted"))
			Expect(records[0].Error).To(Equal(txn.RevertedMessage))
			Expect(records[0].BlockNumber).To(BeEquivalentTo(9))
			Expect(records[1].State).To(Equal("confirmed"))

			_, ids := fakeChain.ReceiptsArgsForCall(0)
			Expect(ids).To(Equal([]string{testTxID}))
			Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(1))
		})

		It("still answers when the node is down", func() {
			fakeChain.ReceiptsReturns(nil, fakeErr)

			records, err := vearn.History(ctx, testAccount)
			Expect(err).NotTo(HaveOccurred())
			Expect(records[0].State).To(Equal("pending"))
			Expect(fakeRepo.SaveTransactionCallCount()).To(BeZero())
		})

		It("returns storage errors", func() {
			fakeRepo.GetHistoryReturns(nil, fakeErr)
			_, err := vearn.History(ctx, testAccount)
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
