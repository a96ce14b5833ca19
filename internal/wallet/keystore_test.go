package wallet_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"vearn/internal/certificate"
	"vearn/internal/thor"
	"vearn/internal/txn"
	"vearn/internal/wallet"
	"vearn/internal/wallet/fake"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/blake2b"
)

type decodedClause struct {
	To    *common.Address `rlp:"nil"`
	Value *big.Int
	Data  []byte
}

type decodedTx struct {
	ChainTag     uint8
	BlockRef     uint64
	Expiration   uint32
	Clauses      []decodedClause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *common.Hash `rlp:"nil"`
	Nonce        uint64
	Reserved     []interface{}
	Signature    []byte
}

type decodedBody struct {
	ChainTag     uint8
	BlockRef     uint64
	Expiration   uint32
	Clauses      []decodedClause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *common.Hash `rlp:"nil"`
	Nonce        uint64
	Reserved     []interface{}
}

var _ = Describe("Keystore", func() {
	var (
		key        *ecdsa.PrivateKey
		fakeClient *fake.ThorClient
		signer     *wallet.Keystore
		ctx        context.Context

		req     txn.SigningRequest
		handle  txn.Handle
		err     error
		fakeErr error
	)

	BeforeEach(func() {
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		fakeClient = new(fake.ThorClient)
		fakeClient.ChainTagReturns(0x27, nil)
		fakeClient.BestBlockReturns(&thor.Block{
			ID:     "0x00000064aabbccdd000000000000000000000000000000000000000000000000",
			Number: 100,
		}, nil)
		fakeClient.CallReturns([]thor.CallResult{{GasUsed: 20000}}, nil)

		signer = wallet.NewKeystore(key, "vearn.app", fakeClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		req, err = txn.NewSigningRequest([]txn.Clause{
			{To: "0x3147e73faddf17c186bde71e8b4c19a462aa85c7", Value: "5", Data: "0x00ff"},
		}, signer.Address(), "")
		Expect(err).NotTo(HaveOccurred())
	})

	JustBeforeEach(func() {
		handle, err = signer.SignTx(ctx, req)
	})

	When("the node accepts the transaction", func() {
		var sent []byte

		BeforeEach(func() {
			fakeClient.SendRawTransactionCalls(func(_ context.Context, raw []byte) (string, error) {
				sent = raw
				return "", nil
			})
		})

		It("builds, signs and broadcasts a thor transaction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(handle.Signer).To(Equal(signer.Address()))
			Expect(fakeClient.SendRawTransactionCallCount()).To(Equal(1))

			var tx decodedTx
			Expect(rlp.DecodeBytes(sent, &tx)).To(Succeed())
			Expect(tx.ChainTag).To(Equal(uint8(0x27)))
			Expect(tx.BlockRef).To(Equal(uint64(0x00000064aabbccdd)))
			Expect(tx.Expiration).To(BeEquivalentTo(wallet.DefaultExpiration))
			Expect(tx.Clauses).To(HaveLen(1))
			Expect(tx.Clauses[0].To.Hex()).To(Equal(common.HexToAddress("0x3147e73faddf17c186bde71e8b4c19a462aa85c7").Hex()))
			Expect(tx.Clauses[0].Value.Int64()).To(BeEquivalentTo(5))
			Expect(tx.Clauses[0].Data).To(Equal([]byte{0x00, 0xff}))
			Expect(tx.DependsOn).To(BeNil())

			// 5000 base + 16000 clause + 4 + 68 data + 20000 vm + 15000 margin
			Expect(tx.Gas).To(BeEquivalentTo(56072))

			encoded, err := rlp.EncodeToBytes(&decodedBody{
				ChainTag:     tx.ChainTag,
				BlockRef:     tx.BlockRef,
				Expiration:   tx.Expiration,
				Clauses:      tx.Clauses,
				GasPriceCoef: tx.GasPriceCoef,
				Gas:          tx.Gas,
				DependsOn:    tx.DependsOn,
				Nonce:        tx.Nonce,
				Reserved:     []interface{}{},
			})
			Expect(err).NotTo(HaveOccurred())
			signingHash := blake2b.Sum256(encoded)

			pub, err := crypto.SigToPub(signingHash[:], tx.Signature)
			Expect(err).NotTo(HaveOccurred())
			origin := crypto.PubkeyToAddress(*pub)
			Expect(strings.ToLower(origin.Hex())).To(Equal(signer.Address()))

			Expect(handle.TxID).To(Equal(wallet.TxID(signingHash[:], origin)))
		})

		It("estimates gas as the keystore account", func() {
			_, caller, clauses := fakeClient.CallArgsForCall(0)
			Expect(caller).To(Equal(signer.Address()))
			Expect(clauses).To(Equal(req.Clauses()))
		})
	})

	When("the request is for another account", func() {
		BeforeEach(func() {
			req, err = txn.NewSigningRequest(req.Clauses(), "0x970248543238481b2ac9144a99cf7f47e28a90e0", "")
			Expect(err).NotTo(HaveOccurred())
		})

		It("declines", func() {
			Expect(err).To(MatchError(txn.ErrSignerDeclined))
			Expect(fakeClient.SendRawTransactionCallCount()).To(BeZero())
		})
	})

	When("a clause would revert", func() {
		BeforeEach(func() {
			fakeClient.CallReturns([]thor.CallResult{{Reverted: true, VMError: "execution reverted"}}, nil)
		})

		It("does not broadcast", func() {
			Expect(err).To(MatchError(wallet.ErrEstimationReverted))
			Expect(fakeClient.SendRawTransactionCallCount()).To(BeZero())
		})
	})

	When("the node returns a different id", func() {
		BeforeEach(func() {
			fakeClient.SendRawTransactionReturns("0x01", nil)
		})

		It("fails", func() {
			Expect(err).To(MatchError(wallet.ErrTxIDMismatch))
		})
	})

	When("broadcasting fails", func() {
		BeforeEach(func() {
			fakeClient.SendRawTransactionReturns("", fakeErr)
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("SignCert", func() {
		It("produces a verifiable certificate", func() {
			cert, err := signer.SignCert(ctx, certificate.NewIdentification("", "", 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(cert.Domain).To(Equal("vearn.app"))
			Expect(cert.Signer).To(Equal(signer.Address()))
			Expect(certificate.Verify(cert)).To(Succeed())
		})
	})

	Describe("LoadKeystore", func() {
		It("decrypts a keystore file", func() {
			keyJSON, err := keystore.EncryptKey(&keystore.Key{
				Id:         uuid.New(),
				Address:    crypto.PubkeyToAddress(key.PublicKey),
				PrivateKey: key,
			}, "secret", keystore.LightScryptN, keystore.LightScryptP)
			Expect(err).NotTo(HaveOccurred())

			path := filepath.Join(GinkgoT().TempDir(), "key.json")
			Expect(os.WriteFile(path, keyJSON, 0o600)).To(Succeed())

			loaded, err := wallet.LoadKeystore(path, "secret", "vearn.app", fakeClient)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Address()).To(Equal(signer.Address()))

			_, err = wallet.LoadKeystore(path, "wrong", "vearn.app", fakeClient)
			Expect(err).To(HaveOccurred())
		})
	})
})
