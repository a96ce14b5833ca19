package wallet

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
	"vearn/internal/certificate"
	"vearn/internal/txn"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/blake2b"
)

const (
	// DefaultExpiration is the number of blocks a transaction stays valid.
	DefaultExpiration = 720

	txGas             = 5000
	clauseGas         = 16000
	clauseGasCreation = 48000
	zeroByteGas       = 4
	nonZeroByteGas    = 68
	vmGasMargin       = 15000
)

var ErrSignerMismatch error = errors.New("request signer is not the keystore account")
var ErrEstimationReverted error = errors.New("transaction would revert")
var ErrTxIDMismatch error = errors.New("node returned an unexpected transaction id")

type thorClause struct {
	To    *common.Address `rlp:"nil"`
	Value *big.Int
	Data  []byte
}

// thorTxBody is the RLP layout of an unsigned Thor transaction.
type thorTxBody struct {
	ChainTag     uint8
	BlockRef     uint64
	Expiration   uint32
	Clauses      []thorClause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *common.Hash `rlp:"nil"`
	Nonce        uint64
	Reserved     []interface{}
}

type thorTx struct {
	ChainTag     uint8
	BlockRef     uint64
	Expiration   uint32
	Clauses      []thorClause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *common.Hash `rlp:"nil"`
	Nonce        uint64
	Reserved     []interface{}
	Signature    []byte
}

// Keystore signs with a local key and broadcasts through a Thor node. It is
// meant for headless operation where no wallet app is around.
type Keystore struct {
	key        *ecdsa.PrivateKey
	address    common.Address
	client     ThorClient
	domain     string
	expiration uint32
}

// LoadKeystore decrypts a go-ethereum keystore file.
func LoadKeystore(path, password, domain string, client ThorClient) (*Keystore, error) {
	keyJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}
	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, fmt.Errorf("decrypt keystore: %w", err)
	}
	return NewKeystore(key.PrivateKey, domain, client), nil
}

// NewKeystore is a constructor function for the Keystore type.
func NewKeystore(key *ecdsa.PrivateKey, domain string, client ThorClient) *Keystore {
	return &Keystore{
		key:        key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
		client:     client,
		domain:     domain,
		expiration: DefaultExpiration,
	}
}

func (k *Keystore) Address() string {
	return strings.ToLower(k.address.Hex())
}

func (k *Keystore) SignTx(ctx context.Context, req txn.SigningRequest) (txn.Handle, error) {
	if req.Signer() != "" && req.Signer() != k.Address() {
		return txn.Handle{}, &DeclinedError{Reason: ErrSignerMismatch.Error()}
	}

	chainTag, err := k.client.ChainTag(ctx)
	if err != nil {
		return txn.Handle{}, fmt.Errorf("get chain tag: %w", err)
	}

	best, err := k.client.BestBlock(ctx)
	if err != nil {
		return txn.Handle{}, fmt.Errorf("get best block: %w", err)
	}
	blockRef, err := blockRefOf(best.ID)
	if err != nil {
		return txn.Handle{}, err
	}

	clauses, err := toThorClauses(req.Clauses())
	if err != nil {
		return txn.Handle{}, err
	}

	gas, err := k.estimateGas(ctx, req.Clauses(), clauses)
	if err != nil {
		return txn.Handle{}, err
	}

	nonce, err := randomNonce()
	if err != nil {
		return txn.Handle{}, err
	}

	body := thorTxBody{
		ChainTag:   chainTag,
		BlockRef:   blockRef,
		Expiration: k.expiration,
		Clauses:    clauses,
		Gas:        gas,
		Nonce:      nonce,
		Reserved:   []interface{}{},
	}

	raw, txID, err := k.sign(body)
	if err != nil {
		return txn.Handle{}, err
	}

	sentID, err := k.client.SendRawTransaction(ctx, raw)
	if err != nil {
		return txn.Handle{}, fmt.Errorf("send transaction: %w", err)
	}
	if sentID != "" && !strings.EqualFold(sentID, txID) {
		return txn.Handle{}, fmt.Errorf("%w: %s != %s", ErrTxIDMismatch, sentID, txID)
	}

	return txn.Handle{TxID: txID, Signer: k.Address()}, nil
}

// SignCert signs cert with the keystore key, stamping domain and time.
func (k *Keystore) SignCert(ctx context.Context, cert certificate.Certificate) (certificate.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return certificate.Certificate{}, err
	}
	cert.Domain = k.domain
	cert.Timestamp = time.Now().Unix()
	return certificate.Sign(cert, k.key)
}

func (k *Keystore) sign(body thorTxBody) ([]byte, string, error) {
	encoded, err := rlp.EncodeToBytes(&body)
	if err != nil {
		return nil, "", fmt.Errorf("encode transaction: %w", err)
	}
	signingHash := blake2b.Sum256(encoded)

	sig, err := crypto.Sign(signingHash[:], k.key)
	if err != nil {
		return nil, "", fmt.Errorf("sign transaction: %w", err)
	}

	raw, err := rlp.EncodeToBytes(&thorTx{
		ChainTag:     body.ChainTag,
		BlockRef:     body.BlockRef,
		Expiration:   body.Expiration,
		Clauses:      body.Clauses,
		GasPriceCoef: body.GasPriceCoef,
		Gas:          body.Gas,
		DependsOn:    body.DependsOn,
		Nonce:        body.Nonce,
		Reserved:     body.Reserved,
		Signature:    sig,
	})
	if err != nil {
		return nil, "", fmt.Errorf("encode signed transaction: %w", err)
	}

	return raw, TxID(signingHash[:], k.address), nil
}

// TxID is blake2b-256 of the signing hash followed by the origin address.
func TxID(signingHash []byte, origin common.Address) string {
	id := blake2b.Sum256(append(append([]byte{}, signingHash...), origin.Bytes()...))
	return hexutil.Encode(id[:])
}

func (k *Keystore) estimateGas(ctx context.Context, clauses []txn.Clause, encoded []thorClause) (uint64, error) {
	results, err := k.client.Call(ctx, k.Address(), clauses)
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}

	var vmGas uint64
	for i, r := range results {
		if r.Reverted {
			return 0, fmt.Errorf("%w: clause %d: %s", ErrEstimationReverted, i, r.VMError)
		}
		vmGas += r.GasUsed
	}

	gas := intrinsicGas(encoded)
	if vmGas > 0 {
		gas += vmGas + vmGasMargin
	}
	return gas, nil
}

func intrinsicGas(clauses []thorClause) uint64 {
	gas := uint64(txGas)
	for _, c := range clauses {
		if c.To == nil {
			gas += clauseGasCreation
		} else {
			gas += clauseGas
		}
		for _, b := range c.Data {
			if b == 0 {
				gas += zeroByteGas
			} else {
				gas += nonZeroByteGas
			}
		}
	}
	return gas
}

func toThorClauses(clauses []txn.Clause) ([]thorClause, error) {
	out := make([]thorClause, len(clauses))
	for i, c := range clauses {
		to := common.HexToAddress(c.To)
		value, ok := new(big.Int).SetString(c.Value, 10)
		if !ok {
			return nil, fmt.Errorf("clause %d: bad value %q", i, c.Value)
		}
		data, err := hexutil.Decode(c.Data)
		if err != nil {
			return nil, fmt.Errorf("clause %d: bad data: %w", i, err)
		}
		out[i] = thorClause{To: &to, Value: value, Data: data}
	}
	return out, nil
}

func blockRefOf(blockID string) (uint64, error) {
	id, err := hexutil.Decode(blockID)
	if err != nil || len(id) < 8 {
		return 0, fmt.Errorf("invalid block id %q", blockID)
	}
	return binary.BigEndian.Uint64(id[:8]), nil
}

func randomNonce() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("generate nonce: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
