package contracts

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"vearn/internal/txn"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Built-in contract addresses, identical on every Thor network.
const (
	EnergyAddress = "0x0000000000000000000000000000456E65726779"
	ParamsAddress = "0x0000000000000000000000000000506172616d73"
)

// Wallet comments. The register flow joins both with a single space.
const (
	SaveReserveComment = "Store Reserve Balance into the Vearn contract. "
	ApproveComment     = "Additionally, allow the Vearn contract to spend your VTHO in exchange for VET."
	SaveConfigComment  = "Save config values into the VeFarm contract."
)

var ErrAmountOutOfRange error = errors.New("amount does not fit in uint256")
var ErrInvalidAddress error = errors.New("invalid contract address")

// BaseGasPriceKey is the params key holding the network base gas price.
var BaseGasPriceKey = common.BytesToHash([]byte("base-gas-price"))

// RegisterComment is shown when the reserve balance is saved together with the
// VTHO approval.
func RegisterComment() string {
	return strings.Join([]string{SaveReserveComment, ApproveComment}, " ")
}

// MaxUint256 returns 2^256-1, the unlimited approval amount.
func MaxUint256() *big.Int {
	return new(uint256.Int).SetAllOne().ToBig()
}

// ToUint256 range checks amount for a uint256 ABI argument.
func ToUint256(amount *big.Int) (*uint256.Int, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v", ErrAmountOutOfRange, amount)
	}
	v, overflow := uint256.FromBig(amount)
	if overflow {
		return nil, fmt.Errorf("%w: %s", ErrAmountOutOfRange, amount)
	}
	return v, nil
}

// Config is the per account trader configuration, in wei.
type Config struct {
	TriggerBalance *big.Int
	ReserveBalance *big.Int
}

type contract struct {
	address common.Address
	abi     abi.ABI
}

func newContract(address, definition string) (contract, error) {
	if !common.IsHexAddress(address) {
		return contract{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		return contract{}, fmt.Errorf("parse abi: %w", err)
	}
	return contract{address: common.HexToAddress(address), abi: parsed}, nil
}

func (c contract) Address() common.Address {
	return c.address
}

func (c contract) clause(method string, args ...interface{}) (txn.Clause, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return txn.Clause{}, fmt.Errorf("pack %s: %w", method, err)
	}
	return txn.NewClause(c.address, nil, data), nil
}

func (c contract) unpack(method, output string) ([]interface{}, error) {
	data, err := hexutil.Decode(output)
	if err != nil {
		return nil, fmt.Errorf("decode %s output: %w", method, err)
	}
	values, err := c.abi.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

func (c contract) unpackUint(method, output string) (*big.Int, error) {
	values, err := c.unpack(method, output)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unpack %s: got %d values", method, len(values))
	}
	v, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: unexpected %T", method, values[0])
	}
	return v, nil
}

// Trader builds clauses for the Vearn trader contract.
type Trader struct {
	contract
}

func NewTrader(address string) (*Trader, error) {
	c, err := newContract(address, TraderABI)
	if err != nil {
		return nil, err
	}
	return &Trader{c}, nil
}

func (t *Trader) SaveReserveBalance(amount *big.Int) (txn.Clause, error) {
	v, err := ToUint256(amount)
	if err != nil {
		return txn.Clause{}, err
	}
	return t.clause("saveReserveBalance", v.ToBig())
}

func (t *Trader) SaveConfig(triggerBalance, reserveBalance *big.Int) (txn.Clause, error) {
	trigger, err := ToUint256(triggerBalance)
	if err != nil {
		return txn.Clause{}, fmt.Errorf("trigger balance: %w", err)
	}
	reserve, err := ToUint256(reserveBalance)
	if err != nil {
		return txn.Clause{}, fmt.Errorf("reserve balance: %w", err)
	}
	return t.clause("saveConfig", trigger.ToBig(), reserve.ToBig())
}

// AddressToConfig is a read-only clause for Client.Call.
func (t *Trader) AddressToConfig(account common.Address) (txn.Clause, error) {
	return t.clause("addressToConfig", account)
}

func (t *Trader) DecodeConfig(output string) (Config, error) {
	values, err := t.unpack("addressToConfig", output)
	if err != nil {
		return Config{}, err
	}
	if len(values) != 2 {
		return Config{}, fmt.Errorf("unpack addressToConfig: got %d values", len(values))
	}
	trigger, ok1 := values[0].(*big.Int)
	reserve, ok2 := values[1].(*big.Int)
	if !ok1 || !ok2 {
		return Config{}, fmt.Errorf("unpack addressToConfig: unexpected %T, %T", values[0], values[1])
	}
	return Config{TriggerBalance: trigger, ReserveBalance: reserve}, nil
}

// Energy builds clauses for the VTHO token.
type Energy struct {
	contract
}

func NewEnergy(address string) (*Energy, error) {
	c, err := newContract(address, EnergyABI)
	if err != nil {
		return nil, err
	}
	return &Energy{c}, nil
}

func (e *Energy) Approve(spender common.Address, amount *big.Int) (txn.Clause, error) {
	v, err := ToUint256(amount)
	if err != nil {
		return txn.Clause{}, err
	}
	return e.clause("approve", spender, v.ToBig())
}

func (e *Energy) Allowance(owner, spender common.Address) (txn.Clause, error) {
	return e.clause("allowance", owner, spender)
}

func (e *Energy) BalanceOf(owner common.Address) (txn.Clause, error) {
	return e.clause("balanceOf", owner)
}

func (e *Energy) DecodeAllowance(output string) (*big.Int, error) {
	return e.unpackUint("allowance", output)
}

func (e *Energy) DecodeBalance(output string) (*big.Int, error) {
	return e.unpackUint("balanceOf", output)
}

// Params reads governance parameters.
type Params struct {
	contract
}

func NewParams(address string) (*Params, error) {
	c, err := newContract(address, ParamsABI)
	if err != nil {
		return nil, err
	}
	return &Params{c}, nil
}

func (p *Params) Get(key common.Hash) (txn.Clause, error) {
	return p.clause("get", [32]byte(key))
}

func (p *Params) DecodeValue(output string) (*big.Int, error) {
	return p.unpackUint("get", output)
}
