package types

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/xtransfer-org/xtransfer-go/cbor"
	"github.com/xtransfer-org/xtransfer-go/hash"
)

const (
	XcmWithdrawAsset XcmKind = iota
)

const (
	OrderDepositAsset OrderKind = iota + 1
	OrderDepositReserveAsset
	OrderBuyExecution
)

var ErrXcmIsNil = errors.New("message is nil")

type (
	XcmKind   uint8
	OrderKind uint8

	// Weight is the unit of computational cost of executing a message.
	Weight = uint64

	/*
	Xcm is the cross-chain message. Only the WithdrawAsset message is
	currently supported: it withdraws Assets from the origin into the holding
	register and executes the Effects against the holding.
	*/
	Xcm struct {
		_       struct{} `cbor:",toarray"`
		Kind    XcmKind
		Assets  []MultiAsset
		Effects []Order
	}

	// Order is an effect executed against the holding register.
	Order struct {
		_           struct{} `cbor:",toarray"`
		Kind        OrderKind
		Assets      []MultiAsset // asset filter of deposit orders
		Dest        Location     // destination of deposit orders
		Effects     []Order      // orders sent to Dest by DepositReserveAsset
		Fees        MultiAsset   // BuyExecution: assets used to pay for execution
		Weight      Weight       // BuyExecution: weight of the additional messages
		Debt        Weight       // BuyExecution: weight to be paid for
		HaltOnError bool
	}
)

func WithdrawAsset(assets []MultiAsset, effects ...Order) Xcm {
	return Xcm{Kind: XcmWithdrawAsset, Assets: assets, Effects: effects}
}

func DepositAsset(assets []MultiAsset, dest Location) Order {
	return Order{Kind: OrderDepositAsset, Assets: assets, Dest: dest}
}

func DepositReserveAsset(assets []MultiAsset, dest Location, effects ...Order) Order {
	return Order{Kind: OrderDepositReserveAsset, Assets: assets, Dest: dest, Effects: effects}
}

func BuyExecution(fees MultiAsset, weight, debt Weight, haltOnError bool) Order {
	return Order{Kind: OrderBuyExecution, Fees: fees, Weight: weight, Debt: debt, HaltOnError: haltOnError}
}

// Instructions returns the number of instructions in the message, ie the
// message itself plus all the orders (nested orders included).
func (x *Xcm) Instructions() int {
	if x == nil {
		return 0
	}
	return 1 + countOrders(x.Effects)
}

func countOrders(orders []Order) int {
	n := len(orders)
	for _, o := range orders {
		n += countOrders(o.Effects)
	}
	return n
}

// ID returns SHA-256 hash of the CBOR encoding of the message.
func (x *Xcm) ID() ([]byte, error) {
	if x == nil {
		return nil, ErrXcmIsNil
	}
	return hash.Sum(crypto.SHA256, x)
}

func (x Xcm) MarshalCBOR() ([]byte, error) {
	type alias Xcm
	return cbor.MarshalTaggedValue(XcmTag, (alias)(x))
}

func (x *Xcm) UnmarshalCBOR(data []byte) error {
	type alias Xcm
	return cbor.UnmarshalTaggedValue(XcmTag, data, (*alias)(x))
}

func (k OrderKind) String() string {
	switch k {
	case OrderDepositAsset:
		return "DepositAsset"
	case OrderDepositReserveAsset:
		return "DepositReserveAsset"
	case OrderBuyExecution:
		return "BuyExecution"
	default:
		return fmt.Sprintf("Order(%d)", uint8(k))
	}
}
