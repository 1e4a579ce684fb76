package types

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	JunctionParent JunctionKind = iota
	JunctionParachain
	JunctionAccountID32
	JunctionAccountIndex64
	JunctionAccountKey20
	JunctionPalletInstance
	JunctionGeneralIndex
	JunctionGeneralKey
	JunctionOnlyChild
)

const (
	AccountID32Length  = 32
	AccountKey20Length = 20
)

type (
	JunctionKind uint8

	/*
	Junction is a single step of the Location path. Which of the payload
	fields is in use depends on the Kind:
	  - Parachain: ID is the parachain id;
	  - PalletInstance: ID is the pallet index (fits into byte);
	  - GeneralIndex: Index;
	  - AccountIndex64: Index (fits into 64 bits);
	  - AccountID32, AccountKey20, GeneralKey: Key.
	Parent and OnlyChild carry no payload.
	*/
	Junction struct {
		_     struct{} `cbor:",toarray"`
		Kind  JunctionKind
		ID    uint32
		Index U128
		Key   []byte
	}
)

func Parent() Junction {
	return Junction{Kind: JunctionParent}
}

func Parachain(id uint32) Junction {
	return Junction{Kind: JunctionParachain, ID: id}
}

func AccountID32(key [AccountID32Length]byte) Junction {
	return Junction{Kind: JunctionAccountID32, Key: key[:]}
}

func AccountIndex64(index uint64) Junction {
	return Junction{Kind: JunctionAccountIndex64, Index: NewU128(index)}
}

func AccountKey20(key [AccountKey20Length]byte) Junction {
	return Junction{Kind: JunctionAccountKey20, Key: key[:]}
}

func PalletInstance(index uint8) Junction {
	return Junction{Kind: JunctionPalletInstance, ID: uint32(index)}
}

func GeneralIndex(index U128) Junction {
	return Junction{Kind: JunctionGeneralIndex, Index: index}
}

func GeneralKey(key []byte) Junction {
	return Junction{Kind: JunctionGeneralKey, Key: bytes.Clone(key)}
}

func OnlyChild() Junction {
	return Junction{Kind: JunctionOnlyChild}
}

// Equal compares kind and payload of the junctions.
func (j Junction) Equal(o Junction) bool {
	return j.Kind == o.Kind &&
		j.ID == o.ID &&
		j.Index == o.Index &&
		bytes.Equal(j.Key, o.Key)
}

func (j Junction) IsValid() error {
	if err := j.unusedPayloadIsEmpty(); err != nil {
		return err
	}
	switch j.Kind {
	case JunctionParent, JunctionOnlyChild, JunctionParachain, JunctionGeneralIndex, JunctionGeneralKey:
		return nil
	case JunctionPalletInstance:
		if j.ID > math.MaxUint8 {
			return fmt.Errorf("pallet instance index %d doesn't fit into byte", j.ID)
		}
	case JunctionAccountIndex64:
		if !j.Index.IsUint64() {
			return fmt.Errorf("account index %s doesn't fit into 64 bits", j.Index)
		}
	case JunctionAccountID32:
		if len(j.Key) != AccountID32Length {
			return fmt.Errorf("account id must be %d bytes, got %d bytes", AccountID32Length, len(j.Key))
		}
	case JunctionAccountKey20:
		if len(j.Key) != AccountKey20Length {
			return fmt.Errorf("account key must be %d bytes, got %d bytes", AccountKey20Length, len(j.Key))
		}
	default:
		return fmt.Errorf("unknown junction kind %d", j.Kind)
	}
	return nil
}

// unusedPayloadIsEmpty checks that the payload fields the kind doesn't use are zero.
func (j Junction) unusedPayloadIsEmpty() error {
	var usesID, usesIndex, usesKey bool
	switch j.Kind {
	case JunctionParachain, JunctionPalletInstance:
		usesID = true
	case JunctionGeneralIndex, JunctionAccountIndex64:
		usesIndex = true
	case JunctionAccountID32, JunctionAccountKey20, JunctionGeneralKey:
		usesKey = true
	}
	switch {
	case !usesID && j.ID != 0:
		return fmt.Errorf("junction kind %d doesn't carry id, got %d", j.Kind, j.ID)
	case !usesIndex && !j.Index.IsZero():
		return fmt.Errorf("junction kind %d doesn't carry index, got %s", j.Kind, j.Index)
	case !usesKey && len(j.Key) != 0:
		return fmt.Errorf("junction kind %d doesn't carry key, got %d bytes", j.Kind, len(j.Key))
	}
	return nil
}

func (j Junction) String() string {
	switch j.Kind {
	case JunctionParent:
		return "Parent"
	case JunctionParachain:
		return fmt.Sprintf("Parachain(%d)", j.ID)
	case JunctionAccountID32:
		return fmt.Sprintf("AccountId32(%s)", hexutil.Encode(j.Key))
	case JunctionAccountIndex64:
		return fmt.Sprintf("AccountIndex64(%s)", j.Index)
	case JunctionAccountKey20:
		return fmt.Sprintf("AccountKey20(%s)", hexutil.Encode(j.Key))
	case JunctionPalletInstance:
		return fmt.Sprintf("PalletInstance(%d)", j.ID)
	case JunctionGeneralIndex:
		return fmt.Sprintf("GeneralIndex(%s)", j.Index)
	case JunctionGeneralKey:
		return fmt.Sprintf("GeneralKey(%s)", hexutil.Encode(j.Key))
	case JunctionOnlyChild:
		return "OnlyChild"
	default:
		return fmt.Sprintf("Unknown(%d)", j.Kind)
	}
}
