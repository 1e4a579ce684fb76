package xtransfer

import (
	"errors"
	"fmt"

	"github.com/xtransfer-org/xtransfer-go/types"
)

const (
	OriginNone OriginKind = iota
	OriginRoot
	OriginSigned
)

var ErrBadOrigin = errors.New("bad origin")

type (
	OriginKind uint8

	// Origin is the caller of the transfer as seen by the host chain.
	Origin struct {
		Kind    OriginKind
		Account []byte
	}

	// OriginResolver resolves the caller into a location, the message is executed on behalf of that location.
	OriginResolver interface {
		EnsureOrigin(origin Origin) (types.Location, error)
	}

	// SignedToAccountID32 accepts only signed origins with 32 byte account and
	// resolves them into location AccountId32(account).
	SignedToAccountID32 struct{}
)

func Signed(account [types.AccountID32Length]byte) Origin {
	return Origin{Kind: OriginSigned, Account: account[:]}
}

func Root() Origin {
	return Origin{Kind: OriginRoot}
}

func (SignedToAccountID32) EnsureOrigin(origin Origin) (types.Location, error) {
	if origin.Kind != OriginSigned {
		return nil, fmt.Errorf("expected signed origin, got %s", origin.Kind)
	}
	if len(origin.Account) != types.AccountID32Length {
		return nil, fmt.Errorf("account must be %d bytes, got %d bytes", types.AccountID32Length, len(origin.Account))
	}
	return types.NewLocation(types.AccountID32([types.AccountID32Length]byte(origin.Account))), nil
}

func (k OriginKind) String() string {
	switch k {
	case OriginNone:
		return "none"
	case OriginRoot:
		return "root"
	case OriginSigned:
		return "signed"
	default:
		return fmt.Sprintf("OriginKind(%d)", uint8(k))
	}
}
