package xtransfer

import (
	"errors"
	"fmt"

	"github.com/xtransfer-org/xtransfer-go/types"
)

var ErrInvalidRequest = errors.New("invalid transfer request")

/*
TransferRequest describes reserve based transfer of Asset to the Beneficiary
on the Dest chain.

DestWeight is the weight the caller is willing to pay on the destination,
it is carried along but doesn't limit local execution.
*/
type TransferRequest struct {
	_           struct{} `cbor:",toarray"`
	Dest        types.Location
	Beneficiary types.Location
	Asset       types.MultiAsset
	DestWeight  types.Weight
}

func (r *TransferRequest) IsValid() error {
	if r == nil {
		return errors.New("transfer request is nil")
	}
	if err := r.Dest.IsValid(); err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}
	if err := r.Beneficiary.IsValid(); err != nil {
		return fmt.Errorf("invalid beneficiary: %w", err)
	}
	if err := r.Asset.IsValid(); err != nil {
		return fmt.Errorf("invalid asset: %w", err)
	}
	return nil
}
