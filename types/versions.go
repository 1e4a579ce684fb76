package types

import "github.com/xtransfer-org/xtransfer-go/cbor"

type XTag = cbor.XTag

// CBOR tags of the top level values.
const (
	_ = iota + XTag(1100)
	LocationTag
	MultiAssetTag
	XcmTag
	OutcomeTag
)
