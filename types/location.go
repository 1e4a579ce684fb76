package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/xtransfer-org/xtransfer-go/cbor"
)

// MaxJunctions is the maximum number of junctions a Location may have.
const MaxJunctions = 8

var ErrLocationFull = errors.New("location already has maximum number of junctions")

/*
Location describes a path through the chain topology as an ordered list of
junctions, relative to the current chain. Interior location (path inside this
chain) starts with non-Parent junction, foreign location escapes to the parent
first.

Location is a value, methods never modify the receiver.
*/
type Location []Junction

// Here is the location of the current chain itself.
var Here = Location(nil)

// NewLocation returns location made of copy of the junctions.
func NewLocation(junctions ...Junction) Location {
	if len(junctions) == 0 {
		return Here
	}
	l := make(Location, len(junctions))
	copy(l, junctions)
	return l
}

func (l Location) Len() int {
	return len(l)
}

// At returns junction at index i, the second return value is false
// when the location doesn't have junction at index i.
func (l Location) At(i int) (Junction, bool) {
	if i < 0 || i >= len(l) {
		return Junction{}, false
	}
	return l[i], true
}

// IsInterior returns true when the location doesn't start with Parent junction.
func (l Location) IsInterior() bool {
	return len(l) == 0 || l[0].Kind != JunctionParent
}

func (l Location) Equal(o Location) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// HasPrefix tests whether the location begins with the junctions of the prefix.
func (l Location) HasPrefix(prefix Location) bool {
	if len(prefix) > len(l) {
		return false
	}
	return l[:len(prefix)].Equal(prefix)
}

/*
PushBack returns new location which has j appended to the junctions of l.
Fails with ErrLocationFull when l already has MaxJunctions junctions.
*/
func (l Location) PushBack(j Junction) (Location, error) {
	if len(l) >= MaxJunctions {
		return nil, ErrLocationFull
	}
	res := make(Location, len(l), len(l)+1)
	copy(res, l)
	return append(res, j), nil
}

func (l Location) IsValid() error {
	if len(l) > MaxJunctions {
		return fmt.Errorf("location can have up to %d junctions, got %d", MaxJunctions, len(l))
	}
	for i, j := range l {
		if err := j.IsValid(); err != nil {
			return fmt.Errorf("invalid junction %d: %w", i, err)
		}
	}
	return nil
}

func (l Location) String() string {
	if len(l) == 0 {
		return "Here"
	}
	s := make([]string, len(l))
	for i, j := range l {
		s[i] = j.String()
	}
	return strings.Join(s, "/")
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Location) UnmarshalText(src []byte) error {
	loc, err := ParseLocation(string(src))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

func (l Location) MarshalCBOR() ([]byte, error) {
	return cbor.MarshalTaggedValue(LocationTag, []Junction(l))
}

func (l *Location) UnmarshalCBOR(data []byte) error {
	var junctions []Junction
	if err := cbor.UnmarshalTaggedValue(LocationTag, data, &junctions); err != nil {
		return err
	}
	*l = junctions
	return nil
}

/*
ParseLocation parses the text notation of the Location, ie junctions separated
by slash:

	../Parachain(2000)/PalletInstance(50)/GeneralIndex(19)

Parent junction can be written either as ".." or "Parent", key arguments
are 0x prefixed hex strings. Empty string or "Here" is the empty location.
*/
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Here" {
		return Here, nil
	}

	parts := strings.Split(s, "/")
	if len(parts) > MaxJunctions {
		return nil, fmt.Errorf("location can have up to %d junctions, got %d", MaxJunctions, len(parts))
	}
	loc := make(Location, 0, len(parts))
	for i, p := range parts {
		j, err := parseJunction(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("junction %d: %w", i, err)
		}
		loc = append(loc, j)
	}
	return loc, nil
}

func parseJunction(s string) (Junction, error) {
	switch s {
	case "..", "Parent":
		return Parent(), nil
	case "OnlyChild":
		return OnlyChild(), nil
	}

	open := strings.IndexByte(s, '(')
	if open < 1 || !strings.HasSuffix(s, ")") {
		return Junction{}, fmt.Errorf("invalid junction %q", s)
	}
	name, arg := s[:open], s[open+1:len(s)-1]

	switch name {
	case "Parachain":
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return Junction{}, fmt.Errorf("invalid parachain id: %w", err)
		}
		return Parachain(uint32(id)), nil
	case "PalletInstance":
		idx, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return Junction{}, fmt.Errorf("invalid pallet instance: %w", err)
		}
		return PalletInstance(uint8(idx)), nil
	case "GeneralIndex":
		idx, err := ParseU128(arg)
		if err != nil {
			return Junction{}, fmt.Errorf("invalid general index: %w", err)
		}
		return GeneralIndex(idx), nil
	case "AccountIndex64":
		idx, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return Junction{}, fmt.Errorf("invalid account index: %w", err)
		}
		return AccountIndex64(idx), nil
	case "AccountId32", "AccountKey20", "GeneralKey":
		key, err := hexutil.Decode(arg)
		if err != nil {
			return Junction{}, fmt.Errorf("invalid %s key: %w", name, err)
		}
		j := Junction{Key: key}
		switch name {
		case "AccountId32":
			j.Kind = JunctionAccountID32
		case "AccountKey20":
			j.Kind = JunctionAccountKey20
		default:
			j.Kind = JunctionGeneralKey
		}
		return j, j.IsValid()
	default:
		return Junction{}, fmt.Errorf("unknown junction %q", name)
	}
}
