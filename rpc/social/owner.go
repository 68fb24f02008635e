package social

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ownerIDVersion is the address version byte used by N3 networks, owner IDs
// use the same encoding as regular addresses.
const ownerIDVersion = 0x35

// OwnerID encodes an account script hash into the base58 owner ID string
// used to name principals in user-facing tooling.
func OwnerID(acc util.Uint160) string {
	data := make([]byte, 0, util.Uint160Size+5)
	data = append(data, ownerIDVersion)
	data = append(data, acc.BytesBE()...)

	return base58.Encode(append(data, checksum(data)...))
}

// DecodeOwnerID decodes an owner ID string produced by OwnerID back into the
// account script hash.
func DecodeOwnerID(id string) (util.Uint160, error) {
	data, err := base58.Decode(id)
	if err != nil {
		return util.Uint160{}, err
	}
	if len(data) != util.Uint160Size+5 {
		return util.Uint160{}, errors.New("invalid owner ID length")
	}
	if data[0] != ownerIDVersion {
		return util.Uint160{}, errors.New("invalid owner ID version")
	}
	if !bytes.Equal(checksum(data[:util.Uint160Size+1]), data[util.Uint160Size+1:]) {
		return util.Uint160{}, errors.New("invalid owner ID checksum")
	}

	return util.Uint160DecodeBytesBE(data[1 : util.Uint160Size+1])
}

func checksum(data []byte) []byte {
	sum := sha256.Sum256(data)
	sum = sha256.Sum256(sum[:])
	return sum[:4]
}
