package container

import (
	"fmt"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// digest is the map key used for values Go cannot compare.
type digest [blake2b.Size256]byte

// hashKey returns a value usable as a Go map key that identifies v.
//
// Comparable values are their own key. Other values (slices, maps, structs
// holding them) are keyed by a BLAKE2b-256 digest of their Go-syntax
// representation, which includes the dynamic type so that equal-looking
// values of different types stay distinct. fmt prints map keys in sorted
// order, so equal maps produce equal digests.
func hashKey(v any) any {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Comparable() {
		return v
	}
	return digest(blake2b.Sum256([]byte(fmt.Sprintf("%T\x00%#v", v, v))))
}

func selfKey[T any](v T) any { return hashKey(v) }
