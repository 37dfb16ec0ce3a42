package form

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/cnf/structhash"
)

// fingerprint is the digest input for a form node. Kind disambiguates
// renderings which would otherwise collide across variants (a name whose
// local part happens to start with a quote marker, for example).
type fingerprint struct {
	Kind string `hash:"name:kind"`
	Repr string `hash:"name:repr"`
}

// Digest returns a structural digest of a form. Two forms have equal
// digests iff they are structurally equal. Used for set deduplication and
// by Equal.
func Digest(f Form) string {
	if f == nil {
		return "<nil>"
	}
	fp := fingerprint{Kind: f.Kind().String(), Repr: f.String()}
	sum, err := structhash.Hash(fp, 1)
	if err != nil {
		// cannot happen for a flat struct of strings
		return fmt.Sprintf("%s|%s", fp.Kind, fp.Repr)
	}
	return sum
}

// Equal reports structural equality of two forms.
func Equal(a, b Form) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return Digest(a) == Digest(b)
}
