// Package memzero wipes sensitive buffers such as stretched BIP39 seeds and
// result sealing keys.
package memzero

import "runtime"

// Zero overwrites b with zeros. Copies of the data made elsewhere are not
// touched.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
