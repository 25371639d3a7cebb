// Released under an MIT license. See LICENSE.

// Package boot provides the procedures every new engine starts with.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Script returns the boot script. Its definitions are written in terms
// of the primitives and special forms alone.
func Script() string {
	return script
}
