//go:build geomdebug

package geom

// debugAssert panics with msg when cond is false. It is compiled in
// only under the geomdebug build tag; release builds get the no-op
// version and pay nothing.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("geom: " + msg)
	}
}
