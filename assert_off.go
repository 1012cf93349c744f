//go:build !geomdebug

package geom

func debugAssert(bool, string) {}
