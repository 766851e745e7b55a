//go:build !curvedebug

package curve

const debugChecks = false
