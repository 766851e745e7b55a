//go:build curvedebug

package curve

// debugChecks cross checks every Hilbert call against the reference.
const debugChecks = true
