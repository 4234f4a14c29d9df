//go:build coltdebug

package colt

// debugChecks enables bounds assertions on positional access. Release
// builds leave them unchecked.
const debugChecks = true
