//go:build !coltdebug

package mem

const debugChecks = false
