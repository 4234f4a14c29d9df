//go:build !coltdebug

package colt

const debugChecks = false
