//go:build coltdebug

package mem

// debugChecks enables misuse assertions (foreign-block deallocation,
// use-after-free poisoning). Release builds leave these paths unchecked.
const debugChecks = true
