// Package nzcheck defines an Analyzer that rejects zero arguments to
// nonzero.Must at build time.
//
// # Analyzer nzcheck
//
// nzcheck: report nonzero.Must calls whose argument is provably zero
//
// The type checker folds constant expressions, so a call such as
//
//	const lanes = 0
//	var stride = nonzero.Must[uint32](lanes)
//
// is known to panic before the program ever runs. nzcheck reports it:
//
//	stride.go:2:35: nonzero.Must: passed in a `0` argument
//
// Besides integer constants, an empty wide.Int128{} or wide.Uint128{}
// literal and wide constructor calls whose arguments are all constant zero
// are recognized.
//
// Flags:
//
//	-debug        log every inspected constructor call to stderr
//	-extra list   comma-separated importpath.Func constructors to check too
//
// Run it standalone with cmd/nzcheck, or through go vet:
//
//	go vet -vettool=$(which nzcheck) ./...
package nzcheck
