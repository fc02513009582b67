// Command nzcheck reports nonzero.Must calls whose argument is provably zero.
//
// Usage:
//
//	nzcheck [-debug] [-extra importpath.Func,...] packages...
//	go vet -vettool=$(which nzcheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/hupe1980/nonzero/nzcheck"
)

func main() {
	singlechecker.Main(nzcheck.Analyzer)
}
