package nzcheck

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const (
	nonzeroPath = "github.com/hupe1980/nonzero"
	widePath    = nonzeroPath + "/wide"
)

// Analyzer reports nonzero.Must calls with a provably zero argument.
var Analyzer = &analysis.Analyzer{
	Name:     "nzcheck",
	Doc:      "report nonzero.Must calls whose argument is provably zero",
	URL:      "https://pkg.go.dev/github.com/hupe1980/nonzero/nzcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	debug bool
	extra funcList
)

func init() {
	Analyzer.Flags.BoolVar(&debug, "debug", false, "log every inspected constructor call to stderr")
	Analyzer.Flags.Var(&extra, "extra", "comma-separated importpath.Func constructors to check in addition to nonzero.Must")
}

// funcKey names a package-level function.
type funcKey struct {
	pkg  string
	name string
}

func (k funcKey) String() string {
	return k.pkg + "." + k.name
}

// funcList is a flag.Value holding importpath.Func entries.
type funcList []funcKey

func (l *funcList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for _, k := range *l {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, ",")
}

func (l *funcList) Set(s string) error {
	var out funcList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// Import paths may contain dots; the function name follows the last one.
		i := strings.LastIndex(part, ".")
		if i <= 0 || i == len(part)-1 {
			return fmt.Errorf("invalid constructor %q: want importpath.Func", part)
		}
		out = append(out, funcKey{pkg: part[:i], name: part[i+1:]})
	}
	*l = out
	return nil
}

// wideZeroCtors are the wide constructors that yield zero when every
// argument is zero.
var wideZeroCtors = map[string]bool{
	"U128":          true,
	"I128":          true,
	"Uint128From64": true,
	"Int128From64":  true,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	log := newLogger(logOutput, debug).withPackage(pass.Pkg.Path())

	targets := map[funcKey]bool{{pkg: nonzeroPath, name: "Must"}: true}
	for _, k := range extra {
		targets[k] = true
	}

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		key, ok := calleeKey(pass.TypesInfo, call)
		if !ok || !targets[key] || len(call.Args) != 1 {
			return
		}

		zero := isZero(pass.TypesInfo, call.Args[0])
		log.call(pass.Fset, call.Pos(), key.String(), zero)
		if zero {
			pass.Reportf(call.Args[0].Pos(), "%s.%s: passed in a `0` argument", pkgName(key.pkg), key.name)
		}
	})

	return nil, nil
}

// calleeKey identifies the package-level function called by call, looking
// through explicit instantiations such as Must[uint8](...).
func calleeKey(info *types.Info, call *ast.CallExpr) (funcKey, bool) {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return funcKey{}, false
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return funcKey{}, false
	}
	return funcKey{pkg: fn.Pkg().Path(), name: fn.Name()}, true
}

// isZero reports whether expr is known to evaluate to zero.
func isZero(info *types.Info, expr ast.Expr) bool {
	expr = ast.Unparen(expr)

	if tv, ok := info.Types[expr]; ok && tv.Value != nil {
		switch tv.Value.Kind() {
		case constant.Int, constant.Float:
			return constant.Sign(tv.Value) == 0
		}
		return false
	}

	switch e := expr.(type) {
	case *ast.CompositeLit:
		// wide types have only unexported fields, so outside their package
		// the only literal is the empty one.
		return len(e.Elts) == 0 && isWideType(info.TypeOf(e))
	case *ast.CallExpr:
		key, ok := calleeKey(info, e)
		if !ok || key.pkg != widePath || !wideZeroCtors[key.name] {
			return false
		}
		for _, arg := range e.Args {
			if !isZero(info, arg) {
				return false
			}
		}
		return true
	}
	return false
}

func isWideType(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != widePath {
		return false
	}
	return obj.Name() == "Int128" || obj.Name() == "Uint128"
}

func pkgName(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
