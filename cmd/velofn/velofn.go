// Command velofn lists the functions in Go packages which can serve as native
// Velo methods, in the form of entries for a bootstrap attribute table.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore string
	var internal string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&internal, "internal", "github.com/zephyrtronium/velo/internal", "import path of the package defining NativeFn")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{internal}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	if len(pkgs) == 0 {
		fail("no packages loaded")
	}
	fn := nativeFn(pkgs[0])
	if len(pkgs) == 1 {
		// With no other packages named, list the defining package itself.
		pkgs = append(pkgs, pkgs[0])
	}
	results := []string{}
	for _, pkg := range pkgs[1:] {
		results = append(results, find(pkg.Types.Scope(), fn, mre, ire)...)
	}
	sort.Strings(results)
	for _, name := range results {
		attr := attrName(name, mre)
		fmt.Printf("\t\t%q: vm.NewMethod(%q, %s),\n", attr, attr, name)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// nativeFn finds the underlying type of NativeFn in pkg.
func nativeFn(pkg *packages.Package) types.Type {
	if pkg.Types == nil {
		fail(pkg.PkgPath, "has no type information")
	}
	r := pkg.Types.Scope().Lookup("NativeFn")
	if r == nil {
		fail(pkg.Types.Name(), "has no definition of NativeFn")
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Types.Name(), "has incorrect definition of NativeFn:", r)
	}
	return t.Type().Underlying()
}

// find lists the names in scope which match mre, don't match ire, and are
// functions assignable to fn.
func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		obj, ok := scope.Lookup(name).(*types.Func)
		if !ok {
			continue
		}
		if types.AssignableTo(obj.Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}

// attrName derives an attribute name from a function name by removing the
// part up to the end of the match, then lowercasing the first letter. Thus
// -match ^String turns StringConcat into concat.
func attrName(name string, mre *regexp.Regexp) string {
	if mre.String() != "." {
		k := mre.FindStringIndex(name)
		name = name[k[1]:]
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
