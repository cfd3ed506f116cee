// Package main provides the CLI entrypoint for enumtab.
//
// enumtab is a small enum-table toolchain that:
//   - Loads declarative YAML enum catalogs
//   - Validates the obligations the runtime tables only document
//     (unique values, ascending order for sorted search, fallback wiring)
//   - Generates Go source: typed constants, entry arrays, and lookup
//     tables bound to the declared strategies
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"enumtab/internal/catalog"
	"enumtab/internal/gen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "check":
		err = runCheck(os.Args[2:])
	case "gen":
		err = runGen(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "enumtab: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "enumtab:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("enumtab - enum lookup-table validation and code generation")
	fmt.Println("Commands:")
	fmt.Println("  check -f catalog.yaml                     validate a catalog")
	fmt.Println("  gen   -f catalog.yaml -o dir -pkg name    generate Go tables")
}

// loadValidated loads a catalog and runs validation, printing warnings and
// returning an error when the catalog has error diagnostics.
func loadValidated(path string) (*catalog.CatalogFile, error) {
	cf, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	res := catalog.Validate(cf)
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, "error:", e.String())
	}

	if res.HasErrors() {
		return nil, fmt.Errorf("catalog %s has %d error(s)", path, len(res.Errors))
	}

	return cf, nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("f", "", "path to the catalog YAML file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *file == "" {
		return fmt.Errorf("check: -f is required")
	}

	cf, err := loadValidated(*file)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d enum(s) OK\n", *file, len(cf.Enums))

	return nil
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	file := fs.String("f", "", "path to the catalog YAML file")
	out := fs.String("o", ".", "output directory for generated files")
	pkg := fs.String("pkg", "", "package name for generated files")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *file == "" {
		return fmt.Errorf("gen: -f is required")
	}

	if *pkg == "" {
		return fmt.Errorf("gen: -pkg is required")
	}

	cf, err := loadValidated(*file)
	if err != nil {
		return err
	}

	files, err := gen.GenerateAll(cf, *pkg)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, *out); err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println("wrote", filepath.Join(*out, f.Filename))
	}

	return nil
}
