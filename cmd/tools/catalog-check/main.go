// cmd/tools/catalog-check/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"intent-resolver/pkg/catalog"
)

func main() {
	path := flag.String("path", "", "Path to a catalog JSON file (empty = built-in catalog)")
	flag.Parse()

	cat := catalog.Default()
	source := "built-in"
	if *path != "" {
		var err error
		cat, err = catalog.Load(*path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog validation failed: %v\n", err)
			os.Exit(1)
		}
		source = *path
	}

	fmt.Printf("Catalog OK (%s): %d operations\n\n", source, cat.Len())
	fmt.Printf("%-32s %-10s %s\n", "OPERATION", "REQUIRED", "PARAMETERS")
	fmt.Println(strings.Repeat("-", 78))
	for _, name := range cat.Names() {
		op, _ := cat.Get(name)
		params := make([]string, 0, len(op.Parameters))
		for p := range op.Parameters {
			params = append(params, p)
		}
		sort.Strings(params)
		fmt.Printf("%-32s %-10d %s\n", op.Name, len(op.Required), strings.Join(params, ", "))
	}
}
