// Command atvremote-keygen generates the KeyCode constants of pkg/wire from
// keycodes.yaml.
//
// Usage:
//
//	atvremote-keygen -input keycodes.yaml -output keycode_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	input := flag.String("input", "", "Path to the key code YAML table")
	output := flag.String("output", "", "Output path for the generated Go file")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: atvremote-keygen -input <yaml> -output <go file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string) error {
	table, err := LoadKeyTable(input)
	if err != nil {
		return fmt.Errorf("loading key table: %w", err)
	}
	code, err := Generate(table, filepath.Base(input))
	if err != nil {
		return fmt.Errorf("generating key codes: %w", err)
	}
	if err := writeFormatted(output, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s (%d key codes)\n", output, len(table.Codes))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
