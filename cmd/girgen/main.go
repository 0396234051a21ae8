// Command girgen generates TypeScript declaration files from GObject
// Introspection Repository (GIR) documents, and lets you inspect the
// symbol table it builds along the way.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("expected 'generate' or 'inspect' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		flags := registerGenerateFlags(generateCmd)
		if err := generateCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse generate command")
			os.Exit(1)
		}
		generate(os.Stdout, os.Stderr, flags, generateCmd.Args())
	case "inspect":
		inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)
		flags := registerInspectFlags(inspectCmd)
		if err := inspectCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse inspect command")
			os.Exit(1)
		}
		inspect(os.Stdout, os.Stderr, flags, inspectCmd.Args())
	default:
		fmt.Println("expected 'generate' or 'inspect' subcommand")
		os.Exit(1)
	}
}
