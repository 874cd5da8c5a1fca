package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/maxshaw/qbuilder/gen"
)

func main() {
	cfg := gen.NewConfig()

	flag.StringVar(&cfg.Source, "source", cfg.Source, "Glob of Go files declaring the models")
	flag.StringVar(&cfg.Target, "target", cfg.Target, "Directory the generated helpers are written to")
	flag.StringVar(&cfg.Package, "package", cfg.Package, "Package name of the generated files")
	flag.StringVar(&cfg.Import, "import", cfg.Import, "Import path of the query builder")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := gen.Gen(cfg); err != nil {
		log.Fatal(err)
	}
}
