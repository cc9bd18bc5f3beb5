package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cellwire/cellwire/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	minArityKey = "min"
	maxArityKey = "max"
	outKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate the N-ary zip view combinators",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  minArityKey,
				Usage: "Smallest zip arity to generate",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  maxArityKey,
				Usage: "Largest zip arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "cells/zip.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Print("zip codegen started")
	defer func() {
		log.Printf("zip codegen finished in %v", time.Since(start))
	}()

	contents := templates.ZipGen(int(cmd.Int(minArityKey)), int(cmd.Int(maxArityKey)))
	return os.WriteFile(cmd.String(outKey), []byte(contents), 0o644)
}
