package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexbilevskiy/tdapi/internal/gen"
	"github.com/alexbilevskiy/tdapi/internal/tl"
)

func newGenCommand() *cobra.Command {
	var schemaPath, out, pkg string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go bindings from a TL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := generate(schemaPath, out, pkg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "schema/td_api.tl", "TL schema file")
	cmd.Flags().StringVar(&out, "out", "pkg/tdapi", "output directory")
	cmd.Flags().StringVar(&pkg, "package", "tdapi", "generated package name")

	return cmd
}

func generate(schemaPath, out, pkg string) (int, error) {
	src, err := os.ReadFile(schemaPath)
	if err != nil {
		return 0, fmt.Errorf("read schema: %w", err)
	}
	s, err := tl.Parse(schemaPath, src)
	if err != nil {
		return 0, err
	}
	files, err := gen.Generate(s, gen.Options{Package: pkg})
	if err != nil {
		return 0, err
	}
	if err := gen.Write(out, files); err != nil {
		return 0, err
	}

	return len(files), nil
}
