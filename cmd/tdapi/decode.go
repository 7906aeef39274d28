package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode newline-delimited TDJSON objects",
		Long: "Decode reads one TDJSON object per line and prints its @type, class and @extra.\n" +
			"Lines that fail to decode are reported on stderr and make the command fail.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			return decodeLines(in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func decodeLines(in io.Reader, out, errOut io.Writer) error {
	total, failed, err := eachLine(in, func(n int, line []byte) error {
		obj, err := tdapi.UnmarshalObject(line)
		if err != nil {
			fmt.Fprintf(errOut, "line %d: %v\n", n, err)
			return err
		}
		fmt.Fprintf(out, "%s %s %s\n", obj.Constructor(), obj.Class(), extraOrDash(obj.GetExtra()))
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to decode", failed, total)
	}

	return nil
}
