package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// maxLine bounds a single newline-delimited TDJSON object.
const maxLine = 16 << 20

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug bool
	log   *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "tdapi",
		Short:        "Typed TDJSON bindings: generator, decoder and record journal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newGenCommand(),
		newDecodeCommand(),
		newPushCommand(opts),
		newServeCommand(opts),
	)

	return root
}

// openInput returns stdin for "-" or no argument, the named file otherwise.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// eachLine calls fn for every non-blank line of r with its 1-based number.
// It returns the number of processed lines and of lines fn rejected.
func eachLine(r io.Reader, fn func(n int, line []byte) error) (total, failed int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLine)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		total++
		if err := fn(n, line); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return total, failed, fmt.Errorf("read input: %w", err)
	}

	return total, failed, nil
}

func extraOrDash(extra string) string {
	if extra == "" {
		return "-"
	}
	return extra
}
