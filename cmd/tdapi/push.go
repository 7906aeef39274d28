package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/alexbilevskiy/tdapi/internal/config"
	"github.com/alexbilevskiy/tdapi/internal/journal"
	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

func newPushCommand(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "push [file|-]",
		Short: "Append newline-delimited TDJSON objects to a journal server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("dial %s: %w", addr, err)
			}
			defer conn.Close()

			return pushLines(cmd.Context(), opts.log, journal.NewClient(conn), in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultListen, "journal server address")

	return cmd
}

func pushLines(ctx context.Context, log *slog.Logger, client *journal.Client, in io.Reader, out io.Writer) error {
	total, failed, err := eachLine(in, func(n int, line []byte) error {
		obj, err := tdapi.UnmarshalObject(line)
		if err != nil {
			log.Error("failed to decode line", "line", n, "error", err)
			return err
		}
		res, err := client.Append(ctx, obj)
		if err != nil {
			log.Error("failed to append", "line", n, "constructor", obj.Constructor(), "error", err)
			return err
		}
		fmt.Fprintf(out, "%s %s %s\n", res.Id, res.Constructor, extraOrDash(res.Extra))
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to push", failed, total)
	}

	return nil
}
