package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/appnet-org/hellotime/pkg/logging"
	"github.com/appnet-org/hellotime/pkg/rpc"
	"github.com/appnet-org/hellotime/pkg/rpc/element"
	"github.com/appnet-org/hellotime/pkg/serializer"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		logging.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}

// withClient dials the configured server and hands a HelloService client to fn.
func withClient(ctx context.Context, c *cli.Command, fn func(context.Context, pb.HelloServiceClient) error) error {
	codec, err := serializer.ByName(c.String("serializer"))
	if err != nil {
		return err
	}

	var elements []element.RPCElement
	if c.Bool("trace") {
		elements = append(elements, element.NewLoggingElement(true))
	}

	client, err := rpc.NewClient(codec, c.String("addr"), elements)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, c.Duration("timeout"))
	defer cancel()
	return fn(ctx, pb.NewHelloServiceClient(client))
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "hello-time-client",
		Usage: "Call HelloService on a hello-time-server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "server address",
				Sources: cli.EnvVars("SERVER_ADDR"),
				Value:   "localhost:50051",
			},
			&cli.StringFlag{
				Name:    "serializer",
				Usage:   "wire encoding (proto, capnp)",
				Sources: cli.EnvVars("SERIALIZER"),
				Value:   "proto",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-call deadline",
				Value: 5 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log every request and response",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logging.Init(&logging.Config{Level: c.String("log-level"), Format: "console"}); err != nil {
				return ctx, fmt.Errorf("failed to initialize logging: %w", err)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "hello",
				Usage:     "Send a greeting request",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withClient(ctx, c, func(ctx context.Context, client pb.HelloServiceClient) error {
						resp, err := client.Hello(ctx, &pb.HelloRequest{Name: c.Args().First()})
						if err != nil {
							return err
						}
						fmt.Fprintln(out, resp.GetMessage())
						return nil
					})
				},
			},
			{
				Name:  "time",
				Usage: "Ask the server for its local time",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withClient(ctx, c, func(ctx context.Context, client pb.HelloServiceClient) error {
						resp, err := client.ServerTime(ctx, &pb.ServerTimeRequest{})
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "%02d:%02d:%02d %s (%s)\n",
							resp.GetHours(), resp.GetMinutes(), resp.GetSeconds(), resp.GetTimezone(), resp.GetLocation())
						return nil
					})
				},
			},
		},
	}
}
