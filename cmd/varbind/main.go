package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"

	"xdao.co/varbin/evalconfig"
	"xdao.co/varbin/evalrpc"
	"xdao.co/varbin/function"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, out io.Writer, errOut io.Writer) int {
	fs := pflag.NewFlagSet("varbind", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	listen := fs.String("listen", "127.0.0.1:7777", "listen address")
	configPath := fs.String("config", "", "config file (.json, .yaml or .yml)")
	logLevel := fs.String("log-level", "", "log level (debug|info|warn|error)")
	maxMsgBytes := fs.Int("max-msg-bytes", 0, "max gRPC message size (0 = grpc default)")
	listFunctions := fs.Bool("list-functions", false, "List served functions and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg evalconfig.Config
	if *configPath != "" {
		var err error
		if cfg, err = evalconfig.LoadFile(*configPath); err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	}
	if fs.Changed("listen") || cfg.Listen == "" {
		cfg.Listen = *listen
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("max-msg-bytes") {
		cfg.MaxMsgBytes = *maxMsgBytes
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	catalog, err := cfg.Catalog(function.Default())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if *listFunctions {
		for _, s := range catalog.List(function.CategoryAll) {
			_, _ = fmt.Fprintf(out, "%s\t%s\n", evalrpc.FullMethod(s), s.Signature())
		}
		return 0
	}

	logger := slog.New(slog.NewJSONHandler(errOut, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Error("listen failed", "address", cfg.Listen, "error", err)
		return 1
	}
	defer lis.Close()

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(evalrpc.UnaryLogger(logger))}
	if cfg.MaxMsgBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxMsgBytes), grpc.MaxSendMsgSize(cfg.MaxMsgBytes))
	}
	s := grpc.NewServer(opts...)
	evalrpc.RegisterScalarServer(s, catalog, &evalrpc.Server{Catalog: catalog})

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	logger.Info("varbind listening",
		"address", lis.Addr().String(),
		"functions", len(catalog.Names(function.CategoryAll)),
		"overloads", len(catalog.List(function.CategoryAll)),
	)
	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.Error("serve failed", "error", err)
		return 1
	}
	logger.Info("varbind stopped")
	return 0
}
