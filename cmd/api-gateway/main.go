package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/earnings"
)

var config struct {
	Addr              string        `long:"addr" env:"EARNINGS_GATEWAY_ADDR" description:"http listen addr" default:":8001"`
	ExplorerURL       string        `long:"explorer-url" env:"EARNINGS_GATEWAY_EXPLORER_URL" description:"mempool.space compatible explorer url" default:"https://mempool.space"`
	Network           string        `long:"network" env:"EARNINGS_GATEWAY_NETWORK" description:"mainnet, testnet or signet" default:"mainnet"`
	ExplorerRPS       int           `long:"explorer-rps" env:"EARNINGS_GATEWAY_EXPLORER_RPS" description:"explorer requests per second, 0 disables the limit" default:"5"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"EARNINGS_GATEWAY_HTTP_TIMEOUT" description:"explorer request timeout" default:"10s"`
	UserAgent         string        `long:"user-agent" env:"EARNINGS_GATEWAY_USER_AGENT" description:"explorer user agent" default:"blockinsight7000-earnings"`
	DifficultyRefresh time.Duration `long:"difficulty-refresh" env:"EARNINGS_GATEWAY_DIFFICULTY_REFRESH" description:"re-resolve network difficulty at this interval, 0 keeps the first value" default:"10m"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	client, err := earnings.NewRotating(earnings.Config{
		ExplorerURL: config.ExplorerURL,
		Network:     config.Network,
		UserAgent:   config.UserAgent,
		Timeout:     config.HTTPTimeout,
		RPS:         config.ExplorerRPS,
	}, logger.Named("earnings"))
	if err != nil {
		logger.Fatal("Failed to create earnings client", zap.Error(err))
	}

	go func() {
		if err := client.Run(ctx, config.DifficultyRefresh); !errors.Is(err, context.Canceled) {
			logger.Error("Earnings client refresh stopped", zap.Error(err))
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/", transport.NewEarningsHandler(client, logger.Named("earningsHandler")))
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.Addr),
		zap.String("network", config.Network),
		zap.String("explorer", config.ExplorerURL),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
