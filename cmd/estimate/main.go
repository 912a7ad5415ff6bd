package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/earnings"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/workerpool"
)

var config struct {
	Hashrate    []float64     `long:"hashrate" env:"EARNINGS_ESTIMATE_HASHRATE" env-delim:"," description:"hashrate in TH/s, may be repeated" default:"100"`
	Difficulty  float64       `long:"difficulty" env:"EARNINGS_ESTIMATE_DIFFICULTY" description:"difficulty override, 0 uses the network difficulty"`
	Currency    string        `long:"currency" env:"EARNINGS_ESTIMATE_CURRENCY" description:"fiat currency code for conversion"`
	Watch       time.Duration `long:"watch" env:"EARNINGS_ESTIMATE_WATCH" description:"re-run the estimate at this interval"`
	Workers     int           `long:"workers" env:"EARNINGS_ESTIMATE_WORKERS" description:"concurrent estimates" default:"4"`
	ExplorerURL string        `long:"explorer-url" env:"EARNINGS_ESTIMATE_EXPLORER_URL" description:"mempool.space compatible explorer url" default:"https://mempool.space"`
	Network     string        `long:"network" env:"EARNINGS_ESTIMATE_NETWORK" description:"mainnet, testnet or signet" default:"mainnet"`
	ExplorerRPS int           `long:"explorer-rps" env:"EARNINGS_ESTIMATE_EXPLORER_RPS" description:"explorer requests per second, 0 disables the limit" default:"5"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"EARNINGS_ESTIMATE_HTTP_TIMEOUT" description:"explorer request timeout" default:"10s"`
	UserAgent   string        `long:"user-agent" env:"EARNINGS_ESTIMATE_USER_AGENT" description:"explorer user agent" default:"blockinsight7000-earnings"`
}

type row struct {
	hashrateTHs float64
	btcPerDay   float64
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

	err = clock.Repeat(ctx, config.Watch, func(ctx context.Context) error {
		runErr := run(ctx, os.Stdout, logger)
		if runErr != nil && config.Watch > 0 && ctx.Err() == nil {
			logger.Warn("Estimate failed, retrying on next tick", zap.Error(runErr))
			return nil
		}
		return runErr
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Estimate failed", zap.Error(err))
	}
}

// run builds a fresh client so every watch tick resolves the current difficulty.
func run(ctx context.Context, out io.Writer, logger *zap.Logger) error {
	client, err := earnings.New(earnings.Config{
		ExplorerURL: config.ExplorerURL,
		Network:     config.Network,
		UserAgent:   config.UserAgent,
		Timeout:     config.HTTPTimeout,
		RPS:         config.ExplorerRPS,
	}, logger.Named("earnings"))
	if err != nil {
		return err
	}

	var override *float64
	if config.Difficulty != 0 {
		override = &config.Difficulty
	}

	rows, err := workerpool.Map(ctx, config.Workers, config.Hashrate, func(ctx context.Context, h float64) (row, error) {
		btc, err := client.RewardPerDay(ctx, &h, override)
		if err != nil {
			return row{}, fmt.Errorf("hashrate %g TH/s: %w", h, err)
		}
		return row{hashrateTHs: h, btcPerDay: btc}, nil
	})
	if err != nil {
		return err
	}

	difficulty := config.Difficulty
	if override == nil {
		if difficulty, err = client.Difficulty(ctx); err != nil {
			return err
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(config.Currency))
	var rate float64
	if currency != "" {
		rates, err := client.Prices(ctx)
		if err != nil {
			return err
		}
		if rate, err = rates.Rate(currency); err != nil {
			return err
		}
	}

	return render(out, difficulty, currency, rate, rows)
}

func render(out io.Writer, difficulty float64, currency string, rate float64, rows []row) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "difficulty\t%.0f\n", difficulty)
	if currency != "" {
		fmt.Fprintf(w, "BTC/%s\t%.2f\n", currency, rate)
	}
	fmt.Fprintln(w)

	if currency != "" {
		fmt.Fprintf(w, "TH/s\tper day\t%s per day\n", currency)
	} else {
		fmt.Fprintln(w, "TH/s\tper day")
	}
	for _, r := range rows {
		amount, err := btcutil.NewAmount(r.btcPerDay)
		if err != nil {
			return err
		}
		if currency != "" {
			fmt.Fprintf(w, "%g\t%s\t%.2f\n", r.hashrateTHs, amount, r.btcPerDay*rate)
			continue
		}
		fmt.Fprintf(w, "%g\t%s\n", r.hashrateTHs, amount)
	}
	return w.Flush()
}
