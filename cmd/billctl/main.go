// Command billctl inspects and maintains the sales ledger from a shell.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mmynk/billdesk/pkg/config"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "billctl:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "billctl",
		Usage:  "Star Furniture billing ledger tool",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "storage backend (sqlite, redis, memory)",
				EnvVars: []string{config.EnvStorageBackend},
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "SQLite database path",
				EnvVars: []string{config.EnvDBPath},
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "Redis connection URL",
				EnvVars: []string{config.EnvRedisURL},
			},
			&cli.StringFlag{
				Name:    "sales-key",
				Usage:   "store key holding the sales history",
				EnvVars: []string{config.EnvSalesKey},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{config.EnvLogLevel},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "history",
				Usage:  "list every recorded sale",
				Action: historyAction,
			},
			{
				Name:   "report",
				Usage:  "print sales totals per month",
				Action: reportAction,
			},
			{
				Name:  "record",
				Usage: "record a sale",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "sale date (YYYY-MM-DD), defaults to today"},
					&cli.StringFlag{Name: "total", Usage: "sale amount", Required: true},
				},
				Action: recordAction,
			},
			{
				Name:   "catalog",
				Usage:  "list the product catalogue",
				Action: catalogAction,
			},
			{
				Name:  "receipt",
				Usage: "fetch the open bill from a running server and write it as PDF",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "server", Value: "http://localhost:8080", Usage: "billing server base URL"},
					&cli.StringFlag{Name: "out", Value: "bill.pdf", Usage: "output file"},
					&cli.StringFlag{Name: "shop", Usage: "shop name printed on the receipt", EnvVars: []string{"BILLING_SHOP_NAME"}},
				},
				Action: receiptAction,
			},
		},
	}
}
