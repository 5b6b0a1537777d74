package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/urfave/cli/v2"

	"github.com/mmynk/billdesk/internal/calculator"
	"github.com/mmynk/billdesk/internal/catalog"
	"github.com/mmynk/billdesk/internal/ledger"
	"github.com/mmynk/billdesk/internal/receipt"
	"github.com/mmynk/billdesk/internal/service"
	"github.com/mmynk/billdesk/internal/storage"
	"github.com/mmynk/billdesk/internal/storage/backend"
	"github.com/mmynk/billdesk/pkg/config"
	"github.com/mmynk/billdesk/pkg/logging"
)

var errSaleNotSaved = errors.New("sale could not be saved to the store")

// loadConfig reads the environment and applies global flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.IsSet("backend") {
		cfg.Storage.Backend = c.String("backend")
	}
	if c.IsSet("db") {
		cfg.Storage.SQLitePath = c.String("db")
	}
	if c.IsSet("redis-url") {
		cfg.Redis.URL = c.String("redis-url")
	}
	if c.IsSet("sales-key") {
		cfg.Ledger.SalesKey = c.String("sales-key")
	}
	cfg.App.LogLevel = c.String("log-level")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Setup(cfg.App.LogLevel)
	return cfg, nil
}

// withLedger opens the configured store for the duration of fn.
func withLedger(c *cli.Context, fn func(*ledger.Ledger) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := backend.Open(c.Context, cfg)
	if err != nil {
		return err
	}
	defer func(s storage.Store) { _ = s.Close() }(store)

	return fn(ledger.New(store, cfg.Ledger.SalesKey))
}

func historyAction(c *cli.Context) error {
	return withLedger(c, func(l *ledger.Ledger) error {
		sales := l.LoadHistory(c.Context)
		if len(sales) == 0 {
			fmt.Fprintln(c.App.Writer, "No sales recorded yet.")
			return nil
		}
		tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tTOTAL\tCREATED AT")
		for _, s := range sales {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Date, calculator.FormatCurrency(s.Total), s.CreatedAt)
		}
		return tw.Flush()
	})
}

func reportAction(c *cli.Context) error {
	return withLedger(c, func(l *ledger.Ledger) error {
		months := l.BuildMonthlyReport(c.Context)
		if len(months) == 0 {
			fmt.Fprintln(c.App.Writer, "No sales recorded yet.")
			return nil
		}
		tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "MONTH\tTOTAL")
		for _, m := range months {
			fmt.Fprintf(tw, "%s\t%s\n", m.Month, calculator.FormatCurrency(m.Total))
		}
		return tw.Flush()
	})
}

func recordAction(c *cli.Context) error {
	total := calculator.Round2(calculator.ParseAmount(c.String("total")))
	date := c.String("date")
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	return withLedger(c, func(l *ledger.Ledger) error {
		sale, durability, err := l.RecordSale(c.Context, date, total)
		if err != nil {
			return err
		}
		if durability != ledger.Persisted {
			return errSaleNotSaved
		}
		fmt.Fprintf(c.App.Writer, "Recorded %s on %s\n", calculator.FormatCurrency(sale.Total), sale.Date)
		return nil
	})
}

func catalogAction(c *cli.Context) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tTAG")
	for _, p := range catalog.Default().Products() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, calculator.FormatCurrency(p.Price), p.Tag)
	}
	return tw.Flush()
}

func receiptAction(c *cli.Context) error {
	client := service.NewBillingServiceClient(http.DefaultClient, c.String("server"))
	resp, err := client.GetCart(c.Context, connect.NewRequest(&service.Empty{}))
	if err != nil {
		return fmt.Errorf("fetch bill: %w", err)
	}

	out := c.String("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := receipt.Render(f, resp.Msg.Cart, receipt.Options{ShopName: c.String("shop")}); err != nil {
		f.Close()
		return fmt.Errorf("render receipt: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s (%d lines, %s)\n", out, len(resp.Msg.Cart.Lines), resp.Msg.Cart.GrandTotalDisplay)
	return nil
}
