package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"customer-rfm/internal"
	"customer-rfm/internal/export"
	"customer-rfm/internal/infra"
	"customer-rfm/internal/store"
)

type config struct {
	Report string
	Driver string
	DSN    string
	Output string
}

// parseConfig reads flags with environment fallback. Flags win; env fills
// whatever the caller left blank.
func parseConfig(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("rfm-report", flag.ContinueOnError)
	fs.StringVar(&cfg.Report, "report", "all", "Report to produce (champions, distribution, or all)")
	fs.StringVar(&cfg.Driver, "driver", "", "Database driver (sqlite or postgres)")
	fs.StringVar(&cfg.DSN, "dsn", "", "Database connection string")
	fs.StringVar(&cfg.Output, "output", "reports/", "Output folder path")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch cfg.Report {
	case "champions", "distribution", "all":
	default:
		return config{}, fmt.Errorf("unknown report %q (want champions, distribution, or all)", cfg.Report)
	}

	if cfg.Driver == "" {
		cfg.Driver = os.Getenv("RFM_DB_DRIVER")
	}
	if cfg.Driver == "" {
		cfg.Driver = "sqlite"
	}
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DATABASE_URL")
	}
	if cfg.DSN == "" {
		return config{}, fmt.Errorf("database connection string required (use -dsn or DATABASE_URL env)")
	}

	return cfg, nil
}

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := log.New(os.Stdout, "", log.Ltime)
	startTime := time.Now()
	logger.Printf("Starting report: %s", cfg.Report)

	bus := infra.NewBus()
	bus.Subscribe(infra.SourceRecordsLoaded, func(e infra.Event) {
		loaded := e.(infra.SourceRecordsLoadedEvent)
		logger.Printf("Loaded %d customers, %d orders, %d payments", loaded.Customers, loaded.Orders, loaded.Payments)
	})
	bus.Subscribe(infra.CustomersAggregated, func(e infra.Event) {
		logger.Printf("Aggregated %d unique customers", e.(infra.CustomersAggregatedEvent).Customers)
	})
	bus.Subscribe(infra.CustomersScored, func(e infra.Event) {
		logger.Printf("Scored %d customers", e.(infra.CustomersScoredEvent).Customers)
	})
	bus.Subscribe(infra.ReportExported, func(e infra.Event) {
		exported := e.(infra.ReportExportedEvent)
		logger.Printf("Exported %s (%d rows) to %s", exported.Report, exported.Rows, exported.Path)
	})

	ctx := context.Background()

	src, err := store.Open(ctx, store.Config{Driver: cfg.Driver, DSN: cfg.DSN})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer src.Close()

	scored, err := internal.Run(ctx, src, bus)
	if err != nil {
		log.Fatalf("Scoring failed: %v", err)
	}

	if cfg.Report == "champions" || cfg.Report == "all" {
		rows := scored.Champions()
		path, err := export.WriteJSON(cfg.Output, "champions", rows, len(rows))
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		bus.Publish(infra.ReportExportedEvent{Report: "champions", Path: path, Rows: len(rows)})
	}

	if cfg.Report == "distribution" || cfg.Report == "all" {
		rows := scored.FrequencyDistribution()
		path, err := export.WriteJSON(cfg.Output, "distribution", rows, len(rows))
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		bus.Publish(infra.ReportExportedEvent{Report: "distribution", Path: path, Rows: len(rows)})
	}

	logger.Printf("Execution time: %v", time.Since(startTime))
	logger.Printf("Report completed successfully")
}
