package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/salespulse/leadscore/internal/app/bootstrap"
	appconfig "github.com/salespulse/leadscore/internal/config"
	"github.com/salespulse/leadscore/internal/leads"
	"github.com/salespulse/leadscore/internal/scoring"
	"github.com/salespulse/leadscore/pkg/logging"
)

// record pairs a generated lead with its score, one JSON object per line.
type record struct {
	Lead   leads.Lead     `json:"lead"`
	Result scoring.Result `json:"result"`
}

func main() {
	count := flag.Int("n", 10, "number of leads to generate")
	seed := flag.Int64("seed", 0, "generator seed; 0 picks one from the clock")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()

	// Logs go to stderr so stdout stays pure NDJSON.
	logger := logging.NewWithWriter(cfg.LogLevel, os.Stderr)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx := context.Background()
	service, err := bootstrap.BuildScoringService(ctx, cfg, nil, logger)
	if err != nil {
		logger.Error("failed to build scoring service", "error", err)
		os.Exit(1)
	}

	gen := leads.NewGenerator(*seed)
	enc := json.NewEncoder(os.Stdout)

	for i := 0; i < *count; i++ {
		lead := gen.Generate()
		result, err := service.ScoreLead(ctx, lead)
		if err != nil {
			logger.Error("failed to score lead", "error", err, "company", lead.Company)
			os.Exit(1)
		}
		if err := enc.Encode(record{Lead: lead, Result: result}); err != nil {
			logger.Error("failed to encode record", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("scored generated leads", "count", *count, "seed", *seed)
}
