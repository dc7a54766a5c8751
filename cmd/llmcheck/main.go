package main

import (
	"context"
	"errors"
	"fmt"
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

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	logger := logging.NewWithWriter("error", os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lead := leads.Lead{
		Name:           "Dana Whitfield",
		Email:          "dana.whitfield@northbeam.com",
		Company:        "Northbeam Analytics",
		Title:          "VP Engineering",
		InquiryMessage: "Can we schedule a demo next week?",
		SourceChannel:  leads.ChannelPartnerReferral,
	}

	fmt.Println("Lead scoring provider check")
	fmt.Println("provider:", cfg.LLMProvider)

	client, model, err := bootstrap.BuildLLMClient(ctx, cfg, logger)
	if err != nil {
		fmt.Printf("❌ provider setup failed: %v\n", err)
		os.Exit(1)
	}
	if client == nil {
		fmt.Println("no provider credentials configured; only the heuristic path is available")
		printHeuristic(lead)
		return
	}
	fmt.Println("model:", model)

	scorer := scoring.NewLLMScorer(client, model, int32(cfg.LLMMaxTokens), cfg.LLMTimeout)

	start := time.Now()
	result, err := scorer.Score(ctx, lead)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Printf("❌ llm scoring failed (%v): %v\n", elapsed, err)
		switch {
		case errors.Is(err, scoring.ErrModelCall):
			fmt.Println("   the provider call failed; check credentials and network")
		case errors.Is(err, scoring.ErrMalformedReply):
			fmt.Println("   the model replied without a parseable JSON object")
		case errors.Is(err, scoring.ErrInvalidResult):
			fmt.Println("   the model replied with JSON outside the scoring contract")
		}
		fmt.Println("   the API would fall back to the heuristic for this lead:")
		printHeuristic(lead)
		os.Exit(1)
	}

	fmt.Printf("✅ llm path scored the lead (%v)\n", elapsed)
	fmt.Printf("   score=%d category=%s\n", result.Score, result.Category)
	fmt.Printf("   explanation: %s\n", result.Explanation)
}

func printHeuristic(lead leads.Lead) {
	result := scoring.NewHeuristicScorer().Score(lead)
	fmt.Printf("   heuristic: score=%d category=%s\n", result.Score, result.Category)
}
