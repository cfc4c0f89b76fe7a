package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/status-im/coingecko-go/coingecko"
	"github.com/status-im/coingecko-go/config"
	"github.com/status-im/coingecko-go/metrics"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config file")
	ids := flag.String("ids", "bitcoin,ethereum", "comma-separated coin ids")
	currencies := flag.String("currencies", "usd", "comma-separated vs currencies")
	markets := flag.Bool("markets", false, "fetch market data instead of simple prices")
	interval := flag.Duration("interval", 0, "poll interval, 0 for a single fetch")
	metricsAddr := flag.String("metrics-addr", "", "address to serve /metrics on, empty to disable")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal("Error loading config:", err)
		}
		log.Printf("Config file %s not found, using defaults", *configPath)
		cfg = &config.Config{}
	}

	opts := cfg.ClientOptions()
	opts.Metrics = metrics.NewMetricsWriter("coingecko")
	client := coingecko.New(opts)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()
	}()

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("Serving metrics on %s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("Metrics server failed: %v", err)
			}
		}()
	}

	fetch := func() {
		if *markets {
			fetchMarkets(ctx, client, *currencies, *ids)
		} else {
			fetchPrices(ctx, client, *ids, *currencies)
		}
	}

	fetch()

	if *interval <= 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}

func fetchPrices(ctx context.Context, client *coingecko.Client, ids, currencies string) {
	prices, err := client.GetSimplePrice(ctx,
		strings.Split(ids, ","),
		strings.Split(currencies, ","),
		&coingecko.PriceParams{Include24hrChange: true})
	if err != nil {
		log.Printf("Error fetching prices: %v", err)
		return
	}

	printJSON(prices)
}

func fetchMarkets(ctx context.Context, client *coingecko.Client, vsCurrency, ids string) {
	vsCurrency = strings.Split(vsCurrency, ",")[0]
	coins, err := client.GetCoinsMarkets(ctx, vsCurrency, &coingecko.MarketsParams{
		IDs:   strings.Split(ids, ","),
		Order: "market_cap_desc",
	})
	if err != nil {
		log.Printf("Error fetching markets: %v", err)
		return
	}

	printJSON(coins)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Error encoding output: %v", err)
		return
	}
	os.Stdout.Write(append(data, '\n'))
}
