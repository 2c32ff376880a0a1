package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/hostmon/collector/internal/config"
	"github.com/hostmon/collector/internal/heuristics"
	"github.com/hostmon/collector/internal/hostinfo"
	"github.com/hostmon/collector/internal/logger"
	"github.com/hostmon/collector/internal/server"
	"github.com/hostmon/collector/internal/workers"
)

const introspectionAddr = ":8080"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("collector")

	userCfg, err := config.ParseArgs()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing arguments")
	}

	host := hostinfo.New()
	resolver := config.NewResolver(nil, host, heuristics.New(host, log), log)

	cfg, err := resolver.Resolve(userCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	log.Info().Stringer("config", cfg).Msg("configuration resolved")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	intro := server.New(introspectionAddr, cfg, log)
	go intro.Run(ctx)

	workers.New(workers.NewHeartbeat(cfg, log)).Run(ctx)

	log.Info().Msg("collector stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
