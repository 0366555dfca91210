package main

import (
	"flag"
	"os"

	"periodicsynth/cmd/synth/config"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the synthesis config")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	ok := run(logger.Sugar(), *configPath)
	logger.Sync()
	if !ok {
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger, configPath string) bool {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Errorw("[Config] failed to load", "path", configPath, "error", err)
		return false
	}
	log.Infow("[Config] loaded", "samples", cfg.Samples, "voices", len(cfg.Voices))

	samples, err := config.Render(cfg)
	if err != nil {
		log.Errorw("[Synth] failed to render", "error", err)
		return false
	}

	if err := config.Write(cfg, samples); err != nil {
		log.Errorw("[Output] failed to write", "path", cfg.Output.Path, "error", err)
		return false
	}
	log.Infow("[Output] samples saved", "path", cfg.Output.Path, "format", cfg.Output.Format, "length", len(samples))
	return true
}
