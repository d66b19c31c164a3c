package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/windowhop/audio"
	"github.com/milk9111/windowhop/config"
	"github.com/milk9111/windowhop/prefabs"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const cueVolume = 0.5

func main() {
	configPath := flag.String("config", "config/game.toml", "path to the TOML config")
	levelIndex := flag.Int("level", -1, "start level index, overrides the config")
	debug := flag.Bool("debug", false, "enable debug overlay and debug logging")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	flag.Parse()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	prefabs.DiskDir = cfg.Prefabs.Dir
	start := cfg.World.StartLevel
	if *levelIndex >= 0 {
		start = *levelIndex
	}

	cues := audio.NewPlayer(ebitenaudio.NewContext(int(audio.SampleRate)), cueVolume, logger.Named("audio"))

	game, err := NewGame(cfg, start, *debug, cues, logger)
	if err != nil {
		logger.Fatal("init game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width/2, cfg.Window.Height/2)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(game); err != nil {
		_ = game.Close()
		logger.Fatal("game stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
