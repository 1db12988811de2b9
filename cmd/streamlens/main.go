package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/streamlens/streamlens/internal/analyser"
	"github.com/streamlens/streamlens/internal/config"
	"github.com/streamlens/streamlens/internal/contexts"
	"github.com/streamlens/streamlens/internal/core/domain"
	"github.com/streamlens/streamlens/internal/ingest"
	"github.com/streamlens/streamlens/internal/keyphrase"
	"github.com/streamlens/streamlens/internal/observability"
	"github.com/streamlens/streamlens/internal/output"
)

func main() {
	chatPath := flag.String("chat", "", "Path to the chat export JSON file")
	streamID := flag.String("stream", "", "Stream identifier used in highlight links")
	contextPaths := flag.String("contexts", "", "Comma-separated context JSON files")
	top := flag.Int("top", 0, "Limit the report to the top N highlights by delta")
	jsonOut := flag.Bool("json", false, "Emit the report as JSON")

	flag.Parse()

	if *chatPath == "" || *streamID == "" {
		log.Fatalf("Usage: %s -chat <export.json> -stream <id> [-contexts a.json,b.json] [-top N] [-json]", os.Args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	if cfg.MetricsPort > 0 {
		go serveMetrics(&logger, reg, cfg.MetricsPort)
	}

	scale, err := analyser.NewIntensityScale(cfg.IntensityLevels, cfg.IntensityConstants, cfg.IntensityColors)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid intensity scale")
	}

	streamContexts, err := loadContexts(cfg, *contextPaths)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load contexts")
	}

	messages, err := ingest.ReadFile(*chatPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *chatPath).Msg("failed to read chat export")
	}

	extractor := keyphrase.New(keyphrase.Options{
		MaxNgramSize:         cfg.MaxNgramSize,
		MinNgramSize:         cfg.MinNgramSize,
		MaxKeyphrases:        cfg.MaxKeyphrases,
		MinKeyphrases:        cfg.MinKeyphrases,
		PerSize:              cfg.KeyphrasesPerSize,
		Stoppers:             cfg.Stoppers,
		ReplaceByWeightScore: cfg.ReplaceByWeightScore,
		StopPhrases:          cfg.StopPhrases,
		ExtraStopTerms:       cfg.ExtraStopTerms,
	})

	a, err := analyser.New(analyser.Options{
		StreamID:          *streamID,
		Window:            cfg.Window,
		KernelWidth:       cfg.KernelWidth,
		MinDuration:       cfg.MinDuration,
		ThresholdConstant: cfg.ThresholdConstant,
		Scale:             scale,
		Contexts:          streamContexts,
	}, extractor, metrics, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid analyser configuration")
	}

	res, err := a.Analyze(messages)
	if err != nil {
		logger.Fatal().Err(err).Msg("analysis failed")
	}

	rep := output.Report{
		StreamID:   *streamID,
		RunID:      res.RunID,
		Highlights: output.Select(res.Highlights, *top),
	}

	if *jsonOut {
		err = output.RenderJSON(os.Stdout, rep)
	} else {
		err = output.RenderText(os.Stdout, rep)
	}

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to render report")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func serveMetrics(logger *zerolog.Logger, reg *prometheus.Registry, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		logger.Error().Err(err).Msg("metrics server error")
	}
}

// loadContexts reads every configured context source plus any files named on
// the command line, in that order, and merges them.
func loadContexts(cfg *config.Config, flagPaths string) ([]domain.Context, error) {
	paths := make([]string, 0, len(cfg.ContextSources))
	paths = append(paths, cfg.ContextSources...)

	for _, p := range strings.Split(flagPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		return nil, nil
	}

	docs := make([][]byte, 0, len(paths))

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read context source %s: %w", p, err)
		}

		docs = append(docs, data)
	}

	return contexts.Parse(docs, cfg.ContextAutofix)
}
