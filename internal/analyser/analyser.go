// Package analyser turns an ordered chat message log into annotated
// highlights. Every stage is a deterministic transform over the previous
// stage's complete output; the package does no I/O.
package analyser

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/streamlens/streamlens/internal/contexts"
	"github.com/streamlens/streamlens/internal/core/domain"
	cerrors "github.com/streamlens/streamlens/internal/core/errors"
	"github.com/streamlens/streamlens/internal/keyphrase"
	"github.com/streamlens/streamlens/internal/observability"
)

// Log key constants for analysis runs.
const (
	logKeyRunID    = "run_id"
	logKeyStreamID = "stream_id"
	logKeyStage    = "stage"
)

// Options carries the per-stream tuning of one analyser. All fields are
// read-only inputs; an Analyser never mutates them during a run.
type Options struct {
	StreamID          string
	Window            int
	KernelWidth       int
	MinDuration       int
	ThresholdConstant float64
	Scale             []domain.Intensity
	Contexts          []domain.Context
}

// Analyser runs the full highlight pipeline. It holds no per-run state, so a
// single instance may analyze different streams concurrently.
type Analyser struct {
	opts      Options
	extractor *keyphrase.Extractor
	metrics   *observability.Metrics
	logger    *zerolog.Logger
}

// New validates the configuration and builds an analyser. Configuration
// errors surface here, before any stage can run.
func New(opts Options, extractor *keyphrase.Extractor, metrics *observability.Metrics, logger *zerolog.Logger) (*Analyser, error) {
	if opts.Window <= 1 {
		return nil, cerrors.ErrWindowTooSmall
	}

	return &Analyser{
		opts:      opts,
		extractor: extractor,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Result is the outcome of one analysis run.
type Result struct {
	RunID      string
	Highlights []*domain.Highlight
}

// Analyze runs every pipeline stage over the refined messages and returns the
// retained highlights ordered by start time. The input must be sorted by time
// and deduplicated; it is never modified.
func (a *Analyser) Analyze(messages []domain.Message) (*Result, error) {
	started := time.Now()
	runID := uuid.NewString()

	log := a.logger.With().
		Str(logKeyRunID, runID).
		Str(logKeyStreamID, a.opts.StreamID).
		Logger()

	frequency, err := Frequency(messages)
	if err != nil {
		a.metrics.ObserveRun(observability.RunStatusError, time.Since(started))

		return nil, err
	}

	log.Debug().Str(logKeyStage, "frequency").Int("seconds", len(frequency)).Msg("built frequency table")

	movAvg, err := MovingAverage(frequency, a.opts.Window)
	if err != nil {
		a.metrics.ObserveRun(observability.RunStatusError, time.Since(started))

		return nil, err
	}

	smooth := Smooth(movAvg, a.opts.KernelWidth)
	annotation := Annotate(smooth)

	detected := Detect(a.opts.StreamID, annotation, smooth, a.opts.MinDuration)
	log.Debug().Str(logKeyStage, "detect").Int("candidates", len(detected)).Msg("detected highlight candidates")

	highlights := Correct(detected, a.opts.ThresholdConstant)
	a.metrics.AddDropped(observability.DropReasonCorrected, len(detected)-len(highlights))

	ApplyIntensities(highlights, a.opts.Scale)
	Attribute(highlights, messages)

	highlights = a.extractKeyphrases(&log, highlights)

	contexts.Classify(highlights, a.opts.Contexts)

	a.metrics.AddMessages(len(messages))
	a.metrics.AddRetained(len(highlights))
	a.metrics.ObserveRun(observability.RunStatusOK, time.Since(started))

	log.Info().
		Int("messages", len(messages)).
		Int("highlights", len(highlights)).
		Dur("took", time.Since(started)).
		Msg("analysis finished")

	return &Result{RunID: runID, Highlights: highlights}, nil
}

// extractKeyphrases fills in each highlight's keywords and drops highlights
// with no surviving keyphrase. Low-signal intervals are expected; the drop is
// silent apart from a debug line.
func (a *Analyser) extractKeyphrases(log *zerolog.Logger, highlights []*domain.Highlight) []*domain.Highlight {
	kept := make([]*domain.Highlight, 0, len(highlights))

	for _, h := range highlights {
		phrases := a.extractor.Extract(h.Messages)
		if len(phrases) == 0 {
			log.Debug().Int("start", h.Start).Msg("no keyphrase survived, dropping highlight")
			a.metrics.AddDropped(observability.DropReasonNoKeyphrase, 1)

			continue
		}

		h.Keywords = make([]string, len(phrases))
		for i, p := range phrases {
			h.Keywords[i] = p.Text
		}

		kept = append(kept, h)
	}

	return kept
}
