package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries every tunable of the analysis pipeline. All values are plain
// parameters; nothing here is mutated during a run.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"0"`

	// Trend detection
	Window            int     `env:"WINDOW" envDefault:"30"`
	KernelWidth       int     `env:"KERNEL_WIDTH" envDefault:"40"`
	MinDuration       int     `env:"MIN_DURATION" envDefault:"5"`
	ThresholdConstant float64 `env:"THRESHOLD_CONSTANT" envDefault:"3"`

	// Intensity scale; the three lists must be equal length with ascending,
	// unique constants.
	IntensityLevels    []string  `env:"INTENSITY_LEVELS" envSeparator:"," envDefault:"low,medium,high,very high"`
	IntensityConstants []float64 `env:"INTENSITY_CONSTANTS" envSeparator:"," envDefault:"0,0.7,1.2,2.0"`
	IntensityColors    []string  `env:"INTENSITY_COLORS" envSeparator:"," envDefault:"blue,yellow,red,magenta"`

	// Keyphrase extraction
	MaxNgramSize         int      `env:"MAX_NGRAM_SIZE" envDefault:"7"`
	MinNgramSize         int      `env:"MIN_NGRAM_SIZE" envDefault:"1"`
	MaxKeyphrases        int      `env:"MAX_KEYPHRASES" envDefault:"5"`
	MinKeyphrases        int      `env:"MIN_KEYPHRASES" envDefault:"2"`
	KeyphrasesPerSize    int      `env:"KEYPHRASES_PER_SIZE" envDefault:"20"`
	Stoppers             []int    `env:"STOPPERS" envSeparator:"," envDefault:"100,40,10"`
	ReplaceByWeightScore bool     `env:"REPLACE_BY_WEIGHT_SCORE" envDefault:"false"`
	StopPhrases          []string `env:"STOP_PHRASES" envSeparator:","`
	ExtraStopTerms       []string `env:"EXTRA_STOP_TERMS" envSeparator:","`

	// Context classification
	ContextSources []string `env:"CONTEXT_SOURCES" envSeparator:","`
	ContextAutofix bool     `env:"CONTEXT_AUTOFIX" envDefault:"false"`
}

// Load reads configuration from the environment, with a best-effort .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
