package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"augur/pkg/platform/sentinel"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	LogLevel       slog.Level
	AllowedOrigins []string

	Lexicon LexiconConfig
	Entropy EntropyConfig
}

// LexiconConfig points at the word sources loaded once at startup.
// All paths are optional; a missing lexicon renders every slot as "void".
type LexiconConfig struct {
	LexiconPath   string // YAML category -> words
	CorpusPath    string // tagged corpus, one "word<TAB>TAG" per line
	StopwordsPath string // one stopword per line
	TokensPath    string // one token per line
}

// EntropyConfig configures the remote tier chain and the prefetch buffer.
type EntropyConfig struct {
	QuantumURL     string
	ClassicalURL   string
	AtmosphericURL string
	BulkURL        string

	TierTimeout        time.Duration
	AtmosphericTimeout time.Duration
	BulkTimeout        time.Duration

	BufferBatch int
	ChunkDigits int

	BreakerEnabled   bool
	BreakerThreshold uint32
	BreakerCooldown  time.Duration
}

const (
	DefaultQuantumURL     = "https://random.colorado.edu/api/get_bits?type=quantum"
	DefaultClassicalURL   = "https://random.colorado.edu/api/get_bits?type=classical"
	DefaultAtmosphericURL = "https://www.random.org/integers/?num=1&min=0&max={max}&col=1&base=10&format=plain&rnd=new"
	DefaultBulkURL        = "https://random.colorado.edu/api/get_bits?type=quantum&length={bits}"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("AUGUR_ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8000"
		}
	}

	return Server{
		Addr:           addr,
		LogLevel:       parseLevel(os.Getenv("LOG_LEVEL")),
		AllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
		Lexicon: LexiconConfig{
			LexiconPath:   os.Getenv("LEXICON_PATH"),
			CorpusPath:    os.Getenv("CORPUS_PATH"),
			StopwordsPath: os.Getenv("STOPWORDS_PATH"),
			TokensPath:    os.Getenv("TOKENS_PATH"),
		},
		Entropy: EntropyConfig{
			QuantumURL:         envOr("ENTROPY_QUANTUM_URL", DefaultQuantumURL),
			ClassicalURL:       envOr("ENTROPY_CLASSICAL_URL", DefaultClassicalURL),
			AtmosphericURL:     envOr("ENTROPY_ATMOSPHERIC_URL", DefaultAtmosphericURL),
			BulkURL:            envOr("ENTROPY_BULK_URL", DefaultBulkURL),
			TierTimeout:        envDuration("ENTROPY_TIER_TIMEOUT", 300*time.Millisecond),
			AtmosphericTimeout: envDuration("ENTROPY_ATMOSPHERIC_TIMEOUT", 400*time.Millisecond),
			BulkTimeout:        envDuration("ENTROPY_BULK_TIMEOUT", time.Second),
			BufferBatch:        envInt("ENTROPY_BUFFER_BATCH", 64),
			ChunkDigits:        envInt("ENTROPY_CHUNK_DIGITS", 8),
			BreakerEnabled:     os.Getenv("ENTROPY_BREAKER_ENABLED") != "false",
			BreakerThreshold:   uint32(envInt("ENTROPY_BREAKER_THRESHOLD", 5)),
			BreakerCooldown:    envDuration("ENTROPY_BREAKER_COOLDOWN", 30*time.Second),
		},
	}
}

// Validate rejects settings that cannot produce a working entropy chain.
func (s Server) Validate() error {
	e := s.Entropy
	switch {
	case e.TierTimeout <= 0, e.AtmosphericTimeout <= 0, e.BulkTimeout <= 0:
		return fmt.Errorf("%w: entropy timeouts must be positive", sentinel.ErrInvalidConfig)
	case e.BufferBatch <= 0:
		return fmt.Errorf("%w: buffer batch must be positive, got %d", sentinel.ErrInvalidConfig, e.BufferBatch)
	case e.ChunkDigits <= 0 || e.ChunkDigits > 15:
		return fmt.Errorf("%w: chunk digits must be in [1, 15], got %d", sentinel.ErrInvalidConfig, e.ChunkDigits)
	case e.BreakerEnabled && e.BreakerThreshold == 0:
		return fmt.Errorf("%w: breaker threshold must be positive", sentinel.ErrInvalidConfig)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
