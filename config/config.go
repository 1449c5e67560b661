package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type Config struct {
	CockroachURL      string        `ff:"long: cockroach-url, default: postgresql://root@127.0.0.1:26257/defaultdb?sslmode=disable, usage: URL for the CockroachDB database"`
	Port              uint32        `ff:"long: port, short: p, default: 4000, usage: Port for the HTTP server"`
	NATSURL           string        `ff:"long: nats-url, usage: NATS server URL; in-memory pubsub when empty"`
	TokenKey          string        `ff:"long: token-key, default: supersecretkeyyoushouldnotcommit, usage: 32 bytes key to sign auth tokens"`
	TokenTTL          time.Duration `ff:"long: token-ttl, default: 336h, usage: Auth token lifetime"`
	GeminiAPIKey      string        `ff:"long: gemini-api-key, usage: Gemini API key"`
	AIModel           string        `ff:"long: ai-model, default: gemini-2.0-flash, usage: Gemini model name"`
	UseMockAI         bool          `ff:"long: use-mock-ai, default: false, usage: Use the canned mock completer instead of Gemini"`
	AIRateInterval    time.Duration `ff:"long: ai-rate-interval, default: 1s, usage: Minimum interval between AI requests"`
	RefreshInterval   time.Duration `ff:"long: refresh-interval, default: 30s, usage: Interval for the realtime subscription refresh"`
	BackgroundTimeout time.Duration `ff:"long: background-timeout, default: 10s, usage: Timeout for background operations"`
	StrictMessaging   bool          `ff:"long: strict-messaging, default: false, usage: Enforce the role messaging matrix on send"`
}

func Load() (Config, error) {
	return parse(os.Args[1:])
}

func parse(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	fs := ff.NewFlagSetFrom("smarttask", &cfg)
	err := ff.Parse(fs, args, ff.WithEnvVarPrefix("SMARTTASK"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		os.Exit(0)
	}

	return cfg, err
}
