package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// FallbackMode decides what happens when every provider misses:
	// "synthesize" answers with a simulated record, "defer" returns an
	// empty 404 envelope and leaves fallback to the caller.
	FallbackMode string `env:"FALLBACK_MODE, default=synthesize"`

	// RegisterRetryDelay is the pause before refetching a tracking that
	// had to be registered with the primary provider first.
	RegisterRetryDelay time.Duration `env:"REGISTER_RETRY_DELAY, default=2s"`

	// CacheTTL bounds how long live provider results are served from Redis.
	CacheTTL time.Duration `env:"CACHE_TTL, default=5m"`

	Providers ProviderConfig
	Contact   ContactConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

// ProviderConfig carries base URLs and credentials for every upstream.
// Base URLs are overridable so tests can point adapters at local stubs.
type ProviderConfig struct {
	PrimaryTimeout  time.Duration `env:"PROVIDER_PRIMARY_TIMEOUT, default=4s"`
	FreeTimeout     time.Duration `env:"PROVIDER_FREE_TIMEOUT,    default=3s"`
	PositionTimeout time.Duration `env:"PROVIDER_POSITION_TIMEOUT, default=5s"`

	ShipResolveURL string `env:"SHIPRESOLVE_URL, default=https://api.shipresolve.com"`
	ShipResolveKey string `env:"SHIPRESOLVE_API_KEY"`

	Terminal49URL string `env:"TERMINAL49_URL, default=https://api.terminal49.com"`
	FindTeuURL    string `env:"FINDTEU_URL,    default=https://api.findteu.com"`
	ShipsGoURL    string `env:"SHIPSGO_URL,    default=https://shipsgo.com/api"`

	AviationStackURL string `env:"AVIATIONSTACK_URL, default=https://api.aviationstack.com"`
	AviationStackKey string `env:"AVIATIONSTACK_API_KEY"`
	FlightLabsURL    string `env:"FLIGHTLABS_URL, default=https://app.goflightlabs.com"`
	FlightLabsKey    string `env:"FLIGHTLABS_API_KEY"`
	OpenSkyURL       string `env:"OPENSKY_URL, default=https://opensky-network.org"`

	MyShipTrackingURL string        `env:"MYSHIPTRACKING_URL, default=https://www.myshiptracking.com"`
	AISHubURL         string        `env:"AISHUB_URL, default=https://data.aishub.net"`
	AISHubUser        string        `env:"AISHUB_USERNAME"`
	VesselFinderURL   string        `env:"VESSELFINDER_URL, default=https://www.vesselfinder.com"`
	AISStreamURL      string        `env:"AISSTREAM_URL, default=wss://stream.aisstream.io/v0/stream"`
	AISStreamKey      string        `env:"AISSTREAM_API_KEY"`
	AISStreamWait     time.Duration `env:"AISSTREAM_WAIT, default=10s"`
}

type ContactConfig struct {
	Workers      int    `env:"CONTACT_WORKERS, default=2"`
	QueueSize    int    `env:"CONTACT_QUEUE_SIZE, default=64"`
	Web3FormsURL string `env:"WEB3FORMS_URL, default=https://api.web3forms.com"`
	Web3FormsKey string `env:"WEB3FORMS_ACCESS_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tracking_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
