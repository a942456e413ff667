package config

import (
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Timeout   time.Duration `mapstructure:"TIMEOUT"`
	Workers   int           `mapstructure:"WORKERS"`
	Progress  bool          `mapstructure:"PROGRESS"`
	PprofAddr string        `mapstructure:"PPROF"`
}

// Load reads an optional .env from the working directory, then the
// RIDEPROFILE_* environment. Values here are flag defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RIDEPROFILE")
	v.AutomaticEnv()
	v.SetDefault("TIMEOUT", 10*time.Minute)
	v.SetDefault("WORKERS", runtime.NumCPU())
	v.SetDefault("PROGRESS", true)
	v.SetDefault("PPROF", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
