package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Storage  Storage `yaml:"storage"`
	Bot      Bot     `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Storage holds the keys the persistence collaborator uses.
type Storage struct {
	GameKey        string `yaml:"game-key" env:"STORAGE_GAME_KEY" env-default:"tictactoe_saved_game"`
	SettingsKey    string `yaml:"settings-key" env:"STORAGE_SETTINGS_KEY" env-default:"tictactoe_settings"`
	LeaderboardKey string `yaml:"leaderboard-key" env:"STORAGE_LEADERBOARD_KEY" env-default:"tictactoe_leaderboard"`
}

type Bot struct {
	// Seed for the easy and medium tiers, 0 seeds from the clock.
	Seed uint64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the configuration from the environment only.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
