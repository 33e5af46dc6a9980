package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"0s"`
}

type Game struct {
	GridSize int   `yaml:"grid-size" env:"GAME_GRID_SIZE" env-default:"3"`
	MaxTurn  int   `yaml:"max-turn" env:"GAME_MAX_TURN" env-default:"0"`
	Supply   []int `yaml:"supply" env:"GAME_SUPPLY" env-default:"2,2,2"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetRedisAddr - returns host:port, empty when no host is configured.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GameSettings - converts the game section into engine settings.
func (that *Game) GameSettings() (entity.Settings, error) {
	if len(that.Supply) != entity.SizeCount {
		return entity.Settings{}, fmt.Errorf("%w: supply needs %d counts, got %d",
			entity.ErrInvalidSupply, entity.SizeCount, len(that.Supply))
	}

	var supply entity.Inventory
	copy(supply[:], that.Supply)

	settings := entity.NewSettings(that.GridSize, that.MaxTurn, supply)
	if err := settings.Validate(); err != nil {
		return entity.Settings{}, err
	}

	return settings, nil
}
