package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Admin    AdminConfig    `yaml:"admin"`
	FiveM    FiveMConfig    `yaml:"fivem"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

// AdminConfig seeds the protected default admin account. The account name
// is fixed so the deletion guard always knows which account it protects;
// only the initial password is configurable.
type AdminConfig struct {
	Password string `yaml:"password"`
}

// FiveMConfig points at the game server's public status endpoint and
// supplies the fallback payload served when the endpoint is unreachable.
type FiveMConfig struct {
	StatsURL           string `yaml:"stats_url"`
	TimeoutSeconds     int    `yaml:"timeout_seconds"`
	FallbackHostname   string `yaml:"fallback_hostname"`
	FallbackMaxPlayers int    `yaml:"fallback_max_players"`
	FallbackGametype   string `yaml:"fallback_gametype"`
}

// RedisConfig for the optional async notification queue.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Level         string `yaml:"level"`
	RetentionDays int    `yaml:"retention_days"` // audit log retention
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	cfg.applyFallbacks()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "community.db",
		},
		JWT: JWTConfig{
			Secret:     "rp-community-secret-change-in-production",
			ExpireHour: 24,
		},
		Admin: AdminConfig{
			Password: "admin123",
		},
		FiveM: FiveMConfig{
			StatsURL:           "http://45.84.198.57:30120/dynamic.json",
			TimeoutSeconds:     10,
			FallbackHostname:   "Revolution Roleplay",
			FallbackMaxPlayers: 64,
			FallbackGametype:   "ESX Legacy",
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			DB:      0,
		},
		Log: LogConfig{
			Level:         "info",
			RetentionDays: 30,
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		c.Admin.Password = password
	}
	if statsURL := os.Getenv("FIVEM_STATS_URL"); statsURL != "" {
		c.FiveM.StatsURL = statsURL
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			c.Redis.DB = n
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// applyFallbacks fills zero values left by a partial config file.
func (c *Config) applyFallbacks() {
	def := DefaultConfig()
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Mode == "" {
		c.Server.Mode = def.Server.Mode
	}
	if c.Database.Driver == "" {
		c.Database.Driver = def.Database.Driver
	}
	if c.Database.DSN == "" {
		c.Database.DSN = def.Database.DSN
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = def.JWT.Secret
	}
	if c.JWT.ExpireHour == 0 {
		c.JWT.ExpireHour = def.JWT.ExpireHour
	}
	if c.Admin.Password == "" {
		c.Admin.Password = def.Admin.Password
	}
	if c.FiveM.TimeoutSeconds == 0 {
		c.FiveM.TimeoutSeconds = def.FiveM.TimeoutSeconds
	}
	if c.FiveM.FallbackHostname == "" {
		c.FiveM.FallbackHostname = def.FiveM.FallbackHostname
	}
	if c.FiveM.FallbackMaxPlayers == 0 {
		c.FiveM.FallbackMaxPlayers = def.FiveM.FallbackMaxPlayers
	}
	if c.FiveM.FallbackGametype == "" {
		c.FiveM.FallbackGametype = def.FiveM.FallbackGametype
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.RetentionDays == 0 {
		c.Log.RetentionDays = def.Log.RetentionDays
	}
}
