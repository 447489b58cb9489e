package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string `mapstructure:"port"`
		MetricsPort string `mapstructure:"metrics_port"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"` // "postgres" or "sqlite"
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		Seed     bool   `mapstructure:"seed"`
	} `mapstructure:"database"`
	Client struct {
		BaseURL string `mapstructure:"base_url"`
		Token   string `mapstructure:"token"`
	} `mapstructure:"client"`
}

func Load() *Config {
	viper.SetEnvPrefix("VSPA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.port")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.log_level")

	viper.BindEnv("database.driver")
	viper.BindEnv("database.host")
	viper.BindEnv("database.port")
	viper.BindEnv("database.user")
	viper.BindEnv("database.password")
	viper.BindEnv("database.name")
	viper.BindEnv("database.seed")

	viper.BindEnv("client.base_url")
	viper.BindEnv("client.token")

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.name", "vspa.db")
	viper.SetDefault("database.seed", true)
	viper.SetDefault("client.base_url", "http://localhost:8080/api")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if cfg.Database.Driver == "postgres" && cfg.Database.Host == "" {
		log.Fatal("Critical: database host is missing (VSPA_DATABASE_HOST)")
	}

	return &cfg
}
