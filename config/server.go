package config

import (
	"main/utils"
)

type ServerConfig struct {
	Port      string
	LogLevel  string
	LogPretty bool
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:      utils.GetEnvAsString("PORT", "8080"),
		LogLevel:  utils.GetEnvAsString("LOG_LEVEL", "info"),
		LogPretty: utils.GetEnvAsBool("LOG_PRETTY", false),
	}
}
