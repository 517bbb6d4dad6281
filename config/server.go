package config

import "os"

type ServerConfig struct {
	Port string
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return &ServerConfig{Port: port}, nil
}
