package config

import (
	"fmt"
	"os"
	"strconv"
)

// New reads the configuration from the environment. All document store and
// SMTP settings are required; the listening port defaults to 5000.
func New() (Config, error) {
	port, err := getEnvAsInt("PORT", 5000)
	if err != nil {
		return Config{}, err
	}

	postgresqlPort, err := requireEnvAsInt("DATABASE_PORT")
	if err != nil {
		return Config{}, err
	}

	smtpPort, err := requireEnvAsInt("SMTP_PORT")
	if err != nil {
		return Config{}, err
	}

	host, err := requireEnv("DATABASE_HOST")
	if err != nil {
		return Config{}, err
	}

	username, err := requireEnv("DATABASE_USERNAME")
	if err != nil {
		return Config{}, err
	}

	password, err := requireEnv("DATABASE_PASSWORD")
	if err != nil {
		return Config{}, err
	}

	name, err := requireEnv("DATABASE_NAME")
	if err != nil {
		return Config{}, err
	}

	smtpHost, err := requireEnv("SMTP_HOST")
	if err != nil {
		return Config{}, err
	}

	smtpUsername, err := requireEnv("SMTP_USERNAME")
	if err != nil {
		return Config{}, err
	}

	smtpPassword, err := requireEnv("SMTP_PASSWORD")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port: port,
		Postgresql: Postgresql{
			Host:         host,
			Port:         postgresqlPort,
			Username:     username,
			Password:     password,
			DatabaseName: name,
		},
		SMTP: SMTP{
			Host:     smtpHost,
			Port:     smtpPort,
			Username: smtpUsername,
			Password: smtpPassword,
		},
	}, nil
}

type Config struct {
	Port       int
	Postgresql Postgresql
	SMTP       SMTP
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
}

func requireEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", fmt.Errorf("can't find environment variable: %s", key)
	}
	return value, nil
}

func requireEnvAsInt(key string) (int, error) {
	valueStr, err := requireEnv(key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("can't parse %s as integer: %v", key, err)
	}
	return value, nil
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("can't parse %s as integer: %v", key, err)
	}
	return value, nil
}
