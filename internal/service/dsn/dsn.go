package dsn

import (
	"fmt"
	"os"

	"github.com/Fin1704/3KingAuto-server/internal/service/config"
)

// FromConfig собирает DSN строку из конфигурации
func FromConfig(c config.DatabaseConfig) string {
	if c.Host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// FromEnvE2E returns the DSN of the database e2e tests run against, or "" when none is configured.
func FromEnvE2E() string {
	return FromConfig(config.DatabaseConfig{
		Host:     os.Getenv("DB_HOST_TEST"),
		Port:     os.Getenv("DB_PORT_TEST"),
		User:     os.Getenv("DB_USER_TEST"),
		Password: os.Getenv("DB_PASS_TEST"),
		Name:     os.Getenv("DB_NAME_TEST"),
		SSLMode:  "disable",
	})
}
