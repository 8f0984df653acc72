package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds settings of the API server.
type App struct {
	// DB
	DBHost string `envconfig:"DB_HOST" default:"localhost"`
	DBPort string `envconfig:"DB_PORT" default:"5432"`
	DBUser string `envconfig:"DB_USER"`
	DBPass string `envconfig:"DB_PASS"`
	DBName string `envconfig:"DB_NAME" default:"datecourse"`
	// Migrations
	MigrationsGlob string `envconfig:"MIGRATIONS_GLOB" default:"migrations/*.sql"`
	// JWT
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// Messaging, empty disables event publishing
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"datecourse.events"`
	// Network
	APIPort string `envconfig:"API_PORT" default:"8080"`
	// Logging
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (App, error) {
	_ = godotenv.Load()
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// DSN is the lib/pq connection string for the configured database.
func (c App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

// Bot holds settings of the Telegram bot binary.
type Bot struct {
	App
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`
}

// LoadBot reads an optional .env file and then the bot settings.
func LoadBot() (Bot, error) {
	_ = godotenv.Load()
	var c Bot
	err := envconfig.Process("", &c)
	return c, err
}
