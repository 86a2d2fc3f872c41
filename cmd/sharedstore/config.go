package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config describes which slot backend the command drives.
type Config struct {
	Backend   string `env:"SHAREDSTORE_BACKEND" envDefault:"bolt"`
	Slot      string `env:"SHAREDSTORE_SLOT" envDefault:"shared"`
	LogFormat string `env:"SHAREDSTORE_LOG_FORMAT" envDefault:"text"`
	Debug     bool   `env:"SHAREDSTORE_DEBUG"`

	BoltPath   string `env:"SHAREDSTORE_BOLT_PATH" envDefault:"sharedstore.bolt"`
	BoltBucket string `env:"SHAREDSTORE_BOLT_BUCKET" envDefault:"sharedstore"`

	SQLitePath string `env:"SHAREDSTORE_SQLITE_PATH" envDefault:"sharedstore.sqlite"`

	RedisURL string `env:"SHAREDSTORE_REDIS_URL" envDefault:"redis://localhost:6379"`

	CassandraHosts []string `env:"SHAREDSTORE_CASSANDRA_HOSTS" envDefault:"localhost" envSeparator:","`
	CassandraTable string   `env:"SHAREDSTORE_CASSANDRA_TABLE" envDefault:"sharedstore.slots"`

	ElasticsearchURL   string `env:"SHAREDSTORE_ELASTICSEARCH_URL" envDefault:"http://localhost:9200"`
	ElasticsearchIndex string `env:"SHAREDSTORE_ELASTICSEARCH_INDEX" envDefault:"sharedstore"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}
