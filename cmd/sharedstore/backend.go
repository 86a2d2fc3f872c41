package main

import (
	"fmt"
	"io"

	"github.com/garyburd/redigo/redis"
	"github.com/gocql/gocql"
	"github.com/movio/sharedstore"
	"github.com/movio/sharedstore/slots"
	elastic "gopkg.in/olivere/elastic.v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// openSlot connects to the configured backend. The returned closer releases it.
func openSlot(config *Config, storeConfig *sharedstore.Config) (sharedstore.Slot, io.Closer, error) {
	switch config.Backend {
	case "memory":
		return sharedstore.NewMemorySlot(""), nopCloser{}, nil
	case "bolt":
		slot, err := slots.NewBoltSlot(storeConfig, config.BoltPath, config.BoltBucket, config.Slot)
		if err != nil {
			return nil, nil, err
		}
		return slot, slot, nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(config.SQLitePath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		slot, err := slots.NewGormSlot(storeConfig, db, config.Slot)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return slot, sqlDB, nil
	case "redis":
		conn, err := redis.DialURL(config.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return slots.NewRedisSlot(storeConfig, conn, config.Slot), conn, nil
	case "cassandra":
		session, err := gocql.NewCluster(config.CassandraHosts...).CreateSession()
		if err != nil {
			return nil, nil, err
		}
		return slots.NewCassandraSlot(storeConfig, session, config.CassandraTable, config.Slot), closerFunc(session.Close), nil
	case "elasticsearch":
		client, err := elastic.NewClient(
			elastic.SetURL(config.ElasticsearchURL),
			elastic.SetSniff(false),
		)
		if err != nil {
			return nil, nil, err
		}
		return slots.NewElasticsearchSlot(storeConfig, client, config.ElasticsearchIndex, config.Slot), closerFunc(client.Stop), nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", config.Backend)
}
