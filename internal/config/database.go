package config

import (
	"os"
	"sync"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver string

	MongoURI    string
	MongoDBName string

	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		dbConfig = &DBConfig{
			Driver:      getEnv("DB_DRIVER", DriverMongo),
			MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDBName: getEnv("MONGO_DB_NAME", "ai_interviewer"),
			Host:        os.Getenv("DB_HOST"),
			Port:        os.Getenv("DB_PORT"),
			User:        os.Getenv("DB_USER"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        os.Getenv("DB_NAME"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
		}
	})
	return dbConfig
}
