package config

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const DEVELOPMENT = "development"
const STAGING = "staging"
const PRODUCTION = "production"

type DBConf struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"brokerbase"`
	Name     string `envconfig:"DB_NAME" default:"brokerbase"`
	Password string `envconfig:"DB_PASS" default:""`
}

type RedisConf struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

type RateLimitConf struct {
	// Requests allowed per window, by endpoint class.
	APIPerMinute    int `envconfig:"RATE_LIMIT_API" default:"300"`
	ImportPerMinute int `envconfig:"RATE_LIMIT_IMPORT" default:"10"`
	PublicPerMinute int `envconfig:"RATE_LIMIT_PUBLIC" default:"60"`
}

type Configuration struct {
	AppName   string
	Env       string `envconfig:"ENV" default:"development"`
	Port      int    `envconfig:"PORT" default:"8080"`
	DBInfo    DBConf
	RedisInfo RedisConf
	RateLimit RateLimitConf
	APIDomain string `envconfig:"API_DOMAIN" default:"localhost:8080"`
	APPDomain string `envconfig:"APP_DOMAIN" default:"localhost:3000"`
}

type Services struct {
	Db    *gorm.DB
	Redis *redis.Pool
}

var configuration *Configuration
var services *Services
var initiated bool

// LoadFromEnv builds a Configuration from environment variables. Used by
// CLI entrypoints that do not take flags (cmd/migrate).
func LoadFromEnv(appName string) (*Configuration, error) {
	var conf Configuration
	if err := envconfig.Process("", &conf); err != nil {
		return nil, err
	}
	conf.AppName = appName
	return &conf, nil
}

func initLogging() {
	log.SetFormatter(&log.JSONFormatter{})

	if IsDevelopment() {
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.DebugLevel)
	}
}

func initDB() error {
	db, err := gorm.Open("postgres", fmt.Sprintf(
		"host=%s port=%d user=%s dbname=%s password=%s sslmode=disable",
		configuration.DBInfo.Host,
		configuration.DBInfo.Port,
		configuration.DBInfo.User,
		configuration.DBInfo.Name,
		configuration.DBInfo.Password))
	if err != nil {
		log.WithError(err).Error("Failed db initialization.")
		return err
	}

	// Connection pooling and logging.
	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.LogMode(IsDevelopment())

	services.Db = db
	log.Info("Db service initialized.")
	return nil
}

func initRedis() {
	address := fmt.Sprintf("%s:%d", configuration.RedisInfo.Host, configuration.RedisInfo.Port)
	services.Redis = &redis.Pool{
		MaxIdle:     20,
		MaxActive:   100,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", address)
		},
	}
	log.WithField("address", address).Info("Redis pool initialized.")
}

// Init initializes configuration and service connections. Safe to call
// once per process.
func Init(config *Configuration) error {
	if initiated {
		return fmt.Errorf("config already initialized")
	}

	configuration = config
	services = &Services{}

	initLogging()

	if err := initDB(); err != nil {
		return err
	}
	initRedis()

	initiated = true
	return nil
}

// InitWithoutRedis - Init variant for one-shot CLI tools which only need
// the database connection.
func InitWithoutRedis(config *Configuration) error {
	if initiated {
		return fmt.Errorf("config already initialized")
	}

	configuration = config
	services = &Services{}

	initLogging()

	if err := initDB(); err != nil {
		return err
	}

	initiated = true
	return nil
}

func GetConfig() *Configuration {
	return configuration
}

func GetServices() *Services {
	return services
}

func IsDevelopment() bool {
	return configuration.Env == DEVELOPMENT
}
