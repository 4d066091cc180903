package main

import (
	"flag"
	"fmt"

	C "brokerbase/config"
	H "brokerbase/handler"
	mid "brokerbase/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ./app --env=development --api_http_port=8080 --db_host=localhost --db_port=5432 --db_user=brokerbase --db_name=brokerbase --db_pass=secret --redis_host=localhost --redis_port=6379 --api_domain=localhost:8080 --app_domain=localhost:3000
func main() {

	env := flag.String("env", "development", "")
	port := flag.Int("api_http_port", 8080, "")

	dbHost := flag.String("db_host", "localhost", "")
	dbPort := flag.Int("db_port", 5432, "")
	dbUser := flag.String("db_user", "brokerbase", "")
	dbName := flag.String("db_name", "brokerbase", "")
	dbPass := flag.String("db_pass", "", "")

	redisHost := flag.String("redis_host", "localhost", "")
	redisPort := flag.Int("redis_port", 6379, "")

	apiDomain := flag.String("api_domain", "localhost:8080", "")
	appDomain := flag.String("app_domain", "localhost:3000", "")

	rateLimitAPI := flag.Int("rate_limit_api", 300, "Requests per minute per client on authenticated routes")
	rateLimitImport := flag.Int("rate_limit_import", 10, "Requests per minute per client on the import route")
	rateLimitPublic := flag.Int("rate_limit_public", 60, "Requests per minute per client on public routes")
	flag.Parse()

	config := &C.Configuration{
		AppName: "app_server",
		Env:     *env,
		Port:    *port,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
		RedisInfo: C.RedisConf{
			Host: *redisHost,
			Port: *redisPort,
		},
		RateLimit: C.RateLimitConf{
			APIPerMinute:    *rateLimitAPI,
			ImportPerMinute: *rateLimitImport,
			PublicPerMinute: *rateLimitPublic,
		},
		APIDomain: *apiDomain,
		APPDomain: *appDomain,
	}

	// Initialize configs and connections.
	err := C.Init(config)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize.")
		return
	}

	if !C.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mid.Recovery())
	r.Use(mid.Logger())
	r.Use(mid.RequestIdGenerator())
	r.Use(mid.CustomCors())

	H.InitAppRoutes(r)

	log.WithFields(log.Fields{"port": config.Port, "env": config.Env}).
		Info("Starting app server.")
	if err := r.Run(fmt.Sprintf(":%d", config.Port)); err != nil {
		log.WithError(err).Fatal("Server exited.")
	}
}
