package middleware

import (
	"fmt"
	"net/http"

	cacheRedis "brokerbase/cache/redis"
	C "brokerbase/config"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Endpoint classes for rate limiting. Windows are fixed at one minute;
// budgets come from configuration.
const (
	RateLimitClassAPI    = "api"
	RateLimitClassImport = "import"
	RateLimitClassPublic = "public"
)

const rateLimitWindowSecs = 60

func rateLimitBudget(class string) int {
	conf := C.GetConfig().RateLimit
	switch class {
	case RateLimitClassImport:
		return conf.ImportPerMinute
	case RateLimitClassPublic:
		return conf.PublicPerMinute
	default:
		return conf.APIPerMinute
	}
}

// RateLimit - Fixed-window request counter per client IP and endpoint
// class, backed by redis INCR/EXPIRE. Fails open when redis is
// unavailable.
func RateLimit(class string) gin.HandlerFunc {
	return func(c *gin.Context) {
		budget := rateLimitBudget(class)
		if budget <= 0 {
			c.Next()
			return
		}

		key, err := cacheRedis.NewKeyWithOnlyPrefix(
			fmt.Sprintf("rl:%s:%s", class, c.ClientIP()))
		if err != nil {
			c.Next()
			return
		}

		count, err := cacheRedis.IncrWithExpiry(key, rateLimitWindowSecs)
		if err != nil {
			log.WithError(err).Warn("Rate limit counter unavailable. Allowing request.")
			c.Next()
			return
		}

		if count > int64(budget) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": "Too many requests. Retry later."})
			return
		}

		c.Next()
	}
}
