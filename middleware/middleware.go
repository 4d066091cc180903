package middleware

import (
	"net/http"
	"strings"
	"time"

	C "brokerbase/config"
	"brokerbase/model/store"
	U "brokerbase/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// scope constants.
const SCOPE_PROJECT_ID = "projectId"
const SCOPE_PROJECT_NAME = "projectName"
const SCOPE_REQUEST_ID = "requestId"

// SetScopeProjectByToken - Request scope set by private token on the
// 'Authorization' header (with or without the Bearer prefix).
func SetScopeProjectByToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "Missing authorization header."})
			return
		}

		project, errCode := store.GetStore().GetProjectByToken(token)
		if errCode != http.StatusFound {
			log.WithField("error_code", errCode).Error("Request failed because of invalid token.")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
			return
		}

		U.SetScope(c, SCOPE_PROJECT_ID, project.ID)
		U.SetScope(c, SCOPE_PROJECT_NAME, project.Name)

		c.Next()
	}
}

// CustomCors - Cors configuration by environment. Public listing routes
// allow all origins; app routes are restricted outside development.
func CustomCors() gin.HandlerFunc {
	return func(c *gin.Context) {
		corsConfig := cors.DefaultConfig()
		corsConfig.AddAllowHeaders("Authorization")

		if strings.HasPrefix(c.Request.URL.Path, "/api/public/") {
			corsConfig.AllowAllOrigins = true
		} else if C.IsDevelopment() {
			corsConfig.AllowOrigins = []string{
				"http://localhost:3000", "http://localhost:8080"}
		} else {
			corsConfig.AllowOrigins = []string{"https://" + C.GetConfig().APPDomain}
		}

		cors.New(corsConfig)(c)
	}
}

// RequestIdGenerator attaches a request id to the scope and response for
// log correlation.
func RequestIdGenerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := U.GetUUID()
		U.SetScope(c, SCOPE_REQUEST_ID, requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// Logger logs one line per request with latency and status.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": U.GetScopeByKeyAsString(c, SCOPE_REQUEST_ID),
		}).Info("Request processed.")
	}
}

// Recovery converts panics into 500s without killing the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"panic": r,
					"path":  c.Request.URL.Path,
				}).Error("Recovered from panic on request.")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Internal server error."})
			}
		}()
		c.Next()
	}
}
