package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/docbot/web/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const visitorKey = "visitor"

// VisitorMiddleware resolves the visitor from the signed cookie, creating a
// new one (and a new cookie) when the cookie is missing, invalid or expired.
func VisitorMiddleware(store *session.Store, signer *session.TokenSigner, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			if id, err := signer.Parse(token); err == nil {
				if v, ok := store.Get(id); ok {
					c.Set(visitorKey, v)
					c.Next()
					return
				}
			}
		}

		v := store.Create()
		token, err := signer.Issue(v.ID)
		if err != nil {
			zap.L().Error("failed to sign visitor cookie", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(session.CookieName, token, signer.MaxAge(), "/", "", secure, true)

		c.Set(visitorKey, v)
		c.Next()
	}
}

func GetVisitor(c *gin.Context) *session.Visitor {
	if value, ok := c.Get(visitorKey); ok {
		if v, ok := value.(*session.Visitor); ok {
			return v
		}
	}
	return nil
}

// CORSMiddleware allows the configured origins; "*" (or an empty list)
// allows any origin without credentials.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "*" {
			origins = nil
			break
		}
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// Preflight gives OPTIONS requests a route so the group's CORS middleware
// runs for them.
func Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
