// api/middleware/cors.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio/api/utils"
)

// CORSMiddleware handles cross-origin requests from the portfolio frontend.
// The allowed origin defaults to the local dev server and is overridden via
// FE_ORIGIN for deployment.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := utils.EnvString("FE_ORIGIN", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
