package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/pkg"
)

// renderError writes the standard JSON envelope for a routing-level error.
func renderError(c *gin.Context, code int, message string) {
	if message == "" {
		message = http.StatusText(code)
	}
	c.AbortWithStatusJSON(code, pkg.Response{Code: code, Message: message})
}

func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderError(c, http.StatusNotFound, "not found")
	}
}

func noMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderError(c, http.StatusMethodNotAllowed, "method not allowed")
	}
}
