package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

var skipPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger logs one line per request: method, path, status, latency, client IP.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}

		start := time.Now()
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		log.Printf("%s%s%s %s%s%s %s%d%s %v %s",
			methodColor(c.Request.Method), c.Request.Method, colorReset,
			colorBlue, path, colorReset,
			statusColor(status), status, colorReset,
			time.Since(start), c.ClientIP())
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return colorGreen
	case "POST":
		return colorBlue
	case "PUT":
		return colorYellow
	case "DELETE":
		return colorRed
	default:
		return colorWhite
	}
}

func statusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 400 && status < 500:
		return colorYellow
	case status >= 500:
		return colorRed
	default:
		return colorCyan
	}
}
