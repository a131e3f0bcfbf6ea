package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/hufftree/internal/handler"
)

// Dependencies holds the handlers Register wires into the engine.
type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

// Register adds the health check and the /api/v1 codec routes to r.
func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.CodecHandler.Compress)
		v1.POST("/decompress", d.CodecHandler.Decompress)
	}
}
