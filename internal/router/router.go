package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Samreen555/huffman/internal/handler"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		codecs := v1.Group("/codecs")
		{
			codecs.POST("", d.CodecHandler.Create)
			codecs.GET("/:id", d.CodecHandler.GetByID)
			codecs.POST("/:id/decode", d.CodecHandler.Decode)
		}
	}
}
