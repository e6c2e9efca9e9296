package httpx

import (
	"time"

	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware доступа HTTP-слоя сервиса ставок.
// Идентификаторы запроса и трейса не вписываются в сообщение:
// они уже едут в контексте и добавляются логгером как поля.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// служебные маршруты не логируем
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		log.Infof(
			c.Request.Context(),
			"http method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
