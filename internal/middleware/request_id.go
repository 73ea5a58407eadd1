package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const RequestIDKey = "request_id"

// RequestID atribui um ULID a cada requisição e devolve no header de resposta.
// Nada é persistido entre chamadas; o ID serve apenas para correlação nos logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
