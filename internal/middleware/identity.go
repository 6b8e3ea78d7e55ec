package middleware

import "github.com/gin-gonic/gin"

const ContextUserID = "user_id"

// WithUser injeta o usuário do aplicativo no contexto das rotas. Em modo
// demonstração há um único usuário logado, definido na subida do processo.
func WithUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
