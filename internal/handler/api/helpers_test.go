//go:build unit

package api_test

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/handler/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actor stands in for RequireAuth: the identity is whatever the test set last.
type actor struct {
	id   uuid.UUID
	role user.Role
}

func (a *actor) as(id uuid.UUID, role user.Role) {
	a.id = id
	a.role = role
}

func (a *actor) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.id != uuid.Nil {
			middleware.SetIdentityForTest(c, a.id, a.role)
		}
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
	return gin.New()
}

func ptr[T any](v T) *T {
	return &v
}
