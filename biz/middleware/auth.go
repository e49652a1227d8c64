package middleware

import (
	"context"
	"crypto/subtle"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// AdminAuth returns a middleware that guards the back-office routes. Requests
// must carry the shared admin token in the X-Admin-Token header. With an
// empty configured token the guard is disabled, which keeps local
// development friction-free.
func AdminAuth(token string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if token == "" {
			c.Next(ctx)
			return
		}

		provided := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare(provided, []byte(token)) != 1 {
			c.JSON(consts.StatusUnauthorized, map[string]string{
				"error": "invalid or missing admin token",
			})
			c.Abort()
			return
		}

		c.Next(ctx)
	}
}
