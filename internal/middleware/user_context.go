package middleware

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contract-flow/internal/database"
	"contract-flow/internal/models"
	"contract-flow/internal/workflow"
	"contract-flow/pkg/logger"
)

const (
	ctxUserKey  = "CurrentUser"
	ctxActorKey = "CurrentActor"
)

// InjectUser loads the session user and resolves their role for this
// request. The role is looked up every time rather than cached in the
// session, so an admin role change takes effect on the next request.
func InjectUser(engine *workflow.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if raw := sess.Get("user_id"); raw != nil {
			if idStr, ok := raw.(string); ok {
				if uid, err := uuid.Parse(idStr); err == nil {
					var user models.User
					if err := database.DB.First(&user, "id = ?", uid).Error; err == nil {
						role := engine.ResolveRole(c.Request.Context(), user.ID)
						c.Set(ctxUserKey, user)
						c.Set(ctxActorKey, workflow.Actor{UserID: user.ID, Role: role})

						// propagate to the request context so logger.WithContext picks it up
						ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, user.ID.String())
						c.Request = c.Request.WithContext(ctx)
					}
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// CurrentActor returns the authenticated caller with their resolved role.
func CurrentActor(c *gin.Context) (workflow.Actor, bool) {
	v, ok := c.Get(ctxActorKey)
	if !ok {
		return workflow.Actor{}, false
	}
	actor, ok := v.(workflow.Actor)
	return actor, ok
}
