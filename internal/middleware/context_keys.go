package middleware

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorKey is the key used to store the authenticated principal.
const actorKey = contextKey("actor")

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromContext retrieves the authenticated principal from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	if val, exists := c.Get(string(actorKey)); exists {
		actor, ok := val.(domain.Actor)
		return actor, ok
	}
	// check in the request context as well
	actor, ok := c.Request.Context().Value(actorKey).(domain.Actor)
	return actor, ok
}
