package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderOperatorID     = "X-Operator-ID"
	HeaderOperatorRole   = "X-Operator-Role"
	HeaderActingAsWorker = "X-Acting-As-Worker"

	actorContextKey = "rcp.actor"
)

var (
	errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing operator identity", http.StatusUnauthorized)
	errInvalidIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid operator identity", http.StatusUnauthorized)
	errWorkerRequired  = pkg.NewDomainErrorSimple("FORBIDDEN", "Worker capacity required", http.StatusForbidden)
	errAdminRequired   = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
)

// Identity resolves the caller from the headers set by the auth proxy in front
// of the service and stores it on the gin context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := strings.TrimSpace(c.GetHeader(HeaderOperatorID))
		if operatorID == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}

		role := entities.RoleOperator
		switch strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderOperatorRole))) {
		case "", string(entities.RoleOperator):
		case string(entities.RoleAdmin):
			role = entities.RoleAdmin
		default:
			c.AbortWithStatusJSON(errInvalidIdentity.HTTPStatus, errInvalidIdentity.ToHTTPError())
			return
		}

		acting := false
		if v := strings.TrimSpace(c.GetHeader(HeaderActingAsWorker)); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				c.AbortWithStatusJSON(errInvalidIdentity.HTTPStatus, errInvalidIdentity.ToHTTPError())
				return
			}
			acting = b
		}

		c.Set(actorContextKey, entities.Actor{OperatorID: operatorID, Role: role, ActingAsWorker: acting})
		c.Next()
	}
}

// RequireWorker lets through operators and admins acting as workers.
func RequireWorker() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		if !actor.CanWork() {
			c.AbortWithStatusJSON(errWorkerRequired.HTTPStatus, errWorkerRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// WithActor stores an actor on the context. Handler tests use it to skip the
// header round trip.
func WithActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorContextKey, actor)
		c.Next()
	}
}
