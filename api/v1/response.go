package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
)

// respondError writes the status code and message for a service error.
// Internal failures are logged with their cause, the client only sees a
// generic message.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	message := apperrors.MessageOf(err)
	if kind == apperrors.KindInternal {
		logging.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		message = "Internal server error"
	}
	c.JSON(kind.HTTPStatus(), gin.H{
		"status":  "error",
		"message": message,
	})
}

// actorFrom builds the policy actor for the authenticated user. It returns
// nil when the request carries no identity, services turn that into a 401.
func actorFrom(c *gin.Context) *policy.Actor {
	userID, exists := c.Get("userId")
	if !exists {
		return nil
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return nil
	}
	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	return &policy.Actor{ID: id, Role: models.Role(roleStr)}
}
