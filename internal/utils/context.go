package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sumit03062/Task-Tracker/internal/middleware"
	"github.com/sumit03062/Task-Tracker/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// ParseIDParam reads a numeric path parameter such as :project_id.
func ParseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, fmt.Errorf("%s not found", name)
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return uint(id), nil
}
