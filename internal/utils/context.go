package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/auth"
	"github.com/omnical-dev/omnical/internal/types"
)

func CurrentPrincipal(ctx *gin.Context) (auth.Principal, error) {
	value, exists := ctx.Get(types.ContextPrincipalKey)

	if !exists {
		return auth.Principal{}, fmt.Errorf("no authenticated principal in context")
	}

	principal, ok := value.(auth.Principal)

	if !ok {
		return auth.Principal{}, fmt.Errorf("invalid principal type in context")
	}

	return principal, nil
}
