package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/pkg/types"
)

var (
	ErrMissingClaims  = errors.New("claims not found in context")
	ErrEmptyParameter = errors.New("empty parameter")
)

func GetClaims(c *gin.Context) (*types.Claims, error) {
	v, ok := c.Get("claims")
	if !ok {
		return nil, ErrMissingClaims
	}
	claims, ok := v.(*types.Claims)
	if !ok || claims == nil {
		return nil, ErrMissingClaims
	}
	return claims, nil
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// GetActor returns the authenticated identity for service calls.
func GetActor(c *gin.Context) (user.Actor, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return user.Actor{}, err
	}
	return user.Actor{ID: claims.UserID, Role: user.Role(claims.Role)}, nil
}

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return 0, ErrEmptyParameter
	}
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}
