// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// claimsOf returns the claims verified by the jwt middleware
func claimsOf(ctx echo.Context) *Claims {
	token := ctx.Get("user").(*jwt.Token)
	return token.Claims.(*Claims)
}

func setJwtHeader(ctx echo.Context, header *JwtHeader) {
	claim := claimsOf(ctx)
	header.Uid = claim.Uid
	header.Permission = claim.Permission
}

func setContentHeader(ctx echo.Context, header *EchoContentHeader) {
	header.Ip = ctx.RealIP()
	header.UserAgent = ctx.Request().UserAgent()
}
