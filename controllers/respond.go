package controllers

import (
	"errors"
	"strconv"

	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response envelope: business guard
// violations stay 4xx, everything unrecognized is a 500.
func fail(c *gin.Context, err error) {
	var deletion *services.DeletionNotAllowedError
	var duplicate *services.DuplicateError

	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPasswordError),
		errors.Is(err, services.ErrAccountLocked),
		errors.Is(err, services.ErrLoginFailed):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrOrderStatus),
		errors.Is(err, services.ErrShoppingCartEmpty),
		errors.Is(err, services.ErrAddressBookEmpty),
		errors.Is(err, services.ErrSetmealEnableFailed),
		errors.As(err, &deletion),
		errors.As(err, &duplicate):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}

func queryUint(c *gin.Context, name string) *uint {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func queryInt(c *gin.Context, name string) *int {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func queryIntDefault(c *gin.Context, name string, fallback int) int {
	if v := queryInt(c, name); v != nil {
		return *v
	}
	return fallback
}
