package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fail(c, err)
	return w.Code
}

func TestFailMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"order not found", services.ErrOrderNotFound, 404},
		{"address not found", services.ErrAddressNotFound, 404},
		{"account not found", services.ErrAccountNotFound, 404},
		{"bad password", services.ErrPasswordError, 401},
		{"locked account", services.ErrAccountLocked, 401},
		{"wechat login failed", services.ErrLoginFailed, 401},
		{"order status guard", services.ErrOrderStatus, 400},
		{"empty cart", services.ErrShoppingCartEmpty, 400},
		{"missing address", services.ErrAddressBookEmpty, 400},
		{"setmeal enable blocked", services.ErrSetmealEnableFailed, 400},
		{"deletion blocked", &services.DeletionNotAllowedError{Reason: "in use"}, 400},
		{"duplicate", &services.DuplicateError{Value: "bob"}, 400},
		{"unknown", errors.New("boom"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusFor(t, tc.err); got != tc.want {
				t.Errorf("status = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	got := parseIDs("1, 2,3")
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("parseIDs = %v", got)
	}
	if ids := parseIDs(""); len(ids) != 0 {
		t.Errorf("empty input should yield nothing, got %v", ids)
	}
}
