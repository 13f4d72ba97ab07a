package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber builds a business order number: millisecond timestamp plus
// a 6-hex-char random suffix. The timestamp keeps numbers roughly sortable
// by submission time, the suffix keeps concurrent submits from colliding.
func NewOrderNumber() string {
	u := uuid.New()
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), hex.EncodeToString(u[:3]))
}
