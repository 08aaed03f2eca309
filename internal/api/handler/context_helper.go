package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Syed25794/shift-swap-ai/internal/service"
	"github.com/Syed25794/shift-swap-ai/pkg/response"
)

// contextString extracts a non-empty string the auth middleware injected.
func contextString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// MustGetUserID extracts user_id from the context. Writes a 401 response and
// returns false when the auth middleware did not inject it; callers should
// return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	s, ok := contextString(c, "user_id")
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetCaller builds the caller identity from the authenticated context.
func MustGetCaller(c *gin.Context) (service.Caller, bool) {
	id, ok := contextString(c, "user_id")
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return service.Caller{}, false
	}
	name, ok := contextString(c, "user_name")
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return service.Caller{}, false
	}
	role, ok := contextString(c, "role")
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return service.Caller{}, false
	}
	return service.Caller{ID: id, Name: name, Role: role}, true
}

// tokenInfo extracts the access token's JTI and expiry for logout.
func tokenInfo(c *gin.Context) (string, time.Time, bool) {
	jti, ok := contextString(c, "token_jti")
	if !ok {
		return "", time.Time{}, false
	}
	v, exists := c.Get("token_expires_at")
	if !exists {
		return "", time.Time{}, false
	}
	expiresAt, ok := v.(time.Time)
	if !ok {
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}
