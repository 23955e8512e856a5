package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-engagement/internal/domain"
)

const (
	// DeviceIDHeader carries the opaque per-device token used to key likes.
	DeviceIDHeader = "X-Device-ID"
	// DeviceIDKey is the context key for the device token
	DeviceIDKey = "device_id"
)

// DeviceID validates the optional X-Device-ID header. A present but malformed
// token is rejected with 400; a missing token leaves the request anonymous.
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if raw == "" {
			c.Set(DeviceIDKey, domain.AnonymousDeviceID)
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_input",
				"message": DeviceIDHeader + " must be a UUID",
			})
			return
		}

		c.Set(DeviceIDKey, id.String())
		c.Next()
	}
}

// GetDeviceID returns the device token of the request, or the anonymous
// device id when none was supplied.
func GetDeviceID(c *gin.Context) string {
	if v, exists := c.Get(DeviceIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return domain.AnonymousDeviceID
}
