package middleware

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the header clients use to pass the key
	IdempotencyKeyHeader = "Idempotency-Key"
	// idempotencyKeyTTL is how long a processed key is remembered
	idempotencyKeyTTL = 24 * time.Hour
)

// responseRecorder captures the response so it can be cached for replay
type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// IdempotencyRequired enforces an Idempotency-Key header on mutating
// endpoints where a double-tap must not record a duplicate, and replays
// the cached response when the same key is seen again.
func IdempotencyRequired(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required",
			})
			c.Abort()
			return
		}

		operatorID, ok := operatorFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			c.Abort()
			return
		}

		existing, err := repo.GetByKey(c.Request.Context(), key, operatorID)
		if err != nil {
			log.Printf("idempotency lookup failed: %v", err)
		}
		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		// Only successful responses are worth replaying; a failed attempt
		// should be retryable with the same key.
		status := recorder.Status()
		if status < 200 || status >= 300 {
			return
		}

		record := &entity.IdempotencyKey{
			Key:          key,
			OperatorID:   operatorID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: status,
			ResponseBody: recorder.body.String(),
			ExpiresAt:    time.Now().Add(idempotencyKeyTTL),
		}
		if err := repo.Create(c.Request.Context(), record); err != nil {
			log.Printf("failed to store idempotency key: %v", err)
		}
	}
}

func operatorFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("operator_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
