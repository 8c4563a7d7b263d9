package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/fittrack/backend/internal/types"
)

const dateLayout = "2006-01-02"

// currentUserID returns the id AuthMiddleware stored on the context. It writes
// a 401 and returns false when there is none.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter, writing a 400 when it is malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return uuid.Nil, false
	}
	return id, true
}

// parseTime accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func optionalTime(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// listOptions reads page, limit, from and to from the query string.
func listOptions(c *gin.Context) (types.ListOptions, error) {
	var opts types.ListOptions
	var err error

	if raw := c.Query("page"); raw != "" {
		if opts.Page, err = strconv.Atoi(raw); err != nil || opts.Page < 1 {
			return opts, fmt.Errorf("page must be a positive integer")
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if opts.Limit, err = strconv.Atoi(raw); err != nil || opts.Limit < 1 {
			return opts, fmt.Errorf("limit must be a positive integer")
		}
	}
	if opts.From, err = optionalTime(c, "from"); err != nil {
		return opts, err
	}
	if opts.To, err = optionalTime(c, "to"); err != nil {
		return opts, err
	}
	if opts.To != nil {
		_, dateErr := time.Parse(dateLayout, c.Query("to"))
		opts.ToWholeDay = dateErr == nil
	}
	return opts.Normalize(), nil
}

// listResponse is the envelope for paginated listings.
func listResponse(key string, items interface{}, opts types.ListOptions, total int64) gin.H {
	return gin.H{
		key:          items,
		"pagination": types.NewPaginationMeta(opts, total),
	}
}
