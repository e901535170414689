package server

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func queryString(c *gin.Context, key string) *string {
	value := c.Query(key)
	if value == "" {
		return nil
	}

	return &value
}

func queryFloat(c *gin.Context, key string) *float64 {
	value := c.Query(key)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &parsed
}

func queryInt(c *gin.Context, key string) int {
	parsed, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}

	return parsed
}

func formInt(c *gin.Context, key string) *int {
	value := c.PostForm(key)
	if value == "" {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &parsed
}

func pathID(c *gin.Context, key string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param(key), 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(parsed), true
}

// encodeList turns comma-separated form input into the JSON array stored in
// the dish row.
func encodeList(raw string) string {
	items := make([]string, 0)

	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}

	return string(encoded)
}

func decodeList(encoded string) []string {
	if encoded == "" {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return []string{}
	}

	return items
}
