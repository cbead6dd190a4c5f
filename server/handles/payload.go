package handles

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/taskdesk/server/common"
)

// Payload is a leniently parsed JSON request body. A missing body, a non-JSON
// content type or an unparsable body all yield an empty payload; the required
// field checks then report the absence as a 400.
type Payload map[string]any

func ParsePayload(c *gin.Context) Payload {
	if c.Request.Body == nil || !isJSONContent(c.ContentType()) {
		return Payload{}
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return Payload{}
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil || p == nil {
		return Payload{}
	}
	return p
}

// Has reports whether the key was present in the body, regardless of value.
// Partial updates only touch fields whose key was submitted.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Str returns the string value for key. Absent keys, nulls and non-string
// values all read as "".
func (p Payload) Str(key string) string {
	s, _ := p[key].(string)
	return s
}

// OptStr returns the string value for key or nil when the key is absent,
// null or not a string.
func (p Payload) OptStr(key string) *string {
	if s, ok := p[key].(string); ok {
		return &s
	}
	return nil
}

// isJSONContent accepts application/json and +json suffix media types
// (e.g. application/problem+json).
func isJSONContent(ct string) bool {
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}

// optStrEqual reports whether two optional strings hold the same value.
func optStrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// pathID parses a numeric path parameter. Non-numeric ids behave like an
// unmatched route and answer the generic 404.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		common.ErrorStrResp(c, "Not found", 404)
		return 0, false
	}
	return uint(id), true
}
