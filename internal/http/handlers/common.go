package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketplace/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RespondError sends a bad request style payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	var details any
	if err != nil {
		details = err.Error()
	}
	respondError(c, status, "", message, details)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// BindQueryOrError binds list criteria from the query string. A parameter
// sent with an empty value is treated as absent.
func BindQueryOrError[T any](c *gin.Context, dst *T) bool {
	err := binding.MapFormWithTag(dst, nonBlank(c.Request.URL.Query()), "form")
	if err == nil && binding.Validator != nil {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid query parameters", err)
		return false
	}
	return true
}

func nonBlank(values url.Values) map[string][]string {
	out := make(map[string][]string, len(values))
	for key, vs := range values {
		kept := make([]string, 0, len(vs))
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			out[key] = kept
		}
	}
	return out
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// pageRequest reads pageNo and pageSize. Out of range values are clamped,
// non-numeric ones are rejected.
func pageRequest(c *gin.Context) (query.PageRequest, bool) {
	no, ok := intQuery(c, "pageNo", query.DefaultPageNo)
	if !ok {
		return query.PageRequest{}, false
	}
	size, ok := intQuery(c, "pageSize", query.DefaultPageSize)
	if !ok {
		return query.PageRequest{}, false
	}
	return query.Normalize(no, size), true
}

func intQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, key+" must be an integer", nil)
		return 0, false
	}
	return v, true
}
