package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskflow/internal/shared/errors"
)

// ParseUintParam parses a numeric ID from a Gin route parameter.
// entityName is used in error messages (e.g., "ticket", "company").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID: %s", entityName, raw))
	}

	return uint(id), nil
}

// ParseUintQuery parses a numeric query string value.
func ParseUintQuery(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid numeric value: %s", raw))
	}
	return uint(id), nil
}

// ParsePagination extracts page/page_size query parameters with sane bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
