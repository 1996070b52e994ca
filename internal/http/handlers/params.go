package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	codeInvalidPersonID  = "invalid_person_id"
	codeInvalidAddressID = "invalid_address_id"
	codeInvalidRequest   = "invalid_request"
)

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, raw)
	}
	return uint(n), nil
}
