package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a URL parameter into a positive primary key.
func ParseID(str string) (uint, error) {
	val, err := strconv.ParseUint(str, 10, 0)
	if err != nil || val == 0 {
		return 0, fmt.Errorf("invalid id %q", str)
	}
	return uint(val), nil
}
