package utils

import (
	"strconv"
)

// ParseID converts a route id to uint, returns 0 if invalid
func ParseID(s string) uint {
	i, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(i)
}
