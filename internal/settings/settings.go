package settings

import (
	"strconv"
	"strings"
)

// Reader is the read side of one settings namespace
type Reader interface {
	Get(name string) string
	// Lookup tells an empty value apart from a missing one
	Lookup(name string) (string, bool)
	Bool(name string) bool
	Int(name string) int
}

// Map is an in-memory Reader, also used for namespace defaults
type Map map[string]string

func (m Map) Get(name string) string { return m[name] }

func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m Map) Bool(name string) bool { return parseBool(m[name]) }

func (m Map) Int(name string) int { return parseInt(m[name]) }

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseInt(v string) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return i
}
