package inputs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// GetBool returns true if the input value is "true", otherwise false
func GetBool(name string) bool {
	return strings.EqualFold(githubactions.GetInput(name), "true")
}

// GetIntPtr returns nil if the input was unset, otherwise the parsed integer
func GetIntPtr(name string) (*int, error) {
	s := githubactions.GetInput(name)

	if s == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("input %q must be an integer: %w", name, err)
	}

	return &i, nil
}

// GetString returns the input or def when the input was unset
func GetString(name string, def string) string {
	if s := githubactions.GetInput(name); s != "" {
		return s
	}

	return def
}
