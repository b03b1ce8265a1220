package nsid

import (
	"github.com/melvincarvalho/nomen/errors"
)

const (
	// MinNameLen and MaxNameLen bound the byte length of a name.
	MinNameLen = 3
	MaxNameLen = 43
)

// ValidateName checks that name is within the length bounds and the
// [a-z0-9-] charset.
func ValidateName(name string) error {
	if len(name) < MinNameLen || len(name) > MaxNameLen {
		return errors.ErrInvalidName
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return errors.ErrInvalidName
		}
	}

	return nil
}
