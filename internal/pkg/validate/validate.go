// Package validate checks request payloads against their validate tags and
// flattens the failures into a single message suitable for an API response.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared across all services. Custom registrations belong in an init()
// before the first Struct call.
var v = validator.New()

// Struct validates s against its validate tags, joining all tag failures
// into one error.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}
