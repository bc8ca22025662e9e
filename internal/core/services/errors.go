package services

import "fmt"

// domainErrorf wraps a domain sentinel with context
func domainErrorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
}
