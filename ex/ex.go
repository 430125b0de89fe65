package ex

import "fmt"

// Ex is an error with a code, possibly an error, and a context map
type Ex struct {
	Code    string
	Err     error
	Context map[string]interface{}
}

// Codes shared across packages
var (
	InvalidType  = Ex{Code: "invalid type"}
	InvalidValue = Ex{Code: "invalid value"}
	Overflow     = Ex{Code: "overflow"}
)

// With returns a copy of ex with a context entry added
func (ex Ex) With(key string, value interface{}) Ex {
	context := make(map[string]interface{}, len(ex.Context)+1)
	for k, v := range ex.Context {
		context[k] = v
	}
	context[key] = value
	return Ex{Code: ex.Code, Err: ex.Err, Context: context}
}

// Wrap returns a copy of ex carrying err as its cause
func (ex Ex) Wrap(err error) Ex {
	return Ex{Code: ex.Code, Err: err, Context: ex.Context}
}

func (ex Ex) Unwrap() error { return ex.Err }

// Is matches any Ex with the same code
func (ex Ex) Is(target error) bool {
	t, ok := target.(Ex)
	return ok && t.Code == ex.Code
}

func (ex Ex) String() string {
	return fmt.Sprintf("error: %v: %v: %v", ex.Code, ex.Err, ex.Context)
}

func (ex Ex) Error() string {
	return ex.String()
}
