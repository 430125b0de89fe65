package types

// Function - functions of values to value
type Function struct {
	Name string
	Fn   func(...Value) (Value, error)
}

// ValueEquals compares functions by name
func (fn Function) ValueEquals(that Value) bool {
	thatFn, valid := that.(Function)
	if !valid {
		return false
	}
	return fn.Name == thatFn.Name
}

func (fn Function) hashBytes() []byte {
	return append([]byte("#fn:"), fn.Name...)
}
