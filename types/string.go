package types

import "github.com/dball/cons/list"

// String - string values
type String string

// ValueEquals compares strings
func (s String) ValueEquals(that Value) bool {
	thatString, valid := that.(String)
	if !valid {
		return false
	}
	return s == thatString
}

func (s String) hashBytes() []byte {
	return append([]byte{'"'}, s...)
}

// Chars returns a list of the one-character strings of s
func (s String) Chars() list.List[Value] {
	runes := []rune(s)
	items := make([]Value, len(runes))
	for i, r := range runes {
		items[i] = String(r)
	}
	return list.Of(items...)
}
