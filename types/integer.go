package types

import "encoding/binary"

// Integer - integer values
type Integer int64

// ValueEquals compares integers
func (i Integer) ValueEquals(that Value) bool {
	thatInt, valid := that.(Integer)
	if !valid {
		return false
	}
	return i == thatInt
}

func (i Integer) hashBytes() []byte {
	b := make([]byte, 9)
	b[0] = 'i'
	binary.LittleEndian.PutUint64(b[1:], uint64(i))
	return b
}
