package common

// WipeByteArray overwrites the contents of b with zeros. Use it to drop
// passwords from memory once they have been digested.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
