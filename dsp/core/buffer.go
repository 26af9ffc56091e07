package core

// Zero silences buf.
func Zero(buf []int16) {
	clear(buf)
}

// CopyInto copies as many samples of src as fit into dst and returns the
// count.
func CopyInto(dst, src []int16) int {
	return copy(dst, src)
}
