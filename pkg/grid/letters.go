package grid

// ColumnLetters encodes a zero-based column index as its spreadsheet letter
// label: 0 is A, 25 is Z, 26 is AA, 701 is ZZ, 702 is AAA.
//
// The encoding is bijective base-26, not plain base-26: after dividing out a
// digit, a nonzero quotient is decremented by one. Without that carry the
// boundary labels collide (plain base-26 would follow Z with AA for both
// index 25 and 26).
func ColumnLetters(index uint32) string {
	// Seven letters already cover every uint32 index.
	var buf [8]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('A' + index%26)
		index /= 26
		if index == 0 {
			break
		}
		index--
	}
	return string(buf[i:])
}
