package entity

// IsValidID reports whether id is a well-formed store identifier:
// a 24-character lowercase-or-uppercase hex token. Validity is checked
// before any store round trip so malformed identifiers fail fast as
// bad input rather than as a store error.
func IsValidID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
