package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// LowerASCII keeps words made only of the letters a through z. Anything else
// could not be typed as printable ASCII against the target.
func LowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
