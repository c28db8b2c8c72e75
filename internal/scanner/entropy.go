package scanner

import "math"

// Entropy returns the Shannon entropy of s in bits per character. Repetitive
// strings score near 0, random base64-like tokens above 4.5.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	for _, r := range s {
		count[r]++
	}
	h := 0.0
	n := float64(len([]rune(s)))
	for _, c := range count {
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
