package model

import "fmt"

// parseEnum converts raw text into a closed enumeration value, rejecting
// anything outside the set accepted by valid.
func parseEnum[T ~string](kind string, text []byte, valid func(T) bool) (T, error) {
	v := T(text)
	if !valid(v) {
		return "", fmt.Errorf("unknown %s %q", kind, string(text))
	}
	return v, nil
}
