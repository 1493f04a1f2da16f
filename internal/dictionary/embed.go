package dictionary

import _ "embed"

//go:embed words.txt
var embedded string

// Default returns the built-in word list. Each call yields a fresh Set,
// so callers may add words without affecting others.
func Default() Set {
	return parse(embedded)
}
