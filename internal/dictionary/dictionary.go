// Package dictionary loads the optional static English wordlist the
// Restore Policy's Impossible branch may consult. There is no
// Vietnamese dictionary and no cross-word context: this is a closed,
// read-only set loaded once at startup.
package dictionary

import (
	"bufio"
	"os"
	"strings"
)

// Wordlist is a closed set of lowercase English words, satisfying
// engine.Dictionary.
type Wordlist struct {
	words map[string]struct{}
}

// defaultWords seeds every Wordlist: common English function words,
// plus the closed set of English words this project's own concrete
// scenarios rely on colliding with Vietnamese spellings (tesla, class,
// law, core, case, ...).
var defaultWords = []string{
	"the", "and", "for", "you", "are", "was", "not", "but", "all", "can",
	"her", "his", "him", "she", "has", "had", "have", "that", "this",
	"with", "from", "your", "what", "when", "will", "would", "there",
	"their", "about", "which", "while", "where", "been", "were", "just",
	"like", "over", "than", "then", "them", "some", "more", "most",
	"class", "core", "case", "law", "tesla",
}

// New returns a Wordlist seeded with the built-in default set. It is
// the Dictionary wired into the engine out of the box; Load extends it
// with the words of an external file.
func New() *Wordlist {
	w := &Wordlist{words: make(map[string]struct{}, len(defaultWords))}
	for _, word := range defaultWords {
		w.words[word] = struct{}{}
	}
	return w
}

// Load reads a newline-delimited wordlist file, one word per line, and
// merges it into the built-in default set. Lines are lowercased and
// trimmed; blank lines and '#' comments are skipped.
func Load(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w.words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

// Contains reports whether word (case-insensitive) is in the list.
func (w *Wordlist) Contains(word string) bool {
	if w == nil {
		return false
	}
	_, ok := w.words[strings.ToLower(word)]
	return ok
}
