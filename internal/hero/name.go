// internal/hero/name.go
//
// Hero name handling: the player's chosen display identity, used as the
// leaderboard key.
//
// Responsibilities:
//   - Validate names: trimmed, non-empty, at most MaxNameLen runes.
//   - Reject names containing a denylisted substring (case-insensitive).
//   - Load the denylist from an environment-provided file or fall back
//     to the embedded default list.
//
// Environment variables:
//   HERO_DENYLIST_FILE=/path/to/denylist.txt
//
// Initialization is run once (sync.Once); call Init from main to surface
// load errors at boot.

package hero

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

// MaxNameLen is the maximum hero name length in runes.
const MaxNameLen = 15

//go:embed denylist.txt
var embeddedDenylist string

var (
	initOnce sync.Once
	denylist []string
	initErr  error
)

var (
	ErrEmptyName     = errors.New("hero name is empty")
	ErrNameTooLong   = errors.New("hero name is too long")
	ErrNameForbidden = errors.New("hero name contains a forbidden word")
)

// Init loads the denylist. Safe to call multiple times; only the first
// call does work. Validate calls Init lazily, so Init is only needed in
// main to fail fast on a bad HERO_DENYLIST_FILE.
func Init() error {
	initOnce.Do(func() {
		if path := os.Getenv("HERO_DENYLIST_FILE"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				initErr = err
				return
			}
			defer f.Close()
			denylist, initErr = readWords(bufio.NewScanner(f))
			return
		}
		denylist, initErr = readWords(bufio.NewScanner(strings.NewReader(embeddedDenylist)))
	})
	return initErr
}

// readWords collects non-empty, non-comment lines, lowercased.
func readWords(sc *bufio.Scanner) ([]string, error) {
	var out []string
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Validate checks a raw hero name and returns its canonical (trimmed)
// form. Returns one of the Err* sentinels on rejection.
func Validate(raw string) (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return "", ErrNameTooLong
	}
	lower := strings.ToLower(name)
	for _, w := range denylist {
		if strings.Contains(lower, w) {
			return "", ErrNameForbidden
		}
	}
	return name, nil
}

// IsAllowed reports whether a raw name would pass Validate.
func IsAllowed(raw string) bool {
	_, err := Validate(raw)
	return err == nil
}
