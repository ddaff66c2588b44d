/*
Package env implements the ordered .env-style configuration store that
backs the link lifecycle. The file is the persisted state of the tool:
values written here survive across invocations.
*/
package env

import (
	"fmt"
	"os"
	"strings"
)

/*
Store holds a .env file fully in memory. Lines are kept verbatim so a
rewrite preserves comments, blank lines and ordering exactly; only the
line carrying an updated key is replaced.
*/
type Store struct {
	path  string
	lines []string
	vals  map[string]string
}

/*
Load reads the file at path into a new store. A missing file is not an
error, it simply yields an empty store; the file is created on the
first Set.
*/
func Load(path string) (*Store, error) {
	store := &Store{
		path: path,
		vals: make(map[string]string),
	}

	data, err := os.ReadFile(path)

	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	store.lines = splitLines(string(data))

	for _, line := range store.lines {
		if key, value, ok := parseLine(line); ok {
			store.vals[key] = value
		}
	}

	return store, nil
}

// Path returns the file path backing the store.
func (store *Store) Path() string {
	return store.path
}

// Get returns the value for key, or the empty string when unset.
func (store *Store) Get(key string) string {
	return store.vals[key]
}

// Lookup returns the value for key and whether the key is present.
func (store *Store) Lookup(key string) (string, bool) {
	value, ok := store.vals[key]
	return value, ok
}

/*
Set updates key to value and rewrites the backing file. An existing
KEY=VALUE line is replaced in place; a key not present in the file is
appended as exactly one new line. Every other line survives verbatim.
*/
func (store *Store) Set(key, value string) error {
	found := false

	for i, line := range store.lines {
		existing, _, ok := parseLine(line)

		if ok && existing == key {
			store.lines[i] = key + "=" + value
			found = true
			break
		}
	}

	if !found {
		store.lines = append(store.lines, key+"="+value)
	}

	store.vals[key] = value

	return store.flush()
}

/*
Snapshot returns the merged view of the process environment and the
file contents, with file values taking precedence. The original tool
accepted required keys from either source.
*/
func (store *Store) Snapshot() map[string]string {
	merged := make(map[string]string, len(store.vals))

	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok {
			merged[key] = value
		}
	}

	for key, value := range store.vals {
		merged[key] = value
	}

	return merged
}

func (store *Store) flush() error {
	builder := &strings.Builder{}

	for _, line := range store.lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	if err := os.WriteFile(store.path, []byte(builder.String()), 0644); err != nil {
		return fmt.Errorf("failed to write env file %s: %w", store.path, err)
	}

	return nil
}

func splitLines(data string) []string {
	data = strings.TrimSuffix(data, "\n")

	if data == "" {
		return nil
	}

	return strings.Split(data, "\n")
}

func parseLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, value, ok = strings.Cut(trimmed, "=")

	if !ok {
		return "", "", false
	}

	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
