package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
)

// Delimiter separates record fields. Fields containing it corrupt parsing;
// the format has no escaping.
const Delimiter = "|"

// Store persists delimited-field records as append-only text files, one
// file per collection, one record per line. A missing file reads as an
// empty collection; a failed append is surfaced as a storage error.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Storage("init", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Append serializes fields joined by the pipe delimiter and appends one
// line to the collection.
func (s *Store) Append(collection string, fields []string) error {
	return s.appendLine(collection, strings.Join(fields, Delimiter))
}

// AppendSpaced is the admin-account special case: fields joined by a
// single space instead of the pipe delimiter.
func (s *Store) AppendSpaced(collection string, fields []string) error {
	return s.appendLine(collection, strings.Join(fields, " "))
}

func (s *Store) appendLine(collection, line string) error {
	f, err := os.OpenFile(s.path(collection), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperrors.Storage("append", collection, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return apperrors.Storage("append", collection, err)
	}
	return nil
}

// Load reads every line of the collection and splits it on the pipe
// delimiter. Lines with fewer fields than a schema expects are returned
// as-is; skipping them is caller policy.
func (s *Store) Load(collection string) ([][]string, error) {
	return s.loadLines(collection, func(line string) []string {
		return strings.Split(line, Delimiter)
	})
}

// LoadSpaced splits each line on whitespace, for the admin-account
// collection.
func (s *Store) LoadSpaced(collection string) ([][]string, error) {
	return s.loadLines(collection, strings.Fields)
}

func (s *Store) loadLines(collection string, split func(string) []string) ([][]string, error) {
	f, err := os.Open(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Storage("load", collection, err)
	}
	defer f.Close()

	var records [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		records = append(records, split(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Storage("load", collection, err)
	}
	return records, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection)
}
