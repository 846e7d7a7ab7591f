package grove

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ParseRecords reads the quoted dataset format the demo programs consume:
// one record per line, names and number each wrapped in single quotes, e.g.
//
//	'Lucas Li','469-555-1212'
//
// Blank lines are skipped. A line that does not carry both quoted fields,
// or whose name field is not "First Last", fails with its line number.
func ParseRecords(r io.Reader) ([]Record, error) {
	var records []Record

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		// 'First Last','number' splits on the quote into
		// ["", "First Last", ",", "number", ""].
		parts := strings.Split(text, "'")
		if len(parts) < 5 {
			return nil, errors.Errorf("line %d: malformed record %q", line, text)
		}

		name := strings.SplitN(parts[1], " ", 2)
		if len(name) != 2 {
			return nil, errors.Errorf("line %d: malformed name %q", line, parts[1])
		}

		records = append(records, Record{
			FirstName: name[0],
			LastName:  name[1],
			Number:    parts[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan dataset")
	}

	return records, nil
}

// LoadFile parses the dataset at path through the store's file system and
// inserts every record, returning how many were inserted. Records whose
// number already exists in their bucket are skipped, matching the
// duplicate-insert semantics of Put.
func (s *Store) LoadFile(path string) (int, error) {
	f, err := s.opts.fs.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	records, err := ParseRecords(f)
	if err != nil {
		return 0, errors.Wrapf(err, "parse dataset %s", path)
	}

	inserted := 0
	for _, r := range records {
		if err := s.Put(r); err != nil {
			if errors.Is(err, ErrKeyExists) {
				continue
			}
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
