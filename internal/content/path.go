package content

import (
	"strconv"
	"strings"
)

// segment is one step of a field path: an object member name, optionally
// followed by a single list index, e.g. "values[2]".
type segment struct {
	member   string
	index    int
	hasIndex bool
}

// parsePath splits a field path such as "hero.title" or "values[2].description"
// into segments. The rendering layer constructs these paths from static page
// schema knowledge, so the grammar is deliberately small: dot-separated member
// names, each with at most one bracketed numeric index suffix.
func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, &ErrBadPath{Path: path, Reason: "empty path"}
	}

	parts := strings.Split(path, ".")
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return nil, &ErrBadPath{Path: path, Reason: "empty segment"}
		}

		open := strings.IndexByte(part, '[')
		if open < 0 {
			if strings.IndexByte(part, ']') >= 0 {
				return nil, &ErrBadPath{Path: path, Reason: "unmatched bracket in " + part}
			}
			segments = append(segments, segment{member: part})
			continue
		}

		if open == 0 {
			return nil, &ErrBadPath{Path: path, Reason: "missing member name in " + part}
		}
		if !strings.HasSuffix(part, "]") {
			return nil, &ErrBadPath{Path: path, Reason: "unterminated index in " + part}
		}

		idxStr := part[open+1 : len(part)-1]
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 {
			return nil, &ErrBadPath{Path: path, Reason: "bad index in " + part}
		}

		segments = append(segments, segment{
			member:   part[:open],
			index:    idx,
			hasIndex: true,
		})
	}

	return segments, nil
}
