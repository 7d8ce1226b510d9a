package client

import (
	"fmt"
	"net/url"
	"strings"
)

// pathSegment is one (resource kind, identifier) pair of a hierarchical REST
// path, e.g. seg("org", "nasa") -> "/org/nasa".
type pathSegment struct {
	kind string
	key  string
}

func seg(kind, key string) pathSegment {
	return pathSegment{kind: kind, key: key}
}

// buildResourcePath joins (kind, key) pairs and optional trailing literal
// segments into a canonical path. Keys are escaped; an empty key or a key
// containing a path separator is malformed input and rejected here so the
// ambiguity never reaches the wire.
func buildResourcePath(segments []pathSegment, trailing ...string) (string, error) {
	var b strings.Builder
	for _, s := range segments {
		if s.key == "" {
			return "", fmt.Errorf("empty %s key", s.kind)
		}
		if strings.ContainsAny(s.key, `/\`) {
			return "", fmt.Errorf("%s key %q contains a path separator", s.kind, s.key)
		}
		b.WriteString("/")
		b.WriteString(s.kind)
		b.WriteString("/")
		b.WriteString(url.PathEscape(s.key))
	}
	for _, t := range trailing {
		b.WriteString("/")
		b.WriteString(t)
	}
	return b.String(), nil
}
