package navigation

import "strings"

// Normalize returns path with a leading slash and without a trailing slash,
// except for the root.
func Normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Join appends a child path to its parent's full path. Empty children share
// the parent path and absolute children replace it.
func Join(parent, child string) string {
	switch {
	case child == "":
		return Normalize(parent)
	case strings.HasPrefix(child, "/"):
		return Normalize(child)
	}
	return Normalize(strings.TrimSuffix(Normalize(parent), "/") + "/" + strings.Trim(child, "/"))
}

// isWildcardSegment reports whether seg swallows the remaining path. Both
// ServeMux "{name...}" and router "*" / ":name(.*)*" spellings count.
func isWildcardSegment(seg string) bool {
	switch {
	case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "...}"):
		return true
	case seg == "*":
		return true
	case strings.HasPrefix(seg, ":") && strings.HasSuffix(seg, "*"):
		return true
	}
	return false
}

// isCatchAll reports whether path is a wildcard at the root, matching every
// path the NotFound route matches.
func isCatchAll(path string) bool {
	segs := segments(Normalize(path))
	return len(segs) == 1 && isWildcardSegment(segs[0])
}

func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// matchPath compares a route's full path to a request path. exact is true
// on a full match; prefix is true when path continues below pattern.
func matchPath(pattern, path string) (exact, prefix bool) {
	ps := segments(pattern)
	rs := segments(path)

	for i, seg := range ps {
		if isWildcardSegment(seg) {
			return true, false
		}
		if i >= len(rs) {
			return false, false
		}
		if !segmentMatches(seg, rs[i]) {
			return false, false
		}
	}

	if len(rs) == len(ps) {
		return true, false
	}
	return false, true
}

func segmentMatches(pattern, seg string) bool {
	if strings.HasPrefix(pattern, "{") && strings.HasSuffix(pattern, "}") {
		return seg != ""
	}
	if strings.HasPrefix(pattern, ":") {
		return seg != ""
	}
	return pattern == seg
}
