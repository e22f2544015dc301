package render

import (
	"net/url"
	"strings"
)

// AssetURL joins prefix and an asset name from the catalog, escaping each
// path segment. Names that are already absolute URLs are returned as is.
func AssetURL(prefix, name string) string {
	if IsRemote(name) {
		return name
	}
	name = strings.TrimPrefix(name, "/")
	segs := strings.Split(name, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return prefix + strings.Join(segs, "/")
}

// IsRemote reports whether an asset name is an absolute URL rather than a
// file under the assets directory.
func IsRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "//")
}
