package domain

// Stub marks a module that is deliberately absent from the bundle. r.js
// resolves the module to nothing instead of failing on it.
const Stub = "empty:"

// Empty marks a bundled source that is declared but excluded from the bundle.
const Empty = "empty:"

// IsSentinel reports whether v is one of the sentinel values rather than a path.
// Stub and Empty share the same value, so callers cannot tell them apart;
// the map a value came from says which one it is.
func IsSentinel(v string) bool {
	return v == Stub || v == Empty
}
