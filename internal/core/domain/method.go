package domain

// Method names an acquisition method used to collect mappings from package metadata.
type Method string

const (
	// MethodAll traverses the dependency graph of the named packages.
	MethodAll Method = "all"
	// MethodExplicit only uses the declarations of the named packages.
	MethodExplicit Method = "explicit"
	// MethodEmpty keeps every declared key but replaces its value with Empty.
	MethodEmpty Method = "empty"
	// MethodNone produces nothing.
	MethodNone Method = "none"
)

// DefaultMethod is substituted for any method name a table does not know.
const DefaultMethod = MethodAll

// String returns the method name.
func (m Method) String() string {
	return string(m)
}
