// Package dist computes the module mappings handed to the bundler.
//
// Two generators exist. The transpile source map resolves module names to
// the source files declared in module registries. The bundled source map
// resolves module names to vendored files under package manager directories
// of the working directory. How each one collects its data is selected by
// an acquisition method looked up in a fixed table; unknown method names fall
// back to domain.DefaultMethod.
package dist
