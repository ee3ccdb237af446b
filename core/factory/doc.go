// Package factory provides a small generic registry used to build named
// implementations from typed options. The harness uses it to resolve solvers
// by the names given in configuration.
//
// Example usage:
//
//	reg := factory.NewRegistry[io.Reader, string]()
//	reg.Register("file", func(path string) (io.Reader, error) {
//	    return os.Open(path)
//	})
//	r, err := reg.Create("file", "foo")
package factory
