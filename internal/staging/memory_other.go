//go:build !linux

package staging

// InMemory always reports false outside Linux.
func InMemory(dir string) bool {
	return false
}
