package staging

import "golang.org/x/sys/unix"

// InMemory reports whether dir is backed by tmpfs.
func InMemory(dir string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return false
	}
	return st.Type == unix.TMPFS_MAGIC
}
