// Package staging holds plaintext while the user edits it.
//
// An Area hands out scoped files: each File is created with 0600
// permissions under an unpredictable name and must be released by the
// operation that allocated it. Release overwrites the file with zeros
// before unlinking it, so plaintext does not linger in the page cache of a
// disk-backed directory longer than necessary.
//
// On Linux the default directory is /dev/shm, which is memory backed.
// InMemory reports whether a directory lives on tmpfs so callers can warn
// when plaintext is about to touch a disk.
package staging
