// Package cipher encrypts and decrypts journal entries with an external
// OpenPGP tool.
//
// The Tool interface is the only thing the workflows package depends on.
// GPG is the production implementation and shells out to gpg; the
// ciphertest package provides an in-process fake for tests.
//
// Every invocation passes DefaultOptions, which keep gpg from prompting,
// let it overwrite an existing output file, disable compression so the
// ciphertext size does not reveal how compressible an entry is, and stop
// gpg from adding the default key as an extra recipient.
package cipher
