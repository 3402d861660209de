// Package ciphertest provides an in-process cipher.Tool for tests.
//
// Tool seals files with NaCl secretbox under a key derived from the
// recipient, so a file encrypted for one recipient cannot be opened as if it
// belonged to another, and decrypting anything that was not produced by
// Encrypt fails the way gpg would.
package ciphertest

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const magic = "DEARYTEST1"

// Tool is a fake cipher.Tool. The zero value is ready to use.
type Tool struct {
	// Missing makes Check and every operation fail with ErrToolNotFound.
	Missing bool

	// FailEncrypt makes Encrypt write a truncated output and exit non-zero.
	FailEncrypt bool

	// FailDecrypt makes Decrypt exit non-zero.
	FailDecrypt bool

	// Recipients records the trimmed recipient of every Encrypt call.
	Recipients []string

	// Calls counts Encrypt and Decrypt invocations.
	Calls int
}

// Check implements cipher.Tool.
func (t *Tool) Check() error {
	if t.Missing {
		return fmt.Errorf("%w: fake gpg", kerrors.ErrToolNotFound)
	}
	return nil
}

// Encrypt implements cipher.Tool.
func (t *Tool) Encrypt(ctx context.Context, plainPath, cipherPath, recipient string) error {
	if err := t.Check(); err != nil {
		return err
	}
	t.Calls++

	recipient = strings.TrimSpace(recipient)
	t.Recipients = append(t.Recipients, recipient)

	plaintext, err := os.ReadFile(plainPath)
	if err != nil {
		return t.failure(2, "can't open "+plainPath)
	}

	if t.FailEncrypt {
		_ = os.WriteFile(cipherPath, []byte(magic[:4]), 0600)
		return t.failure(2, "encryption failed: No public key")
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return err
	}
	key := deriveKey(recipient)

	out := append([]byte(magic), byte(len(recipient)))
	out = append(out, recipient...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, plaintext, &nonce, &key)

	return os.WriteFile(cipherPath, out, 0600)
}

// Decrypt implements cipher.Tool.
func (t *Tool) Decrypt(ctx context.Context, path string) ([]byte, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	t.Calls++

	if t.FailDecrypt {
		return nil, t.failure(2, "decryption failed: No secret key")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, t.failure(2, "can't open "+path)
	}

	rest, ok := strings.CutPrefix(string(data), magic)
	if !ok || len(rest) < 1 {
		return nil, t.failure(2, "no valid OpenPGP data found")
	}
	n := int(rest[0])
	if len(rest) < 1+n+24 {
		return nil, t.failure(2, "invalid packet")
	}
	recipient := rest[1 : 1+n]
	var nonce [24]byte
	copy(nonce[:], rest[1+n:1+n+24])
	key := deriveKey(recipient)

	plaintext, ok := secretbox.Open(nil, []byte(rest[1+n+24:]), &nonce, &key)
	if !ok {
		return nil, t.failure(2, "decryption failed: Bad session key")
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

func (t *Tool) failure(status int, stderr string) error {
	return &kerrors.ToolFailure{
		Tool:   "fake-gpg",
		Status: status,
		Stderr: "gpg: " + stderr,
		Kind:   kerrors.ErrToolFailed,
	}
}

func deriveKey(recipient string) [32]byte {
	return sha256.Sum256([]byte("deary-test-key:" + recipient))
}
