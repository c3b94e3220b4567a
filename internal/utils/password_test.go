// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"
)

// smallHasher keeps the test suite fast; production uses NewPasswordHasher.
func smallHasher() *PasswordHasher {
	return &PasswordHasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 32, saltLen: 16}
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := smallHasher()

	encoded, err := h.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Errorf("unexpected encoding: %s", encoded)
	}

	ok, err := h.Verify("correct horse battery", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("wrong password", encoded)
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := smallHasher()

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestPasswordHasher_VerifyUsesEncodedParams(t *testing.T) {
	encoded, err := smallHasher().Hash("secret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := NewPasswordHasher().Verify("secret-password", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match with encoded params, got ok=%v err=%v", ok, err)
	}
}

func TestPasswordHasher_InvalidFormat(t *testing.T) {
	tests := []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
	}

	for _, encoded := range tests {
		t.Run(encoded, func(t *testing.T) {
			_, err := smallHasher().Verify("x", encoded)
			if !errors.Is(err, ErrInvalidPasswordHash) {
				t.Errorf("expected ErrInvalidPasswordHash, got %v", err)
			}
		})
	}
}
