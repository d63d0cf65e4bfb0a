// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte("login"))
	h.Write([]byte("10.0.0.1"))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString("10.0.0.1", "login"); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("a@x.com", "k") != HashString("a@x.com", "k") {
		t.Fatal("hash must be deterministic for the same input")
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("10.0.0.1", "login") == HashString("10.0.0.1", "forgot-password") {
		t.Fatal("different keys must produce different hashes")
	}
}
