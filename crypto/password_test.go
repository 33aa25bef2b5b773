package crypto_test

import (
	"testing"

	"github.com/arpancodez/hotelmgsys/crypto"
)

// testParams keeps derivation cheap in tests.
var testParams = crypto.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestHashVerify_RoundTrip(t *testing.T) {
	salt, key, err := crypto.HashPassword("correct horse battery staple", testParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if len(salt) != int(testParams.SaltLength) || len(key) != int(testParams.KeyLength) {
		t.Fatalf("salt/key lengths = %d/%d", len(salt), len(key))
	}

	ok, err := crypto.VerifyPassword("correct horse battery staple", salt, key, testParams)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}
}

func TestVerify_WrongPasswordFails(t *testing.T) {
	salt, key, err := crypto.HashPassword("right", testParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, err := crypto.VerifyPassword("wrong", salt, key, testParams)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	if _, _, err := crypto.HashPassword("", testParams); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	saltA, keyA, err := crypto.HashPassword("same", testParams)
	if err != nil {
		t.Fatal(err)
	}
	saltB, keyB, err := crypto.HashPassword("same", testParams)
	if err != nil {
		t.Fatal(err)
	}
	if string(saltA) == string(saltB) {
		t.Fatal("expected fresh salt per hash")
	}
	if string(keyA) == string(keyB) {
		t.Fatal("expected distinct keys under distinct salts")
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
	crypto.Wipe(nil)
}
