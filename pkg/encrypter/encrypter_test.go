package encrypter

import (
	"errors"
	"testing"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	enc := New("0123456789abcdef0123456789abcdef")

	tests := []string{
		"refresh-token-value",
		"",
		"unicode: chuyến du hành sao Hỏa",
	}

	for _, plaintext := range tests {
		ciphertext, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) returned error: %v", plaintext, err)
		}
		if ciphertext == plaintext && plaintext != "" {
			t.Errorf("ciphertext equals plaintext for %q", plaintext)
		}

		decrypted, err := enc.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt returned error: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("roundtrip: got %q, want %q", decrypted, plaintext)
		}
	}
}

func TestEncryptNonDeterministic(t *testing.T) {
	enc := New("0123456789abcdef0123456789abcdef")

	a, err := enc.Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := enc.Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same input should differ (random nonce)")
	}
}

func TestSupportedKeyLengths(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"aes-128", "0123456789abcdef"},
		{"aes-192", "0123456789abcdef01234567"},
		{"aes-256", "0123456789abcdef0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := New(tt.key)
			ciphertext, err := enc.Encrypt("secret")
			if err != nil {
				t.Fatalf("Encrypt with %d-byte key returned error: %v", len(tt.key), err)
			}
			decrypted, err := enc.Decrypt(ciphertext)
			if err != nil {
				t.Fatalf("Decrypt returned error: %v", err)
			}
			if decrypted != "secret" {
				t.Errorf("roundtrip: got %q, want %q", decrypted, "secret")
			}
		})
	}
}

func TestInvalidKeyLength(t *testing.T) {
	enc := New("too-short")

	if _, err := enc.Encrypt("x"); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	enc := New("0123456789abcdef0123456789abcdef")
	other := New("fedcba9876543210fedcba9876543210")

	ciphertext, err := enc.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecryptGarbage(t *testing.T) {
	enc := New("0123456789abcdef0123456789abcdef")

	if _, err := enc.Decrypt("not-base64!!!"); err == nil {
		t.Error("expected an error for invalid base64")
	}
	if _, err := enc.Decrypt("YWJj"); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("expected ErrCiphertextTooShort, got %v", err)
	}
}

func TestPasswordHash(t *testing.T) {
	enc := New("0123456789abcdef0123456789abcdef")

	hash, err := enc.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !enc.CheckPasswordHash("hunter2", hash) {
		t.Error("correct password should verify")
	}
	if enc.CheckPasswordHash("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}
