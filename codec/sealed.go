package codec

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Sealed payload layout: magic ‖ salt ‖ nonce ‖ ciphertext.
const (
	sealedMagic   = "PPYRSEAL1"
	sealedSaltLen = 16
)

// Argon2id parameters for passphrase key derivation.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

var errSealedPayload = errors.New("sealed codec: payload is not a sealed document")

// Sealed wraps another codec with passphrase-based encryption at rest:
// the inner codec produces the plaintext payload, which is sealed with
// XChaCha20-Poly1305 under an Argon2id-derived key. Each write uses a fresh
// salt and nonce, so sealed payloads are not byte-comparable across writes.
func Sealed(inner Codec, passphrase string) Codec {
	return &sealed{inner: inner, passphrase: []byte(passphrase)}
}

type sealed struct {
	inner      Codec
	passphrase []byte
}

func (s *sealed) Marshal(v any) ([]byte, error) {
	plain, err := s.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	salt := make([]byte, sealedSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("sealed codec: salt: %w", err)
	}
	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("sealed codec: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("sealed codec: nonce: %w", err)
	}

	out := make([]byte, 0, len(sealedMagic)+len(salt)+len(nonce)+len(plain)+aead.Overhead())
	out = append(out, sealedMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plain, nil), nil
}

func (s *sealed) Unmarshal(data []byte, v any) error {
	header := len(sealedMagic) + sealedSaltLen + chacha20poly1305.NonceSizeX
	if len(data) < header || string(data[:len(sealedMagic)]) != sealedMagic {
		return errSealedPayload
	}
	salt := data[len(sealedMagic) : len(sealedMagic)+sealedSaltLen]
	nonce := data[len(sealedMagic)+sealedSaltLen : header]
	ct := data[header:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return fmt.Errorf("sealed codec: %w", err)
	}
	plain, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return fmt.Errorf("sealed codec: open (wrong passphrase or corrupt payload): %w", err)
	}
	return s.inner.Unmarshal(plain, v)
}

func (s *sealed) Name() string { return "sealed+" + s.inner.Name() }

func (s *sealed) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}
