package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// KeyManager owns the signing key and the public KeySet. Keys are ephemeral:
// generated fresh at startup, which means tokens do not survive a restart.
// That is acceptable here because access tokens are short-lived anyway.
type KeyManager struct {
	Signer *Signer
	KeySet *KeySet
}

// NewEphemeralKeyManager generates a fresh Ed25519 keypair, wraps it in a
// signer and publishes the public half into a KeySet.
func NewEphemeralKeyManager(kid string) (*KeyManager, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}

	signer, err := NewSignerEdDSA(kid, priv)
	if err != nil {
		return nil, err
	}

	keys := NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, err
	}

	return &KeyManager{Signer: signer, KeySet: keys}, nil
}

// Verifier returns a verifier bound to this manager's KeySet.
func (m *KeyManager) Verifier(issuer string) *Verifier {
	return NewVerifierEdDSA(m.KeySet, issuer)
}
