package utils

import (
	"crypto/ed25519"
	"encoding/hex"
)

// VerifyWebhookSignature reports whether signatureHex is a valid Ed25519
// signature by publicKeyHex over body. The signature must be checked against
// the exact bytes received on the wire, before any JSON parsing, so a
// re-serialized body can never be mistaken for the signed one.
//
// Malformed hex, a wrong-length key, or a wrong-length signature all return
// false rather than an error: untrusted input that cannot be decoded is
// simply not verified.
func VerifyWebhookSignature(publicKeyHex string, signatureHex string, body []byte) bool {
	publicKey, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return false
	}

	signature, err := hex.DecodeString(signatureHex)
	if err != nil || len(signature) != ed25519.SignatureSize {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(publicKey), body, signature)
}
