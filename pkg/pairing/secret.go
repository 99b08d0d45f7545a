package pairing

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// SecretLength is the number of hex digits in a pairing code.
const SecretLength = 6

// NormalizeCode trims and upper-cases a code and checks its format.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != SecretLength {
		return "", ErrInvalidSecret
	}
	if _, err := hex.DecodeString(code); err != nil {
		return "", ErrInvalidSecret
	}
	return code, nil
}

// ComputeSecret derives the pairing secret from the code shown on the TV.
// It returns ErrInvalidSecret for a malformed code and ErrSecretMismatch
// when the checksum digit pair does not match.
func ComputeSecret(client, server *rsa.PublicKey, code string) ([]byte, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	if client == nil || server == nil {
		return nil, fmt.Errorf("pairing secret needs both public keys")
	}

	raw, _ := hex.DecodeString(code)
	checksum, nonce := raw[0], raw[1:]

	h := sha256.New()
	h.Write(client.N.Bytes())
	h.Write(big.NewInt(int64(client.E)).Bytes())
	h.Write(server.N.Bytes())
	h.Write(big.NewInt(int64(server.E)).Bytes())
	h.Write(nonce)
	secret := h.Sum(nil)

	if secret[0] != checksum {
		return nil, ErrSecretMismatch
	}
	return secret, nil
}

// CodeFor returns the code a TV would display for nonce. The TV side of
// the handshake uses it; a client never needs it.
func CodeFor(client, server *rsa.PublicKey, nonce [2]byte) string {
	h := sha256.New()
	h.Write(client.N.Bytes())
	h.Write(big.NewInt(int64(client.E)).Bytes())
	h.Write(server.N.Bytes())
	h.Write(big.NewInt(int64(server.E)).Bytes())
	h.Write(nonce[:])
	sum := h.Sum(nil)
	return strings.ToUpper(hex.EncodeToString([]byte{sum[0], nonce[0], nonce[1]}))
}
