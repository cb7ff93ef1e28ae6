package secrets_test

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(key)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := secrets.NewAESEncryptor(newKey(t))
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("sk-proj-abc123")
	require.NoError(t, err)
	assert.NotEqual(t, "sk-proj-abc123", ciphertext)

	plaintext, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "sk-proj-abc123", plaintext)
}

func TestEncryptProducesUniqueCiphertexts(t *testing.T) {
	enc, err := secrets.NewAESEncryptor(newKey(t))
	require.NoError(t, err)

	a, err := enc.Encrypt("same-key")
	require.NoError(t, err)
	b, err := enc.Encrypt("same-key")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "nonce must differ per encryption")
}

func TestNewAESEncryptorRejectsBadKeys(t *testing.T) {
	_, err := secrets.NewAESEncryptor("not-base64!!!")
	assert.Error(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("too-short"))
	_, err = secrets.NewAESEncryptor(short)
	assert.Error(t, err)
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	enc, err := secrets.NewAESEncryptor(newKey(t))
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	_, err = enc.Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)

	_, err = enc.Decrypt("AAAA")
	assert.Error(t, err)
}
