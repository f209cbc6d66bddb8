package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyInteraction(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	const body = `{"type":1}`
	const timestamp = "1700000000"
	sig := hex.EncodeToString(ed25519.Sign(priv, []byte(timestamp+body)))

	req := httptest.NewRequest("POST", "/interactions", strings.NewReader(body))
	req.Header.Set(SignatureHeader, sig)
	req.Header.Set(TimestampHeader, timestamp)
	require.NoError(t, VerifyInteraction(req, pub))

	// The body can still be read by the handler.
	read, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.Equal(t, body, string(read))

	testCases := []struct {
		name      string
		signature string
		timestamp string
		body      string
	}{
		{name: "missing signature", timestamp: timestamp, body: body},
		{name: "not hex", signature: "zz", timestamp: timestamp, body: body},
		{name: "short signature", signature: "abcd", timestamp: timestamp, body: body},
		{name: "missing timestamp", signature: sig, body: body},
		{name: "tampered body", signature: sig, timestamp: timestamp, body: `{"type":2}`},
		{name: "other timestamp", signature: sig, timestamp: "1700000001", body: body},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/interactions", strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			if tt.timestamp != "" {
				req.Header.Set(TimestampHeader, tt.timestamp)
			}

			require.ErrorIs(t, VerifyInteraction(req, pub), ErrInvalidSignature)
		})
	}
}

func TestVerifyInteraction_MalformedKey(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	const body = `{"type":1}`
	const timestamp = "1700000000"

	req := httptest.NewRequest("POST", "/interactions", strings.NewReader(body))
	req.Header.Set(SignatureHeader, hex.EncodeToString(ed25519.Sign(priv, []byte(timestamp+body))))
	req.Header.Set(TimestampHeader, timestamp)

	require.NotPanics(t, func() {
		require.ErrorIs(t, VerifyInteraction(req, ed25519.PublicKey{1, 2, 3}), ErrInvalidSignature)
	})
}
