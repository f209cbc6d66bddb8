package discord

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/questx-lab/tinfoil/pkg/errorx"
)

const (
	SignatureHeader = "X-Signature-Ed25519"
	TimestampHeader = "X-Signature-Timestamp"
)

var ErrInvalidSignature = errorx.ErrInvalidSignature

// VerifyInteraction checks that an interaction webhook request was signed by
// Discord with the application public key. The request body is left readable.
func VerifyInteraction(r *http.Request, key ed25519.PublicKey) error {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return errors.Wrap(ErrInvalidSignature, "missing signature")
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}

	if len(sig) != ed25519.SignatureSize || sig[63]&224 != 0 {
		return errors.Wrap(ErrInvalidSignature, "malformed signature")
	}

	timestamp := r.Header.Get(TimestampHeader)
	if timestamp == "" {
		return errors.Wrap(ErrInvalidSignature, "missing timestamp")
	}

	if len(key) != ed25519.PublicKeySize {
		return errors.Wrap(ErrInvalidSignature, "malformed public key")
	}

	var body []byte
	if r.Body != nil {
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	if !ed25519.Verify(key, append([]byte(timestamp), body...), sig) {
		return ErrInvalidSignature
	}

	return nil
}
