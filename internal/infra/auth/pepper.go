// Package auth contains the credential hashing and token codec implementations.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
)

// pepper binds a plaintext secret to the deployment's server secret before it
// reaches the password hashing function.
func pepper(serverSecret []byte, secret string) []byte {
	mac := hmac.New(sha256.New, serverSecret)
	mac.Write([]byte(secret))

	return mac.Sum(nil)
}
