// Package cryptography implements the password vault and the session token issuer.
package cryptography
