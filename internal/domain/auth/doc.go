// Package auth defines users, sessions and the authenticated identity carried on
// request contexts, together with the contracts of the credential vault, the token
// issuer and the session store.
package auth
