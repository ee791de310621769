// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and token utilities.

# API Keys

Restaurants authenticate dish and menu writes with an opaque key sent in the
x-api-key header:

	key := auth.GenerateAPIKey()

Keys are random UUIDs stored in the restaurant row (unique).

# Passwords

User passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

# Bearer Tokens

Employee and admin requests carry an HS256 JWT whose subject is the user ID:

	claims, err := auth.ParseToken(tokenString, secret, issuer)

Tokens are checked for signing method, expiry (30s leeway), issuer when
configured, and a non-empty subject. IssueToken produces compatible tokens.

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()
*/
package auth
