// Package service declares the ports the usecases call for crypto, tokens, mail and events.
package service

// PasswordHasher turns plaintext passwords into stored hashes and checks login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// PasswordGenerator issues the temporary password mailed to a newly provisioned MR or approved applicant.
type PasswordGenerator interface {
	Generate() (string, error)
}
