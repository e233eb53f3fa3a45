package auth

import (
	"crypto/rand"
	"math/big"

	"medrep/config"
	"medrep/internal/domain/service"

	"github.com/pkg/errors"
)

const tempPasswordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789@#$%"

type randomPasswordGenerator struct {
	length int
}

// NewPasswordGenerator builds a crypto/rand backed one-time password generator.
func NewPasswordGenerator(cfg *config.Config) service.PasswordGenerator {
	length := 12
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TempPasswordLength >= 8 {
		length = cfg.Auth.TempPasswordLength
	}

	return &randomPasswordGenerator{length: length}
}

// Generate returns a random password drawn from an unambiguous character set.
func (g *randomPasswordGenerator) Generate() (string, error) {
	result := make([]byte, g.length)
	limit := big.NewInt(int64(len(tempPasswordCharset)))

	for i := range result {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "read random")
		}
		result[i] = tempPasswordCharset[n.Int64()]
	}

	return string(result), nil
}
