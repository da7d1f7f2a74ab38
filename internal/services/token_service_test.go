package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"networth-tracker/internal/config"
	"networth-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	service    TokenServiceInterface
}

func (s *TokenServiceTestSuite) SetupSuite() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.privateKey = privateKey
	s.service = NewTokenService(&config.AuthConfig{
		Issuer:    "finance-identity",
		ClientIDs: []string{"finance-dashboard"},
		PublicKey: publicKey,
	})
}

func (s *TokenServiceTestSuite) signToken(claims models.IdentityClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	s.Require().NoError(err)
	return signed
}

func (s *TokenServiceTestSuite) validClaims() models.IdentityClaims {
	now := time.Now()
	return models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "finance-identity",
			Subject:   "provider-sub-1234",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email:    "ada@example.com",
		ClientID: "finance-dashboard",
	}
}

func (s *TokenServiceTestSuite) TestValidateTokenSuccess() {
	tokenString := s.signToken(s.validClaims())

	claims, err := s.service.ValidateToken(tokenString)
	s.Require().NoError(err)
	s.Equal("provider-sub-1234", claims.Subject)
	s.Equal("ada@example.com", claims.Email)
}

func (s *TokenServiceTestSuite) TestValidateTokenAudienceFallback() {
	claims := s.validClaims()
	claims.ClientID = ""
	claims.Audience = jwt.ClaimStrings{"finance-dashboard"}

	_, err := s.service.ValidateToken(s.signToken(claims))
	s.NoError(err)
}

func (s *TokenServiceTestSuite) TestValidateTokenWrongIssuer() {
	claims := s.validClaims()
	claims.Issuer = "someone-else"

	_, err := s.service.ValidateToken(s.signToken(claims))
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateTokenUnknownClient() {
	claims := s.validClaims()
	claims.ClientID = "rogue-app"

	_, err := s.service.ValidateToken(s.signToken(claims))
	s.ErrorIs(err, ErrInvalidClientID)
}

func (s *TokenServiceTestSuite) TestValidateTokenExpired() {
	claims := s.validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := s.service.ValidateToken(s.signToken(claims))
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateTokenMissingSubject() {
	claims := s.validClaims()
	claims.Subject = ""

	_, err := s.service.ValidateToken(s.signToken(claims))
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateTokenEmpty() {
	_, err := s.service.ValidateToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateTokenWrongKey() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, s.validClaims())
	signed, err := token.SignedString(otherKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(signed)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.Require().NoError(err)
	s.Equal("abc.def.ghi", token)

	_, err = s.service.ExtractTokenFromHeader("")
	s.ErrorIs(err, ErrInvalidAuthHeader)

	_, err = s.service.ExtractTokenFromHeader("Basic dXNlcjpwYXNz")
	s.ErrorIs(err, ErrInvalidAuthHeader)

	_, err = s.service.ExtractTokenFromHeader("Bearer ")
	s.ErrorIs(err, ErrInvalidAuthHeader)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
