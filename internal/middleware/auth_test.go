package middleware

import (
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"networth-tracker/internal/config"
	"networth-tracker/internal/database"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"
	"networth-tracker/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	privateKey *rsa.PrivateKey
	handler    echo.HandlerFunc
	userRepo   repositories.UserRepositoryInterface
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	s.privateKey = privateKey

	tokenService := services.NewTokenService(&config.AuthConfig{
		Issuer:    "finance-identity",
		ClientIDs: []string{"finance-dashboard"},
		PublicKey: publicKey,
	})

	db := database.SetupTestDB(s.T())
	s.userRepo = repositories.NewUserRepository(db.DB)
	userService := services.NewUserService(s.userRepo)

	s.echo = echo.New()
	s.handler = RequireAuth(tokenService, userService)(func(c echo.Context) error {
		userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]string{"user_id": userID.String()})
	})
}

func (s *AuthMiddlewareTestSuite) signToken(claims models.IdentityClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareTestSuite) claimsFor(subject string) models.IdentityClaims {
	now := time.Now()
	return models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "finance-identity",
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email:    subject + "@example.com",
		ClientID: "finance-dashboard",
	}
}

func (s *AuthMiddlewareTestSuite) request(authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler(c)
	s.Require().NoError(err)
	return rec
}

func (s *AuthMiddlewareTestSuite) TestValidTokenProvisionsUser() {
	rec := s.request("Bearer " + s.signToken(s.claimsFor("provider-sub-42")))
	s.Equal(http.StatusOK, rec.Code)

	user, err := s.userRepo.GetBySubject("provider-sub-42")
	s.Require().NoError(err)
	s.Equal("provider-sub-42@example.com", user.Email)
}

func (s *AuthMiddlewareTestSuite) TestRepeatRequestsResolveSameUser() {
	token := "Bearer " + s.signToken(s.claimsFor("provider-sub-7"))

	first := s.request(token)
	second := s.request(token)
	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusOK, second.Code)

	var firstBody, secondBody map[string]string
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &firstBody))
	s.Require().NoError(json.Unmarshal(second.Body.Bytes(), &secondBody))
	s.Equal(firstBody["user_id"], secondBody["user_id"])
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	rec := s.request("")
	s.Equal(http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(false, body["success"])
}

func (s *AuthMiddlewareTestSuite) TestWrongScheme() {
	rec := s.request("Basic dXNlcjpwYXNz")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	claims := s.claimsFor("provider-sub-9")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	rec := s.request("Bearer " + s.signToken(claims))
	s.Equal(http.StatusUnauthorized, rec.Code)

	var body struct {
		Error struct {
			Details []string `json:"details"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body.Error.Details, "Token has expired")
}

func (s *AuthMiddlewareTestSuite) TestGarbageToken() {
	rec := s.request("Bearer not.a.token")
	s.Equal(http.StatusUnauthorized, rec.Code)
}
