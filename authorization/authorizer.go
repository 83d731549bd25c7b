package authorization

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/authorization/resources"
	"github.com/unicsmcr/hs_teams/environment"
	"github.com/unicsmcr/hs_teams/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const userIDKeyInCtx = "hs_teams_user_id"

var jwtSigningMethod = jwt.SigningMethodHS256

// Authorizer checks the user tokens issued by the auth service. Tokens are signed with the shared JWT secret.
type Authorizer interface {
	// CreateUserToken creates a token for the given user.
	// Setting expirationDate to 0 will create a token that does not expire.
	CreateUserToken(userID string, expirationDate int64) (string, error)
	// GetUserIDFromToken returns the ID of the user the token was issued to.
	// Will return ErrInvalidToken if the token is invalid and ErrInvalidTokenType
	// if it was not issued to a user.
	GetUserIDFromToken(token string) (string, error)
	// WithAuthMiddleware wraps the handler so that it is only called for requests with a valid
	// user token. The user's ID is available to the handler through GetUserIDFromCtx.
	WithAuthMiddleware(router resources.RouterResource, handler gin.HandlerFunc) gin.HandlerFunc
}

// NewAuthorizer creates a new Authorizer
func NewAuthorizer(logger *zap.Logger, env *environment.Env, timeProvider utils.TimeProvider) Authorizer {
	return &authorizer{
		logger:       logger,
		env:          env,
		timeProvider: timeProvider,
	}
}

type authorizer struct {
	logger       *zap.Logger
	env          *environment.Env
	timeProvider utils.TimeProvider
}

func (a *authorizer) CreateUserToken(userID string, expirationDate int64) (string, error) {
	timestamp := a.timeProvider.Now().Unix()
	token := jwt.NewWithClaims(jwtSigningMethod, tokenClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        userID,
			IssuedAt:  timestamp,
			ExpiresAt: expirationDate,
		},
		TokenType: User,
	})

	return token.SignedString([]byte(a.env.Get(environment.JWTSecret)))
}

func (a *authorizer) GetUserIDFromToken(token string) (string, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(a.env.Get(environment.JWTSecret)), nil
	})
	if err != nil {
		return "", errors.Wrap(ErrInvalidToken, err.Error())
	}

	if claims.TokenType != User {
		return "", errors.Wrapf(ErrInvalidTokenType, "'%s' is not a user token", claims.TokenType)
	}

	if _, err := primitive.ObjectIDFromHex(claims.Id); err != nil {
		return "", errors.Wrap(ErrInvalidToken, "malformed user id")
	}

	return claims.Id, nil
}

func (a *authorizer) WithAuthMiddleware(router resources.RouterResource, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := router.GetAuthToken(ctx)
		if len(token) == 0 {
			router.HandleUnauthorized(ctx)
			return
		}

		userID, err := a.GetUserIDFromToken(token)
		if err != nil {
			a.logger.Debug("request could not be authorized",
				zap.String("resource", router.GetResourcePath()),
				zap.Error(err))
			router.HandleUnauthorized(ctx)
			return
		}

		SetUserIDInCtx(ctx, userID)
		handler(ctx)
	}
}

// GetUserIDFromCtx returns the ID of the user authorized by WithAuthMiddleware,
// or an empty string if the request has not been authorized
func GetUserIDFromCtx(ctx *gin.Context) string {
	return ctx.GetString(userIDKeyInCtx)
}

// SetUserIDInCtx marks the request as authorized for the given user
func SetUserIDInCtx(ctx *gin.Context, userID string) {
	ctx.Set(userIDKeyInCtx, userID)
}
