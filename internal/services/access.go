package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// Error variables
var (
	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrAccessCodeUsed    = errors.New("access code already used")
	ErrUsageLimit        = errors.New("free usage limit reached")
)

// accessCodeLength is the fixed length of provisioned codes.
const accessCodeLength = 10

// AccessCodeReader defines read operations for access codes.
type AccessCodeReader interface {
	Get(ctx context.Context, code string) (*models.AccessCodeDB, error)
}

// AccessCodeWriter defines the consume operation for access codes.
type AccessCodeWriter interface {
	Consume(ctx context.Context, code string, userID uuid.UUID) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, subscribed bool) (string, error)
}

// GeoLookuper resolves the client's location, best-effort.
type GeoLookuper interface {
	Lookup(ctx context.Context) models.GeoInfo
}

// Session is the result of a successful access attempt.
type Session struct {
	Token      string
	UserID     uuid.UUID
	Subscribed bool
}

// AccessService handles access-code validation and session issuance.
type AccessService struct {
	codes  AccessCodeReader
	writer AccessCodeWriter
	users  UserWriter
	tokens TokenGenerator
	geo    GeoLookuper
}

// NewAccessService creates a new AccessService instance.
func NewAccessService(
	codes AccessCodeReader,
	writer AccessCodeWriter,
	users UserWriter,
	tokens TokenGenerator,
	geo GeoLookuper,
) *AccessService {
	return &AccessService{
		codes:  codes,
		writer: writer,
		users:  users,
		tokens: tokens,
		geo:    geo,
	}
}

// validCodeFormat reports whether the code is 10 alphanumeric characters.
func validCodeFormat(code string) bool {
	if len(code) != accessCodeLength {
		return false
	}
	for _, r := range code {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		if !isDigit && !isUpper {
			return false
		}
	}
	return true
}

// Authenticate validates the access code, creates the session user, and
// issues a token. An empty code starts an unsubscribed free-trial session;
// the trial allowance is enforced by the generation service.
//
// With a non-empty code: the user row is written first (the consume
// operation references it), then the code is consumed. Only one of several
// concurrent callers on the same unused code sees the consume succeed.
func (svc *AccessService) Authenticate(ctx context.Context, code string, email *string) (*Session, error) {
	userID := uuid.New()
	geo := svc.geo.Lookup(ctx)

	user := models.UserDB{
		UserID:   userID,
		Email:    email,
		Country:  &geo.CountryCode,
		Timezone: &geo.Timezone,
	}

	if code == "" {
		if err := svc.users.Save(ctx, user); err != nil {
			logger.Log.Errorw("failed to save trial user", "err", err)
			return nil, err
		}
		token, err := svc.tokens.Generate(ctx, userID, false)
		if err != nil {
			logger.Log.Errorw("failed to generate session token", "err", err)
			return nil, err
		}
		return &Session{Token: token, UserID: userID, Subscribed: false}, nil
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if !validCodeFormat(code) {
		return nil, ErrInvalidAccessCode
	}

	record, err := svc.codes.Get(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to look up access code", "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrInvalidAccessCode
	}
	if record.IsUsed {
		return nil, ErrAccessCodeUsed
	}

	if err := svc.users.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	consumed, err := svc.writer.Consume(ctx, code, userID)
	if err != nil {
		logger.Log.Errorw("failed to consume access code", "err", err)
		return nil, err
	}
	if !consumed {
		// Lost the race to a concurrent caller
		return nil, ErrAccessCodeUsed
	}

	user.AccessCode = &code
	user.IsSubscribed = true
	if err := svc.users.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to mark user subscribed", "err", err)
		return nil, err
	}

	token, err := svc.tokens.Generate(ctx, userID, true)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, err
	}

	return &Session{Token: token, UserID: userID, Subscribed: true}, nil
}
