package session

import (
	"context"
	"errors"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/sessionfile"
	"github.com/medcenter/portal-api/pkg/auth"
)

// ErrInvalidCredentials is the single failure outcome of Login. Unknown
// email and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service is the single source of truth for who is using the system.
// It holds the fixed credential table, the current identity, and the
// set of tokens issued for it.
type Service struct {
	mu          sync.RWMutex
	credentials []model.Credential
	current     *model.User

	file   *sessionfile.Store
	tokens *gocache.Cache
	jwtSvc auth.TokenService
}

func NewService(credentials []model.Credential, file *sessionfile.Store, jwtSvc auth.TokenService) *Service {
	s := &Service{
		credentials: credentials,
		file:        file,
		tokens:      gocache.New(jwtSvc.Expiry(), jwtSvc.Expiry()),
		jwtSvc:      jwtSvc,
	}

	// Restore a persisted session; absence or garbage means we start
	// unauthenticated.
	user, err := file.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to restore session, starting unauthenticated")
		return s
	}
	if user != nil {
		s.current = user
		log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("session restored")
	}
	return s
}

// Login matches email and password exactly (case-sensitive) against the
// credential table. On success the matching identity, minus its
// password, becomes the current session and is persisted synchronously
// before a bearer token is issued. On failure state is left untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	var matched *model.User
	for i := range s.credentials {
		if s.credentials[i].Email == email && s.credentials[i].Password == password {
			user := s.credentials[i].User
			matched = &user
			break
		}
	}
	if matched == nil {
		return nil, "", ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.file.Save(matched); err != nil {
		return nil, "", err
	}
	s.current = matched

	token, tokenID, err := s.jwtSvc.Generate(matched.ID, matched.Email, string(matched.Role))
	if err != nil {
		return nil, "", err
	}
	s.tokens.SetDefault(tokenID, matched.ID)

	log.Info().Str("email", matched.Email).Str("role", string(matched.Role)).Msg("login succeeded")
	return matched, token, nil
}

// Logout clears the current identity from memory and durable storage
// and revokes every issued token. Logging out twice is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.file.Clear(); err != nil {
		return err
	}
	s.current = nil
	s.tokens.Flush()

	log.Info().Msg("logged out")
	return nil
}

// CurrentUser returns the current session identity, or nil when
// unauthenticated.
func (s *Service) CurrentUser(ctx context.Context) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Authenticate validates a bearer token against the signing key and the
// revocation cache and returns the identity it names.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtSvc.Validate(token)
	if err != nil {
		return nil, err
	}

	if _, ok := s.tokens.Get(claims.TokenID); !ok {
		return nil, auth.ErrInvalidToken
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.ID != claims.UserID {
		return nil, auth.ErrInvalidToken
	}
	user := *s.current
	return &user, nil
}
