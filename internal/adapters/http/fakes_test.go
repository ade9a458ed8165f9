package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"loginflow/internal/domain"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, creds domain.Credentials) (domain.Outcome, error) {
	args := m.Called(ctx, creds)
	outcome, _ := args.Get(0).(domain.Outcome)
	return outcome, args.Error(1)
}

type stubValidator struct {
	err *domain.ValidationError
}

func (s stubValidator) Validate(domain.Credentials) *domain.ValidationError {
	return s.err
}

type panicValidator struct{}

func (panicValidator) Validate(domain.Credentials) *domain.ValidationError {
	panic("validator exploded")
}

type record struct {
	level string
	msg   string
	args  []any
}

type recordingSink struct {
	mu      sync.Mutex
	records []record
}

func (s *recordingSink) Info(msg string, args ...any) {
	s.add("info", msg, args)
}

func (s *recordingSink) Error(msg string, args ...any) {
	s.add("error", msg, args)
}

func (s *recordingSink) add(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record{level: level, msg: msg, args: args})
}

func (s *recordingSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.msg)
	}
	return out
}

type panicSink struct{}

func (panicSink) Info(string, ...any)  { panic("sink down") }
func (panicSink) Error(string, ...any) { panic("sink down") }

// memoryUseCase stands in for the real authentication service: it knows a
// fixed set of bcrypt hashed secrets and signs an HS256 token on success.
type memoryUseCase struct {
	hashes    map[string][]byte
	jwtSecret []byte
}

func newMemoryUseCase(users map[string]string) *memoryUseCase {
	hashes := make(map[string][]byte, len(users))
	for id, secret := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		hashes[id] = hash
	}

	return &memoryUseCase{hashes: hashes, jwtSecret: []byte("test-secret")}
}

func (u *memoryUseCase) Execute(_ context.Context, creds domain.Credentials) (domain.Outcome, error) {
	hash, ok := u.hashes[creds.Identifier]
	if !ok {
		return domain.NewUnauthorizedError("user not found"), nil
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Secret)); err != nil {
		return domain.NewForbiddenError("invalid password"), nil
	}

	claims := jwt.MapClaims{
		"sub": creds.Identifier,
		"exp": time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{Token: token}, nil
}
