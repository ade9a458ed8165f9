// Package domain
package domain

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

type Credentials struct {
	Identifier string `json:"identifier" validate:"notblank,max=255"`
	Secret     string `json:"secret" validate:"notblank,max=72"`
}

// LogValue keeps the secret out of every log record.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("identifier", c.Identifier),
		slog.String("secret", "[redacted]"),
	)
}

type AuthResult struct {
	Token string         `json:"token"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// Outcome is what an AuthUseCase decides. It is sealed: the only
// implementations are *AuthResult, *UnauthorizedError and *ForbiddenError.
type Outcome interface {
	outcome()
}

func (*AuthResult) outcome()        {}
func (*UnauthorizedError) outcome() {}
func (*ForbiddenError) outcome()    {}

type AuthUseCase interface {
	Execute(ctx context.Context, creds Credentials) (Outcome, error)
}

type AuthUseCaseFunc func(ctx context.Context, creds Credentials) (Outcome, error)

func (f AuthUseCaseFunc) Execute(ctx context.Context, creds Credentials) (Outcome, error) {
	return f(ctx, creds)
}

// UnauthorizedError means the identifier is not known.
type UnauthorizedError struct {
	Message string `json:"message"`
}

func NewUnauthorizedError(msg string) *UnauthorizedError {
	if msg == "" {
		msg = ErrUnauthorized.Error()
	}
	return &UnauthorizedError{Message: msg}
}

func (e *UnauthorizedError) Error() string { return e.Message }

func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// ForbiddenError means the identifier is known but the secret does not match.
type ForbiddenError struct {
	Message string `json:"message"`
}

func NewForbiddenError(msg string) *ForbiddenError {
	if msg == "" {
		msg = ErrForbidden.Error()
	}
	return &ForbiddenError{Message: msg}
}

func (e *ForbiddenError) Error() string { return e.Message }

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

type ValidationError struct {
	Fields map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("validation failed")
	for i, k := range keys {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Fields[k])
	}
	return b.String()
}
