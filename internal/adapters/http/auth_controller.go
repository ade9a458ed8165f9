// Package http
package http

import (
	"context"
	"errors"
	"fmt"

	"loginflow/internal/adapters/http/response"
	"loginflow/internal/domain"
	"loginflow/internal/logger"

	"github.com/google/uuid"
)

type CredentialsValidator interface {
	Validate(creds domain.Credentials) *domain.ValidationError
}

type AuthController struct {
	uc        domain.AuthUseCase
	validator CredentialsValidator
	log       logger.Logger
}

func NewAuthController(
	uc domain.AuthUseCase,
	v CredentialsValidator,
	log logger.Logger,
) *AuthController {
	return &AuthController{
		uc:        uc,
		validator: v,
		log:       logger.Safe(log),
	}
}

// Handle runs validation, then the use case, and maps the result to exactly
// one envelope. It never panics and never returns fault details to the caller.
func (c *AuthController) Handle(ctx context.Context, creds domain.Credentials) (env response.Envelope) {
	requestID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("auth: login failed", "request_id", requestID, "error", fmt.Errorf("panic: %v", r))
			env = response.InternalServerError()
		}
	}()

	c.log.Info("auth: login request", "request_id", requestID, "credentials", creds)

	if verr := c.validator.Validate(creds); verr != nil {
		c.log.Error("auth: login validation failed", "request_id", requestID, "fields", verr.Fields)
		return response.BadRequest(verr)
	}

	outcome, err := c.uc.Execute(ctx, creds)
	if err != nil {
		outcome, err = classify(err)
		if err != nil {
			c.log.Error("auth: login failed", "request_id", requestID, "error", err)
			return response.InternalServerError()
		}
	}

	switch o := outcome.(type) {
	case *domain.UnauthorizedError:
		c.log.Error("auth: login rejected", "request_id", requestID, "status", "unauthorized", "reason", "user not found")
		return response.Unauthorized(o)
	case *domain.ForbiddenError:
		c.log.Error("auth: login rejected", "request_id", requestID, "status", "forbidden", "reason", "invalid secret")
		return response.Forbidden(o)
	case *domain.AuthResult:
		if o == nil {
			c.log.Error("auth: login failed", "request_id", requestID, "error", "use case returned a nil result")
			return response.InternalServerError()
		}
		c.log.Info("auth: login succeeded", "request_id", requestID, "identifier", creds.Identifier)
		return response.OK(o)
	default:
		c.log.Error("auth: login failed", "request_id", requestID, "error", fmt.Sprintf("unexpected outcome %T", outcome))
		return response.InternalServerError()
	}
}

// classify turns a domain rejection carried on the error channel back into an
// outcome. Anything else is returned unchanged as a fault.
func classify(err error) (domain.Outcome, error) {
	var unauthorized *domain.UnauthorizedError
	if errors.As(err, &unauthorized) {
		return unauthorized, nil
	}

	var forbidden *domain.ForbiddenError
	if errors.As(err, &forbidden) {
		return forbidden, nil
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return domain.NewUnauthorizedError(""), nil
	case errors.Is(err, domain.ErrForbidden):
		return domain.NewForbiddenError(""), nil
	}

	return nil, err
}
