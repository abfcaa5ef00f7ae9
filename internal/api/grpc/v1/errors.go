package v1

import (
	"errors"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusCode maps an application error onto a gRPC status code
func StatusCode(err error) codes.Code {
	switch apperr.Kind(err) {
	case apperr.ErrNotFound:
		return codes.NotFound
	case apperr.ErrForbidden:
		return codes.PermissionDenied
	case apperr.ErrUnauthenticated:
		return codes.Unauthenticated
	case apperr.ErrConflict:
		return codes.AlreadyExists
	case apperr.ErrInvalidArgument:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// toStatus converts err into a status error. Internal failures are logged and
// replaced with a generic message; sign in failures always read "invalid credentials".
func toStatus(err error, log logger.Logger) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := StatusCode(err)
	switch {
	case code == codes.Internal:
		log.Error("Request failed: ", err)
		return status.Error(codes.Internal, "internal error")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	default:
		return status.Error(code, err.Error())
	}
}
