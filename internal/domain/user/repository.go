package user

import (
	"context"
)

// Remote is the account side of the server.
type Remote interface {
	SignUp(ctx context.Context, req Credentials) (Response, error)
	Login(ctx context.Context, req Credentials) (Response, error)
}
