package domain

import "context"

type SubnetService interface {
	Resolve(ctx context.Context, input string) (Result, error)
}
