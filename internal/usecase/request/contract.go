package request

import (
	"context"

	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
)

// Repository persists asset requests.
type Repository interface {
	Create(ctx context.Context, req *domreq.Request) error
	List(ctx context.Context) ([]domreq.Request, error)
}
