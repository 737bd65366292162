package repokit

import (
	"context"
	"time"

	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
)

type guarder interface {
	Guard(context.Context) error
}

// Guard pings the backend with a 5s default deadline; failures come back as unavailable
func Guard(ctx context.Context, st guarder) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "dependency guard failed")
	}
	return nil
}
