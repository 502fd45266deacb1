package implementations

import (
	"context"
	"fmt"

	"github.com/investlab/investment-gateway/src/internal/adapter/repository/postgres"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

// Querier is the subset of *postgres.Gateway the repositories use.
type Querier interface {
	FetchAll(ctx context.Context, query string, args ...any) ([]domain.Row, error)
	FetchOne(ctx context.Context, query string, args ...any) (domain.Row, bool, error)
	Get(ctx context.Context, dest any, query string, args ...any) error
	Select(ctx context.Context, dest any, query string, args ...any) error
	CallProcedure(ctx context.Context, proc postgres.Procedure, args ...any) error
}

// procedureError surfaces a database-raised failure as a business rule error and wraps anything else.
func procedureError(op string, err error) error {
	if msg, ok := postgres.DatabaseMessage(err); ok {
		return &domain.BusinessRuleError{Message: msg, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
