package api

import (
	"context"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
)

type OperatorAPI struct{ Facade }

func (c *Client) Operators() OperatorAPI { return OperatorAPI{c.Facade("operator")} }

func (o OperatorAPI) GetAllOperators(ctx context.Context) ([]models.User, error) {
	return call[[]models.User](ctx, o.Facade, "getAll", Args{})
}

func (o OperatorAPI) GetOperator(ctx context.Context, id string) (models.User, error) {
	return call[models.User](ctx, o.Facade, "getById", ID(id))
}

func (o OperatorAPI) RegisterOperator(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return call[models.User](ctx, o.Facade, "register", Args{Body: req})
}

func (o OperatorAPI) UpdateOperatorProfile(ctx context.Context, id string, profile models.ProfileDetail) (models.User, error) {
	args := ID(id)
	args.Body = map[string]any{"profileDetail": profile}
	return call[models.User](ctx, o.Facade, "updateProfile", args)
}

func (o OperatorAPI) DeleteOperator(ctx context.Context, id string) error {
	return exec(ctx, o.Facade, "delete", ID(id))
}
