package api

import (
	"context"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
)

type InventoryAPI struct{ Facade }

func (c *Client) Inventory() InventoryAPI { return InventoryAPI{c.Facade("inventory")} }

func (i InventoryAPI) GetAllStockProducts(ctx context.Context) ([]models.StockItem, error) {
	return call[[]models.StockItem](ctx, i.Facade, "getAllStockProducts", Args{})
}

func (i InventoryAPI) GetStockProduct(ctx context.Context, id string) (models.StockItem, error) {
	return call[models.StockItem](ctx, i.Facade, "getStockProduct", ID(id))
}

func (i InventoryAPI) AddStockProduct(ctx context.Context, item models.StockItem) (models.StockItem, error) {
	return call[models.StockItem](ctx, i.Facade, "addStockProduct", Args{Body: item})
}

// UpdateStockProduct sends changes as given; partial maps are allowed.
func (i InventoryAPI) UpdateStockProduct(ctx context.Context, id string, changes any) (models.StockItem, error) {
	args := ID(id)
	args.Body = changes
	return call[models.StockItem](ctx, i.Facade, "updateStockProduct", args)
}

func (i InventoryAPI) DeleteStockProduct(ctx context.Context, id string) error {
	return exec(ctx, i.Facade, "deleteStockProduct", ID(id))
}

func (i InventoryAPI) IssueStock(ctx context.Context, req models.IssueStockRequest) (models.StockIssuance, error) {
	return call[models.StockIssuance](ctx, i.Facade, "issueStock", Args{Body: req})
}

func (i InventoryAPI) GetIssuances(ctx context.Context) ([]models.StockIssuance, error) {
	return call[[]models.StockIssuance](ctx, i.Facade, "getIssuances", Args{})
}

func (i InventoryAPI) UpdateIssuanceStatus(ctx context.Context, id string, status metadata.IssuanceStatus) error {
	args := ID(id)
	args.Body = models.IssuanceStatusUpdate{Status: status}
	return exec(ctx, i.Facade, "updateIssuanceStatus", args)
}

func (i InventoryAPI) GetMovements(ctx context.Context) ([]models.StockMovement, error) {
	return call[[]models.StockMovement](ctx, i.Facade, "getMovements", Args{})
}
