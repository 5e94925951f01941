package api

import (
	"context"
	"encoding/json"
)

// Facade is a client bound to one group of the endpoint table.
type Facade struct {
	client *Client
	name   string
}

func (c *Client) Facade(name string) Facade {
	return Facade{client: c, name: name}
}

func (f Facade) Call(ctx context.Context, name string, args Args) (json.RawMessage, error) {
	return f.client.Call(ctx, f.name, name, args)
}

func call[T any](ctx context.Context, f Facade, name string, args Args) (T, error) {
	return Invoke[T](ctx, f.client, f.name, name, args)
}

// exec runs a write whose response body callers do not need.
func exec(ctx context.Context, f Facade, name string, args Args) error {
	_, err := f.Call(ctx, name, args)
	return err
}
