package api

import (
	"context"
	"encoding/json"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
)

type AuthAPI struct{ Facade }

func (c *Client) Auth() AuthAPI { return AuthAPI{c.Facade("auth")} }

// Login posts the credentials and, when the response carries a token,
// stores it for subsequent calls.
func (a AuthAPI) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	endpoint, _ := Lookup("auth", "login")
	raw, err := a.client.do(ctx, "auth.login", endpoint.Method, endpoint.Path, models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return models.LoginResponse{}, err
	}

	// The token sits at the top level on most deployments and inside data
	// on enveloped ones.
	env := ParseEnvelope(raw)
	source := raw
	if env.Token == "" && len(env.Data) > 0 {
		source = env.Data
	}

	var resp models.LoginResponse
	_ = json.Unmarshal(source, &resp)
	if resp.Message == "" {
		resp.Message = env.Message
	}
	if resp.Token != "" {
		if err := a.client.SetToken(resp.Token); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// Logout always drops the local token; a server failure is still returned.
func (a AuthAPI) Logout(ctx context.Context) error {
	_, serverErr := a.Call(ctx, "logout", Args{})
	if err := a.client.ClearToken(); err != nil {
		return err
	}
	return serverErr
}

func (a AuthAPI) Me(ctx context.Context) (models.User, error) {
	return call[models.User](ctx, a.Facade, "me", Args{})
}
