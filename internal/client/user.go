package client

import (
	"context"
	"fmt"
)

// Credentials are exchanged for a token by Login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the profile of the token's owner.
type UserInfo struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Alias       string `json:"alias,omitempty"`
	Email       string `json:"email,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	IsSuperuser bool   `json:"is_superuser"`
}

// DisplayName prefers the alias when one is set.
func (u *UserInfo) DisplayName() string {
	if u.Alias != "" {
		return u.Alias
	}
	return u.Username
}

// MenuEntry is one node of the caller's permitted menu tree.
type MenuEntry struct {
	ID        int         `json:"id,omitempty"`
	Name      string      `json:"name"`
	Path      string      `json:"path"`
	Component string      `json:"component,omitempty"`
	Icon      string      `json:"icon,omitempty"`
	Order     int         `json:"order,omitempty"`
	IsHidden  bool        `json:"is_hidden,omitempty"`
	Redirect  string      `json:"redirect,omitempty"`
	Children  []MenuEntry `json:"children,omitempty"`
}

type loginData struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	resp, err := c.Call(ctx, "login", creds)
	if err != nil {
		return "", err
	}
	var data loginData
	if err := resp.Decode(&data); err != nil {
		return "", err
	}
	if data.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token")
	}
	return data.AccessToken, nil
}

// UserInfo returns the profile of the context token's owner.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	resp, err := c.Call(ctx, "getUserInfo", nil)
	if err != nil {
		return nil, err
	}
	var info UserInfo
	if err := resp.Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UserMenu returns the menu tree the context token may see.
func (c *Client) UserMenu(ctx context.Context) ([]MenuEntry, error) {
	resp, err := c.Call(ctx, "getUserMenu", nil)
	if err != nil {
		return nil, err
	}
	var menu []MenuEntry
	if err := resp.Decode(&menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// UserAPI returns the API permissions of the context token, as "METHOD path" strings.
func (c *Client) UserAPI(ctx context.Context) ([]string, error) {
	resp, err := c.Call(ctx, "getUserApi", nil)
	if err != nil {
		return nil, err
	}
	var apis []string
	if err := resp.Decode(&apis); err != nil {
		return nil, err
	}
	return apis, nil
}
