package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

const (
	EnvNavigationDuplicatePolicy   = "NAVIGATION_DUPLICATE_POLICY"
	EnvNavigationPermissionSource  = "NAVIGATION_PERMISSION_SOURCE"
	EnvNavigationStaticPermissions = "NAVIGATION_STATIC_PERMISSIONS"
)

// PermissionSource selects where menu permissions come from.
type PermissionSource string

const (
	PermissionSourceUpstream PermissionSource = "upstream"
	PermissionSourceStatic   PermissionSource = "static"
)

// NavigationConfig controls route table assembly and menu permissions.
type NavigationConfig struct {
	DuplicatePolicy   navigation.Policy `toml:"duplicate_policy"`
	PermissionSource  PermissionSource  `toml:"permission_source"`
	StaticPermissions []string          `toml:"static_permissions"`
}

// Finalize applies defaults, loads environment overrides, and validates the navigation configuration.
func (c *NavigationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *NavigationConfig) Merge(overlay *NavigationConfig) {
	if overlay.DuplicatePolicy != "" {
		c.DuplicatePolicy = overlay.DuplicatePolicy
	}
	if overlay.PermissionSource != "" {
		c.PermissionSource = overlay.PermissionSource
	}
	if overlay.StaticPermissions != nil {
		c.StaticPermissions = overlay.StaticPermissions
	}
}

func (c *NavigationConfig) loadDefaults() {
	if c.DuplicatePolicy == "" {
		c.DuplicatePolicy = navigation.PolicyReject
	}
	if c.PermissionSource == "" {
		c.PermissionSource = PermissionSourceUpstream
	}
}

func (c *NavigationConfig) loadEnv() {
	if v := os.Getenv(EnvNavigationDuplicatePolicy); v != "" {
		c.DuplicatePolicy = navigation.Policy(v)
	}
	if v := os.Getenv(EnvNavigationPermissionSource); v != "" {
		c.PermissionSource = PermissionSource(v)
	}
	if v := os.Getenv(EnvNavigationStaticPermissions); v != "" {
		names := strings.Split(v, ",")
		c.StaticPermissions = make([]string, 0, len(names))
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				c.StaticPermissions = append(c.StaticPermissions, n)
			}
		}
	}
}

func (c *NavigationConfig) validate() error {
	if err := c.DuplicatePolicy.Validate(); err != nil {
		return err
	}
	switch c.PermissionSource {
	case PermissionSourceUpstream:
	case PermissionSourceStatic:
		if len(c.StaticPermissions) == 0 {
			return fmt.Errorf("static permission source requires static_permissions")
		}
	default:
		return fmt.Errorf("invalid permission_source: %s (must be upstream or static)", c.PermissionSource)
	}
	return nil
}
