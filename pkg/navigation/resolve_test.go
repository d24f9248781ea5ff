package navigation_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

func resolveTree(t *testing.T) *navigation.Tree {
	t.Helper()
	workbench := navigation.NewComponent("/workbench", nil)
	notFound := navigation.NewComponent("/error-page/404", nil)
	total := navigation.NewComponent("/business/total", nil)

	return build(t,
		navigation.Route{Name: "Home", Path: "/", Redirect: "/workbench"},
		group("Workbench", "/workbench", navigation.Route{Name: "WorkbenchDefault", Path: "", Component: workbench}),
		navigation.Route{
			Name: "ErrorPage", Path: "/error-page", Redirect: "/error-page/404", Hidden: true,
			Children: []navigation.Route{{Name: "ERROR-404", Path: "404", Component: notFound}},
		},
		navigation.Route{Name: "404", Path: "/404", Component: notFound, Hidden: true},
		group("TotalManagement", "/business/total", navigation.Route{Name: "totaldata", Path: "total", Component: total}),
	)
}

func TestResolve(t *testing.T) {
	tree := resolveTree(t)

	tests := []struct {
		path     string
		name     string
		chain    []string
		redirect string
		notFound bool
	}{
		{"/", "Home", []string{"Home"}, "/workbench", false},
		{"", "Home", []string{"Home"}, "/workbench", false},
		{"/workbench", "WorkbenchDefault", []string{"Workbench", "WorkbenchDefault"}, "", false},
		{"/workbench/", "WorkbenchDefault", []string{"Workbench", "WorkbenchDefault"}, "", false},
		{"/error-page", "ErrorPage", []string{"ErrorPage"}, "/error-page/404", false},
		{"/error-page/404", "ERROR-404", []string{"ErrorPage", "ERROR-404"}, "", false},
		{"/404", "404", []string{"404"}, "", false},
		{"/business/total", "TotalManagement", []string{"TotalManagement"}, "/business/total/total", false},
		{"/business/total/total", "totaldata", []string{"TotalManagement", "totaldata"}, "", false},
		{"/unknown/path", navigation.NotFoundName, []string{navigation.NotFoundName}, "/404", true},
		{"/workbench/extra", navigation.NotFoundName, []string{navigation.NotFoundName}, "/404", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := tree.Resolve(tt.path)
			if m.Name != tt.name {
				t.Errorf("Name = %q, want %q", m.Name, tt.name)
			}
			if !slices.Equal(m.Chain, tt.chain) {
				t.Errorf("Chain = %v, want %v", m.Chain, tt.chain)
			}
			if m.Redirect != tt.redirect {
				t.Errorf("Redirect = %q, want %q", m.Redirect, tt.redirect)
			}
			if m.NotFound != tt.notFound {
				t.Errorf("NotFound = %v, want %v", m.NotFound, tt.notFound)
			}
		})
	}
}

func TestResolve_UnknownPathReachesNotFoundView(t *testing.T) {
	tree := resolveTree(t)

	m := tree.Resolve("/unknown/path")
	if !m.NotFound || m.Redirect != "/404" {
		t.Fatalf("Resolve(/unknown/path) = %+v", m)
	}

	target := tree.Resolve(m.Redirect)
	if target.Name != "404" {
		t.Fatalf("Resolve(%q) = %q, want 404", m.Redirect, target.Name)
	}
	c := target.Component()
	if c == nil || c.Path() != "/error-page/404" {
		t.Errorf("404 component = %v, want /error-page/404", c)
	}
}

func TestResolve_HiddenChain(t *testing.T) {
	tree := resolveTree(t)
	if m := tree.Resolve("/error-page/404"); !m.Hidden {
		t.Error("child of a hidden route should report Hidden")
	}
	if m := tree.Resolve("/workbench"); m.Hidden {
		t.Error("workbench should not be hidden")
	}
}

func TestTree_Component(t *testing.T) {
	standalone := navigation.NewComponent("/curd", nil)
	total := navigation.NewComponent("/business/total", nil)

	tree, err := navigation.NewBuilder([]navigation.Route{
		group("TotalManagement", "/business/total", navigation.Route{Name: "totaldata", Path: "total", Component: total}),
	}, nil).AddComponent(standalone).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		path string
		want *navigation.Component
	}{
		{"/business/total", total},
		{"/business/total/total", total},
		{"/curd", standalone},
		{"curd/", standalone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := tree.Component(tt.path)
			if !ok || got != tt.want {
				t.Errorf("Component(%q) = %v, %v", tt.path, got, ok)
			}
		})
	}

	if _, ok := tree.Component("/missing"); ok {
		t.Error("Component(/missing) should not resolve")
	}

	want := []string{"/business/total", "/business/total/total", "/curd"}
	if got := tree.Components(); !slices.Equal(got, want) {
		t.Errorf("Components() = %v, want %v", got, want)
	}
}

func TestNormalizeAndJoin(t *testing.T) {
	tests := []struct {
		parent, child, want string
	}{
		{"/workbench", "", "/workbench"},
		{"/error-page", "401", "/error-page/401"},
		{"/", "child", "/child"},
		{"/a/", "b/", "/a/b"},
		{"/a", "/abs", "/abs"},
	}
	for _, tt := range tests {
		if got := navigation.Join(tt.parent, tt.child); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.parent, tt.child, got, tt.want)
		}
	}

	if got := navigation.Normalize("business//"); got != "/business" {
		t.Errorf("Normalize = %q, want /business", got)
	}
}
