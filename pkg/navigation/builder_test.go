package navigation_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

func page(name, path string) navigation.Route {
	return navigation.Route{Name: name, Path: path, Meta: navigation.Meta{Title: name}}
}

func group(name, path string, children ...navigation.Route) navigation.Route {
	return navigation.Route{Name: name, Path: path, Children: children, Meta: navigation.Meta{Title: name}}
}

func dutyStaffModule(childName string) navigation.Module {
	return func() navigation.Route {
		return group("DutyStaff-"+childName, "/business/duty_staff_"+childName, page("duty_staff_data", ""))
	}
}

func TestBuild_AppendsNotFoundLast(t *testing.T) {
	tree, err := navigation.NewBuilder([]navigation.Route{page("Login", "/login")}, nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	routes := tree.Routes()
	last := routes[len(routes)-1]
	if last.Name != navigation.NotFoundName {
		t.Errorf("last route = %q, want %q", last.Name, navigation.NotFoundName)
	}
	if !last.Hidden {
		t.Error("NotFound route should be hidden")
	}
	if last.Redirect != "/404" {
		t.Errorf("NotFound redirect = %q, want /404", last.Redirect)
	}
}

func TestBuild_ModulesFollowBasicInRegistrationOrder(t *testing.T) {
	registry := navigation.NewRegistry().
		Register("b", func() navigation.Route { return page("B", "/b") }).
		Register("a", func() navigation.Route { return page("A", "/a") })

	tree, err := navigation.NewBuilder([]navigation.Route{page("Basic", "/basic")}, registry).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"Basic", "B", "A", navigation.NotFoundName}
	if got := tree.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestBuild_NamesUnique(t *testing.T) {
	basic := []navigation.Route{
		group("Workbench", "/workbench", page("WorkbenchDefault", "")),
		group("ErrorPage", "/error-page", page("ERROR-401", "401"), page("ERROR-404", "404")),
		page("404", "/404"),
	}
	registry := navigation.NewRegistry().
		Register("system", func() navigation.Route {
			return group("SystemManagement", "/system", page("UserManagement", "user"))
		})

	tree, err := navigation.NewBuilder(basic, registry).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, name := range tree.Names() {
		if seen[name] {
			t.Errorf("name %q appears more than once", name)
		}
		seen[name] = true
	}
}

func TestBuild_DuplicateName(t *testing.T) {
	registry := navigation.NewRegistry().
		Register("first", dutyStaffModule("a")).
		Register("second", dutyStaffModule("b"))

	t.Run("reject", func(t *testing.T) {
		_, err := navigation.NewBuilder(nil, registry).Build()
		if !errors.Is(err, navigation.ErrDuplicateName) {
			t.Fatalf("Build() error = %v, want %v", err, navigation.ErrDuplicateName)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		tree, err := navigation.NewBuilder(nil, registry).
			WithPolicy(navigation.PolicyLastWriteWins).
			Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		count := 0
		for _, name := range tree.Names() {
			if name == "duty_staff_data" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("duty_staff_data count = %d, want 1", count)
		}

		_, full, ok := tree.Lookup("duty_staff_data")
		if !ok {
			t.Fatal("Lookup(duty_staff_data) not found")
		}
		if full != "/business/duty_staff_b" {
			t.Errorf("kept full path = %q, want the later declaration", full)
		}
	})
}

func TestBuild_DuplicateTopLevelName_LastWriteWinsPrunesSubtree(t *testing.T) {
	basic := []navigation.Route{group("Reports", "/reports", page("Daily", "daily"))}
	registry := navigation.NewRegistry().
		Register("reports", func() navigation.Route {
			return group("Reports", "/reports-v2", page("Weekly", "weekly"))
		})

	tree, err := navigation.NewBuilder(basic, registry).
		WithPolicy(navigation.PolicyLastWriteWins).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if _, _, ok := tree.Lookup("Daily"); ok {
		t.Error("earlier subtree should be pruned")
	}
	if _, full, _ := tree.Lookup("Reports"); full != "/reports-v2" {
		t.Errorf("Reports full path = %q, want /reports-v2", full)
	}
}

func TestBuild_NestedDuplicateKeepsOuter(t *testing.T) {
	basic := []navigation.Route{group("Self", "/self", page("Self", "inner"))}

	tree, err := navigation.NewBuilder(basic, nil).
		WithPolicy(navigation.PolicyLastWriteWins).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if _, full, ok := tree.Lookup("Self"); !ok || full != "/self" {
		t.Errorf("Lookup(Self) = %q, %v; want /self", full, ok)
	}
}

func TestBuild_DuplicateSiblingPath(t *testing.T) {
	basic := []navigation.Route{page("One", "/same"), page("Two", "/same")}

	t.Run("reject", func(t *testing.T) {
		_, err := navigation.NewBuilder(basic, nil).Build()
		if !errors.Is(err, navigation.ErrDuplicatePath) {
			t.Fatalf("Build() error = %v, want %v", err, navigation.ErrDuplicatePath)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		tree, err := navigation.NewBuilder(basic, nil).
			WithPolicy(navigation.PolicyLastWriteWins).
			Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if _, _, ok := tree.Lookup("One"); ok {
			t.Error("earlier sibling should be pruned")
		}
		if _, _, ok := tree.Lookup("Two"); !ok {
			t.Error("later sibling should be kept")
		}
	})

	t.Run("child paths", func(t *testing.T) {
		routes := []navigation.Route{group("G", "/g", page("C1", "x"), page("C2", "x"))}
		_, err := navigation.NewBuilder(routes, nil).Build()
		if !errors.Is(err, navigation.ErrDuplicatePath) {
			t.Fatalf("Build() error = %v, want %v", err, navigation.ErrDuplicatePath)
		}
	})
}

func TestBuild_WildcardOverride(t *testing.T) {
	tests := []struct {
		name  string
		route navigation.Route
	}{
		{"mux wildcard", page("Everything", "/{rest...}")},
		{"star", page("Star", "/*")},
		{"router wildcard", page("Match", "/:pathMatch(.*)*")},
		{"reserved name", page(navigation.NotFoundName, "/missing")},
		{"nested", group("Outer", "/", page("Inner", "{all...}"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := navigation.NewRegistry().
				Register("module", func() navigation.Route { return tt.route })

			_, err := navigation.NewBuilder([]navigation.Route{page("Login", "/login")}, registry).Build()
			if !errors.Is(err, navigation.ErrWildcardOverride) {
				t.Fatalf("Build() error = %v, want %v", err, navigation.ErrWildcardOverride)
			}

			tree, err := navigation.NewBuilder([]navigation.Route{page("Login", "/login")}, registry).
				WithPolicy(navigation.PolicyLastWriteWins).
				Build()
			if err != nil {
				t.Fatalf("Build() last-write-wins error = %v", err)
			}

			nf := tree.NotFound()
			if nf.Path != navigation.NotFoundPath || nf.Redirect != navigation.NotFoundRedirect {
				t.Errorf("NotFound = %+v, catch-all was overridden", nf)
			}
			if m := tree.Resolve("/unknown/path"); m.Name != navigation.NotFoundName {
				t.Errorf("Resolve(/unknown/path) = %q, want NotFound", m.Name)
			}
		})
	}
}

func TestBuild_ScopedWildcardAllowed(t *testing.T) {
	registry := navigation.NewRegistry().
		Register("docs", func() navigation.Route { return page("Docs", "/docs/{page...}") })

	tree, err := navigation.NewBuilder(nil, registry).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m := tree.Resolve("/docs/a/b"); m.Name != "Docs" {
		t.Errorf("Resolve(/docs/a/b) = %q, want Docs", m.Name)
	}
}

func TestBuild_InvalidRoutes(t *testing.T) {
	tests := []struct {
		name  string
		route navigation.Route
	}{
		{"empty name", page("", "/x")},
		{"empty child name", group("G", "/g", page("", "c"))},
		{"relative top-level", page("Rel", "rel")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := navigation.NewBuilder([]navigation.Route{tt.route}, nil).Build()
			if !errors.Is(err, navigation.ErrInvalidRoute) {
				t.Errorf("Build() error = %v, want %v", err, navigation.ErrInvalidRoute)
			}
		})
	}
}

func TestBuild_InvalidPolicy(t *testing.T) {
	_, err := navigation.NewBuilder(nil, nil).WithPolicy("first-wins").Build()
	if !errors.Is(err, navigation.ErrInvalidPolicy) {
		t.Errorf("Build() error = %v, want %v", err, navigation.ErrInvalidPolicy)
	}
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	basic := []navigation.Route{group("G", "/g", page("A", "a"), page("A", "b"))}

	_, err := navigation.NewBuilder(basic, nil).WithPolicy(navigation.PolicyLastWriteWins).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(basic[0].Children) != 2 {
		t.Errorf("input children = %d, want 2", len(basic[0].Children))
	}
}

func TestTree_RoutesReturnsCopy(t *testing.T) {
	tree, err := navigation.NewBuilder([]navigation.Route{group("G", "/g", page("A", "a"))}, nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	routes := tree.Routes()
	routes[0].Children[0].Name = "Changed"

	if _, _, ok := tree.Lookup("A"); !ok {
		t.Error("mutating Routes() result changed the tree")
	}
}

func TestTree_Flatten(t *testing.T) {
	basic := []navigation.Route{
		group("ErrorPage", "/error-page", page("ERROR-401", "401")),
	}
	tree, err := navigation.NewBuilder(basic, nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	entries := tree.Flatten()
	if len(entries) != 3 {
		t.Fatalf("len(Flatten()) = %d, want 3", len(entries))
	}

	child := entries[1]
	if child.FullPath != "/error-page/401" || child.Parent != "ErrorPage" || child.Depth != 1 {
		t.Errorf("child entry = %+v", child)
	}
}
