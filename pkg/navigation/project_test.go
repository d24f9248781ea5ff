package navigation_test

import (
	"math"
	"slices"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

func ordered(r navigation.Route, order int) navigation.Route {
	r.Meta.Order = navigation.Order(order)
	return r
}

func hidden(r navigation.Route) navigation.Route {
	r.Hidden = true
	return r
}

func build(t *testing.T, routes ...navigation.Route) *navigation.Tree {
	t.Helper()
	tree, err := navigation.NewBuilder(routes, nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tree
}

func itemNames(items []navigation.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestProject_OrderAndHiddenExample(t *testing.T) {
	tree := build(t,
		ordered(page("workbench", "/workbench"), 1),
		page("own_business", "/business/own_business"),
		hidden(ordered(page("profile", "/profile"), 99)),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("workbench", "own_business", "profile"))

	want := []string{"workbench", "own_business"}
	if got := itemNames(menu.Items); !slices.Equal(got, want) {
		t.Errorf("Project() = %v, want %v", got, want)
	}
}

func TestProject_ExcludesHidden(t *testing.T) {
	tree := build(t,
		group("Visible", "/visible", hidden(page("HiddenChild", "secret")), page("Shown", "shown")),
		hidden(group("HiddenGroup", "/hidden", page("Inside", "inside"))),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("Visible", "HiddenChild", "Shown", "HiddenGroup", "Inside", navigation.NotFoundName))

	for _, name := range menu.Names() {
		switch name {
		case "HiddenChild", "HiddenGroup", "Inside", navigation.NotFoundName:
			t.Errorf("hidden route %q in projection", name)
		}
	}
}

func TestProject_GroupingNodeHostsPermittedChildren(t *testing.T) {
	tree := build(t,
		group("SystemManagement", "/system", page("UserManagement", "user"), page("RoleManagement", "role")),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("RoleManagement"))

	if len(menu.Items) != 1 || menu.Items[0].Name != "SystemManagement" {
		t.Fatalf("Project() = %v, want [SystemManagement]", itemNames(menu.Items))
	}
	if got := itemNames(menu.Items[0].Children); !slices.Equal(got, []string{"RoleManagement"}) {
		t.Errorf("children = %v, want [RoleManagement]", got)
	}
	if menu.Items[0].Children[0].Path != "/system/role" {
		t.Errorf("child path = %q, want /system/role", menu.Items[0].Children[0].Path)
	}
}

func TestProject_DropsEmptyGroups(t *testing.T) {
	tree := build(t,
		group("SystemManagement", "/system", page("UserManagement", "user")),
		page("Dashboard", "/dashboard"),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("Dashboard"))

	if got := itemNames(menu.Items); !slices.Equal(got, []string{"Dashboard"}) {
		t.Errorf("Project() = %v, want [Dashboard]", got)
	}
}

func TestProject_PermittedParentGrantsChildren(t *testing.T) {
	tree := build(t,
		group("own_business", "/business/own_business", page("owndata", "total")),
		group("Workbench", "/workbench", page("WorkbenchDefault", "")),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("own_business", "Workbench"))

	if got := itemNames(menu.Items); !slices.Equal(got, []string{"own_business", "Workbench"}) {
		t.Fatalf("Project() = %v", got)
	}
	if got := itemNames(menu.Items[0].Children); !slices.Equal(got, []string{"owndata"}) {
		t.Errorf("own_business children = %v, want [owndata]", got)
	}
	if got := menu.Items[1].Children[0].Path; got != "/workbench" {
		t.Errorf("index child path = %q, want /workbench", got)
	}
}

func TestProject_PermittedGroupWithoutVisibleChildrenDropped(t *testing.T) {
	tree := build(t,
		group("FieldWork", "/business/field_work", hidden(page("field_work_data", ""))),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("FieldWork"))
	if len(menu.Items) != 0 {
		t.Errorf("Project() = %v, want empty", itemNames(menu.Items))
	}
}

func TestProject_RedirectLeafIsClickable(t *testing.T) {
	home := navigation.Route{Name: "Home", Path: "/", Redirect: "/workbench", Meta: navigation.Meta{Order: navigation.Order(0)}}
	tree := build(t, home)

	menu := navigation.Project(tree, navigation.NewNameSet("Home"))
	if got := itemNames(menu.Items); !slices.Equal(got, []string{"Home"}) {
		t.Errorf("Project() = %v, want [Home]", got)
	}
}

func TestProject_Connectivity(t *testing.T) {
	comp := navigation.NewComponent("/a", nil)
	tree := build(t,
		navigation.Route{
			Name: "Parent", Path: "/parent", Component: comp,
			Children: []navigation.Route{page("Child", "child")},
		},
		group("Group", "/group", group("Sub", "sub", page("Leaf", "leaf"))),
	)

	sets := []navigation.NameSet{
		navigation.NewNameSet("Child"),
		navigation.NewNameSet("Leaf"),
		navigation.NewNameSet("Parent"),
		navigation.NewNameSet("Sub", "Child"),
		navigation.NewNameSet(),
	}

	for _, allowed := range sets {
		menu := navigation.Project(tree, allowed)
		var walk func(items []navigation.MenuItem, ancestors []string)
		walk = func(items []navigation.MenuItem, ancestors []string) {
			for _, it := range items {
				_, full, ok := tree.Lookup(it.Name)
				if !ok {
					t.Fatalf("projected unknown route %q", it.Name)
				}
				if full != it.Path {
					t.Errorf("item %q path = %q, want %q", it.Name, it.Path, full)
				}
				walk(it.Children, append(ancestors, it.Name))
			}
		}
		walk(menu.Items, nil)

		if allowed.Has("Child") && !allowed.Has("Parent") {
			for _, name := range menu.Names() {
				if name == "Child" {
					t.Error("Child survived without its non-grouping parent")
				}
			}
		}
	}
}

func TestProject_StableOrder(t *testing.T) {
	tree := build(t,
		page("c", "/c"),
		ordered(page("second", "/second"), 2),
		page("a", "/a"),
		ordered(page("first", "/first"), 1),
		ordered(page("also-second", "/also-second"), 2),
		page("b", "/b"),
	)

	allowed := navigation.NewNameSet("a", "b", "c", "first", "second", "also-second")
	want := []string{"first", "second", "also-second", "c", "a", "b"}

	for range 5 {
		menu := navigation.Project(tree, allowed)
		if got := itemNames(menu.Items); !slices.Equal(got, want) {
			t.Fatalf("Project() = %v, want %v", got, want)
		}
	}
}

func TestProject_ExtremeOrders(t *testing.T) {
	tree := build(t,
		ordered(page("high", "/high"), math.MaxInt),
		ordered(page("one", "/one"), 1),
		ordered(page("low", "/low"), math.MinInt),
	)

	menu := navigation.Project(tree, navigation.NewNameSet("high", "one", "low"))
	want := []string{"low", "one", "high"}
	if got := itemNames(menu.Items); !slices.Equal(got, want) {
		t.Errorf("Project() = %v, want %v", got, want)
	}
}

func TestProject_DoesNotMutateTree(t *testing.T) {
	tree := build(t,
		page("z", "/z"),
		ordered(page("y", "/y"), 1),
	)
	before := tree.Names()

	navigation.Project(tree, navigation.NewNameSet("y", "z"))

	if after := tree.Names(); !slices.Equal(before, after) {
		t.Errorf("tree order changed: %v -> %v", before, after)
	}
}

func TestProject_EmptyPermissions(t *testing.T) {
	tree := build(t, page("a", "/a"))

	menu := navigation.Project(tree, nil)
	if menu.Items == nil || len(menu.Items) != 0 {
		t.Errorf("Project(nil) = %#v, want empty non-nil items", menu.Items)
	}
}
