package app

import (
	"testing"

	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/config"
	"github.com/aretw0/smol/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	a := New("ops")
	assert.Equal(t, "ops", a.Name())
	assert.True(t, a.CLIEnabled())
	assert.True(t, a.REPLEnabled())
	assert.Equal(t, BootHelp, a.Boot())
	assert.NotNil(t, a.Config())
	assert.False(t, a.ExplicitRegistration())

	store := config.New()
	a = New("ops", WithCLI(false), WithREPL(false), WithBoot(BootNone), WithConfig(store), WithHistoryFile("/tmp/h"))
	assert.False(t, a.CLIEnabled())
	assert.False(t, a.REPLEnabled())
	assert.Equal(t, BootNone, a.Boot())
	assert.Same(t, store, a.Config())
	assert.Equal(t, "/tmp/h", a.HistoryFile())
}

func TestResolve_LocalAndAliases(t *testing.T) {
	a := New("ops")
	deploy := &command.Spec{Name: "deploy", Aliases: []string{"d"}}
	a.Register(deploy, &command.Spec{Name: "status"})

	assert.Same(t, deploy, a.Resolve("deploy"))
	assert.Same(t, deploy, a.Resolve("d"))
	assert.Nil(t, a.Resolve("dep"))
}

func TestResolve_DelegatesToMount(t *testing.T) {
	root := New("ops")
	admin := New("admin")
	users := &command.Spec{Name: "users"}
	admin.Register(users)
	root.Mount(admin, "admin")

	assert.Same(t, users, root.Resolve("admin:users"))
	assert.Nil(t, root.Resolve("admin:groups"))

	spec, owner := root.Locate("admin:users")
	assert.Same(t, users, spec)
	assert.Same(t, admin, owner)
}

func TestResolve_UnknownPrefixFallsThroughToLocal(t *testing.T) {
	a := New("ops")
	odd := &command.Spec{Name: "db:migrate"}
	a.Register(odd)

	assert.Same(t, odd, a.Resolve("db:migrate"))
}

func TestResolve_NestedMounts(t *testing.T) {
	root, mid, leaf := New("root"), New("mid"), New("leaf")
	spec := &command.Spec{Name: "x"}
	leaf.Register(spec)
	mid.Mount(leaf, "leaf")
	root.Mount(mid, "mid")

	assert.Same(t, spec, root.Resolve("mid:leaf:x"))
}

func TestMount_RemountReplacesInPlace(t *testing.T) {
	root := New("root")
	a, b, c := New("a"), New("b"), New("c")
	root.Mount(a, "one")
	root.Mount(b, "two")
	root.Mount(c, "one")

	mounts := root.Mounts()
	require.Len(t, mounts, 2)
	assert.Equal(t, "one", mounts[0].Name)
	assert.Same(t, c, mounts[0].App)
	assert.Equal(t, "two", mounts[1].Name)
	assert.Same(t, c, root.FindMount("one"))
	assert.Nil(t, root.FindMount("three"))
}

func TestRegister_KeepsDuplicatesAndOrder(t *testing.T) {
	a := New("ops")
	s := &command.Spec{Name: "x"}
	a.Register(s, &command.Spec{Name: "y"}, s)

	names := []string{}
	for _, c := range a.Commands() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"x", "y", "x"}, names)
	assert.ErrorIs(t, a.Validate(), domain.ErrDuplicateName)
}

func TestValidate(t *testing.T) {
	a := New("ops")
	a.Register(&command.Spec{Name: "deploy", Aliases: []string{"d"}}, &command.Spec{Name: "delete", Aliases: []string{"d"}})
	err := a.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"d" used by deploy and delete`)

	ok := New("ok")
	ok.Register(&command.Spec{Name: "a"})
	ok.RegisterCheck(&check.Spec{Name: "disk"}, &check.Spec{Name: "net"})
	assert.NoError(t, ok.Validate())
	assert.NotNil(t, ok.FindCheck("net"))
	assert.Nil(t, ok.FindCheck("cpu"))
}

func TestNamespace_AttachesToNearestApplication(t *testing.T) {
	root := New("ops")
	admin := New("admin")

	ns := root.Namespace()
	assert.True(t, ns.Command(&command.Spec{Name: "deploy"}))

	adminNS := ns.Namespace("admin").Bind(admin)
	deep := adminNS.Namespace("users")
	assert.True(t, deep.Command(&command.Spec{Name: "list"}))
	assert.True(t, deep.Check(&check.Spec{Name: "db"}))

	assert.Equal(t, "ops::admin::users", deep.Path())
	assert.Same(t, admin, deep.Application())
	assert.NotNil(t, admin.Resolve("list"))
	assert.Nil(t, root.Resolve("list"))
	assert.NotNil(t, admin.FindCheck("db"))
	assert.NotNil(t, root.Resolve("deploy"))
	assert.False(t, admin.ExplicitRegistration(), "namespace attachment is not explicit")
}

func TestNamespace_ExplicitModeSuppressesAttachment(t *testing.T) {
	a := New("ops")
	a.Register(&command.Spec{Name: "curated"})

	ns := a.Namespace()
	stray := &command.Spec{Name: "stray"}
	assert.False(t, ns.Command(stray))
	assert.False(t, ns.Check(&check.Spec{Name: "probe"}))

	assert.Nil(t, a.Resolve("stray"))
	assert.Empty(t, a.Checks())
	assert.Equal(t, []*command.Spec{stray}, ns.Commands())
	assert.Len(t, ns.Checks(), 1)
}

func TestNamespace_Unbound(t *testing.T) {
	ns := (&Namespace{name: "loose"}).Namespace("inner")
	assert.Nil(t, ns.Application())
	assert.False(t, ns.Command(&command.Spec{Name: "x"}))
}

func TestGroupedCommands(t *testing.T) {
	a := New("ops")
	a.Register(
		&command.Spec{Name: "b", Group: "zeta"},
		&command.Spec{Name: "a"},
		&command.Spec{Name: "c", Group: "alpha"},
		&command.Spec{Name: "d"},
		&command.Spec{Name: "e", Group: "zeta"},
	)

	ungrouped, groups := a.GroupedCommands()
	require.Len(t, ungrouped, 2)
	assert.Equal(t, "a", ungrouped[0].Name)
	assert.Equal(t, "d", ungrouped[1].Name)

	require.Len(t, groups, 2)
	assert.Equal(t, "alpha", groups[0].Name)
	assert.Equal(t, "zeta", groups[1].Name)
	require.Len(t, groups[1].Commands, 2)
	assert.Equal(t, "b", groups[1].Commands[0].Name)
	assert.Equal(t, "e", groups[1].Commands[1].Name)
}
