/*
Package app is the registry behind both the one-shot dispatcher and the
interactive shell.

An Application owns an ordered command list, a check list, mounted child
applications and a config.Store. Applications are plain values; build one
per program and share it by pointer wherever it is mounted.

# Usage

	root := app.New("ops", app.WithBanner("ops tools"))
	admin := app.New("admin")
	admin.Register(usersSpec)
	root.Mount(admin, "admin")

	root.Resolve("admin:users") // usersSpec

Commands can also be declared through a Namespace, which attaches them to
the nearest bound application unless that application already uses
explicit registration:

	ns := root.Namespace()
	ns.Command(deploySpec)
	ns.Namespace("db").Check(pingSpec)
*/
package app
