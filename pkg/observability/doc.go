/*
Package observability turns command lifecycle events into metrics and logs.

Both Metrics.Hooks and LoggingHooks return command.LifecycleHooks; combine
them with command.ChainHooks and pass the result to the invoker:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := command.ChainHooks(m.Hooks(), observability.LoggingHooks(logger))
	inv := command.NewInvoker(command.WithLifecycleHooks(hooks))
*/
package observability
