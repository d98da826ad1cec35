package oscmd

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the oscmd package
var Module = fx.Options(
	fx.Provide(NewLifecycle),
	fx.Provide(NewSpawner),
)
