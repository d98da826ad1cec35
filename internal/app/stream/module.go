package stream

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the stream package
var Module = fx.Options(
	fx.Provide(NewBuilder),
)
