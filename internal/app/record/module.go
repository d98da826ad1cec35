package record

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the record package
var Module = fx.Options(
	fx.Provide(NewCollector),
)
