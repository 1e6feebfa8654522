package http

import (
	"go.uber.org/fx"

	"apilog-admin/internal/delivery/http/handler"
	"apilog-admin/internal/delivery/http/router"
)

var Module = fx.Module("http",
	fx.Provide(
		handler.NewHealthHandler,
		handler.NewLogHandler,
		router.NewRouter,
	),
)
