package main

import (
	"go.uber.org/fx"

	"apilog-admin/internal/service"
)

func main() {
	fx.New(
		service.Options(),
	).Run()
}
