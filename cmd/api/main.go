package main

import (
	appfx "github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
