package main

import (
	"context"

	"github.com/alyonazakharova/excel-constructor/internal/bootstrap"
	"github.com/alyonazakharova/excel-constructor/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	if err := app.Run(); err != nil {
		logger.Error(ctx, "Server stopped", err)
	}
}
