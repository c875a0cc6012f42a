package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/goconfirm/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	application := app.New()
	<-application.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx)
}
