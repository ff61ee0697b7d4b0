package main

import (
	"context"
	"time"

	"jarin-io/api/internal/routers"
	"jarin-io/api/pkg/util"
)

func main() {
	util.InitConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := util.EnsureIndexes(ctx); err != nil {
		util.Log.WithError(err).Fatal("failed to ensure indexes")
	}
	cancel()

	router := routers.InitRoute()
	if err := router.Run("0.0.0.0:8080"); err != nil {
		util.Log.WithError(err).Fatal("failed to start server")
	}
}
