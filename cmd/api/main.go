package main

import (
	"context"
	"log"

	"github.com/Betojr04/E-commerceAPI/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("commerce API exited: %v", err)
	}
}
