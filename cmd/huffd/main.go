package main

import (
	"log"

	"github.com/gin-gonic/gin"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/config"
	"github.com/chronos-tachyon/hufftree/internal/handler"
	"github.com/chronos-tachyon/hufftree/internal/logger"
	"github.com/chronos-tachyon/hufftree/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	opts := &huffman.Options{
		Logger:     logger.New(nil),
		DebugLevel: cfg.DebugLevel,
	}
	codecH := handler.NewCodecHandler(opts, cfg.MaxBody)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
