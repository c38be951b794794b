package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Samreen555/huffman/internal/config"
	"github.com/Samreen555/huffman/internal/handler"
	"github.com/Samreen555/huffman/internal/repo"
	"github.com/Samreen555/huffman/internal/router"
	"github.com/Samreen555/huffman/internal/service"
	"github.com/Samreen555/huffman/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	gin.SetMode(cfg.GinMode)

	sessions := repo.NewSessionRepoInMemory()
	codecSvc := service.NewCodecService(sessions, logg)
	codecH := handler.NewCodecHandler(codecSvc)

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
