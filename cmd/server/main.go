package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodeFatherG/YugiohProbabilitySim/internal/catalog"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/config"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/server"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/sim"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var cat catalog.Catalog
	if cfg.CardListPath != "" {
		m, err := catalog.LoadCSV(cfg.CardListPath)
		if err != nil {
			log.Fatalf("load card list: %v", err)
		}
		cat = m
		log.Printf("card catalog loaded from %s", cfg.CardListPath)
	} else {
		cat = catalog.NewClient()
		log.Println("card catalog backed by the ygoprodeck API")
	}

	r := gin.Default()
	server.RegisterRoutes(r, &server.App{
		Facade:  sim.New(),
		Catalog: cat,
		Cfg:     cfg,
	})

	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
