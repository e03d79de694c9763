package main

import (
	"log"
	"os"

	"github.com/chaos-io/demogen/demo"
	"github.com/chaos-io/demogen/server"
)

func main() {
	demoDir := "public/demo"
	if err := os.MkdirAll(demoDir, os.ModePerm); err != nil {
		log.Fatal("Failed to create demo dir:", err)
	}

	g := demo.NewGenerator(nil)
	s := server.New(g, demoDir)

	// 每天凌晨三点刷新 demo 图片
	if err := s.StartScheduler("0 3 * * *"); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}
	defer s.Stop()

	log.Println("demo preview server listening on :8080")
	if err := s.Run(":8080"); err != nil {
		log.Fatal("Failed to run server:", err)
	}
}
