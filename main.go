package main

import (
	"context"
	"log"
	"os"

	"github.com/chaos-io/demogen/demo"
)

func main() {
	demoDir := "public/demo" // 网站 demo 图片目录，存放 before-{i}.jpg / after-{i}.png
	if err := os.MkdirAll(demoDir, os.ModePerm); err != nil {
		log.Fatal("Failed to create demo dir:", err)
	}

	g := demo.NewGenerator(nil)
	g.GenerateAll(context.Background(), demoDir)
}
