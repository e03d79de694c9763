package server

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/chaos-io/demogen/demo"
)

// Server demo 预览服务：
//
//	GET  /demo/*          before/after 图片静态目录
//	GET  /api/thumb       demo 图片缩略图
//	POST /api/process     上传图片，去背景 + 白底合成后返回 PNG
type Server struct {
	engine  *gin.Engine
	gen     *demo.Generator
	demoDir string
	cron    *cron.Cron
}

func New(gen *demo.Generator, demoDir string) *Server {
	s := &Server{
		engine:  gin.Default(),
		gen:     gen,
		demoDir: demoDir,
		cron:    cron.New(),
	}

	s.engine.Static("/demo", demoDir)
	s.engine.GET("/api/thumb", s.handleThumb)
	s.engine.POST("/api/process", s.handleProcess)

	return s
}

// StartScheduler 按 cron 表达式定期重新生成 demo 图片
// rembg 服务更新模型后，下一次刷新会把新抠图效果带进 demo 目录
func (s *Server) StartScheduler(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		log.Println("refreshing demo images")
		s.gen.GenerateAll(context.Background(), s.demoDir)
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}
	s.cron.Start()
	return nil
}

func (s *Server) Stop() {
	s.cron.Stop()
}

func (s *Server) Handler() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
