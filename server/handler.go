package server

import (
	"bytes"
	"fmt"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/demogen/util"
)

const (
	maxUploadSize = 20 << 20 // 20 MB
	defaultThumbW = 320
	maxThumbW     = 1024
)

// handleProcess 跑与批处理相同的去背景 + 白底合成流程，返回 PNG
// 输入二选一：multipart 上传（image 字段）或远程图片地址（url 字段）
func (s *Server) handleProcess(c *gin.Context) {
	if file, err := c.FormFile("image"); err == nil {
		s.processUpload(c, file)
		return
	}
	if url := c.PostForm("url"); url != "" {
		s.processURL(c, url)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "image file or url required"})
}

func (s *Server) processUpload(c *gin.Context, file *multipart.FileHeader) {
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only JPEG/PNG supported"})
		return
	}

	// 临时文件用 ksuid 命名，处理完即删
	tmpIn := filepath.Join(os.TempDir(), ksuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpIn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		_ = os.Remove(tmpIn)
	}()

	s.respondProcessed(c, tmpIn)
}

// processURL 拉取远程图片，落盘后与上传走同一条处理路径
func (s *Server) processURL(c *gin.Context, url string) {
	img, err := util.DownloadImage(url)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("download image: %v", err)})
		return
	}

	tmpIn := filepath.Join(os.TempDir(), ksuid.New().String()+".png")
	if err := util.SavePNG(tmpIn, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		_ = os.Remove(tmpIn)
	}()

	s.respondProcessed(c, tmpIn)
}

func (s *Server) respondProcessed(c *gin.Context, inputPath string) {
	tmpOut := filepath.Join(os.TempDir(), ksuid.New().String()+".png")
	if err := s.gen.ProcessImage(c.Request.Context(), inputPath, tmpOut); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		_ = os.Remove(tmpOut)
	}()

	out, err := os.ReadFile(tmpOut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", out)
}

// handleThumb 返回 demo 图片的缩略图，宽度由 w 指定，高度按比例缩放
// 只缩略预览，不改动 demo 目录里的原图
func (s *Server) handleThumb(c *gin.Context) {
	name := c.Query("name")
	if name == "" || name != filepath.Base(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid name"})
		return
	}

	w, err := strconv.Atoi(c.DefaultQuery("w", strconv.Itoa(defaultThumbW)))
	if err != nil || w <= 0 || w > maxThumbW {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid width"})
		return
	}

	img, err := util.OpenImage(filepath.Join(s.demoDir, name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}

	thumb := resize.Resize(uint(w), 0, img, resize.Lanczos3)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, thumb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
