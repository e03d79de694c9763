package demo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/chaos-io/demogen/demo/rembg"
	"github.com/chaos-io/demogen/util"
)

// demoCount 固定的 demo 图片数量：before-1.jpg .. before-4.jpg
const demoCount = 4

type Generator struct {
	RemBG rembg.Remover
}

// NewGenerator 创建生成器；r 为 nil 时使用默认的 rembg HTTP 服务
func NewGenerator(r rembg.Remover) *Generator {
	if r == nil {
		r = rembg.NewClient("")
	}
	return &Generator{RemBG: r}
}

// ProcessImage 处理单张图片：
//
//	读取原图字节
//	调用 rembg 去背景（返回带 alpha 的 PNG）
//	合成到不透明白底，丢弃 alpha
//	输出 PNG（覆盖已有文件）
//
// 输出图片与解码后的输入图片尺寸一致
func (g *Generator) ProcessImage(ctx context.Context, inputPath, outputPath string) error {
	fmt.Printf("Processing %s...\n", filepath.Base(inputPath))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	fmt.Println("  Removing background...")
	cut, err := g.RemBG.Remove(ctx, data)
	if err != nil {
		return fmt.Errorf("remove background: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(cut))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	fmt.Println("  Compositing on white background...")
	final := CompositeOnWhite(img)

	if err := util.SavePNG(outputPath, final); err != nil {
		return fmt.Errorf("save png: %w", err)
	}

	fmt.Printf("  Saved to %s\n", filepath.Base(outputPath))
	return nil
}

// GenerateAll 批量生成 demo 'after' 图片
// 单张失败只记录日志，继续处理下一张，最后总是打印 Done!
func (g *Generator) GenerateAll(ctx context.Context, dir string) {
	fmt.Println("Generating demo 'after' images...")
	fmt.Println()

	for i := 1; i <= demoCount; i++ {
		in := filepath.Join(dir, fmt.Sprintf("before-%d.jpg", i))
		out := filepath.Join(dir, fmt.Sprintf("after-%d.png", i))
		if err := g.ProcessImage(ctx, in, out); err != nil {
			fmt.Printf("Error processing %s: %v\n", filepath.Base(in), err)
		}
		fmt.Println()
	}

	fmt.Println("Done!")
}
