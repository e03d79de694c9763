package demo

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// CompositeOnWhite 把带透明通道的图片合成到不透明白底上
// 对每个像素：alpha 为满时取源色，alpha 为零时取纯白，
// 其余按 alpha 在源色与白色之间线性混合（source-over）
// 返回的图片完全不透明，尺寸与输入一致
func CompositeOnWhite(img image.Image) *image.NRGBA {
	b := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// 白底 (255,255,255,255)
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// 以源图自身的 alpha 作为混合 mask
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Over)

	// 丢弃 alpha：底色不透明，合成后 alpha 恒为 255
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 0xff
	}

	return canvas
}
