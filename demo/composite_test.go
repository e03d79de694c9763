package demo

import (
	"image"
	"image/color"
	"testing"
)

// blendWhite 参考公式：a·src + (1−a)·255
func blendWhite(src, a uint8) uint8 {
	return uint8((uint32(src)*uint32(a) + 255*(255-uint32(a)) + 127) / 255)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestCompositeOnWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})    // 完全不透明
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})         // 完全透明
	src.SetNRGBA(2, 0, color.NRGBA{R: 100, G: 150, B: 200, A: 128}) // 半透明

	got := CompositeOnWhite(src)

	if got.Bounds().Dx() != 3 || got.Bounds().Dy() != 1 {
		t.Fatalf("unexpected bounds %v", got.Bounds())
	}
	if !got.Opaque() {
		t.Errorf("composite result should be fully opaque")
	}

	// 不透明像素：输出等于源色
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("opaque pixel = %v, want source color", c)
	}

	// 透明像素：输出为纯白
	if c := got.NRGBAAt(1, 0); c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("transparent pixel = %v, want pure white", c)
	}

	// 半透明像素：按 alpha 与白色线性混合，允许 ±2 舍入误差
	c := got.NRGBAAt(2, 0)
	want := color.NRGBA{
		R: blendWhite(100, 128),
		G: blendWhite(150, 128),
		B: blendWhite(200, 128),
		A: 255,
	}
	if absDiff(c.R, want.R) > 2 || absDiff(c.G, want.G) > 2 || absDiff(c.B, want.B) > 2 || c.A != 255 {
		t.Errorf("partial alpha pixel = %v, want ~%v", c, want)
	}
}

func TestCompositeOnWhite_OpaqueInput(t *testing.T) {
	// 没有 alpha 信息的输入（比如 JPEG 解码结果）应原样保留
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 60, G: 70, B: 80, A: 255})
		}
	}

	got := CompositeOnWhite(src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := got.NRGBAAt(x, y); c != (color.NRGBA{R: 60, G: 70, B: 80, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want unchanged source color", x, y, c)
			}
		}
	}
}

func TestCompositeOnWhite_NonZeroOrigin(t *testing.T) {
	// 输入 bounds 不从 (0,0) 开始时输出尺寸仍然一致
	src := image.NewNRGBA(image.Rect(5, 7, 15, 12))
	got := CompositeOnWhite(src)
	if got.Bounds() != image.Rect(0, 0, 10, 5) {
		t.Errorf("bounds = %v, want (0,0)-(10,5)", got.Bounds())
	}
}
