package demo

import (
	// 注册常见解码器，rembg 返回 PNG，输入为 JPEG，WebP 通过 x/image/webp 兼容
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)
