package rembg

import "context"

// Remover 背景去除：输入编码后的图片字节，返回带 alpha 的编码图片字节
// 具体的分割模型在远端服务内部，对调用方完全透明
type Remover interface {
	Remove(ctx context.Context, data []byte) ([]byte, error)
}

// Passthrough 原样返回输入，用于无 rembg 服务的场景和测试
type Passthrough struct{}

func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

func (p *Passthrough) Remove(ctx context.Context, data []byte) ([]byte, error) {
	return data, nil
}
