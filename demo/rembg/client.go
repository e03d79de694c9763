package rembg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"os"
	"strings"

	nhttp "github.com/chaos-io/demogen/util/http"
)

const (
	// DefaultBaseURL rembg HTTP 服务地址，可用环境变量 REMBG_URL 覆盖
	DefaultBaseURL = "http://127.0.0.1:7000"
	removePath     = "/api/remove"
)

// Client 调用 rembg HTTP 服务去背景
//
//	curl -X POST "$BASE_URL/api/remove" -F "file=@my_image.jpg"
//
// 响应体为去背景后的 PNG（带 alpha）
type Client struct {
	baseURL string
	cli     nhttp.IClient
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		if v := os.Getenv("REMBG_URL"); v != "" {
			baseURL = v
		} else {
			baseURL = DefaultBaseURL
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     nhttp.NewHTTPClient(),
	}
}

func (c *Client) Remove(ctx context.Context, data []byte) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "input.jpg")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	_ = writer.Close()

	var cut []byte
	reqParam := &nhttp.RequestParam{
		RequestURI: c.baseURL + removePath,
		Method:     "POST",
		Header:     map[string]string{"Content-Type": writer.FormDataContentType()},
		Body:       body,
		Response:   &cut,
	}
	if err := c.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	slog.Debug("removed background", "input", len(data), "output", len(cut))

	return cut, nil
}
