package adapters

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"

	"google.golang.org/genai"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// makeTestPNG はテスト用の単色 PNG バイト列を生成するのだ。
func makeTestPNG(w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

type mockResolver struct {
	images map[string]domain.Image
	err    error
	calls  atomic.Int64
}

func (m *mockResolver) ResolveImage(_ context.Context, ref string) (domain.Image, error) {
	m.calls.Add(1)
	if m.err != nil {
		return domain.Image{}, m.err
	}
	if img, ok := m.images[ref]; ok {
		return img, nil
	}
	return domain.Image{MIMEType: "image/png", Data: makeTestPNG(8, 8)}, nil
}

type mockExecutor struct {
	resp      *domain.ImageResponse
	err       error
	calls     atomic.Int64
	lastParts []*genai.Part
	lastOpts  domain.GenerateOptions
}

func (m *mockExecutor) Execute(_ context.Context, parts []*genai.Part, opts domain.GenerateOptions) (*domain.ImageResponse, error) {
	m.calls.Add(1)
	m.lastParts = parts
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &domain.ImageResponse{Data: []byte{0x01}, MimeType: "image/png"}, nil
}
