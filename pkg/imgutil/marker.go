package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// マーカーの固定スタイル。縁取りは常に不透明、塗りは半透明にして
// 下の被写体が視認できるようにしています。
var (
	markerFillColor   = color.NRGBA{R: 37, G: 99, B: 235, A: 115}
	markerStrokeColor = color.NRGBA{R: 37, G: 99, B: 235, A: 255}
)

const (
	markerStrokeWidth = 3
	markerMinRadius   = 10
)

// MarkerError は、座標マーカーの合成に失敗したことを表します。
// ネットワーク起因の失敗と区別するための専用エラー型です。
type MarkerError struct {
	Reason string
	Err    error
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("マーカー合成に失敗しました: %s", e.Reason)
}

func (e *MarkerError) Unwrap() error { return e.Err }

// circleMask は円形のアルファマスクです。標準 image/draw の
// DrawMask に渡して円を描くために使います。
type circleMask struct {
	center  image.Point
	rOuter  int
	rInner  int // 0 なら塗りつぶし、正値ならリング（縁取り）になる
}

func (c *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (c *circleMask) Bounds() image.Rectangle {
	return image.Rect(c.center.X-c.rOuter, c.center.Y-c.rOuter, c.center.X+c.rOuter, c.center.Y+c.rOuter)
}

func (c *circleMask) At(x, y int) color.Color {
	dx, dy := x-c.center.X, y-c.center.Y
	d2 := dx*dx + dy*dy
	if d2 > c.rOuter*c.rOuter {
		return color.Alpha{}
	}
	if c.rInner > 0 && d2 < c.rInner*c.rInner {
		return color.Alpha{}
	}
	return color.Alpha{A: 255}
}

// DrawPointMarker は、指定ピクセル座標に円形マーカーを合成した PNG を返します。
// 半径は画像の短辺に比例してスケールし、リモートモデルが被写体を
// 一意に特定できる視覚アンカーとして機能します。
// 入力画像をデコードできない場合や座標が範囲外の場合は *MarkerError になります。
func DrawPointMarker(data []byte, x, y int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &MarkerError{Reason: "画像をデコードできません", Err: err}
	}

	bounds := src.Bounds()
	pt := image.Pt(x, y).Add(bounds.Min)
	if !pt.In(bounds) {
		return nil, &MarkerError{Reason: fmt.Sprintf("座標 (%d, %d) が画像範囲 %v の外です", x, y, bounds.Size())}
	}

	// 短辺の 1/24 を半径にする。小さい画像でも視認できる下限を設ける。
	radius := min(bounds.Dx(), bounds.Dy()) / 24
	if radius < markerMinRadius {
		radius = markerMinRadius
	}

	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	fill := &circleMask{center: pt, rOuter: radius - markerStrokeWidth}
	draw.DrawMask(canvas, bounds, &image.Uniform{C: markerFillColor}, image.Point{}, fill, bounds.Min, draw.Over)

	stroke := &circleMask{center: pt, rOuter: radius, rInner: radius - markerStrokeWidth}
	draw.DrawMask(canvas, bounds, &image.Uniform{C: markerStrokeColor}, image.Point{}, stroke, bounds.Min, draw.Over)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, canvas); err != nil {
		return nil, &MarkerError{Reason: "PNG エンコードに失敗しました", Err: err}
	}
	return buf.Bytes(), nil
}
