package imgutil

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// makePNG はテスト用の単色 PNG を生成するヘルパーなのだ。
func makePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("テスト画像の生成に失敗: %v", err)
	}
	return buf.Bytes()
}

func TestDrawPointMarker(t *testing.T) {
	t.Run("中心に打ったマーカーで画素が変化するのだ", func(t *testing.T) {
		src := makePNG(t, 100, 80, color.White)

		out, err := DrawPointMarker(src, 50, 40)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		decoded, err := png.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("出力が PNG としてデコードできないのだ: %v", err)
		}

		r, g, b, _ := decoded.At(50, 40).RGBA()
		if r == 0xFFFF && g == 0xFFFF && b == 0xFFFF {
			t.Error("マーカー中心の画素が白いまま（描画されていない）なのだ")
		}

		// マーカーから遠い角は元のままであるべき
		r, g, b, _ = decoded.At(2, 2).RGBA()
		if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
			t.Error("マーカーから離れた画素まで変化しているのだ")
		}
	})

	t.Run("小さい画像でも最小半径が保証されるのだ", func(t *testing.T) {
		src := makePNG(t, 32, 32, color.White)

		out, err := DrawPointMarker(src, 16, 16)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		decoded, _ := png.Decode(bytes.NewReader(out))
		// 最小半径 10 なら中心から 8px 離れた位置も塗られているはず
		r, g, b, _ := decoded.At(16+8, 16).RGBA()
		if r == 0xFFFF && g == 0xFFFF && b == 0xFFFF {
			t.Error("最小半径が効いていないのだ")
		}
	})

	t.Run("デコード不能な入力は MarkerError になるのだ", func(t *testing.T) {
		_, err := DrawPointMarker([]byte("this is not an image"), 0, 0)
		if err == nil {
			t.Fatal("expected error for non-image input")
		}
		var me *MarkerError
		if !errors.As(err, &me) {
			t.Errorf("MarkerError であるべきなのだ: %v", err)
		}
	})

	t.Run("範囲外座標は MarkerError になるのだ", func(t *testing.T) {
		src := makePNG(t, 10, 10, color.White)
		_, err := DrawPointMarker(src, 100, 100)
		var me *MarkerError
		if !errors.As(err, &me) {
			t.Errorf("MarkerError であるべきなのだ: %v", err)
		}
	})
}
