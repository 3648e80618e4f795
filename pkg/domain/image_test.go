package domain

import (
	"testing"
)

func TestImage_IsZero(t *testing.T) {
	t.Run("未設定の画像はゼロ値と判定されるのだ", func(t *testing.T) {
		var img Image
		if !img.IsZero() {
			t.Error("空の Image は IsZero になるべきなのだ")
		}
	})

	t.Run("データを持つ画像はゼロ値ではないのだ", func(t *testing.T) {
		img := Image{
			MIMEType: "image/jpeg",
			Data:     []byte{0xFF, 0xD8}, // JPEG header dummy
		}
		if img.IsZero() {
			t.Error("データ入りの Image が IsZero になってしまったのだ")
		}
	})
}

func TestGenerateOptions_Seed(t *testing.T) {
	t.Run("Seedがnilの場合はランダムとして扱えるのだ", func(t *testing.T) {
		opts := GenerateOptions{AspectRatio: "1:1"}
		if opts.Seed != nil {
			t.Error("Seedはnilであるべきなのだ")
		}
	})

	t.Run("生成結果のSeedがint64で保持されることを確認するのだ", func(t *testing.T) {
		// UsedSeed は SDK の int32 範囲を超えた値も保持できる必要があるのだ
		var largeSeed int64 = 9223372036854775807 // MaxInt64
		resp := ImageResponse{
			Data:     []byte{0x89, 0x50},
			MimeType: "image/png",
			UsedSeed: largeSeed,
		}
		if resp.UsedSeed != largeSeed {
			t.Errorf("大きなシード値が維持されていないのだ: %d", resp.UsedSeed)
		}
	})
}
