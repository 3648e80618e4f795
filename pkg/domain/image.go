package domain

import "errors"

// ErrValidation は、ネットワーク呼び出しの前段で検出された入力不備を示します。
// 画像未指定や閉集合オプションの範囲外指定などがこの系統に包まれます。
var ErrValidation = errors.New("入力値が不正です")

// Image は画像バイナリとその MIME タイプのペアです。
// データURL 形式との相互変換は dataurl パッケージが担当します。
type Image struct {
	MIMEType string
	Data     []byte
}

// IsZero は画像が未設定かどうかを返します。
func (i Image) IsZero() bool {
	return i.MIMEType == "" && len(i.Data) == 0
}

// GenerateOptions は生成時の共通パラメータです。
// Seed を *int64 にすることで「nil = ランダム」を表現しています。
type GenerateOptions struct {
	AspectRatio  string
	SystemPrompt string
	Seed         *int64
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
	UsedSeed int64 // 戻り値は情報欠落を防ぐため int64
}
