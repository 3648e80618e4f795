package generator

import (
	"context"
	"time"
)

const (
	// UseImageCompression が真のとき、閾値を超える入力を JPEG に再圧縮します。
	UseImageCompression     = true
	ImageCompressionQuality = 75

	// compressionThreshold を超えるバイト数の画像だけを再圧縮の対象にします。
	compressionThreshold = 4 << 20

	cacheKeyFileAPIURI  = "fileapi_uri:"
	cacheKeyFileAPIName = "fileapi_name:"
	cacheKeyImageBytes  = "image_bytes:"
)

// ImageOutput は応答解析の内部結果です。
type ImageOutput struct {
	Data     []byte
	MimeType string
	UsedSeed int64
}

// ImageCacher は、取得済み画像や File API の URI をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
