package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/gemini-photo-kit/pkg/dataurl"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
)

// PhotoCore は画像参照の解決と File API の管理を担う基盤コンポーネントです。
// 参照はデータURL・http(s) URL・gs:// URI のいずれかを受け付けます。
type PhotoCore struct {
	aiClient   gemini.GenerativeModel
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
}

// NewPhotoCore は依存関係を注入して PhotoCore を初期化します。
func NewPhotoCore(aiClient gemini.GenerativeModel, reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*PhotoCore, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &PhotoCore{
		aiClient:   aiClient,
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// ResolveImage は画像参照を解決して domain.Image を返します。
// データURL は dataurl パッケージで厳密に解析し、URL はダウンロード、
// gs:// はリモートストレージから読み込みます。
func (c *PhotoCore) ResolveImage(ctx context.Context, ref string) (domain.Image, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Image{}, fmt.Errorf("%w: 画像参照が空です", domain.ErrValidation)
	}

	if strings.HasPrefix(ref, "data:") {
		return dataurl.Parse(ref)
	}

	data, err := c.fetchImageData(ctx, ref)
	if err != nil {
		return domain.Image{}, err
	}

	if UseImageCompression && len(data) > compressionThreshold {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			data = compressed
		}
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.Image{}, fmt.Errorf("%w: 参照先は画像ではありません (%s)", domain.ErrValidation, mimeType)
	}

	return domain.Image{MIMEType: mimeType, Data: data}, nil
}

// UploadFile は画像を Gemini File API にアップロードし、URI を返します。
// 同じ参照の再アップロードはキャッシュで回避します。
func (c *PhotoCore) UploadFile(ctx context.Context, fileURI string) (string, error) {
	cacheKeyURI := cacheKeyFileAPIURI + fileURI
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyURI); ok {
			if uri, ok := val.(string); ok {
				return uri, nil
			}
		}
	}

	img, err := c.ResolveImage(ctx, fileURI)
	if err != nil {
		return "", err
	}

	displayName := filepath.Base(fileURI)

	// File API へのアップロード
	uri, fileName, err := c.aiClient.UploadFile(ctx, img.Data, img.MIMEType, displayName)
	if err != nil {
		return "", err
	}

	// URI（参照用）と Name（削除用）の両方をキャッシュ
	if c.cache != nil {
		c.cache.Set(cacheKeyURI, uri, c.expiration)
		c.cache.Set(cacheKeyFileAPIName+fileURI, fileName, c.expiration)
	}

	return uri, nil
}

// DeleteFile はキャッシュされたファイル名を使用して Gemini File API からファイルを削除します。
func (c *PhotoCore) DeleteFile(ctx context.Context, fileURI string) error {
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyFileAPIName + fileURI); ok {
			if name, ok := val.(string); ok {
				// 正しいファイル名 (files/xxxx) で削除を実行
				return c.aiClient.DeleteFile(ctx, name)
			}
		}
	}

	// キャッシュミスした場合、URL 形式の fileURI では Delete API を叩けないためエラーを返す
	return fmt.Errorf("cannot determine file name for deletion, file not found in cache: %s", fileURI)
}

// fetchImageData は http(s) / gs:// から画像バイト列を取得します。
func (c *PhotoCore) fetchImageData(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := c.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := IsSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("%w: 安全ではないURLが指定されました: %v", domain.ErrValidation, err)
	}

	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyImageBytes + rawURL); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", rawURL, "type", fmt.Sprintf("%T", val))
		}
	}

	data, err := c.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(cacheKeyImageBytes+rawURL, data, c.expiration)
	}
	return data, nil
}
