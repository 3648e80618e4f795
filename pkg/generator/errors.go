package generator

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TransientError はサーバ側の一時的な障害を表します。
// この系統だけがリトライの対象になります。
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("一時的なサーバ障害: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// NoImageError は、モデルが画像の代わりにテキストのみを返したことを表します。
// ModelText にはモデル自身の説明が原文のまま入ります。
type NoImageError struct {
	ModelText string
}

const noImagePlaceholder = "(モデルからの説明はありません)"

func (e *NoImageError) Error() string {
	return fmt.Sprintf("画像が生成されませんでした: %s", e.ModelText)
}

// isTransient は障害がリトライ対象（内部サーバ障害の系統）かを判定します。
// genai の型付きエラーを優先し、ラッパーが型情報を落とした場合に備えて
// 元実装と同じリテラルマーカーでの検出にフォールバックします。
// レート制限や認証エラーはこの集合に含めません。
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 500 || apiErr.Status == "INTERNAL"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == 500 || apiErrPtr.Status == "INTERNAL"
	}

	msg := err.Error()
	return strings.Contains(msg, `"code":500`) || strings.Contains(msg, "INTERNAL")
}
