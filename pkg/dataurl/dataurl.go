// Package dataurl は、UI 境界で用いるデータURL 形式
// (data:<mediaType>;base64,<payload>) と domain.Image の相互変換を提供します。
package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

const (
	scheme    = "data:"
	separator = ";base64,"
)

// supportedMIMETypes は受け入れ可能な画像 MIME タイプの閉集合です。
// 集合外のタイプは正規のデータURL であっても FormatError で拒否します。
var supportedMIMETypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/gif":  {},
}

// FormatError はデータURL の構文または MIME タイプの不備を表します。
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid image format: %s", e.Reason)
}

// IsSupported は MIME タイプが閉集合に含まれるかを返します。
func IsSupported(mimeType string) bool {
	_, ok := supportedMIMETypes[mimeType]
	return ok
}

// Parse はデータURL を解析して domain.Image に復元します。
// 構文不正・非画像タイプ・base64 破損はすべて *FormatError になります。
func Parse(raw string) (domain.Image, error) {
	rest, ok := strings.CutPrefix(raw, scheme)
	if !ok {
		return domain.Image{}, &FormatError{Reason: "data: スキームではありません"}
	}

	mimeType, payload, ok := strings.Cut(rest, separator)
	if !ok {
		return domain.Image{}, &FormatError{Reason: ";base64, 区切りが見つかりません"}
	}

	if !IsSupported(mimeType) {
		return domain.Image{}, &FormatError{Reason: fmt.Sprintf("未対応の MIME タイプ: %q", mimeType)}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return domain.Image{}, &FormatError{Reason: fmt.Sprintf("base64 ペイロードを復号できません: %v", err)}
	}
	if len(data) == 0 {
		return domain.Image{}, &FormatError{Reason: "ペイロードが空です"}
	}

	return domain.Image{MIMEType: mimeType, Data: data}, nil
}

// Format は domain.Image をデータURL 文字列に変換します。
// Parse(Format(img)) == img の可逆性を保証します。
func Format(img domain.Image) string {
	return scheme + img.MIMEType + separator + base64.StdEncoding.EncodeToString(img.Data)
}
