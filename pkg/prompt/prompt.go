// Package prompt は、編集種別ごとの指示文テンプレートと
// Gemini へ送るパーツ列（画像 -> テキストの順）の組み立てを提供します。
// すべて純関数であり、I/O もリトライも行いません。
package prompt

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// Spec は編集種別ごとのプロンプト仕様（タグ付きバリアント）です。
// メソッドを非公開にすることで、バリアント集合をこのパッケージに閉じています。
type Spec interface {
	// render は決定的な指示文を生成します。オプション不備は検証エラーになります。
	render() (string, error)
	// arity はこの種別が要求する画像枚数です。
	arity() int
}

// refinementHeader は追加指示ブロックの区切りです。空白のみの指示は無視されます。
const refinementHeader = "--- Additional instructions for this regeneration (must be followed) ---"

func withRefinement(base, refinement string) string {
	r := strings.TrimSpace(refinement)
	if r == "" {
		return base
	}
	return base + "\n\n" + refinementHeader + "\n" + r
}

// Build は仕様と画像列からリクエストのパーツ列を構築します。
// 画像は呼び出し側の順序のまま先頭に並び、指示テキストが末尾に 1 つ付きます。
// 2 枚画像の種別では順序が意味を持ちます（例: 顔入れ替えは受け側が先）。
func Build(spec Spec, images ...domain.Image) ([]*genai.Part, error) {
	if want := spec.arity(); len(images) != want {
		return nil, fmt.Errorf("%w: 画像は %d 枚必要ですが %d 枚です", domain.ErrValidation, want, len(images))
	}
	for i, img := range images {
		if img.IsZero() {
			return nil, fmt.Errorf("%w: %d 枚目の画像が空です", domain.ErrValidation, i+1)
		}
	}

	text, err := spec.render()
	if err != nil {
		return nil, err
	}

	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data},
		})
	}
	parts = append(parts, &genai.Part{Text: text})
	return parts, nil
}

// Render は指示文のみを返します。テンプレートの単体検証用です。
func Render(spec Spec) (string, error) {
	return spec.render()
}
