package generator

import (
	"fmt"
	"strings"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// ExtractImage は Gemini のレスポンスから最初のインライン画像を取り出します。
// 画像パーツが複数ある場合は最初の 1 つのみを採用します（上流の返却順のまま）。
// 画像が無い場合は、応答中のテキストを NoImageError に埋め込んで返します。
func ExtractImage(resp *gemini.Response, seed int64) (*ImageOutput, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.RawResponse.Candidates[0]

	var texts []string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageOutput{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					UsedSeed: seed,
				}, nil
			}
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s)", candidate.FinishReason)
	}

	modelText := strings.Join(texts, "\n")
	if modelText == "" {
		modelText = noImagePlaceholder
	}
	return nil, &NoImageError{ModelText: modelText}
}
