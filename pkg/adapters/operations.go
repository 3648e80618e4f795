package adapters

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
	"github.com/shouni/gemini-photo-kit/pkg/prompt"
)

// TransferStyle は画像全体を指定の画風に変換します。
func (e *PhotoEditor) TransferStyle(ctx context.Context, ref string, spec prompt.StyleTransfer) (*domain.ImageResponse, error) {
	return e.run(ctx, "画風の変換に失敗しました", spec, ref)
}

// ExtractOutfit は人物写真から服装だけを商品写真風に切り出します。
func (e *PhotoEditor) ExtractOutfit(ctx context.Context, ref string, spec prompt.OutfitExtract) (*domain.ImageResponse, error) {
	return e.run(ctx, "服装の抽出に失敗しました", spec, ref)
}

// FillMarkedArea はマーキング済み領域を指示に従って描き換えます。
func (e *PhotoEditor) FillMarkedArea(ctx context.Context, ref string, spec prompt.Inpaint) (*domain.ImageResponse, error) {
	return e.run(ctx, "マーキング領域の生成に失敗しました", spec, ref)
}

// RemoveObject は指定した対象を消し、背景を自然に補完します。
func (e *PhotoEditor) RemoveObject(ctx context.Context, ref string, spec prompt.ObjectRemove) (*domain.ImageResponse, error) {
	return e.run(ctx, "オブジェクトの除去に失敗しました", spec, ref)
}

// RemoveBackgroundAt は座標 (x, y) に円形マーカーを焼き込んだうえで、
// マーカー位置の被写体だけを残して背景を透過します。
func (e *PhotoEditor) RemoveBackgroundAt(ctx context.Context, ref string, x, y int, spec prompt.BackgroundRemove) (*domain.ImageResponse, error) {
	const opName = "背景の切り抜きに失敗しました"

	images, err := e.resolveAll(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}

	marked, err := imgutil.DrawPointMarker(images[0].Data, x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}

	markedImage := domain.Image{MIMEType: "image/png", Data: marked}
	return e.runWithImages(ctx, opName, spec, markedImage)
}

// SynthesizeBackground は被写体をコンセプトアートの世界観に合成します。
// subjectRef が1枚目、conceptRef が2枚目です。
func (e *PhotoEditor) SynthesizeBackground(ctx context.Context, subjectRef, conceptRef string, spec prompt.BackgroundSynth) (*domain.ImageResponse, error) {
	return e.run(ctx, "背景の合成に失敗しました", spec, subjectRef, conceptRef)
}

// GeneratePhotoBooth は同一人物の多彩な表情・ポーズをグリッド1枚に並べます。
func (e *PhotoEditor) GeneratePhotoBooth(ctx context.Context, ref string, spec prompt.PhotoBooth) (*domain.ImageResponse, error) {
	return e.run(ctx, "フォトブース生成に失敗しました", spec, ref)
}

// CompositeClones は同一人物を複製して1枚のシーンに合成します。
func (e *PhotoEditor) CompositeClones(ctx context.Context, ref string, spec prompt.CloneComposite) (*domain.ImageResponse, error) {
	return e.run(ctx, "多重分身の合成に失敗しました", spec, ref)
}

// TransferPose は personRef の人物に poseRef のポーズを取らせます。
func (e *PhotoEditor) TransferPose(ctx context.Context, personRef, poseRef string, spec prompt.PoseTransfer) (*domain.ImageResponse, error) {
	return e.run(ctx, "ポーズの転写に失敗しました", spec, personRef, poseRef)
}

// SwapFace は baseRef の人物の顔を faceRef の顔に置き換えます。
func (e *PhotoEditor) SwapFace(ctx context.Context, baseRef, faceRef string, spec prompt.FaceSwap) (*domain.ImageResponse, error) {
	return e.run(ctx, "顔の入れ替えに失敗しました", spec, baseRef, faceRef)
}

// RestyleEra は人物写真を指定年代の様式で撮り直したように変換します。
func (e *PhotoEditor) RestyleEra(ctx context.Context, ref string, spec prompt.EraRestyle) (*domain.ImageResponse, error) {
	return e.run(ctx, "年代リスタイルに失敗しました", spec, ref)
}
