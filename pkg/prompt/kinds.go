package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// Era は年代リスタイルで選択できる時代の閉集合です。
type Era string

const (
	Era1920s Era = "1920s"
	Era1950s Era = "1950s"
	Era1960s Era = "1960s"
	Era1970s Era = "1970s"
	Era1980s Era = "1980s"
	Era1990s Era = "1990s"
	Era2000s Era = "2000s"
)

var eraDescriptions = map[Era]string{
	Era1920s: "the roaring 1920s, with sepia tones and formal studio portrait styling",
	Era1950s: "the 1950s, with Kodachrome colors and classic Americana fashion",
	Era1960s: "the 1960s, with mod fashion and slightly faded film grain",
	Era1970s: "the 1970s, with warm earthy tones, film grain, and disco-era styling",
	Era1980s: "the 1980s, with bold colors, big hairstyles, and studio flash lighting",
	Era1990s: "the 1990s, with grunge-adjacent fashion and analog point-and-shoot look",
	Era2000s: "the early 2000s, with Y2K fashion and early digital camera aesthetics",
}

// Gender は年代リスタイルの被写体表現です。
type Gender string

const (
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
	GenderNeutral Gender = "neutral"
)

var genderSubjects = map[Gender]string{
	GenderFemale:  "a woman",
	GenderMale:    "a man",
	GenderNeutral: "a person",
}

// gridLayouts はフォトブース・コラージュで許可される分割数の閉写像です。
// ここに無い分割数は呼び出し契約違反としてプロンプト構築前に拒否します。
var gridLayouts = map[int]string{
	4:  "a 2x2 grid of four photo-booth frames",
	6:  "a 2x3 grid of six photo-booth frames",
	8:  "a 2x4 grid of eight photo-booth frames",
	9:  "a 3x3 grid of nine photo-booth frames",
	12: "a 3x4 grid of twelve photo-booth frames",
}

// cloneCountRange は多重分身合成で許可する分身数の範囲です。
const (
	cloneCountMin = 2
	cloneCountMax = 8
)

// StyleTransfer は画風変換です。画像 1 枚。
type StyleTransfer struct {
	Style      string // 例: "watercolor painting", "ukiyo-e woodblock print"
	Refinement string
}

func (s StyleTransfer) arity() int { return 1 }

func (s StyleTransfer) render() (string, error) {
	style := strings.TrimSpace(s.Style)
	if style == "" {
		return "", fmt.Errorf("%w: 画風の指定が空です", domain.ErrValidation)
	}
	base := strings.Join([]string{
		fmt.Sprintf("Redraw the provided photograph entirely in the style of %s.", style),
		"Preserve the original composition, subjects, and their poses exactly.",
		"Apply the style consistently across the whole frame, including the background.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// OutfitExtract は人物写真から服装一式を抽出して商品写真化します。画像 1 枚。
type OutfitExtract struct {
	Refinement string
}

func (s OutfitExtract) arity() int { return 1 }

func (s OutfitExtract) render() (string, error) {
	base := strings.Join([]string{
		"Extract the complete outfit worn by the person in the provided photograph.",
		"Render the clothing items alone, neatly arranged as a flat-lay product photo on a plain white background.",
		"Include every visible garment and accessory; do not include the person or any body parts.",
		"Keep fabric colors, patterns, and textures faithful to the original.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// Inpaint は塗りつぶし指定領域の生成（インペイント）です。画像 1 枚。
// 入力画像にはユーザーがキャンバスで描いたマーキングが焼き込まれている前提です。
type Inpaint struct {
	Instruction string // マーキング領域に何を描くか
	Refinement  string
}

func (s Inpaint) arity() int { return 1 }

func (s Inpaint) render() (string, error) {
	instruction := strings.TrimSpace(s.Instruction)
	if instruction == "" {
		return "", fmt.Errorf("%w: 生成内容の指示が空です", domain.ErrValidation)
	}
	base := strings.Join([]string{
		"The provided photograph contains a hand-drawn marked region.",
		fmt.Sprintf("Replace the content inside the marked region with: %s.", instruction),
		"Blend the new content seamlessly with the surrounding image, matching lighting, perspective, and grain.",
		"Remove all traces of the marking itself. Leave everything outside the marked region unchanged.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// ObjectRemove は指定オブジェクトの除去です。画像 1 枚。
type ObjectRemove struct {
	Target     string // 除去対象の説明
	Refinement string
}

func (s ObjectRemove) arity() int { return 1 }

func (s ObjectRemove) render() (string, error) {
	target := strings.TrimSpace(s.Target)
	if target == "" {
		return "", fmt.Errorf("%w: 除去対象の指定が空です", domain.ErrValidation)
	}
	base := strings.Join([]string{
		fmt.Sprintf("Remove the following from the provided photograph: %s.", target),
		"Reconstruct the area behind the removed content plausibly and seamlessly.",
		"Do not alter any other part of the image.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// BackgroundRemove は座標マーカーで指定した被写体の切り抜きです。画像 1 枚。
// 入力画像には imgutil.DrawPointMarker で円形マーカーが合成済みである前提です。
type BackgroundRemove struct {
	Refinement string
}

func (s BackgroundRemove) arity() int { return 1 }

func (s BackgroundRemove) render() (string, error) {
	base := strings.Join([]string{
		"The provided photograph contains a blue circular marker placed on one subject.",
		"Isolate exactly that marked subject and remove the entire background, replacing it with a solid plain white background.",
		"Remove the marker itself from the output. Keep the subject's edges clean and natural.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// BackgroundSynth はコンセプトアートを背景として合成します。画像 2 枚。
// 1 枚目が被写体写真、2 枚目が背景のコンセプトアートです（順序固定）。
type BackgroundSynth struct {
	Refinement string
}

func (s BackgroundSynth) arity() int { return 2 }

func (s BackgroundSynth) render() (string, error) {
	base := strings.Join([]string{
		"The first image is a photograph of a subject. The second image is concept art for a new background.",
		"Place the subject from the first image into a fully realized photographic environment based on the second image.",
		"Match lighting direction, color temperature, and depth of field so the subject looks naturally part of the scene.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// PhotoBooth は 1 枚の人物写真から複数表情のコラージュを生成します。画像 1 枚。
type PhotoBooth struct {
	Cells      int // 4, 6, 8, 9, 12 のいずれか
	Refinement string
}

func (s PhotoBooth) arity() int { return 1 }

func (s PhotoBooth) render() (string, error) {
	layout, ok := gridLayouts[s.Cells]
	if !ok {
		return "", fmt.Errorf("%w: 分割数 %d はサポート外です (4/6/8/9/12)", domain.ErrValidation, s.Cells)
	}
	base := strings.Join([]string{
		fmt.Sprintf("Create a single photo-booth style collage arranged as %s.", layout),
		"Each frame shows the same person from the provided photograph with a different expression and slight pose variation.",
		"Keep identity, clothing, and lighting consistent across all frames. Separate frames with thin white borders.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// CloneComposite は同一人物を複数体合成する多重分身効果です。画像 1 枚。
type CloneComposite struct {
	Count      int // 2〜8
	Refinement string
}

func (s CloneComposite) arity() int { return 1 }

func (s CloneComposite) render() (string, error) {
	if s.Count < cloneCountMin || s.Count > cloneCountMax {
		return "", fmt.Errorf("%w: 分身数 %d は範囲外です (%d〜%d)", domain.ErrValidation, s.Count, cloneCountMin, cloneCountMax)
	}
	base := strings.Join([]string{
		fmt.Sprintf("Composite %d copies of the person from the provided photograph into one coherent scene.", s.Count),
		"Each copy takes a distinct natural pose and interacts plausibly with the scene, as if identical twins were photographed together.",
		"Keep the original background. Ensure consistent lighting, shadows, and scale for every copy.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// PoseTransfer は 2 枚目の参照ポーズを 1 枚目の人物に適用します。画像 2 枚。
// 1 枚目が対象人物、2 枚目がポーズ参照です（順序固定）。
type PoseTransfer struct {
	Refinement string
}

func (s PoseTransfer) arity() int { return 2 }

func (s PoseTransfer) render() (string, error) {
	base := strings.Join([]string{
		"The first image shows the target person. The second image shows a reference pose.",
		"Regenerate the target person holding exactly the pose from the reference image.",
		"Preserve the target person's identity, face, clothing, and the original background from the first image.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// FaceSwap は顔の入れ替えです。画像 2 枚。
// 1 枚目が受け側（体・背景を提供）、2 枚目が顔の提供元です。
// テンプレートが位置で役割を割り当てるため、この順序は契約です。
type FaceSwap struct {
	Refinement string
}

func (s FaceSwap) arity() int { return 2 }

func (s FaceSwap) render() (string, error) {
	base := strings.Join([]string{
		"The first image is the receiving photograph. The second image provides the source face.",
		"Replace the face of the person in the first image with the face from the second image.",
		"Adapt skin tone blending, lighting, and head angle so the swap looks photorealistic.",
		"Everything else in the first image, including body, hair, clothing, and background, must remain unchanged.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}

// EraRestyle は写真を指定年代の記念写真風に作り直します。画像 1 枚。
type EraRestyle struct {
	Era        Era
	Gender     Gender
	Refinement string
}

func (s EraRestyle) arity() int { return 1 }

func (s EraRestyle) render() (string, error) {
	era, ok := eraDescriptions[s.Era]
	if !ok {
		return "", fmt.Errorf("%w: 年代 %q はサポート外です", domain.ErrValidation, string(s.Era))
	}
	subject, ok := genderSubjects[s.Gender]
	if !ok {
		return "", fmt.Errorf("%w: 被写体区分 %q はサポート外です", domain.ErrValidation, string(s.Gender))
	}
	base := strings.Join([]string{
		fmt.Sprintf("Restyle the provided photograph as a portrait of %s taken in %s.", subject, era),
		"Change hairstyle, clothing, photographic medium, and color processing to match that era.",
		"Preserve the person's facial identity so they remain clearly recognizable.",
	}, "\n")
	return withRefinement(base, s.Refinement), nil
}
