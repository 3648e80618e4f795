// Package adapters は、服装抽出や年代リスタイルなどツール単位の公開操作を提供します。
// 各操作は「検証 -> 画像解決 -> プロンプト構築 -> リトライ付き呼び出し -> 応答解析」の
// 一本道のパイプラインで、失敗は操作名を含むメッセージで包んで返します。
package adapters

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/prompt"
)

// ImageResolver は画像参照（データURL / http(s) / gs://）を domain.Image に解決する抽象です。
type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (domain.Image, error)
}

// Executor は生成リクエストの実行と応答解析を担う抽象です。
// リトライはこの実装側の責務です。
type Executor interface {
	Execute(ctx context.Context, parts []*genai.Part, opts domain.GenerateOptions) (*domain.ImageResponse, error)
}

// PhotoEditor は全編集ツールの公開窓口です。
type PhotoEditor struct {
	resolver ImageResolver
	executor Executor
	opts     domain.GenerateOptions
}

// NewPhotoEditor は依存関係を注入して PhotoEditor を初期化します。
func NewPhotoEditor(resolver ImageResolver, executor Executor, opts domain.GenerateOptions) (*PhotoEditor, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if executor == nil {
		return nil, fmt.Errorf("executor is required")
	}

	return &PhotoEditor{
		resolver: resolver,
		executor: executor,
		opts:     opts,
	}, nil
}

// resolveAll は参照列を順序を保ったまま解決します。
func (e *PhotoEditor) resolveAll(ctx context.Context, refs ...string) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(refs))
	for i, ref := range refs {
		img, err := e.resolver.ResolveImage(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("%d 枚目の画像を解決できませんでした: %w", i+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// run は共通パイプラインです。失敗は opName 付きで包みます。
func (e *PhotoEditor) run(ctx context.Context, opName string, spec prompt.Spec, refs ...string) (*domain.ImageResponse, error) {
	images, err := e.resolveAll(ctx, refs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}
	return e.runWithImages(ctx, opName, spec, images...)
}

// runWithImages は解決済み画像から先のパイプラインです。
// マーカー合成のような前処理を挟む操作が直接使います。
func (e *PhotoEditor) runWithImages(ctx context.Context, opName string, spec prompt.Spec, images ...domain.Image) (*domain.ImageResponse, error) {
	parts, err := prompt.Build(spec, images...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}

	resp, err := e.executor.Execute(ctx, parts, e.opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}
	return resp, nil
}
