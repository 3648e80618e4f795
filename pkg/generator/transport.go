package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// リトライ契約: 合計 3 回（初回 + リトライ 2 回）、待機は 1000ms, 2000ms。
// 対象は一時的なサーバ障害のみで、それ以外は即時に伝播します。
const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 1000 * time.Millisecond
	defaultMultiplier  = 2.0
)

// Transport は生成エンドポイントへの呼び出しを有界リトライ付きで実行します。
// 1 回の試行につきネットワーク呼び出しは正確に 1 回です。
type Transport struct {
	aiClient gemini.GenerativeModel
	model    string

	maxAttempts uint64
	baseDelay   time.Duration
	multiplier  float64
}

// NewTransport は依存関係を注入して Transport を初期化します。
func NewTransport(aiClient gemini.GenerativeModel, model string) (*Transport, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &Transport{
		aiClient:    aiClient,
		model:       model,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		multiplier:  defaultMultiplier,
	}, nil
}

// newBackOff はこの Transport の待機スケジュールを構築します。
// 揺らぎ（ジッター）なしの決定的な指数バックオフです。
func (t *Transport) newBackOff(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = t.baseDelay
	bo.Multiplier = t.multiplier
	bo.RandomizationFactor = 0
	bo.MaxInterval = 1 * time.Hour
	bo.MaxElapsedTime = 0 // 回数で打ち切るため経過時間では打ち切らない
	return backoff.WithContext(backoff.WithMaxRetries(bo, t.maxAttempts-1), ctx)
}

// Generate はパーツ列を送信して生のレスポンスを返します。
// 一時的なサーバ障害のみをリトライし、使い切った場合は最後の障害を返します。
func (t *Transport) Generate(ctx context.Context, parts []*genai.Part, opts domain.GenerateOptions) (*gemini.Response, error) {
	gOpts := gemini.GenerateOptions{
		AspectRatio:  opts.AspectRatio,
		SystemPrompt: opts.SystemPrompt,
		Seed:         opts.Seed,
	}

	var resp *gemini.Response
	operation := func() error {
		r, err := t.aiClient.GenerateWithParts(ctx, t.model, parts, gOpts)
		if err != nil {
			if isTransient(err) {
				return &TransientError{Err: err}
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}

	notify := func(err error, delay time.Duration) {
		slog.WarnContext(ctx, "一時的なサーバ障害のためリトライします",
			"model", t.model, "delay", delay, "error", err)
	}

	if err := backoff.RetryNotify(operation, t.newBackOff(ctx), notify); err != nil {
		return nil, err
	}
	return resp, nil
}

// Execute は生成呼び出しと応答解析を一括で行います。
func (t *Transport) Execute(ctx context.Context, parts []*genai.Part, opts domain.GenerateOptions) (*domain.ImageResponse, error) {
	resp, err := t.Generate(ctx, parts, opts)
	if err != nil {
		return nil, err
	}

	out, err := ExtractImage(resp, dereferenceSeed(opts.Seed))
	if err != nil {
		return nil, err
	}

	return &domain.ImageResponse{
		Data:     out.Data,
		MimeType: out.MimeType,
		UsedSeed: out.UsedSeed,
	}, nil
}
