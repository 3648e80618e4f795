// Package fanout は、複数の生成ジョブを同時実行数の上限付きで走らせる
// スケジューラを提供します。全件一括の RunAll と、1件だけ作り直す
// Regenerate の2つの入口があります。
package fanout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// DefaultConcurrency は同時に実行する生成ジョブ数の上限です。
// ホスト側モデルのレート制限を踏まえた値です。
const DefaultConcurrency = 3

// Status はジョブの進行状態です。
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Job はスケジューラに投入する生成ジョブ1件です。
type Job struct {
	ID  string
	Run func(ctx context.Context) (*domain.ImageResponse, error)
}

// Result はジョブ1件の最新状態です。失敗してもジョブ自体の誤りでは
// ないため、エラーは文字列として結果に畳み込みます。
type Result struct {
	ID     string
	Status Status
	Image  *domain.ImageResponse
	Err    string
}

// UpdateFunc はジョブが完了状態（done / error）へ遷移するたびに呼ばれます。
type UpdateFunc func(Result)

// Scheduler は登録済みジョブの実行と結果の保持を担います。
// 全メソッドは複数ゴルーチンから同時に呼び出せます。
type Scheduler struct {
	concurrency int
	onUpdate    UpdateFunc

	mu      sync.Mutex
	jobs    map[string]Job
	results map[string]Result
}

// NewScheduler は Scheduler を初期化します。concurrency が 0 以下の
// 場合は DefaultConcurrency を使います。onUpdate は nil でも構いません。
func NewScheduler(concurrency int, onUpdate UpdateFunc) *Scheduler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Scheduler{
		concurrency: concurrency,
		onUpdate:    onUpdate,
		jobs:        make(map[string]Job),
		results:     make(map[string]Result),
	}
}

// Register はジョブを登録し、結果を pending で初期化します。
// 同じ ID で再登録すると実行関数と結果が上書きされます。
func (s *Scheduler) Register(jobs ...Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range jobs {
		s.jobs[job.ID] = job
		s.results[job.ID] = Result{ID: job.ID, Status: StatusPending}
	}
}

// RunAll は登録済みの全ジョブを上限付きで同時実行します。
// 個々のジョブの失敗は結果に記録するだけで、他のジョブは止めません。
// 戻り値のエラーは ctx のキャンセルを伝えるためのものです。
func (s *Scheduler) RunAll(ctx context.Context) error {
	s.mu.Lock()
	ids := make([]string, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.runOne(gctx, id)
			return nil
		})
	}
	return g.Wait()
}

// Regenerate は指定したジョブ1件だけを作り直します。
// 他のジョブの結果には触れません。
func (s *Scheduler) Regenerate(ctx context.Context, id string) (Result, error) {
	s.mu.Lock()
	_, ok := s.jobs[id]
	if ok {
		s.results[id] = Result{ID: id, Status: StatusPending}
	}
	s.mu.Unlock()

	if !ok {
		return Result{}, fmt.Errorf("ジョブが見つかりません: %s", id)
	}

	s.runOne(ctx, id)
	result, _ := s.Get(id)
	return result, nil
}

// Get はジョブ1件の最新結果を返します。
func (s *Scheduler) Get(id string) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[id]
	return result, ok
}

// Snapshot は全ジョブの最新結果のコピーを返します。
func (s *Scheduler) Snapshot() map[string]Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]Result, len(s.results))
	for id, result := range s.results {
		snapshot[id] = result
	}
	return snapshot
}

// runOne はジョブを実行し、終了状態を記録して通知します。
func (s *Scheduler) runOne(ctx context.Context, id string) {
	s.mu.Lock()
	job, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		return
	}

	image, err := job.Run(ctx)

	result := Result{ID: id, Status: StatusDone, Image: image}
	if err != nil {
		slog.WarnContext(ctx, "生成ジョブが失敗しました", "job_id", id, "error", err)
		result = Result{ID: id, Status: StatusError, Err: err.Error()}
	}

	s.mu.Lock()
	s.results[id] = result
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(result)
	}
}
