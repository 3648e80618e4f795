// Package config は環境変数からの設定読み込みを提供します。
// API キーの欠落は起動時に確定させます。
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// EnvAPIKey は Gemini API キーを渡す環境変数名です。
	EnvAPIKey = "GEMINI_API_KEY"
	// EnvModel は画像生成モデル名を上書きする環境変数名です。
	EnvModel = "GEMINI_IMAGE_MODEL"

	// DefaultModel は画像生成に使う既定のモデルです。
	DefaultModel = "gemini-2.5-flash-image"
	// DefaultCacheTTL はアップロード済みファイルのキャッシュ保持期間です。
	DefaultCacheTTL = 45 * time.Minute
)

// Config は実行時設定の集合です。
type Config struct {
	APIKey   string
	Model    string
	CacheTTL time.Duration
}

// FromEnv は環境変数から Config を組み立てます。
// API キーが未設定の場合はエラーを返します。
func FromEnv() (*Config, error) {
	apiKey := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if apiKey == "" {
		return nil, fmt.Errorf("環境変数 %s が設定されていません", EnvAPIKey)
	}

	model := strings.TrimSpace(os.Getenv(EnvModel))
	if model == "" {
		model = DefaultModel
	}

	return &Config{
		APIKey:   apiKey,
		Model:    model,
		CacheTTL: DefaultCacheTTL,
	}, nil
}
