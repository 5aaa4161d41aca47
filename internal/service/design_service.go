package service

import (
	"context"
	"encoding/json"
	"fmt"

	"dreamhouse/internal/domain"
	"dreamhouse/internal/events"
	"dreamhouse/internal/export"
	"dreamhouse/internal/layout"
	"dreamhouse/internal/prompt"
	"dreamhouse/internal/repository"

	"go.uber.org/zap"
)

// DesignService 设计服务接口
type DesignService interface {
	// Generate 解析 prompt 并生成户型（不落库）
	Generate(text, name string) GenerateResult
	// Save 保存设计，返回新 id
	Save(ctx context.Context, req SaveRequest) (int64, error)
	// List 按 id 倒序返回全部设计（data 保持原始文本）
	List(ctx context.Context) ([]domain.SavedDesign, error)
	// Get 返回单个设计（data 已展开）
	Get(ctx context.Context, id int64) (*domain.DesignDetail, error)
	// ExportXLSX 导出设计为 Excel
	ExportXLSX(ctx context.Context, id int64) ([]byte, error)
}

// GenerateResult 生成结果
type GenerateResult struct {
	Layout domain.Layout     `json:"layout" yaml:"layout"`
	Parsed domain.Attributes `json:"parsed" yaml:"parsed"`
}

// SaveRequest 保存请求
// Layout is stored verbatim; nil or empty means {}.
type SaveRequest struct {
	Name   string
	Prompt string
	Layout json.RawMessage
}

type designService struct {
	repo      repository.DesignsRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewDesignService 创建设计服务
func NewDesignService(repo repository.DesignsRepository, publisher events.Publisher, logger *zap.Logger) DesignService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &designService{repo: repo, publisher: publisher, logger: logger}
}

func (s *designService) Generate(text, name string) GenerateResult {
	attrs := prompt.Interpret(text)
	return GenerateResult{
		Layout: layout.Synthesize(attrs, name),
		Parsed: attrs,
	}
}

func (s *designService) Save(ctx context.Context, req SaveRequest) (int64, error) {
	data := "{}"
	if len(req.Layout) > 0 {
		data = string(req.Layout)
	}

	id, err := s.repo.Save(ctx, req.Name, req.Prompt, data)
	if err != nil {
		return 0, err
	}
	s.logger.Info("design saved", zap.Int64("id", id), zap.String("name", req.Name))

	s.publishSaved(ctx, id)
	return id, nil
}

// publishSaved re-reads the row for its created_at; failures are only logged.
func (s *designService) publishSaved(ctx context.Context, id int64) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Warn("load saved design for event failed", zap.Int64("id", id), zap.Error(err))
		return
	}
	ev := events.DesignSavedEvent{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt}
	if err := s.publisher.PublishDesignSaved(ctx, ev); err != nil {
		s.logger.Warn("publish design saved event failed", zap.Int64("id", id), zap.Error(err))
	}
}

func (s *designService) List(ctx context.Context) ([]domain.SavedDesign, error) {
	return s.repo.List(ctx)
}

func (s *designService) Get(ctx context.Context, id int64) (*domain.DesignDetail, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.Expand()
}

func (s *designService) ExportXLSX(ctx context.Context, id int64) ([]byte, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	l, err := detail.Layout()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidLayout, err)
	}
	return export.DesignWorkbook(detail, l)
}
