package advisor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
	"github.com/sparsha/skincare-ai/internal/infra/llm/chatgpt"
	"github.com/sparsha/skincare-ai/pkg/errors"
	"github.com/sparsha/skincare-ai/pkg/metrics"
)

// Service analyzes one uploaded photo plus user context and produces the
// combined result for the presentation layer.
type Service interface {
	Analyze(ctx context.Context, req AnalysisRequest) (Result, error)
	AIConfigured() bool
}

// ChatClient is the narrow slice of the OpenAI client the assembler needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

type service struct {
	cfg     Config
	chat    ChatClient
	skin    skintype.Service
	weather weather.Service
	logger  *slog.Logger
}

// NewService wires up the advisor domain. A nil chat client means no API key
// is configured; every recommendation then uses the fallback template.
func NewService(cfg Config, chat ChatClient, skin skintype.Service, weatherSvc weather.Service, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		chat:    chat,
		skin:    skin,
		weather: weatherSvc,
		logger:  logger.With("component", "advisor.service"),
	}
}

// Analyze validates the request, then runs the pipeline: classify skin type,
// look up weather, build the weighted context, assemble the recommendation.
// Validation happens before any collaborator is touched.
func (s *service) Analyze(ctx context.Context, req AnalysisRequest) (Result, error) {
	if len(req.Image) == 0 {
		return Result{}, errors.Wrap("invalid_input", "image file is required", nil)
	}
	if strings.TrimSpace(req.Occupation) == "" {
		return Result{}, errors.Wrap("invalid_input", "occupation is required", nil)
	}
	if strings.TrimSpace(req.Location) == "" {
		return Result{}, errors.Wrap("invalid_input", "location is required", nil)
	}

	skin := s.skin.Detect(ctx, req.Image)
	snapshot := s.weather.Lookup(ctx, req.Location)
	wctx := BuildWeightedContext(skin, snapshot, req.Occupation, req.Age)

	return Result{
		SkinType:       skin,
		Weather:        snapshot,
		Recommendation: s.assemble(ctx, wctx),
	}, nil
}

func (s *service) AIConfigured() bool {
	return s.chat != nil
}

// assemble turns the weighted context into a recommendation. Any problem with
// the generation capability degrades to the fallback template; it is never
// surfaced to the caller.
func (s *service) assemble(ctx context.Context, wctx WeightedContext) Recommendation {
	if s.chat == nil {
		s.logger.Info("ai not configured, using fallback recommendations", "skin_type", wctx.SkinType)
		return fallbackRecommendation(wctx)
	}

	text, ok := s.generate(ctx, s.buildMessages(wctx))
	if !ok {
		return fallbackRecommendation(wctx)
	}

	if isGenericResponse(text) {
		s.logger.Info("generic response detected, retrying with explicit prompt")
		if retried, retriedOK := s.generate(ctx, s.buildRetryMessages(wctx)); retriedOK {
			text = retried
		}
	}

	return Recommendation{
		SkinType:        wctx.SkinType.String(),
		Personalized:    true,
		Recommendations: text,
	}
}

func (s *service) generate(ctx context.Context, messages []chatgpt.Message) (string, bool) {
	resp, err := s.chat.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("chat completion failed, falling back", "error", err)
		return "", false
	}
	if len(resp.Choices) == 0 {
		s.logger.Warn("chat completion returned no choices, falling back")
		return "", false
	}

	usage := metrics.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	if !usage.IsZero() {
		s.logger.Info("chat completion usage", "prompt_tokens", usage.PromptTokens, "completion_tokens", usage.CompletionTokens, "total_tokens", usage.TotalTokens)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		s.logger.Warn("chat completion returned empty content, falling back")
		return "", false
	}
	return text, true
}
