package legal

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/athapong/contract-analyzer/pkg/analysis"
	"github.com/athapong/contract-analyzer/pkg/metrics"
	"github.com/athapong/contract-analyzer/pkg/retry"
)

// ChatClient is the part of the OpenAI client the analyzer needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config tunes the model call.
type Config struct {
	Model       string
	Temperature float32
	// Timeout bounds each attempt.
	Timeout time.Duration
	Retry   retry.Config
}

func DefaultConfig() Config {
	cfg := retry.DefaultConfig()
	cfg.MaxAttempts = 2
	return Config{
		Model:       "openai/gpt-4o-mini",
		Temperature: 0.3,
		Timeout:     60 * time.Second,
		Retry:       cfg,
	}
}

// Analyzer asks a language model for the legal verdict on a contract.
type Analyzer struct {
	client      ChatClient
	cfg         Config
	countTokens func(string) int
	logger      *logrus.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger replaces the default JSON logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTokenCounter replaces the tiktoken based prompt measurement.
func WithTokenCounter(count func(string) int) Option {
	return func(a *Analyzer) {
		if count != nil {
			a.countTokens = count
		}
	}
}

// NewAnalyzer creates an analyzer. A nil client is valid: every call then
// returns the fallback verdict.
func NewAnalyzer(client ChatClient, cfg Config, opts ...Option) *Analyzer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	a := &Analyzer{
		client:      client,
		cfg:         cfg,
		countTokens: CountTokens,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg.Retry.Logger == nil {
		a.cfg.Retry.Logger = a.logger
	}
	a.cfg.Retry.Retryable = retryable
	return a
}

// Available reports whether a model client is configured.
func (a *Analyzer) Available() bool {
	return a.client != nil
}

// Analyze returns the model's verdict for text. It never fails: without a
// client, or when every attempt fails, the fallback verdict is returned with
// Mock set and Error describing the last failure.
func (a *Analyzer) Analyze(ctx context.Context, text, contractType string, record *analysis.Record) *Verdict {
	if contractType == "" && record != nil {
		contractType = record.ContractType
	}

	if a.client == nil {
		metrics.LLMRequests.WithLabelValues("fallback").Inc()
		a.logger.Info("No model client configured, returning sample verdict")
		return FallbackVerdict(contractType, record, "")
	}

	prompt := BuildPrompt(text, contractType, record)
	tokens := a.countTokens(prompt.System) + a.countTokens(prompt.User)
	metrics.PromptTokens.Observe(float64(tokens))

	log := a.logger.WithFields(logrus.Fields{
		"model":         a.cfg.Model,
		"contract_type": contractType,
		"prompt_tokens": tokens,
	})
	log.Info("Requesting legal verdict")

	verdict, err := retry.DoWithResult(ctx, a.cfg.Retry, func(attempt int) (*Verdict, error) {
		if attempt > 1 {
			metrics.LLMRequests.WithLabelValues("retry").Inc()
		}
		return a.complete(ctx, prompt)
	})
	if err != nil {
		metrics.LLMRequests.WithLabelValues("fallback").Inc()
		log.WithError(err).Error("Legal verdict request failed, returning sample verdict")
		return FallbackVerdict(contractType, record, err.Error())
	}

	metrics.LLMRequests.WithLabelValues("success").Inc()
	log.WithField("composite_score", verdict.RiskAssessment.CompositeScore).Info("Legal verdict received")
	return verdict
}

func (a *Analyzer) complete(ctx context.Context, prompt Prompt) (*Verdict, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt.User,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Wrap(ErrInvalidResponse, "no choices returned")
	}

	return ParseVerdict(resp.Choices[0].Message.Content)
}

// retryable rejects failures that will not change on a second attempt:
// malformed replies, rejected credentials, bad requests and cancellation.
func retryable(err error) bool {
	if errors.Is(err, ErrInvalidResponse) || errors.Is(err, context.Canceled) {
		return false
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return false
	}
	return true
}
