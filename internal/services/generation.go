package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Lawrencium-103/Linky-V2/internal/facades"
	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// ErrValidation marks bad generation parameters. Reported inline,
// generation is not attempted.
var ErrValidation = errors.New("invalid generation parameters")

// Completer produces text from a prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, params facades.CompleteParams) (string, error)
}

// Enricher retrieves contextual facts for a topic, best-effort.
type Enricher interface {
	Enrich(ctx context.Context, topic, region, userCountry string) models.ContextBundle
}

// EnrichmentCacheRepo caches enrichment bundles between requests.
type EnrichmentCacheRepo interface {
	GetBundle(ctx context.Context, topic, region string) (*models.ContextBundle, error)
	SetBundle(ctx context.Context, topic, region string, bundle models.ContextBundle) error
}

// UserReader defines read operations for users.
type UserReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// PostWriter persists generated posts.
type PostWriter interface {
	Save(ctx context.Context, post models.PostDB) error
}

// PostCounter counts a user's generated posts.
type PostCounter interface {
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

// MetricsWriter increments per-user counters.
type MetricsWriter interface {
	Increment(ctx context.Context, userID uuid.UUID, metric string, delta int) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

type verifyResult struct {
	IsAccurate bool     `json:"is_accurate"`
	Issues     []string `json:"issues"`
	Suggestion string   `json:"suggestion"`
}

// GenerationService runs the fixed workflow that turns request parameters
// into a persisted post: validate, enrich, analyze, draft, verify, refine,
// persist. Enrichment, analysis, and verification are best-effort; only the
// draft pass can abort the run.
type GenerationService struct {
	llm         Completer
	enricher    Enricher
	cache       EnrichmentCacheRepo
	users       UserReader
	postWriter  PostWriter
	postCounter PostCounter
	metrics     MetricsWriter
	kafkaWriter KafkaWriter
	validate    *validator.Validate
	trialLimit  int
}

// NewGenerationService creates a new GenerationService. cache and
// kafkaWriter may be nil; those collaborators are then skipped.
func NewGenerationService(
	llm Completer,
	enricher Enricher,
	cache EnrichmentCacheRepo,
	users UserReader,
	postWriter PostWriter,
	postCounter PostCounter,
	metrics MetricsWriter,
	kafkaWriter KafkaWriter,
	trialLimit int,
) *GenerationService {
	return &GenerationService{
		llm:         llm,
		enricher:    enricher,
		cache:       cache,
		users:       users,
		postWriter:  postWriter,
		postCounter: postCounter,
		metrics:     metrics,
		kafkaWriter: kafkaWriter,
		validate:    validator.New(),
		trialLimit:  trialLimit,
	}
}

// normalizeRequest trims and defaults the request in place, then checks
// every parameter against its bounds and enumeration.
func (s *GenerationService) normalizeRequest(req *models.GenerationRequest) error {
	req.Topic = strings.TrimSpace(req.Topic)
	req.CustomContent = strings.TrimSpace(req.CustomContent)
	if req.TargetRegion == "" {
		req.TargetRegion = models.Regions[0]
	}
	if req.EngagementLevel == "" {
		req.EngagementLevel = "Medium"
	}
	if req.CreativityLevel == 0 {
		req.CreativityLevel = 0.7
	}

	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !slices.Contains(models.Tones, req.Tone) {
		return fmt.Errorf("%w: unknown tone %q", ErrValidation, req.Tone)
	}
	for _, ct := range req.ContentTypes {
		if !slices.Contains(models.ContentTypes, ct) {
			return fmt.Errorf("%w: unknown content type %q", ErrValidation, ct)
		}
	}
	for _, np := range req.NarrativePatterns {
		if !slices.Contains(models.NarrativePatterns, np) {
			return fmt.Errorf("%w: unknown narrative pattern %q", ErrValidation, np)
		}
	}
	if !slices.Contains(models.Regions, req.TargetRegion) {
		return fmt.Errorf("%w: unknown region %q", ErrValidation, req.TargetRegion)
	}
	return nil
}

// Generate runs the workflow for one request. The post row is written only
// after the final text exists; no partial state is persisted.
func (s *GenerationService) Generate(ctx context.Context, userID uuid.UUID, subscribed bool, req models.GenerationRequest) (*models.GenerationResult, error) {
	if err := s.normalizeRequest(&req); err != nil {
		return nil, err
	}

	if !subscribed {
		count, err := s.postCounter.CountByUserID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to count posts for trial check", "userID", userID, "err", err)
			return nil, err
		}
		if count >= s.trialLimit {
			return nil, ErrUsageLimit
		}
	}

	bundle := s.enrich(ctx, userID, req)
	newsAndStats := strings.Join(bundle.Facts, "\n")

	insights := s.analyze(ctx, newsAndStats, req)

	draft, err := s.draft(ctx, req, newsAndStats, insights)
	if err != nil {
		return nil, err
	}

	draft = s.verify(ctx, req, newsAndStats, draft)
	final := s.refine(ctx, req, draft)

	wordCount := len(strings.Fields(final))

	post := models.PostDB{
		PostID:    uuid.New(),
		UserID:    userID,
		Content:   final,
		WordCount: wordCount,
		CreatedAt: time.Now(),
	}
	if err := s.postWriter.Save(ctx, post); err != nil {
		logger.Log.Errorw("failed to save post", "userID", userID, "err", err)
		return nil, err
	}

	// The post is durable at this point; a failed counter bump is logged,
	// not surfaced.
	if err := s.metrics.Increment(ctx, userID, models.MetricPostsGenerated, 1); err != nil {
		logger.Log.Errorw("failed to increment posts_generated", "userID", userID, "err", err)
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		PostID:    post.PostID.String(),
		Kind:      "generation",
		WordCount: wordCount,
	})

	return &models.GenerationResult{
		Post:      post,
		Sources:   bundle.Sources,
		ShareURLs: ShareURLs(final),
	}, nil
}

// enrich fetches contextual facts, consulting the cache first when wired.
func (s *GenerationService) enrich(ctx context.Context, userID uuid.UUID, req models.GenerationRequest) models.ContextBundle {
	if s.cache != nil {
		if cached, err := s.cache.GetBundle(ctx, req.Topic, req.TargetRegion); err == nil && cached != nil {
			return *cached
		}
	}

	userCountry := "us"
	if user, err := s.users.Get(ctx, userID); err == nil && user != nil && user.Country != nil && *user.Country != "" {
		userCountry = *user.Country
	}

	bundle := s.enricher.Enrich(ctx, req.Topic, req.TargetRegion, userCountry)

	if s.cache != nil && len(bundle.Facts) > 0 {
		if err := s.cache.SetBundle(ctx, req.Topic, req.TargetRegion, bundle); err != nil {
			logger.Log.Warnw("failed to cache enrichment bundle", "topic", req.Topic, "err", err)
		}
	}
	return bundle
}

// analyze runs the optional analysis pass. Failure falls back to the bare topic.
func (s *GenerationService) analyze(ctx context.Context, newsAndStats string, req models.GenerationRequest) string {
	prompt := formatAnalysisPrompt(newsAndStats, req.CustomContent, req.Topic)
	analysis, err := s.llm.Complete(ctx, analysisSystemPrompt, prompt, facades.CompleteParams{
		MaxTokens:   1000,
		Temperature: 0.5,
		TopP:        0.9,
	})
	if err != nil {
		logger.Log.Warnw("analysis pass failed, proceeding with basic insights", "err", err)
		return "Topic: " + req.Topic
	}
	return analysis
}

// draft runs the main generation pass. This is the only step whose failure
// aborts the workflow.
func (s *GenerationService) draft(ctx context.Context, req models.GenerationRequest, newsAndStats, insights string) (string, error) {
	custom := req.CustomContent
	if insights != "" {
		if custom != "" {
			custom += "\n\n"
		}
		custom += "Key Insights:\n" + insights
	}

	prompt := formatGenerationPrompt(
		req.Topic, newsAndStats, custom, req.Tone,
		req.ContentTypes, req.TargetWordCount, req.EngagementLevel,
		req.NarrativePatterns, req.CreativityLevel,
		pickStructuralDNA(req.CreativityLevel),
	)

	text, err := s.llm.Complete(ctx, masterSystemPrompt, prompt, facades.CompleteParams{
		MaxTokens:        req.TargetWordCount * 2,
		Temperature:      req.CreativityLevel,
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	})
	if err != nil {
		logger.Log.Errorw("draft pass failed", "topic", req.Topic, "err", err)
		return "", err
	}

	return stripCodeFences(text), nil
}

// verify fact-checks the draft against its source context and rewrites it
// once when hallucinations are reported. Every failure path keeps the draft.
func (s *GenerationService) verify(ctx context.Context, req models.GenerationRequest, newsAndStats, draft string) string {
	originalContext := "Topic: " + req.Topic + "\n"
	if newsAndStats != "" {
		originalContext += "News/Stats: " + newsAndStats + "\n"
	}
	if req.CustomContent != "" {
		originalContext += "Custom Content: " + req.CustomContent
	}

	raw, err := s.llm.Complete(ctx, verifySystemPrompt, formatVerifyPrompt(originalContext, draft), facades.CompleteParams{
		MaxTokens:   500,
		Temperature: 0,
		TopP:        0.9,
	})
	if err != nil {
		logger.Log.Warnw("verification pass failed, keeping draft", "err", err)
		return draft
	}

	var result verifyResult
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &result); err != nil {
		logger.Log.Warnw("verification response unparseable, keeping draft", "err", err)
		return draft
	}
	if result.IsAccurate {
		return draft
	}

	logger.Log.Infow("fact check flagged draft, rewriting", "issues", result.Issues)

	corrected, err := s.llm.Complete(ctx, correctionSystemPrompt,
		formatCorrectionPrompt(originalContext, draft, result.Issues, result.Suggestion),
		facades.CompleteParams{
			MaxTokens:   req.TargetWordCount * 2,
			Temperature: 0.3,
			TopP:        0.9,
		})
	if err != nil {
		logger.Log.Warnw("correction pass failed, keeping draft", "err", err)
		return draft
	}
	return stripCodeFences(corrected)
}

// refine shortens drafts that overshoot the target by more than 20%.
// A failed shortening keeps the draft.
func (s *GenerationService) refine(ctx context.Context, req models.GenerationRequest, draft string) string {
	if len(strings.Fields(draft)) <= req.TargetWordCount*12/10 {
		return draft
	}

	system, user := formatShortenPrompts(req.TargetWordCount, draft)
	shortened, err := s.llm.Complete(ctx, system, user, facades.CompleteParams{
		MaxTokens:   req.TargetWordCount * 2,
		Temperature: 0.5,
		TopP:        0.9,
	})
	if err != nil {
		logger.Log.Warnw("refine pass failed, keeping draft", "err", err)
		return draft
	}
	return stripCodeFences(shortened)
}

// publishEvent publishes an analytics event to Kafka.
func publishEvent(ctx context.Context, writer KafkaWriter, evt models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "kind", evt.Kind)
	}
}

// stripCodeFences removes markdown code fences and surrounding whitespace.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
