package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"sneakerblog/config"
	"sneakerblog/images"
	"sneakerblog/rssfeeds"
	"sneakerblog/types"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Trigger names what started a run
type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
	TriggerPreview   Trigger = "preview"
	TriggerDirect    Trigger = "direct"
)

// ItemSelector picks candidate items from feed sources
type ItemSelector interface {
	SelectFirst(ctx context.Context, sources []rssfeeds.Source) rssfeeds.Selection
	SelectPreview(ctx context.Context, sources []rssfeeds.Source) rssfeeds.Selection
}

// ImageResolver produces a cover image for an item
type ImageResolver interface {
	Resolve(ctx context.Context, item types.FeedItem) images.Resolution
}

// TextGenerator rewrites an item into post text
type TextGenerator interface {
	Generate(ctx context.Context, item types.FeedItem) (string, error)
}

// ArticlePublisher creates the storefront article
type ArticlePublisher interface {
	Publish(ctx context.Context, req types.PublishRequest) (*types.PublishedArticle, error)
}

// Recorder observes run progress. It is never read back by the pipeline.
type Recorder interface {
	RunStarted(runID string, trigger Trigger)
	StageEntered(runID string, stage Stage)
	RunFinished(result *RunResult)
}

// RunResult describes a finished run
type RunResult struct {
	RunID       string                  `json:"run_id"`
	Trigger     Trigger                 `json:"trigger"`
	Stages      []Stage                 `json:"stages"`
	Sources     []rssfeeds.SourceResult `json:"sources,omitempty"`
	Item        *types.FeedItem         `json:"item,omitempty"`
	Post        *types.GeneratedPost    `json:"post,omitempty"`
	ImageSource images.Source           `json:"image_source,omitempty"`
	Article     *types.PublishedArticle `json:"article,omitempty"`
	Error       string                  `json:"error,omitempty"`
	StartedAt   time.Time               `json:"started_at"`
	FinishedAt  time.Time               `json:"finished_at"`
}

// Published reports whether the run created an article
func (r *RunResult) Published() bool { return r.Article != nil }

// Final returns the last stage visited before done
func (r *RunResult) Final() Stage {
	for i := len(r.Stages) - 1; i >= 0; i-- {
		if r.Stages[i] != StageDone {
			return r.Stages[i]
		}
	}
	return StageSelect
}

// Runner wires the pipeline components together
type Runner struct {
	selector  ItemSelector
	resolver  ImageResolver
	generator TextGenerator
	publisher ArticlePublisher
	sources   []rssfeeds.Source
	recorder  Recorder
}

// Deps groups the components a Runner needs
type Deps struct {
	Selector  ItemSelector
	Resolver  ImageResolver
	Generator TextGenerator
	Publisher ArticlePublisher
	Sources   []rssfeeds.Source
	// Recorder is optional
	Recorder Recorder
}

// NewRunner creates a Runner
func NewRunner(d Deps) *Runner {
	return &Runner{
		selector:  d.Selector,
		resolver:  d.Resolver,
		generator: d.Generator,
		publisher: d.Publisher,
		sources:   d.Sources,
		recorder:  d.Recorder,
	}
}

// Sources returns the configured feed sources in scan order
func (r *Runner) Sources() []rssfeeds.Source {
	return append([]rssfeeds.Source(nil), r.sources...)
}

// Run executes the automatic flow: select the first matching item, generate, resolve
// an image and publish. A run with no matching item publishes nothing and returns no error.
func (r *Runner) Run(ctx context.Context, trigger Trigger) (*RunResult, error) {
	res := r.start(trigger)
	log.Printf("Starting %s run %s over %d sources", trigger, res.RunID, len(r.sources))

	var runErr error
	stage := StageSelect
	for stage != StageDone {
		r.enter(res, stage)

		var outcome Outcome
		if err := ctx.Err(); err != nil {
			runErr = err
			outcome = OutcomeFailed
		} else {
			outcome, runErr = r.step(ctx, stage, res)
		}
		stage = Next(stage, outcome)
	}
	r.enter(res, StageDone)

	r.finish(res, runErr)
	switch {
	case runErr != nil:
		log.Printf("❌ Run %s failed at %s: %v", res.RunID, res.Final(), runErr)
	case res.Published():
		log.Printf("✅ Run %s published article %d", res.RunID, res.Article.ID)
	default:
		log.Printf("Run %s found no matching items", res.RunID)
	}
	return res, runErr
}

// step executes a single stage and reports its outcome
func (r *Runner) step(ctx context.Context, stage Stage, res *RunResult) (Outcome, error) {
	switch stage {
	case StageSelect:
		sel := r.selector.SelectFirst(ctx, r.sources)
		res.Sources = sel.Sources
		if !sel.Found() {
			return OutcomeEmpty, nil
		}
		item := sel.Items[0]
		res.Item = &item
		return OutcomeOK, nil

	case StageGenerate:
		content, err := r.generator.Generate(ctx, *res.Item)
		if err != nil {
			return OutcomeFailed, fmt.Errorf("generation failed: %w", err)
		}
		res.Post = &types.GeneratedPost{Title: res.Item.Title, Content: content, Link: res.Item.Link}
		return OutcomeOK, nil

	case StageResolveImage:
		img := r.resolver.Resolve(ctx, *res.Item)
		res.Post.Image = img.URL
		res.ImageSource = img.Source
		return OutcomeOK, nil

	case StagePublish:
		article, err := r.publisher.Publish(ctx, res.Post.Request())
		if err != nil {
			return OutcomeFailed, fmt.Errorf("publish failed: %w", err)
		}
		res.Article = article
		return OutcomeOK, nil

	case StageNoMatch:
		return OutcomeOK, nil
	}
	return OutcomeFailed, fmt.Errorf("unknown stage %q", stage)
}

// Preview generates up to the preview limit of posts from the first source without
// publishing. Text and image are produced concurrently per item; any failure fails the
// whole preview.
func (r *Runner) Preview(ctx context.Context) ([]types.GeneratedPost, error) {
	sel := r.selector.SelectPreview(ctx, r.sources)
	if !sel.Found() {
		return []types.GeneratedPost{}, nil
	}

	posts := make([]types.GeneratedPost, len(sel.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range sel.Items {
		posts[i].Title = item.Title
		posts[i].Link = item.Link

		g.Go(func() error {
			content, err := r.generator.Generate(gctx, item)
			if err != nil {
				return fmt.Errorf("generation failed for %q: %w", item.Title, err)
			}
			posts[i].Content = content
			return nil
		})
		g.Go(func() error {
			posts[i].Image = r.resolver.Resolve(gctx, item).URL
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("❌ Preview failed: %v", err)
		return nil, err
	}
	log.Printf("✅ Preview generated %d posts", len(posts))
	return posts, nil
}

// PublishDirect publishes a caller-supplied post, skipping selection and generation.
// An empty image is replaced by the placeholder.
func (r *Runner) PublishDirect(ctx context.Context, req types.PublishRequest) (*types.PublishedArticle, error) {
	if strings.TrimSpace(req.Image) == "" {
		req.Image = config.PlaceholderImage
	}

	res := r.start(TriggerDirect)
	res.Post = &types.GeneratedPost{Title: req.Title, Content: req.Content, Image: req.Image}
	r.enter(res, StagePublish)

	article, err := r.publisher.Publish(ctx, req)
	if err != nil {
		err = fmt.Errorf("publish failed: %w", err)
	}
	res.Article = article
	r.enter(res, StageDone)
	r.finish(res, err)
	return article, err
}

func (r *Runner) start(trigger Trigger) *RunResult {
	res := &RunResult{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		StartedAt: time.Now(),
	}
	if r.recorder != nil {
		r.recorder.RunStarted(res.RunID, trigger)
	}
	return res
}

func (r *Runner) enter(res *RunResult, stage Stage) {
	res.Stages = append(res.Stages, stage)
	if r.recorder != nil {
		r.recorder.StageEntered(res.RunID, stage)
	}
}

func (r *Runner) finish(res *RunResult, err error) {
	res.FinishedAt = time.Now()
	if err != nil {
		res.Error = err.Error()
	}
	if r.recorder != nil {
		r.recorder.RunFinished(res)
	}
}
