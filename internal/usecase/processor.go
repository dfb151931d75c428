package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cvkit/internal/model"
	"cvkit/internal/theme"
)

// Processor turns the parsed top-level mapping into a validated
// RenderRequest: CV aggregate construction, section inference, and design
// resolution. Validation is a synchronous, ordered sequence of checks; a
// processor is safe for concurrent use.
type Processor struct {
	resolver *theme.Resolver
	log      *zap.Logger
}

// NewProcessor wires a processor. A nil resolver defaults to one without
// registered providers rooted at the working directory; a nil logger is
// replaced with a no-op logger.
func NewProcessor(resolver *theme.Resolver, log *zap.Logger) *Processor {
	if resolver == nil {
		resolver = theme.NewResolver(nil, "", nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{resolver: resolver, log: log}
}

// Process validates a raw top-level mapping of the shape
// { cv: {...}, design: {...} } and returns the validated request. `design`
// is optional and defaults to the built-in classic theme. Errors are
// terminal: there is no partial model.
func (p *Processor) Process(raw map[string]any) (*model.RenderRequest, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID))

	for key := range raw {
		if key != "cv" && key != "design" {
			return nil, model.NewFieldError(model.ErrInvalidField, key, "",
				fmt.Sprintf("unknown top-level field %q, expected cv and design", key))
		}
	}

	cvRaw, ok := raw["cv"].(map[string]any)
	if !ok {
		return nil, model.NewFieldError(model.ErrInvalidField, "cv", "",
			"the cv field is required and should be a mapping")
	}

	cv, err := model.NewCurriculumVitae(cvRaw)
	if err != nil {
		log.Warn("cv validation failed", zap.Error(err))
		return nil, fmt.Errorf("cv: %w", err)
	}
	log.Info("cv validated",
		zap.Int("sections", len(cv.Sections())),
		zap.Int("social_networks", len(cv.SocialNetworks)))

	design, err := p.resolver.Resolve(raw["design"])
	if err != nil {
		log.Warn("design resolution failed", zap.Error(err))
		return nil, fmt.Errorf("design: %w", err)
	}
	log.Info("design resolved", zap.String("theme", design.ThemeName()))

	return &model.RenderRequest{CV: cv, Design: design}, nil
}
