// Package analysis runs a regression comparison end to end: key selection,
// case resolution, response collection, scoring and version persistence.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/events"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/questions"
	"github.com/sirupsen/logrus"
)

const (
	DefaultProvider         = "groq"
	DefaultDeepDiveMinCases = 10

	descriptionGoalLimit = 120
	runIDLength          = 8
	entityIDLength       = 12
)

// ErrPlatformKeyUnset means a run needed the platform key and none is configured.
var ErrPlatformKeyUnset = errors.New("platform API key is not configured")

type Config struct {
	PlatformAPIKey   string
	BaseURL          string
	Provider         string
	Azure            *providers.AzureCredentials
	AwsBedrock       *providers.AwsBedrockCredentials
	DefaultCases     int
	DeepDiveMinCases int
}

func (c Config) credentials(apiKey string) providers.Credentials {
	return providers.Credentials{
		ApiKey:     apiKey,
		BaseURL:    c.BaseURL,
		Azure:      c.Azure,
		AwsBedrock: c.AwsBedrock,
	}
}

//go:generate mockery --name=Runner --dir=. --output=./mocks --filename=runner_mock.go --case=underscore --with-expecter
type Runner interface {
	Analyze(ctx context.Context, req *request.AnalyzeRequest) (*Report, error)
	// DeepDive consumes one pro deep dive and adds premium metrics to the report.
	DeepDive(ctx context.Context, req *request.AnalyzeRequest) (*Report, error)
}

type RunnerDeps struct {
	Logger    *logrus.Logger
	Users     user.Repository
	Cases     evalcase.Repository
	Versions  version.Repository
	Questions questions.Source
	Collector Collector
	Pipeline  *Pipeline
	Metrics   metrics.Worker
	Config    Config
	Now       func() time.Time
}

type runner struct {
	logger    *logrus.Logger
	users     user.Repository
	cases     evalcase.Repository
	versions  version.Repository
	questions questions.Source
	collector Collector
	pipeline  *Pipeline
	metrics   metrics.Worker
	cfg       Config
	now       func() time.Time
}

func NewRunner(deps RunnerDeps) Runner {
	cfg := deps.Config
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	if cfg.DefaultCases <= 0 {
		cfg.DefaultCases = questions.DefaultCount
	}
	if cfg.DeepDiveMinCases <= 0 {
		cfg.DeepDiveMinCases = DefaultDeepDiveMinCases
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &runner{
		logger:    deps.Logger,
		users:     deps.Users,
		cases:     deps.Cases,
		versions:  deps.Versions,
		questions: deps.Questions,
		collector: deps.Collector,
		pipeline:  deps.Pipeline,
		metrics:   deps.Metrics,
		cfg:       cfg,
		now:       now,
	}
}

// run is the resolved, validated form of an AnalyzeRequest.
type run struct {
	id        string
	req       *request.AnalyzeRequest
	user      *user.User
	apiKey    string
	apiSource string
	targets   Targets
	deepDive  bool
	pairs     []evaluation.ResponsePair
}

func (r *runner) Analyze(ctx context.Context, req *request.AnalyzeRequest) (*Report, error) {
	start := r.now()
	rn, err := r.prepare(ctx, req, "run")
	if err != nil {
		return nil, err
	}
	rn.apiKey, rn.apiSource, err = selectKey(rn.user, r.cfg.PlatformAPIKey)
	if err != nil {
		return nil, err
	}

	c, err := r.resolveCase(ctx, req, evalcase.DefaultName, "Goal: ")
	if err != nil {
		return nil, err
	}
	n := req.NCases
	if n <= 0 {
		n = r.cfg.DefaultCases
	}
	report, out, err := r.execute(ctx, rn, c, n)
	if err != nil {
		return nil, err
	}
	if err := r.persist(ctx, rn, c, report, out); err != nil {
		return nil, err
	}
	r.emit(rn, report, out, r.now().Sub(start))
	return report, nil
}

func (r *runner) DeepDive(ctx context.Context, req *request.AnalyzeRequest) (*Report, error) {
	start := r.now()
	rn, err := r.prepare(ctx, req, "deep")
	if err != nil {
		return nil, err
	}
	rn.deepDive = true
	if !rn.user.IsPremium() {
		return nil, domain.ErrDeepDiveRequired
	}
	if rn.user.DeepDivesRemaining <= 0 {
		return nil, domain.ErrNoDeepDivesLeft
	}
	if r.cfg.PlatformAPIKey == "" {
		return nil, ErrPlatformKeyUnset
	}
	rn.apiKey, rn.apiSource = r.cfg.PlatformAPIKey, APISourcePlatform

	c, err := r.resolveCase(ctx, req, evalcase.DeepDiveName, "Deep Dive: ")
	if err != nil {
		return nil, err
	}
	remaining, err := r.users.DecrementDeepDive(ctx, rn.user.ID)
	if err != nil {
		return nil, err
	}

	report, out, err := r.execute(ctx, rn, c, max(req.NCases, r.cfg.DeepDiveMinCases))
	if err != nil {
		return nil, err
	}
	m, viz := r.pipeline.DeepDive(rn.pairs)
	report.IsDeepDive = true
	report.DeepDiveMetrics = &m
	report.VisualizationData = &viz

	if err := r.persist(ctx, rn, c, report, out); err != nil {
		return nil, err
	}
	report.DeepDivesRemaining = &remaining
	r.emit(rn, report, out, r.now().Sub(start))
	return report, nil
}

func (r *runner) prepare(ctx context.Context, req *request.AnalyzeRequest, prefix string) (*run, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	vars, err := req.Variables()
	if err != nil {
		return nil, err
	}
	tpl, err := req.Template()
	if err != nil {
		return nil, err
	}
	u, err := r.users.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return &run{
		id:   domain.NewID(prefix, runIDLength),
		req:  req,
		user: u,
		targets: Targets{
			OldURL:       req.OldAPI,
			NewURL:       req.NewAPI,
			Headers:      req.Headers,
			BodyTemplate: tpl,
			Variables:    vars,
			ResponsePath: req.ResponsePath,
		},
	}, nil
}

// selectKey bills pro accounts to the platform key and everyone else to their own key.
func selectKey(u *user.User, platformKey string) (string, string, error) {
	if u.IsPremium() {
		if platformKey == "" {
			return "", "", ErrPlatformKeyUnset
		}
		return platformKey, APISourcePlatform, nil
	}
	if !u.HasAPIKey() {
		return "", "", domain.ErrMissingAPIKey
	}
	return u.APIKey, APISourceUser, nil
}

func (r *runner) resolveCase(ctx context.Context, req *request.AnalyzeRequest, defaultName, descPrefix string) (*evalcase.Case, error) {
	if req.CaseID != "" {
		c, err := r.cases.GetForUser(ctx, req.CaseID, req.UserID)
		if err != nil {
			return nil, err
		}
		// members may read a shared case but only the owner appends versions
		if !c.IsOwner(req.UserID) {
			return nil, domain.NewAccessDeniedError("case", req.CaseID)
		}
		return c, nil
	}
	name := req.CaseName
	if name == "" {
		name = defaultName
	}
	now := r.now().UTC()
	c := &evalcase.Case{
		ID:          domain.NewID("case", entityIDLength),
		UserID:      req.UserID,
		Name:        name,
		Description: descPrefix + evaluation.Head(req.Goal, descriptionGoalLimit),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.cases.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}
	r.logger.WithFields(logrus.Fields{"case_id": c.ID, "user_id": c.UserID}).Info("case created for run")
	return c, nil
}

func (r *runner) execute(ctx context.Context, rn *run, c *evalcase.Case, n int) (*Report, Outcome, error) {
	qs := rn.req.Questions()
	if len(qs) == 0 {
		qs = r.questions.Generate(ctx, rn.apiKey, rn.req.Goal, n)
	}

	r.logger.WithFields(logrus.Fields{
		"run_id":    rn.id,
		"case_id":   c.ID,
		"questions": len(qs),
		"deep_dive": rn.deepDive,
	}).Info("collecting responses")

	pairs, err := r.collector.Collect(ctx, rn.targets, qs)
	if err != nil {
		return nil, Outcome{}, err
	}
	rn.pairs = pairs

	out := r.pipeline.Evaluate(ctx, Input{
		Credentials: r.cfg.credentials(rn.apiKey),
		Goal:        rn.req.Goal,
		OldPrompt:   rn.req.OldPrompt,
		NewPrompt:   rn.req.NewPrompt,
		Pairs:       pairs,
	})

	report := buildReport(rn.id, rn.req, qs, pairs, out, r.now())
	report.CaseID = c.ID
	report.CaseName = c.Name
	report.Provider = r.cfg.Provider
	report.APISource = rn.apiSource
	return report, out, nil
}

// persist stores the snapshot and writes the assigned version back into the report.
func (r *runner) persist(ctx context.Context, rn *run, c *evalcase.Case, report *Report, out Outcome) error {
	payload, err := domain.ToJSONMap(rn.req)
	if err != nil {
		return fmt.Errorf("encode request payload: %w", err)
	}
	snapshot, err := domain.ToJSONMap(report)
	if err != nil {
		return fmt.Errorf("encode analysis response: %w", err)
	}
	v := &version.Version{
		ID:                 domain.NewID("ver", entityIDLength),
		CaseID:             c.ID,
		UserID:             rn.user.ID,
		RequestPayload:     payload,
		AnalysisResponse:   snapshot,
		CookednessScore:    out.Cookedness.Score,
		Verdict:            string(report.Verdict.Final),
		DeterministicScore: out.Deterministic.Score,
		TestCaseCount:      len(report.TestCases),
		RootCauses:         version.RootCauses(string(out.Cookedness.PrimaryRootCause), out.Deterministic.Flags.Strings()),
		IsDeepDive:         rn.deepDive,
		CreatedAt:          report.CreatedAt,
	}
	if err := r.versions.Create(ctx, v); err != nil {
		return fmt.Errorf("create version: %w", err)
	}
	report.VersionID = v.ID
	report.VersionNumber = v.VersionNumber
	return nil
}

func (r *runner) emit(rn *run, report *Report, out Outcome, elapsed time.Duration) {
	r.logger.WithFields(logrus.Fields{
		"run_id":         rn.id,
		"version_id":     report.VersionID,
		"version_number": report.VersionNumber,
		"verdict":        report.Verdict.Final,
		"cookedness":     out.Cookedness.Score,
	}).Info("analysis complete")

	if r.metrics == nil {
		return
	}
	r.metrics.Process(&events.Event{
		Type:               events.TypeAnalysisCompleted,
		RunID:              rn.id,
		UserID:             rn.user.ID,
		CaseID:             report.CaseID,
		VersionID:          report.VersionID,
		VersionNumber:      report.VersionNumber,
		Verdict:            string(report.Verdict.Final),
		ShipDecision:       string(report.Verdict.ShipRecommendation),
		DeterministicScore: out.Deterministic.Score,
		Cookedness:         out.Cookedness.Score,
		Flags:              out.Deterministic.Flags.Union(out.Judgment.RiskFlags).Strings(),
		IsDeepDive:         rn.deepDive,
		Provider:           report.Provider,
		CreatedAt:          report.CreatedAt,
	}, elapsed)
}
