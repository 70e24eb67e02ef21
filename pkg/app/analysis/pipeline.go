package analysis

import (
	"context"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/arbitration"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/cookedness"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/deepdive"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/differ"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/freemetrics"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/insights"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/judge"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/markers"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/narrator"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
)

// Input is what every pipeline stage may look at.
type Input struct {
	Credentials providers.Credentials
	Goal        string
	OldPrompt   string
	NewPrompt   string
	Pairs       []evaluation.ResponsePair
}

// Outcome holds the typed result of each stage.
type Outcome struct {
	Deterministic evaluation.DeterministicResult
	Judgment      evaluation.SemanticJudgment
	Decisions     []arbitration.Decision
	Cookedness    cookedness.Result
	BehaviorShift insights.BehaviorShift
	ErrorNovelty  insights.ErrorNovelty
	Tradeoff      insights.Tradeoff
	Advice        []string
}

// Pipeline wires the scoring stages together. The judge always runs before the narrator.
type Pipeline struct {
	differ   *differ.Differ
	judge    *judge.Adapter
	arbiter  *arbitration.Arbiter
	free     *freemetrics.Calculator
	narrator *narrator.Narrator
	insights *insights.Analyzer
	deep     *deepdive.Analyzer
}

func NewPipeline(vocab *markers.Vocabulary, j *judge.Adapter, n *narrator.Narrator, opts ...deepdive.Option) *Pipeline {
	if vocab == nil {
		vocab = markers.Default()
	}
	return &Pipeline{
		differ:   differ.New(vocab),
		judge:    j,
		arbiter:  arbitration.NewArbiter(j.HardRegressionFlags()),
		free:     freemetrics.New(vocab),
		narrator: n,
		insights: insights.New(vocab),
		deep:     deepdive.NewAnalyzer(vocab, opts...),
	}
}

// Semantic runs judge, arbitration, free metrics and narration against a
// precomputed deterministic result.
func (p *Pipeline) Semantic(ctx context.Context, in Input, det evaluation.DeterministicResult) (evaluation.SemanticJudgment, []arbitration.Decision) {
	j := p.judge.Judge(ctx, judge.Request{
		Credentials:   in.Credentials,
		Goal:          in.Goal,
		OldPrompt:     in.OldPrompt,
		NewPrompt:     in.NewPrompt,
		Pairs:         in.Pairs,
		Deterministic: det,
	})
	j, decisions := p.arbiter.Arbitrate(j, det.Flags)
	j.FreeMetrics = p.free.Compute(in.Pairs)
	p.narrator.Narrate(ctx, in.Credentials, j).Apply(&j)
	return j, decisions
}

func (p *Pipeline) Evaluate(ctx context.Context, in Input) Outcome {
	det := p.differ.Analyze(in.Pairs)
	j, decisions := p.Semantic(ctx, in, det)
	cook := cookedness.Compute(det.Score, j.RiskFlags)
	return Outcome{
		Deterministic: det,
		Judgment:      j,
		Decisions:     decisions,
		Cookedness:    cook,
		BehaviorShift: p.insights.BehaviorShift(in.Pairs),
		ErrorNovelty:  insights.Novelty(det.Flags, j.RiskFlags),
		Tradeoff:      insights.TradeoffOf(in.Pairs, cook.Score),
		Advice:        insights.Advice(det.Flags, j.RiskFlags),
	}
}

// DeepDive adds the premium metrics and chart data. No adversarial probes are sent.
func (p *Pipeline) DeepDive(pairs []evaluation.ResponsePair) (deepdive.Metrics, deepdive.Visualization) {
	m := p.deep.Analyze(pairs, nil)
	return m, p.deep.BuildVisualization(pairs, m, true)
}
