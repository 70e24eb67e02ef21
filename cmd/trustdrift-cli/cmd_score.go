package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/cookedness"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/deepdive"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/differ"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/freemetrics"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/insights"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/markers"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/quality"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errNoPairs = errors.New("pairs file contains no pairs")

var scoreFlags struct {
	pairs   string
	markers string
	deep    bool
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a pairs file with the deterministic scorers",
	RunE:  runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.pairs, "pairs", "", "YAML file with question/old/new pairs (required)")
	f.StringVar(&scoreFlags.markers, "markers", "", "YAML file overriding the marker vocabulary")
	f.BoolVar(&scoreFlags.deep, "deep", false, "Include deep-dive metrics and chart data")

	_ = scoreCmd.MarkFlagRequired("pairs")
}

type pairsFile struct {
	Pairs       []evaluation.ResponsePair           `yaml:"pairs"`
	Adversarial map[string]deepdive.AdversarialPair `yaml:"adversarial"`
}

type pairQuality struct {
	Question string `json:"question"`
	Old      int    `json:"old"`
	New      int    `json:"new"`
}

type scoreReport struct {
	Deterministic evaluation.DeterministicResult `json:"deterministic"`
	Cookedness    cookedness.Result              `json:"cookedness"`
	FreeMetrics   evaluation.FreeMetrics         `json:"free_metrics"`
	Quality       []pairQuality                  `json:"quality"`
	BehaviorShift insights.BehaviorShift         `json:"behavior_shift"`
	Tradeoff      insights.Tradeoff              `json:"tradeoff"`
	Advice        []string                       `json:"advice"`
	DeepDive      *deepDiveReport                `json:"deep_dive,omitempty"`
}

type deepDiveReport struct {
	Metrics       deepdive.Metrics       `json:"metrics"`
	Visualization deepdive.Visualization `json:"visualization"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	in, err := readPairs(scoreFlags.pairs)
	if err != nil {
		return err
	}
	vocab, err := readVocabulary(scoreFlags.markers)
	if err != nil {
		return err
	}

	report := score(vocab, in, scoreFlags.deep)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func readPairs(path string) (pairsFile, error) {
	var in pairsFile
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read pairs: %w", err)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse pairs: %w", err)
	}
	if len(in.Pairs) == 0 {
		return in, errNoPairs
	}
	return in, nil
}

func readVocabulary(path string) (*markers.Vocabulary, error) {
	if path == "" {
		return markers.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markers: %w", err)
	}
	var override markers.Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse markers: %w", err)
	}
	return markers.Merge(override)
}

// score runs every stage that needs no model call. Without a judge the risk
// flags are empty, so cookedness rests on the deterministic score alone.
func score(vocab *markers.Vocabulary, in pairsFile, deep bool) scoreReport {
	var riskFlags evaluation.FlagSet
	det := differ.New(vocab).Analyze(in.Pairs)
	cook := cookedness.Compute(det.Score, riskFlags)

	scorer := quality.NewScorer(vocab)
	perPair := make([]pairQuality, 0, len(in.Pairs))
	for _, p := range in.Pairs {
		perPair = append(perPair, pairQuality{
			Question: p.Question,
			Old:      scorer.Score(p.Old, p.Question),
			New:      scorer.Score(p.New, p.Question),
		})
	}

	report := scoreReport{
		Deterministic: det,
		Cookedness:    cook,
		FreeMetrics:   freemetrics.New(vocab).Compute(in.Pairs),
		Quality:       perPair,
		BehaviorShift: insights.New(vocab).BehaviorShift(in.Pairs),
		Tradeoff:      insights.TradeoffOf(in.Pairs, cook.Score),
		Advice:        insights.Advice(det.Flags, riskFlags),
	}
	if deep {
		analyzer := deepdive.NewAnalyzer(vocab)
		m := analyzer.Analyze(in.Pairs, in.Adversarial)
		report.DeepDive = &deepDiveReport{
			Metrics:       m,
			Visualization: analyzer.BuildVisualization(in.Pairs, m, true),
		}
	}
	return report
}
