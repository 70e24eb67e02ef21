package version

import (
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/lib/pq"
)

// rootCauseLimit caps how many deterministic flags are kept as secondary root causes.
const rootCauseLimit = 3

// Version is an immutable snapshot of one analysis run. Repositories never update it.
type Version struct {
	ID                 string         `json:"version_id" gorm:"column:id;primaryKey"`
	CaseID             string         `json:"case_id"`
	UserID             string         `json:"user_id"`
	VersionNumber      int            `json:"version_number"`
	RequestPayload     domain.JSONMap `json:"request_payload" gorm:"type:jsonb"`
	AnalysisResponse   domain.JSONMap `json:"analysis_response" gorm:"type:jsonb"`
	CookednessScore    int            `json:"cookedness_score"`
	Verdict            string         `json:"verdict"`
	DeterministicScore int            `json:"deterministic_score"`
	TestCaseCount      int            `json:"test_case_count"`
	RootCauses         pq.StringArray `json:"root_causes" gorm:"type:text[]"`
	IsDeepDive         bool           `json:"is_deep_dive"`
	CreatedAt          time.Time      `json:"created_at"`
}

func (Version) TableName() string {
	return "versions"
}

// Metadata is the list projection of a version.
type Metadata struct {
	ID              string    `json:"version_id"`
	CaseID          string    `json:"case_id"`
	VersionNumber   int       `json:"version_number"`
	CookednessScore int       `json:"cookedness_score"`
	Verdict         string    `json:"verdict"`
	IsDeepDive      bool      `json:"is_deep_dive"`
	CreatedAt       time.Time `json:"created_at"`
}

// Meta projects the version, falling back to premium payload keys for the deep dive flag
// so rows written before the column existed still report correctly.
func (v *Version) Meta() Metadata {
	deep := v.IsDeepDive
	if !deep && v.AnalysisResponse != nil {
		if b, ok := v.AnalysisResponse["is_deep_dive"].(bool); ok && b {
			deep = true
		}
		if _, ok := v.AnalysisResponse["deep_dive_metrics"]; ok {
			deep = true
		}
		if _, ok := v.AnalysisResponse["visualization_data"]; ok {
			deep = true
		}
	}
	return Metadata{
		ID:              v.ID,
		CaseID:          v.CaseID,
		VersionNumber:   v.VersionNumber,
		CookednessScore: v.CookednessScore,
		Verdict:         v.Verdict,
		IsDeepDive:      deep,
		CreatedAt:       v.CreatedAt,
	}
}

// RootCauses lists the primary cookedness cause followed by up to three deterministic flags, without repeats.
func RootCauses(primary string, flags []string) []string {
	out := make([]string, 0, 1+rootCauseLimit)
	if primary != "" {
		out = append(out, primary)
	}
	for _, f := range flags[:min(len(flags), rootCauseLimit)] {
		dup := false
		for _, existing := range out {
			if existing == f {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}
