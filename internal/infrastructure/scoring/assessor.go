// Package scoring implements the placeholder fraud assessment. The score
// is deliberately uncorrelated with document content; a real scoring
// model would replace this package wholesale.
package scoring

import (
	"fmt"
	"strings"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
	"github.com/mdashkov/doc-fraud-assistant/internal/core/ports"
)

// riskFactors is identical for every document.
var riskFactors = []string{
	"Document metadata consistency verified",
	"Content structure analysis completed",
	"Digital signature validation performed",
	"Text pattern recognition applied",
}

type Assessor struct {
	rng ports.Rand
}

func NewAssessor(rng ports.Rand) *Assessor {
	return &Assessor{rng: rng}
}

// Assess returns a uniform score in [0,100), a templated narrative and
// the fixed verification statements.
func (a *Assessor) Assess(content domain.ContentRecord) domain.RiskAssessment {
	factors := make([]string, len(riskFactors))
	copy(factors, riskFactors)

	return domain.RiskAssessment{
		RiskScore: a.rng.Float64() * 100,
		Summary: fmt.Sprintf(
			"This %s has been analyzed for potential fraud indicators. The document contains %d key sections with structured information including %s.",
			content.DocumentType,
			len(content.TextContent),
			strings.Join(content.FieldKeys(3), ", "),
		),
		RiskFactors: factors,
	}
}
