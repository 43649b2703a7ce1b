// Package phenopacket holds the pure transformations over SAMS phenopacket
// records: rendering phenotype/disease term strings and filtering records by
// onset timestamp. The functions work on any record matching the DTO shape,
// regardless of whether it came from the client or a fixture.
package phenopacket

import (
	"fmt"
	"strings"

	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/sams_dto"

	"go.uber.org/zap"
)

// TermExtractor renders term strings from phenopacket records. The logger is
// injected so diagnostics stay scoped per instance instead of going through
// process-wide state.
type TermExtractor struct {
	Log *zap.Logger
}

func NewTermExtractor(logger *zap.Logger) *TermExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermExtractor{Log: logger}
}

// ExtractPhenotypeTerms formats the record's phenotypic features as
// "HP:0000001 - Phenotype 1; HP:0000002 - Phenotype 2" in original order.
// With ignoreExcluded, excluded features are skipped; otherwise they carry
// an " (excluded)" suffix. An absent feature list yields "" after a warning
// diagnostic; it is valid data, not an error. The record is never modified.
func (e *TermExtractor) ExtractPhenotypeTerms(packet *sams_dto.Phenopacket, ignoreExcluded bool) string {
	if packet.PhenotypicFeatures == nil {
		e.Log.Warn("SAMS: no phenotypicFeatures found",
			zap.String(constvars.LoggingSubjectIDKey, packet.Subject.ID),
		)
		return ""
	}

	terms := make([]string, 0, len(packet.PhenotypicFeatures))
	for _, feature := range packet.PhenotypicFeatures {
		term := fmt.Sprintf("%s - %s", feature.Type.ID, feature.Type.Label)
		if feature.IsExcluded() {
			if ignoreExcluded {
				continue
			}
			term += " (excluded)"
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, "; ")
}

// ExtractDiseaseTerms is the disease-list counterpart of
// ExtractPhenotypeTerms, reading term instead of type on each entry.
func (e *TermExtractor) ExtractDiseaseTerms(packet *sams_dto.Phenopacket, ignoreExcluded bool) string {
	if packet.Diseases == nil {
		e.Log.Warn("SAMS: no diseases found",
			zap.String(constvars.LoggingSubjectIDKey, packet.Subject.ID),
		)
		return ""
	}

	terms := make([]string, 0, len(packet.Diseases))
	for _, disease := range packet.Diseases {
		term := fmt.Sprintf("%s - %s", disease.Term.ID, disease.Term.Label)
		if disease.IsExcluded() {
			if ignoreExcluded {
				continue
			}
			term += " (excluded)"
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, "; ")
}
