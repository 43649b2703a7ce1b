package phenopacket

import (
	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/exceptions"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/sams_dto"
)

// FilterByOnset returns a new record whose feature and disease lists contain
// only entries with the resolved onset timestamp; the input record is left
// untouched. The selector is a literal timestamp or one of the sentinels
// constvars.OnsetSelectorEarliest / constvars.OnsetSelectorLatest.
func FilterByOnset(packet *sams_dto.Phenopacket, onsetSelector string) (*sams_dto.Phenopacket, error) {
	copied := *packet
	return FilterByOnsetInPlace(&copied, onsetSelector)
}

// FilterByOnsetInPlace rewrites the record's feature and disease lists in
// place and returns the same record. Callers holding other references to the
// record see the rewrite; FilterByOnset is the safe default.
//
// Both lists are filtered against the same resolved timestamp, and sentinel
// selectors resolve against the feature list only. Diseases therefore never
// contribute a candidate timestamp even though they are filtered by it; the
// remote service has always behaved this way and the asymmetry is kept for
// compatibility. An absent list filters to an empty one. Entries without an
// onset never match.
func FilterByOnsetInPlace(packet *sams_dto.Phenopacket, onsetSelector string) (*sams_dto.Phenopacket, error) {
	target, err := resolveOnsetTimestamp(packet, onsetSelector)
	if err != nil {
		return nil, err
	}

	features := make([]sams_dto.PhenotypicFeature, 0, len(packet.PhenotypicFeatures))
	for _, feature := range packet.PhenotypicFeatures {
		if feature.Onset != nil && feature.Onset.Timestamp == target {
			features = append(features, feature)
		}
	}

	diseases := make([]sams_dto.Disease, 0, len(packet.Diseases))
	for _, disease := range packet.Diseases {
		if disease.Onset != nil && disease.Onset.Timestamp == target {
			diseases = append(diseases, disease)
		}
	}

	packet.PhenotypicFeatures = features
	packet.Diseases = diseases
	return packet, nil
}

// resolveOnsetTimestamp maps a sentinel selector to the minimum or maximum
// feature onset timestamp under lexical comparison, which is sound as long
// as the service exports a uniform sortable format. Literal selectors pass
// through unchanged.
func resolveOnsetTimestamp(packet *sams_dto.Phenopacket, onsetSelector string) (string, error) {
	if onsetSelector != constvars.OnsetSelectorEarliest && onsetSelector != constvars.OnsetSelectorLatest {
		return onsetSelector, nil
	}

	if len(packet.PhenotypicFeatures) == 0 {
		return "", exceptions.ErrOnsetSelectionEmpty(onsetSelector)
	}

	var target string
	for i, feature := range packet.PhenotypicFeatures {
		var timestamp string
		if feature.Onset != nil {
			timestamp = feature.Onset.Timestamp
		}
		if i == 0 {
			target = timestamp
			continue
		}
		if onsetSelector == constvars.OnsetSelectorEarliest {
			if timestamp < target {
				target = timestamp
			}
		} else if timestamp > target {
			target = timestamp
		}
	}
	return target, nil
}
