package sams_dto

// Phenopacket is the clinical record shape exported by SAMS. Records are
// only ever produced by decoding service responses; this module never
// constructs one from scratch. A nil PhenotypicFeatures or Diseases slice
// means the key was absent from the export, which is valid data, not an
// error. The two lists are independent: either may be present without the
// other.
type Phenopacket struct {
	ID                 string              `json:"id,omitempty"`
	Subject            Subject             `json:"subject,omitempty"`
	PhenotypicFeatures []PhenotypicFeature `json:"phenotypicFeatures,omitempty"`
	Diseases           []Disease           `json:"diseases,omitempty"`
}

type Subject struct {
	ID          string `json:"id"`
	Sex         string `json:"sex,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

type PhenotypicFeature struct {
	Type     OntologyTerm `json:"type"`
	Excluded int          `json:"excluded,omitempty"`
	Onset    *TimeElement `json:"onset,omitempty"`
}

type Disease struct {
	Term     OntologyTerm `json:"term"`
	Excluded int          `json:"excluded,omitempty"`
	Onset    *TimeElement `json:"onset,omitempty"`
}

type OntologyTerm struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TimeElement carries the onset timestamp as the service exports it: an
// ISO-8601-ish string, compared lexically.
type TimeElement struct {
	Timestamp string `json:"timestamp,omitempty"`
}

// IsExcluded reports the SAMS 0/1 excluded flag; an absent flag decodes to
// zero and counts as not excluded.
func (f PhenotypicFeature) IsExcluded() bool {
	return f.Excluded != 0
}

func (d Disease) IsExcluded() bool {
	return d.Excluded != 0
}
