package dicom

import (
	"fmt"
	"strings"

	"github.com/suyashkumar/dicom/pkg/tag"
)

// TagSource tells where the value of an exported tag comes from.
type TagSource int

const (
	// SourceRecord tags are filled from the bed's patient record.
	SourceRecord TagSource = iota
	// SourceCensus tags are shared by every file of an export and may be
	// set with --tag.
	SourceCensus
)

// String returns the string representation of a TagSource.
func (s TagSource) String() string {
	switch s {
	case SourceRecord:
		return "Record"
	case SourceCensus:
		return "Census"
	default:
		return "Unknown"
	}
}

// TagInfo describes a tag known to the census export.
type TagInfo struct {
	Name   string
	Tag    tag.Tag
	Source TagSource
}

// tagRegistry maps lowercase tag names to their TagInfo.
var tagRegistry = map[string]TagInfo{
	// Filled from the patient record
	"patientname":            {Name: "PatientName", Tag: tag.PatientName, Source: SourceRecord},
	"patientid":              {Name: "PatientID", Tag: tag.PatientID, Source: SourceRecord},
	"patientage":             {Name: "PatientAge", Tag: tag.PatientAge, Source: SourceRecord},
	"admittingdate":          {Name: "AdmittingDate", Tag: tag.AdmittingDate, Source: SourceRecord},
	"currentpatientlocation": {Name: "CurrentPatientLocation", Tag: tag.CurrentPatientLocation, Source: SourceRecord},

	// Shared by the whole export
	"institutionname":             {Name: "InstitutionName", Tag: tag.InstitutionName, Source: SourceCensus},
	"institutionaldepartmentname": {Name: "InstitutionalDepartmentName", Tag: tag.InstitutionalDepartmentName, Source: SourceCensus},
	"stationname":                 {Name: "StationName", Tag: tag.StationName, Source: SourceCensus},
	"referringphysicianname":      {Name: "ReferringPhysicianName", Tag: tag.ReferringPhysicianName, Source: SourceCensus},
	"operatorsname":               {Name: "OperatorsName", Tag: tag.OperatorsName, Source: SourceCensus},
	"studydescription":            {Name: "StudyDescription", Tag: tag.StudyDescription, Source: SourceCensus},
	"seriesdescription":           {Name: "SeriesDescription", Tag: tag.SeriesDescription, Source: SourceCensus},
	"manufacturer":                {Name: "Manufacturer", Tag: tag.Manufacturer, Source: SourceCensus},
}

// GetTagByName returns TagInfo for a given tag name.
// The lookup is case-insensitive. If the tag is not found, an error is returned
// with a suggestion for the closest matching tag name (using Levenshtein distance).
func GetTagByName(name string) (TagInfo, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))

	if info, ok := tagRegistry[normalizedName]; ok {
		return info, nil
	}

	suggestion := findClosestTagName(normalizedName)
	if suggestion != "" {
		return TagInfo{}, fmt.Errorf("unknown tag %q, did you mean %q?", name, suggestion)
	}

	return TagInfo{}, fmt.Errorf("unknown tag %q", name)
}

// CensusTags holds --tag overrides keyed by tag.
type CensusTags map[tag.Tag]string

// ParseTagFlags parses "Name=Value" pairs into census-wide tag values.
// Record tags are refused since each bed supplies its own value.
func ParseTagFlags(flags []string) (CensusTags, error) {
	out := CensusTags{}
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid tag %q: expected Name=Value", f)
		}
		info, err := GetTagByName(name)
		if err != nil {
			return nil, err
		}
		if info.Source == SourceRecord {
			return nil, fmt.Errorf("tag %s is taken from each bed's record and cannot be set", info.Name)
		}
		out[info.Tag] = strings.TrimSpace(value)
	}
	return out, nil
}

// findClosestTagName finds the closest matching tag name using Levenshtein distance.
// Returns empty string if no close match is found (distance > 5).
func findClosestTagName(input string) string {
	const maxDistance = 5
	bestDistance := maxDistance + 1
	var bestMatch string

	for key, info := range tagRegistry {
		distance := levenshteinDistance(input, key)
		if distance < bestDistance || (distance == bestDistance && info.Name < bestMatch) {
			bestDistance = distance
			bestMatch = info.Name
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}
