package site

import "strings"

// NormalizeOption tweaks normalization edge cases.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	blankFeature bool
}

// WithBlankFeature keeps the single empty feature produced by splitting an
// empty list, so pages render one empty feature block. Without it an empty
// list yields no features at all.
func WithBlankFeature() NormalizeOption {
	return func(cfg *normalizeConfig) {
		cfg.blankFeature = true
	}
}

// Normalize trims every scalar field, splits the comma separated features
// (or trims FeatureItems when set), and applies DefaultAccentColor when no
// color was supplied. It is total over its input and performs no validation.
func Normalize(raw RawFields, options ...NormalizeOption) Record {
	cfg := normalizeConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	features := SplitFeatures(raw.Features, cfg.blankFeature)
	if raw.FeatureItems != nil {
		features = trimFeatures(raw.FeatureItems, cfg.blankFeature)
	}

	color := strings.TrimSpace(raw.Color)
	if color == "" {
		color = DefaultAccentColor
	}

	return Record{
		Name:        strings.TrimSpace(raw.Name),
		Description: strings.TrimSpace(raw.Description),
		Email:       strings.TrimSpace(raw.Email),
		Phone:       strings.TrimSpace(raw.Phone),
		AccentColor: color,
		Features:    features,
		Social: Social{
			Facebook: strings.TrimSpace(raw.Facebook),
			Twitter:  strings.TrimSpace(raw.Twitter),
			LinkedIn: strings.TrimSpace(raw.LinkedIn),
		},
	}
}

// SplitFeatures splits on commas and trims each piece. Order and duplicates
// are preserved, as are blank pieces between commas. An empty list returns
// nil unless keepBlank is set, in which case it returns a single "".
func SplitFeatures(raw string, keepBlank bool) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if keepBlank {
			return []string{""}
		}
		return nil
	}

	parts := strings.Split(trimmed, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func trimFeatures(items []string, keepBlank bool) []string {
	if len(items) == 0 {
		if keepBlank {
			return []string{""}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSpace(item))
	}
	return out
}
