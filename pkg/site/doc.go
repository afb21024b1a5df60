// Package site defines the immutable Record consumed by every page template
// and the normalizer that builds it from raw form input. Normalization trims
// scalar fields, splits the comma separated features list, and fills the
// default accent color. It never fails; presence checks live in Validate so
// callers decide when an empty name should be rejected.
package site
