// Package scorer blends the Locator/QualityAnalyzer/PatchAnalyzer
// outputs into a single confidence value and a categorical failure
// classification.
package scorer
