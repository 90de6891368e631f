// SPDX-License-Identifier: MIT
package builder

// validateMin ensures got ≥ minimum.
func validateMin(method string, got, minimum int) error {
	if got < minimum {
		return builderErrorf(method, "n=%d < min=%d: %w", got, minimum, ErrTooFewVertices)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w",
			p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
