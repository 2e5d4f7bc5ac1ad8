// Package randmatrix generates square matrices of uniformly distributed
// signed integers.
//
// Every cell is drawn independently from the closed interval [min, max]
// with the classic sampler
//
//	floor(u · (max − min + 1)) + min,   u ∈ [0, 1)
//
// where u comes from a Source. Any *math/rand.Rand is a Source, so tests
// lock outcomes with WithSeed and production callers may plug their own.
//
// ⚙️ Usage:
//
//	m, err := randmatrix.Generate(10, -100, 100, randmatrix.WithSeed(42))
//	if err != nil {
//		// errors.Is(err, validate.ErrInvalidNumber) / validate.ErrInvalidRange
//	}
//	fmt.Println(m.Size(), m.Row(0))
//
// Complexity: O(size²) time and space.
package randmatrix
