// Package validate holds the numeric precondition checks shared by the
// generator, the row analyzer and the command-line layer.
//
// Every check is a pure function returning nil on success or a wrapped
// sentinel error (ErrInvalidNumber, ErrInvalidRange, ErrArity). The message
// names the offending parameter and the violated constraint; callers branch
// on semantics with errors.Is.
//
// Inputs are float64 because they usually originate from parsed user input,
// where NaN, ±Inf and fractional values are all representable.
//
//	if err := validate.PositiveInteger(size, "size"); err != nil {
//		return err // errors.Is(err, validate.ErrInvalidNumber)
//	}
package validate
