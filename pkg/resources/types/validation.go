package types

// ValidationResult is the structured outcome of validating a single value
// against a field descriptor. Failures are carried as values, never panics.
type ValidationResult struct {
	err error
}

func ValidationOK() ValidationResult {
	return ValidationResult{}
}

func ValidationFailure(err error) ValidationResult {
	return ValidationResult{err: err}
}

func (r ValidationResult) OK() bool {
	return r.err == nil
}

func (r ValidationResult) Err() error {
	return r.err
}
