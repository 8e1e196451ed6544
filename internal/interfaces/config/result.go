// Package config
package config

// ValidResult carries the outcome of a config check; err is the message shown to the operator
// and originErr the underlying cause, if any
type ValidResult struct {
	err       error
	originErr error
}

func ValidPass() *ValidResult {
	return &ValidResult{}
}

func ValidFail(err error) *ValidResult {
	return &ValidResult{err: err}
}

func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{err: err, originErr: originErr}
}

func (r *ValidResult) IsFail() bool { return r.err != nil }

func (r *ValidResult) Error() error { return r.err }

func (r *ValidResult) OriginErr() error { return r.originErr }
