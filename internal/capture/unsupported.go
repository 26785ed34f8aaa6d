//go:build !windows && !darwin && !linux

package capture

type unsupportedProvider struct{}

func newProvider() Provider {
	return unsupportedProvider{}
}

func (unsupportedProvider) Capture() (*Result, error) {
	return nil, ErrUnsupported
}
