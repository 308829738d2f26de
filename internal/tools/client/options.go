package client

import (
	"time"
)

const DefaultTimeout = 10 * time.Second

type OptionFunc func(o *Options)

type Options struct {
	// Name of the caller service, sent as user agent
	name string

	// BaseURL - full URL of the remote API (including protocol), overrides the collaborator default
	baseURL string

	// Timeout - if not set, then default timeout is used
	timeout time.Duration
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func NewOptions(optionFuncs ...OptionFunc) *Options {
	options := &Options{
		name: "ride-booking",
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	return options
}

func (o *Options) Name() string {
	return o.name
}

func (o *Options) BaseURL(fallback string) string {
	if o.baseURL != "" {
		return o.baseURL
	}

	return fallback
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}
	return DefaultTimeout
}
