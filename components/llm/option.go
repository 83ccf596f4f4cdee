package llm

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Option configures a Client
type Option func(c *Client)

// WithProvider selects the hosted model service
func WithProvider(p Provider) Option {
	return func(c *Client) {
		c.provider = p
	}
}

// WithModel sets the default model
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL overrides the provider endpoint
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.endpoint.BaseURL = u
	}
}

// WithHTTPClient sets the http client used by the transport
func WithHTTPClient(clt *http.Client) Option {
	return func(c *Client) {
		c.endpoint.HTTPClient = clt
	}
}

// WithDialer replaces the provider dialer
func WithDialer(d Dialer) Option {
	return func(c *Client) {
		c.dialer = d
	}
}

// WithGeneration sets the default sampling parameters
func WithGeneration(g GenerationConfig) Option {
	return func(c *Client) {
		c.generation = g
	}
}

// WithSafety sets the default safety thresholds
func WithSafety(settings []SafetySetting) Option {
	return func(c *Client) {
		c.safety = settings
	}
}

// WithRateLimit smooths bursts of calls with a token bucket; zero disables it
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// CallOption adjusts a single Generate call
type CallOption func(r *Request)

// WithSystemInstruction sets the system instruction of the call
func WithSystemInstruction(s string) CallOption {
	return func(r *Request) {
		r.SystemInstruction = s
	}
}

// WithHistory sets the prior conversation turns of the call
func WithHistory(turns []Turn) CallOption {
	return func(r *Request) {
		r.History = turns
	}
}

// WithCallModel overrides the model for one call
func WithCallModel(model string) CallOption {
	return func(r *Request) {
		if model != "" {
			r.Model = model
		}
	}
}

// WithCallGeneration overrides the sampling parameters for one call
func WithCallGeneration(g GenerationConfig) CallOption {
	return func(r *Request) {
		r.Generation = g
	}
}
