package offset

// Option configures rounded reconstruction, following the same
// functional-options convention as skeleton.Option.
type Option func(*config)

type config struct {
	arcStep float64
}

func defaultConfig() config {
	return config{arcStep: 0.1}
}

// WithArcStep overrides the fixed angular step (radians) used to sample
// a rounded convex corner's arc. Defaults to 0.1 rad.
func WithArcStep(step float64) Option {
	return func(c *config) {
		c.arcStep = step
	}
}
