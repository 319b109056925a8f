package config

// DefaultConfig returns the configuration an empty file resolves to.
func DefaultConfig() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills every unset field with its default value.
func (c *Config) SetDefaults() {
	if c.Run.PopSize == 0 {
		c.Run.PopSize = 100
	}
	if !c.Run.MaxConfigured() {
		c.Run.MaxGenerations = 100
	}

	if c.GA.TournamentSize == 0 {
		c.GA.TournamentSize = 2
	}
	if c.GA.CrossoverRate == 0 {
		c.GA.CrossoverRate = 1.0
	}
	if c.GA.CrossoverPoints == 0 {
		c.GA.CrossoverPoints = 1
	}
	if c.GA.MutationRate == 0 {
		c.GA.MutationRate = 0.1
	}
	if c.GA.MutationStdev == 0 {
		c.GA.MutationStdev = 1.0
	}

	if c.PSO.CognitiveRate == 0 {
		c.PSO.CognitiveRate = 2.0
	}
	if c.PSO.SocialRate == 0 {
		c.PSO.SocialRate = 2.1
	}
	if c.PSO.Topology == "" {
		c.PSO.Topology = "star"
	}
	if c.PSO.NeighborhoodSize == 0 {
		c.PSO.NeighborhoodSize = 3
	}

	if c.ACS.Alpha == 0 {
		c.ACS.Alpha = 1.0
	}
	if c.ACS.Beta == 0 {
		c.ACS.Beta = 2.0
	}
	if c.ACS.EvaporationRate == 0 {
		c.ACS.EvaporationRate = 0.1
	}
	if c.ACS.LearningRate == 0 {
		c.ACS.LearningRate = 0.1
	}
	if c.ACS.InitialTrail == 0 {
		c.ACS.InitialTrail = 1.0
	}
	if c.ACS.TrailFloor == 0 {
		c.ACS.TrailFloor = 1e-9
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// MaxConfigured reports whether any stopping criterion is set.
func (r RunConfig) MaxConfigured() bool {
	return r.MaxGenerations > 0 || r.MaxEvaluations > 0 || r.MaxDuration > 0
}
