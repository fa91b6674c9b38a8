package schelling

import "schelling/internal/core"

// Parameters reports the run configuration together with live metrics.
func (m *Model) Parameters() core.ParameterSnapshot {
	stats := m.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", m.cfg.Width),
				core.IntParam("h", "Height", m.cfg.Height),
				core.Int64Param("seed", "Seed", m.cfg.Seed),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.FloatParam("density", "Density", m.cfg.Density),
				core.FloatParam("minority", "Minority fraction", m.cfg.MinorityFraction),
				core.IntParam("homophily", "Homophily (of 8)", m.cfg.Homophily),
				core.IntParam("agents", "Agents", stats.Agents),
				core.IntParam("minority_agents", "Minority agents", stats.Minority),
			},
		},
		{
			Name:    "Metrics",
			Summary: "segregation is recorded before each step",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", stats.Steps),
				core.FloatParam("segregation", "Segregation", Round3(stats.Segregation)),
				core.FloatParam("happy", "Happy fraction", Round3(stats.HappyFraction)),
				core.IntParam("unsatisfied", "Unsatisfied", stats.Unsatisfied),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
