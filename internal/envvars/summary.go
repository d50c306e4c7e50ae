package envvars

type Summary struct {
	EnvFiles      []string         `json:"env_files"`
	TotalVars     int              `json:"total_vars"`
	SensitiveVars int              `json:"sensitive_vars"`
	RequiredVars  int              `json:"required_vars"`
	Variables     []ConfigVariable `json:"variables"`
}

func (c *Catalog) Summary() Summary {
	s := Summary{
		EnvFiles:  c.Files,
		TotalVars: len(c.Variables),
		Variables: c.Variables,
	}

	if s.EnvFiles == nil {
		s.EnvFiles = []string{}
	}

	if s.Variables == nil {
		s.Variables = []ConfigVariable{}
	}

	for _, v := range c.Variables {
		if v.IsSecret() {
			s.SensitiveVars++
		}

		if v.Required {
			s.RequiredVars++
		}
	}

	return s
}
