package main

import (
	"github.com/jward/codescope"
	"github.com/jward/codescope/internal/config"
)

// featureFlags holds the section switches given on the command line.
type featureFlags struct {
	Readme      bool
	Tree        bool
	Inspection  bool
	Docstrings  bool
	Prompt      bool
	FullContent bool
	All         bool
}

func (f featureFlags) any() bool {
	return f.Readme || f.Tree || f.Inspection || f.Docstrings || f.Prompt || f.FullContent || f.All
}

// defaultFeatures is used when neither flags nor config select sections.
var defaultFeatures = config.Features{
	ContextPrompt: true,
	Readme:        true,
	Tree:          true,
	Inspection:    true,
	Docstrings:    true,
}

// resolveOptions turns flags into report options. --all wins over
// everything; explicit flags win over the config defaults, which win over
// the built-in defaults.
func resolveOptions(f featureFlags, defaults *config.Features) codescope.ReportOptions {
	switch {
	case f.All:
		return codescope.ReportOptions{
			IncludeContextPrompt: true,
			IncludeReadme:        true,
			IncludeTree:          true,
			IncludeInspection:    true,
			IncludeDocstrings:    true,
			IncludeFullContent:   true,
		}
	case f.any():
		return codescope.ReportOptions{
			IncludeContextPrompt: f.Prompt,
			IncludeReadme:        f.Readme,
			IncludeTree:          f.Tree,
			IncludeInspection:    f.Inspection,
			IncludeDocstrings:    f.Docstrings,
			IncludeFullContent:   f.FullContent,
		}
	}

	d := defaultFeatures
	if defaults != nil {
		d = *defaults
	}
	return codescope.ReportOptions{
		IncludeContextPrompt: d.ContextPrompt,
		IncludeReadme:        d.Readme,
		IncludeTree:          d.Tree,
		IncludeInspection:    d.Inspection,
		IncludeDocstrings:    d.Docstrings,
		IncludeFullContent:   d.FullContent,
	}
}
