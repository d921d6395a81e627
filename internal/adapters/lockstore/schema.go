package lockstore

import (
	"go.trai.ch/relock/internal/core/domain"
)

// indexFile is the on-disk index of a lock directory.
type indexFile struct {
	Version     int      `yaml:"lock_version"`
	Fingerprint string   `yaml:"fingerprint"`
	Packages    []string `yaml:"packages"`
}

// entryFile is the on-disk shape of one lock entry.
type entryFile struct {
	Name           string         `yaml:"name"`
	Version        string         `yaml:"version"`
	Dev            bool           `yaml:"dev"`
	Source         *sourceDTO     `yaml:"source,omitempty"`
	ExtraSources   []sourceDTO    `yaml:"extra_sources,omitempty"`
	Deps           []string       `yaml:"deps,omitempty"`
	BuildCommand   *actionDTO     `yaml:"build_command,omitempty"`
	InstallCommand *actionDTO     `yaml:"install_command,omitempty"`
	ExportedEnv    []envBindingDTO `yaml:"exported_env,omitempty"`
}

type sourceDTO struct {
	URL      string `yaml:"url"`
	Checksum string `yaml:"checksum,omitempty"`
}

type envBindingDTO struct {
	Var   string `yaml:"var"`
	Value string `yaml:"value"`
}

// actionDTO serializes the action tree: either a run or a progn.
type actionDTO struct {
	Run   *runDTO     `yaml:"run,omitempty"`
	Progn []actionDTO `yaml:"progn,omitempty"`
}

type runDTO struct {
	Prog termDTO   `yaml:"prog"`
	Args []termDTO `yaml:"args,omitempty"`
}

type termDTO struct {
	Lit *string `yaml:"lit,omitempty"`
	Var *string `yaml:"var,omitempty"`
}

func entryToDTO(p domain.Pkg) entryFile {
	e := entryFile{
		Name:    p.Name,
		Version: p.Version,
		Dev:     p.Dev,
		Deps:    p.Deps,
	}
	if p.Source != nil {
		e.Source = &sourceDTO{URL: p.Source.URL, Checksum: p.Source.Checksum}
	}
	for _, src := range p.ExtraSources {
		e.ExtraSources = append(e.ExtraSources, sourceDTO{URL: src.URL, Checksum: src.Checksum})
	}
	e.BuildCommand = actionToDTO(p.BuildCommand)
	e.InstallCommand = actionToDTO(p.InstallCommand)
	for _, b := range p.ExportedEnv {
		e.ExportedEnv = append(e.ExportedEnv, envBindingDTO{Var: b.Var, Value: b.Value})
	}
	return e
}

func actionToDTO(a domain.Action) *actionDTO {
	switch action := a.(type) {
	case nil:
		return nil
	case domain.RunAction:
		run := &runDTO{Prog: termToDTO(action.Prog)}
		for _, arg := range action.Args {
			run.Args = append(run.Args, termToDTO(arg))
		}
		return &actionDTO{Run: run}
	case domain.PrognAction:
		dto := &actionDTO{}
		for _, sub := range action.Actions {
			if subDTO := actionToDTO(sub); subDTO != nil {
				dto.Progn = append(dto.Progn, *subDTO)
			}
		}
		return dto
	default:
		return nil
	}
}

func termToDTO(t domain.Term) termDTO {
	if t.Kind == domain.TermVarRef {
		v := string(t.Var)
		return termDTO{Var: &v}
	}
	s := t.Text
	return termDTO{Lit: &s}
}
