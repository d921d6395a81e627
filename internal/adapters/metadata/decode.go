package metadata

import (
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// ToDomain converts a decoded package DTO into domain metadata.
func (dto *PackageDTO) ToDomain() (*domain.Package, error) {
	if dto.Name == "" {
		return nil, zerr.With(domain.ErrMetadataParse, "reason", "missing package name")
	}

	pkg := &domain.Package{
		Name:    dto.Name,
		Version: dto.Version,
	}

	if dto.Available != nil {
		f, err := dto.Available.toFilter()
		if err != nil {
			return nil, zerr.With(err, "package", dto.Name)
		}
		pkg.Available = f
	}

	depends, err := formulaFromDTOs(dto.Depends)
	if err != nil {
		return nil, zerr.With(err, "package", dto.Name)
	}
	pkg.Depends = depends

	if pkg.Build, err = commandsFromDTOs(dto.Build); err != nil {
		return nil, zerr.With(err, "package", dto.Name)
	}
	if pkg.Install, err = commandsFromDTOs(dto.Install); err != nil {
		return nil, zerr.With(err, "package", dto.Name)
	}
	return pkg, nil
}

func (dto *FilterDTO) toFilter() (domain.Filter, error) {
	switch {
	case dto.Bool != nil:
		return domain.FilterBool{Value: *dto.Bool}, nil
	case dto.Str != nil:
		return domain.FilterString{Value: *dto.Str}, nil
	case dto.Var != nil:
		return domain.FilterVar{Name: *dto.Var}, nil
	case dto.Not != nil:
		arg, err := dto.Not.toFilter()
		if err != nil {
			return nil, err
		}
		return domain.FilterNot{Arg: arg}, nil
	case len(dto.And) > 0:
		args, err := filtersFromDTOs(dto.And)
		if err != nil {
			return nil, err
		}
		return domain.FilterAnd{Args: args}, nil
	case len(dto.Or) > 0:
		args, err := filtersFromDTOs(dto.Or)
		if err != nil {
			return nil, err
		}
		return domain.FilterOr{Args: args}, nil
	case dto.Op != "":
		if dto.Lhs == nil || dto.Rhs == nil {
			return nil, zerr.With(domain.ErrMetadataParse, "reason", "comparison missing an operand")
		}
		lhs, err := dto.Lhs.toFilter()
		if err != nil {
			return nil, err
		}
		rhs, err := dto.Rhs.toFilter()
		if err != nil {
			return nil, err
		}
		op, err := compareOp(dto.Op)
		if err != nil {
			return nil, err
		}
		return domain.FilterOp{Op: op, Lhs: lhs, Rhs: rhs}, nil
	default:
		return nil, zerr.With(domain.ErrMetadataParse, "reason", "empty filter node")
	}
}

func compareOp(s string) (domain.CompareOp, error) {
	switch domain.CompareOp(s) {
	case domain.OpEq, domain.OpNeq, domain.OpLt, domain.OpLeq, domain.OpGt, domain.OpGeq:
		return domain.CompareOp(s), nil
	default:
		return "", zerr.With(domain.ErrMetadataParse, "operator", s)
	}
}

func filtersFromDTOs(dtos []FilterDTO) ([]domain.Filter, error) {
	out := make([]domain.Filter, len(dtos))
	for i := range dtos {
		f, err := dtos[i].toFilter()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// formulaFromDTOs treats the top-level depends list as a conjunction,
// preserving source order.
func formulaFromDTOs(dtos []FormulaDTO) (domain.Formula, error) {
	if len(dtos) == 0 {
		return domain.Formula{}, nil
	}
	parts := make([]domain.Formula, len(dtos))
	for i := range dtos {
		f, err := dtos[i].toFormula()
		if err != nil {
			return domain.Formula{}, err
		}
		parts[i] = f
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return domain.Formula{All: parts}, nil
}

func (dto *FormulaDTO) toFormula() (domain.Formula, error) {
	set := 0
	if dto.Name != "" {
		set++
	}
	if len(dto.All) > 0 {
		set++
	}
	if len(dto.Any) > 0 {
		set++
	}
	if set != 1 {
		return domain.Formula{}, zerr.With(domain.ErrMetadataParse, "reason", "formula node must be exactly one of name, all, any")
	}

	switch {
	case dto.Name != "":
		atom := domain.Dependency{Name: dto.Name, Constraint: dto.Constraint}
		if dto.Filter != nil {
			guard, err := dto.Filter.toFilter()
			if err != nil {
				return domain.Formula{}, err
			}
			atom.Guard = guard
		}
		return domain.Formula{Atom: &atom}, nil
	case len(dto.All) > 0:
		parts, err := subFormulas(dto.All)
		if err != nil {
			return domain.Formula{}, err
		}
		return domain.Formula{All: parts}, nil
	default:
		parts, err := subFormulas(dto.Any)
		if err != nil {
			return domain.Formula{}, err
		}
		return domain.Formula{Any: parts}, nil
	}
}

func subFormulas(dtos []FormulaDTO) ([]domain.Formula, error) {
	out := make([]domain.Formula, len(dtos))
	for i := range dtos {
		f, err := dtos[i].toFormula()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func commandsFromDTOs(commands [][]ArgDTO) ([][]domain.CommandArg, error) {
	if len(commands) == 0 {
		return nil, nil
	}
	out := make([][]domain.CommandArg, len(commands))
	for i, command := range commands {
		args := make([]domain.CommandArg, len(command))
		for j, arg := range command {
			switch {
			case arg.Lit != nil:
				args[j] = domain.Literal(*arg.Lit)
			case arg.Ident != nil:
				args[j] = domain.Ident(*arg.Ident)
			default:
				return nil, zerr.With(domain.ErrMetadataParse, "reason", "command argument must be lit or ident")
			}
		}
		out[i] = args
	}
	return out, nil
}
