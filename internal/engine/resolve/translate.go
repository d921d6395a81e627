package resolve

import (
	"fmt"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// TranslateCommands converts a package's raw command list into an
// action. Zero usable commands yield nil, one yields a Run, several a
// sequential Progn in source order.
func TranslateCommands(id domain.PackageID, commands [][]domain.CommandArg) (domain.Action, error) {
	actions := make([]domain.Action, 0, len(commands))
	for _, command := range commands {
		terms, err := translateCommand(id, command)
		if err != nil {
			return nil, err
		}
		// A command with no terms has no program to run.
		if len(terms) == 0 {
			continue
		}
		actions = append(actions, domain.RunAction{Prog: terms[0], Args: terms[1:]})
	}

	switch len(actions) {
	case 0:
		return nil, nil
	case 1:
		return actions[0], nil
	default:
		return domain.PrognAction{Actions: actions}, nil
	}
}

func translateCommand(id domain.PackageID, command []domain.CommandArg) ([]domain.Term, error) {
	terms := make([]domain.Term, 0, len(command))
	for _, arg := range command {
		switch arg.Kind {
		case domain.ArgLiteral:
			terms = append(terms, domain.LiteralTerm(arg.Value))
		case domain.ArgIdent:
			term, err := translateIdent(id, arg.Value, command)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		}
	}
	return terms, nil
}

// translateIdent resolves an [owner:]variable identifier. Only the
// package's own variables are addressable: bare "variable" or the
// explicit self scope "_:variable". Another package's variable is a
// contract violation, not bad user input, since nothing emits such
// references yet.
func translateIdent(id domain.PackageID, ident string, command []domain.CommandArg) (domain.Term, error) {
	name := ident
	if owner, rest, ok := strings.Cut(ident, ":"); ok {
		if owner != "_" {
			err := zerr.Wrap(domain.ErrCrossPackageVariable,
				fmt.Sprintf("variable %q is owned by package %q", rest, owner))
			err = zerr.With(err, "package", id.String())
			err = zerr.With(err, "owner", owner)
			return domain.Term{}, zerr.With(err, "variable", rest)
		}
		name = rest
	}

	variable, ok := domain.LookupPackageVariable(name)
	if !ok {
		// The quoted name and the echoed command belong in the message
		// itself, not just the metadata: the text must stand alone
		// wherever the error surfaces.
		err := zerr.Wrap(domain.ErrUnknownVariable,
			fmt.Sprintf("variable %q in command %q", name, renderCommand(command)))
		err = zerr.With(err, "package", id.String())
		err = zerr.With(err, "variable", `"`+name+`"`)
		return domain.Term{}, zerr.With(err, "command", renderCommand(command))
	}
	return domain.VarRefTerm(variable), nil
}

// renderCommand reproduces the source spelling of a command for error
// messages.
func renderCommand(command []domain.CommandArg) string {
	parts := make([]string, len(command))
	for i, arg := range command {
		if arg.Kind == domain.ArgIdent {
			parts[i] = "%{" + arg.Value + "}"
		} else {
			parts[i] = arg.Value
		}
	}
	return strings.Join(parts, " ")
}
