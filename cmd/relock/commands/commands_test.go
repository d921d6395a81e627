package commands_test

import (
	"bytes"
	"context"
	"testing"

	"go.trai.ch/relock/cmd/relock/commands"
	"go.trai.ch/relock/internal/adapters/telemetry"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/build"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockManifestLoader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	manifests := mocks.NewMockManifestLoader(ctrl)
	repos := mocks.NewMockRepositoryOpener(ctrl)
	solver := mocks.NewMockSolver(ctrl)
	store := mocks.NewMockLockStore(ctrl)
	log := mocks.NewMockLogger(ctrl)

	a := app.New(manifests, repos, solver, store, log, telemetry.NewNoOp())
	return commands.New(a), manifests
}

func TestLockCommand_DefaultsToCurrentDir(t *testing.T) {
	cli, manifests := newCLI(t)

	// Failing fast at the manifest keeps the test focused on flag
	// plumbing.
	manifests.EXPECT().Load(".").Return(nil, domain.ErrManifestRead)

	cli.SetArgs([]string{"lock"})
	if err := cli.Execute(context.Background()); err == nil {
		t.Fatal("expected the manifest error to surface")
	}
}

func TestLockCommand_HonorsChdirFlag(t *testing.T) {
	cli, manifests := newCLI(t)

	manifests.EXPECT().Load("/elsewhere").Return(nil, domain.ErrManifestRead)

	cli.SetArgs([]string{"lock", "-C", "/elsewhere"})
	if err := cli.Execute(context.Background()); err == nil {
		t.Fatal("expected the manifest error to surface")
	}
}

func TestLockCommand_RejectsArgs(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"lock", "extra"})
	if err := cli.Execute(context.Background()); err == nil {
		t.Fatal("expected an error for unexpected arguments")
	}
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error for help, got: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	cli, _ := newCLI(t)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"version"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error for version, got: %v", err)
	}
	if got := out.String(); got != "relock version "+build.Version+"\n" {
		t.Errorf("unexpected version output %q", got)
	}
}
