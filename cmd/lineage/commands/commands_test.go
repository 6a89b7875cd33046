package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/lineage/cmd/lineage/commands"
	"go.trai.ch/lineage/internal/adapters/telemetry"
	"go.trai.ch/lineage/internal/app"
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/lineage/internal/core/ports/mocks"
	"go.trai.ch/lineage/internal/engine/scan"
)

type cliFixture struct {
	configLoader *mocks.MockConfigLoader
	hierarchy    *mocks.MockHierarchy
	walker       *mocks.MockClasspathWalker
	cli          *commands.CLI
	out          *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	configLoader := mocks.NewMockConfigLoader(ctrl)
	hierarchy := mocks.NewMockHierarchy(ctrl)
	walker := mocks.NewMockClasspathWalker(ctrl)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).
		AnyTimes()

	scanner := scan.New(walker, hierarchy, tel, logger)
	a := app.New(configLoader, hierarchy, scanner, telemetry.NewNoOpTracer(), logger)

	cli := commands.New(a)
	out := &bytes.Buffer{}
	cli.SetOutput(out)

	return &cliFixture{
		configLoader: configLoader,
		hierarchy:    hierarchy,
		walker:       walker,
		cli:          cli,
		out:          out,
	}
}

func (f *cliFixture) expectConfig(t *testing.T) {
	t.Helper()
	f.configLoader.EXPECT().Load(".").Return(&domain.Config{
		Classpath: []string{t.TempDir()},
		Workers:   1,
	}, nil).AnyTimes()
}

func TestResolve_Chain(t *testing.T) {
	f := newCLIFixture(t)
	f.expectConfig(t)

	dog := domain.NewTypeName("demo/Dog")
	animal := domain.NewTypeName("demo/Animal")
	f.hierarchy.EXPECT().GetSuperClass(gomock.Any(), dog, gomock.Any()).Return(animal)
	f.hierarchy.EXPECT().GetSuperClass(gomock.Any(), animal, gomock.Any()).Return(domain.RootClass)

	f.cli.SetArgs([]string{"resolve", "demo/Dog"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "demo/Dog <- demo/Animal <- java/lang/Object\n", f.out.String())
}

func TestResolve_CommonSuperClass(t *testing.T) {
	f := newCLIFixture(t)
	f.expectConfig(t)

	f.hierarchy.EXPECT().
		CommonSuperClass(gomock.Any(), domain.NewTypeName("demo/Dog"), domain.NewTypeName("demo/Cat"), gomock.Any()).
		Return(domain.NewTypeName("demo/Animal"), nil)

	f.cli.SetArgs([]string{"resolve", "demo/Dog", "demo/Cat"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "demo/Animal\n", f.out.String())
}

func TestAssignable(t *testing.T) {
	f := newCLIFixture(t)
	f.expectConfig(t)

	f.hierarchy.EXPECT().
		IsAssignableFrom(gomock.Any(), domain.NewTypeName("demo/Animal"), domain.NewTypeName("demo/Dog"), gomock.Any()).
		Return(true, nil)

	f.cli.SetArgs([]string{"assignable", "demo/Animal", "demo/Dog"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "true\n", f.out.String())
}

func TestAssignable_InvalidQuery(t *testing.T) {
	f := newCLIFixture(t)
	f.expectConfig(t)

	f.hierarchy.EXPECT().
		IsAssignableFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, domain.ErrInvalidQuery)

	f.cli.SetArgs([]string{"assignable", "demo/Animal", "demo/Dog"})
	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestScan(t *testing.T) {
	f := newCLIFixture(t)
	f.expectConfig(t)

	f.walker.EXPECT().Entries(gomock.Any()).Return([]domain.ClassEntry{
		{Name: domain.NewTypeName("demo/Animal"), Path: "demo/Animal.class", Digest: 1},
	}, nil)
	f.hierarchy.EXPECT().
		GetSuperClass(gomock.Any(), domain.NewTypeName("demo/Animal"), gomock.Any()).
		Return(domain.RootClass)

	f.cli.SetArgs([]string{"scan"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "classfiles: 1")
	assert.Contains(t, f.out.String(), "resolved:   1")
}

func TestVersion(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "lineage version")
}
