package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/lineage/internal/adapters/telemetry"
	"go.trai.ch/lineage/internal/app"
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/lineage/internal/core/ports/mocks"
	"go.trai.ch/lineage/internal/engine/scan"
)

type fixture struct {
	configLoader *mocks.MockConfigLoader
	hierarchy    *mocks.MockHierarchy
	walker       *mocks.MockClasspathWalker
	app          *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	configLoader := mocks.NewMockConfigLoader(ctrl)
	hierarchy := mocks.NewMockHierarchy(ctrl)
	walker := mocks.NewMockClasspathWalker(ctrl)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

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

	return &fixture{
		configLoader: configLoader,
		hierarchy:    hierarchy,
		walker:       walker,
		app:          app.New(configLoader, hierarchy, scanner, telemetry.NewNoOpTracer(), logger),
	}
}

func (f *fixture) expectConfig(t *testing.T) {
	t.Helper()
	f.configLoader.EXPECT().Load(".").Return(&domain.Config{
		Classpath: []string{t.TempDir()},
		Workers:   1,
	}, nil)
}

func TestApp_ResolveChain(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(t)

	dog := domain.NewTypeName("demo/Dog")
	animal := domain.NewTypeName("demo/Animal")

	f.hierarchy.EXPECT().GetSuperClass(gomock.Any(), dog, gomock.Any()).Return(animal)
	f.hierarchy.EXPECT().GetSuperClass(gomock.Any(), animal, gomock.Any()).Return(domain.RootClass)

	chain, err := f.app.ResolveChain(context.Background(), "demo/Dog")
	require.NoError(t, err)
	assert.Equal(t, []domain.TypeName{dog, animal, domain.RootClass}, chain)
}

func TestApp_ResolveChain_BrokenChain(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(t)

	orphan := domain.NewTypeName("demo/Orphan")
	f.hierarchy.EXPECT().GetSuperClass(gomock.Any(), orphan, gomock.Any()).Return(domain.TypeName{})

	chain, err := f.app.ResolveChain(context.Background(), "demo/Orphan")
	require.NoError(t, err)
	assert.Equal(t, []domain.TypeName{orphan}, chain)
}

func TestApp_ResolveChain_NoType(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.ResolveChain(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoTypesSpecified)
}

func TestApp_Assignable(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(t)

	f.hierarchy.EXPECT().
		IsAssignableFrom(gomock.Any(), domain.NewTypeName("demo/Animal"), domain.NewTypeName("demo/Dog"), gomock.Any()).
		Return(true, nil)

	ok, err := f.app.Assignable(context.Background(), "demo/Animal", "demo/Dog")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApp_CommonSuperClass_Error(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(t)

	f.hierarchy.EXPECT().
		CommonSuperClass(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.TypeName{}, domain.ErrHierarchyIncomplete)

	_, err := f.app.CommonSuperClass(context.Background(), "demo/Dog", "demo/Orphan")
	assert.ErrorIs(t, err, domain.ErrHierarchyIncomplete)
}

func TestApp_Scan(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(t)

	f.walker.EXPECT().Entries(gomock.Any()).Return([]domain.ClassEntry{
		{Name: domain.NewTypeName("demo/Animal"), Path: "demo/Animal.class", Digest: 1},
	}, nil)
	f.hierarchy.EXPECT().
		GetSuperClass(gomock.Any(), domain.NewTypeName("demo/Animal"), gomock.Any()).
		Return(domain.RootClass)

	report, err := f.app.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Types)
	assert.Equal(t, 1, report.Resolved)
}
