package hierarchy_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lineage/internal/adapters/classfile"
	"go.trai.ch/lineage/internal/adapters/logger"
	"go.trai.ch/lineage/internal/classtest"
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/lineage/internal/engine/hierarchy"
)

// countingLocator serves classfile bytes out of a map and counts Locate
// invocations per type.
type countingLocator struct {
	mu      sync.Mutex
	classes map[string][]byte
	calls   map[string]int
}

func newCountingLocator() *countingLocator {
	return &countingLocator{
		classes: make(map[string][]byte),
		calls:   make(map[string]int),
	}
}

func (l *countingLocator) add(name, super string, interfaces ...string) {
	l.classes[name] = classtest.Bytes(name, super, interfaces...)
}

func (l *countingLocator) Locate(_ context.Context, name domain.TypeName, _ ports.LoaderContext) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[name.String()]++
	data, ok := l.classes[name.String()]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	return data, nil
}

func (l *countingLocator) count(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

// zoo builds the Object <- Animal <- Dog fixture where Animal implements
// Comparable and Dog implements Runnable.
func zoo() *countingLocator {
	l := newCountingLocator()
	l.add("java/lang/Object", "")
	l.add("java/lang/Comparable", "java/lang/Object")
	l.add("java/lang/Runnable", "java/lang/Object")
	l.add("demo/Animal", "java/lang/Object", "java/lang/Comparable")
	l.add("demo/Dog", "demo/Animal", "java/lang/Runnable")
	l.add("demo/Cat", "demo/Animal")
	return l
}

func newResolver(l ports.Locator) *hierarchy.Resolver {
	return hierarchy.NewResolver(l, classfile.NewDecoder(), logger.New())
}

func tn(name string) domain.TypeName { return domain.NewTypeName(name) }

func TestIsAssignableFrom_Reflexive(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	for _, name := range []string{"java/lang/Object", "demo/Animal", "demo/Dog", "java/lang/Comparable"} {
		ok, err := r.IsAssignableFrom(ctx, tn(name), tn(name), nil)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	// Reflexivity holds even for names that resolve to nothing.
	ok, err := r.IsAssignableFrom(ctx, tn("no/Such"), tn("no/Such"), nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAssignableFrom_RootDominatesClasses(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	for _, name := range []string{"demo/Animal", "demo/Dog", "demo/Cat"} {
		ok, err := r.IsAssignableFrom(ctx, domain.RootClass, tn(name), nil)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestIsAssignableFrom_Transitive(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	ab, err := r.IsAssignableFrom(ctx, tn("java/lang/Object"), tn("demo/Animal"), nil)
	require.NoError(t, err)
	bc, err := r.IsAssignableFrom(ctx, tn("demo/Animal"), tn("demo/Dog"), nil)
	require.NoError(t, err)
	ac, err := r.IsAssignableFrom(ctx, tn("java/lang/Object"), tn("demo/Dog"), nil)
	require.NoError(t, err)

	assert.True(t, ab)
	assert.True(t, bc)
	assert.True(t, ac)
}

func TestIsAssignableFrom_Interfaces(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	// Dog inherits Comparable through Animal.
	ok, err := r.IsAssignableFrom(ctx, tn("java/lang/Comparable"), tn("demo/Dog"), nil)
	require.NoError(t, err)
	assert.True(t, ok)

	// Runnable is declared on Dog, not on Animal.
	ok, err = r.IsAssignableFrom(ctx, tn("java/lang/Runnable"), tn("demo/Animal"), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAssignableFrom_InvalidQuery(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	_, err := r.IsAssignableFrom(context.Background(), domain.TypeName{}, tn("demo/Dog"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestCommonSuperClass(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	cases := []struct {
		t1, t2, want string
	}{
		{"demo/Dog", "demo/Animal", "demo/Animal"},
		{"demo/Animal", "demo/Dog", "demo/Animal"},
		{"demo/Dog", "demo/Cat", "demo/Animal"},
		{"demo/Cat", "demo/Dog", "demo/Animal"},
		{"demo/Dog", "java/lang/Comparable", "java/lang/Comparable"},
		{"java/lang/Comparable", "demo/Dog", "java/lang/Comparable"},
		{"demo/Dog", "demo/Dog", "demo/Dog"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s vs %s", tc.t1, tc.t2), func(t *testing.T) {
			t.Parallel()
			got, err := r.CommonSuperClass(ctx, tn(tc.t1), tn(tc.t2), nil)
			require.NoError(t, err)
			assert.Equal(t, tn(tc.want), got)
		})
	}
}

func TestCommonSuperClass_BrokenChain(t *testing.T) {
	t.Parallel()

	l := zoo()
	// Orphan's superclass bytecode is absent from every source.
	l.add("demo/Orphan", "demo/Missing")

	r := newResolver(l)
	_, err := r.CommonSuperClass(context.Background(), tn("demo/Orphan"), tn("demo/Animal"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHierarchyIncomplete)
}

func TestGetSuperClass_Memoized(t *testing.T) {
	t.Parallel()

	l := zoo()
	r := newResolver(l)
	ctx := context.Background()

	first := r.GetSuperClass(ctx, tn("demo/Animal"), nil)
	second := r.GetSuperClass(ctx, tn("demo/Animal"), nil)

	assert.Equal(t, tn("java/lang/Object"), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, l.count("demo/Animal"))
}

func TestReset_ForcesFreshLocate(t *testing.T) {
	t.Parallel()

	l := zoo()
	r := newResolver(l)
	ctx := context.Background()

	_ = r.GetSuperClass(ctx, tn("demo/Animal"), nil)
	r.Reset()
	_ = r.GetSuperClass(ctx, tn("demo/Animal"), nil)

	assert.Equal(t, 2, l.count("demo/Animal"))
}

func TestGetSuperClass_MissingDegradesToZero(t *testing.T) {
	t.Parallel()

	l := zoo()
	r := newResolver(l)
	ctx := context.Background()

	super := r.GetSuperClass(ctx, tn("no/Such"), nil)
	assert.True(t, super.IsZero())

	// Failures are not cached; the lookup is re-attempted.
	_ = r.GetSuperClass(ctx, tn("no/Such"), nil)
	assert.Equal(t, 2, l.count("no/Such"))
}

func TestDetectInterfaces_Idempotent(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	require.NoError(t, r.DetectInterfaces(ctx, tn("demo/Dog"), nil))
	first, err := r.TransitiveInterfaces(ctx, tn("demo/Dog"), nil)
	require.NoError(t, err)

	require.NoError(t, r.DetectInterfaces(ctx, tn("demo/Dog"), nil))
	second, err := r.TransitiveInterfaces(ctx, tn("demo/Dog"), nil)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Same(t, &first[0], &second[0], "second detection must not rebuild the sequence")
}

func TestDetectInterfaces_DiamondDuplicatesPreserved(t *testing.T) {
	t.Parallel()

	l := newCountingLocator()
	l.add("java/lang/Object", "")
	l.add("demo/IBase", "java/lang/Object")
	l.add("demo/IA", "java/lang/Object", "demo/IBase")
	l.add("demo/IB", "java/lang/Object", "demo/IBase")
	l.add("demo/Both", "java/lang/Object", "demo/IA", "demo/IB")

	r := newResolver(l)
	seq, err := r.TransitiveInterfaces(context.Background(), tn("demo/Both"), nil)
	require.NoError(t, err)

	// Declaration-then-ancestor order, with IBase repeated through both arms
	// of the diamond.
	assert.Equal(t, domain.NewTypeNames([]string{
		"demo/IA", "demo/IBase",
		"demo/IB", "demo/IBase",
	}), seq)
}

func TestTransitiveInterfaces_EmptyShared(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	catSeq, err := r.TransitiveInterfaces(ctx, tn("demo/Cat"), nil)
	require.NoError(t, err)
	assert.Empty(t, catSeq)

	objSeq, err := r.TransitiveInterfaces(ctx, domain.RootClass, nil)
	require.NoError(t, err)
	assert.Empty(t, objSeq)
}

func TestResolver_ConcurrentQueries(t *testing.T) {
	t.Parallel()

	r := newResolver(zoo())
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := r.IsAssignableFrom(ctx, tn("java/lang/Comparable"), tn("demo/Dog"), nil)
			assert.NoError(t, err)
			assert.True(t, ok)

			got, err := r.CommonSuperClass(ctx, tn("demo/Dog"), tn("demo/Cat"), nil)
			assert.NoError(t, err)
			assert.Equal(t, tn("demo/Animal"), got)
		}()
	}
	wg.Wait()
}
