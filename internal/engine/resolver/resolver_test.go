package resolver_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports/mocks"
	"go.trai.ch/bindle/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type resolverTestMocks struct {
	paths     *mocks.MockPathResolver
	reader    *mocks.MockSourceReader
	collector *mocks.MockDependencyCollector
	packages  *mocks.MockPackageEnumerator
	logger    *mocks.MockLogger
}

// setupResolverTest creates a resolver over the given config and common mocks.
func setupResolverTest(t *testing.T, cfg *domain.Config) (*resolver.Resolver, resolverTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := resolverTestMocks{
		paths:     mocks.NewMockPathResolver(ctrl),
		reader:    mocks.NewMockSourceReader(ctrl),
		collector: mocks.NewMockDependencyCollector(ctrl),
		packages:  mocks.NewMockPackageEnumerator(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	r, err := resolver.New(cfg, m.paths, m.reader, m.collector, m.packages, m.logger)
	require.NoError(t, err)
	return r, m
}

// testConfig returns a minimal config rooted at an absolute path.
func testConfig() *domain.Config {
	return &domain.Config{
		Root:            "/project",
		Extensions:      []string{".js", ".json"},
		TypedExtensions: []string{".css", ".less"},
		Directories:     []string{"/project/node_modules"},
		Components:      "/project/bower_components",
	}
}

// expectSource arranges for the reader to inject the given source when the
// item with the given filename is read.
func expectSource(m resolverTestMocks, filename, source string) *gomock.Call {
	return m.reader.EXPECT().
		Read(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *domain.BundleItem) error {
			if item.Filename != filename {
				return zerr.New("unexpected read of " + item.Filename)
			}
			item.Source = source
			return nil
		})
}

func TestResolver_EntryResolvesAndBuffers(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("app", gomock.Any()).Return("/project/app.js", nil)
	expectSource(m, "/project/app.js", "var x = 1;")
	m.collector.EXPECT().HasRequire("var x = 1;").Return(false)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("app")
	err := r.Resolve(context.Background(), "", item, buffer)
	require.NoError(t, err)

	assert.Equal(t, "/project/app.js", item.Filename)
	assert.True(t, item.Script)
	assert.False(t, item.TypedSource)
	require.Equal(t, 1, buffer.Len())
	assert.Same(t, item, buffer.Items()[0])
}

func TestResolver_CacheHitSkipsResolution(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("app", gomock.Any()).Return("/project/app.js", nil).Times(1)
	expectSource(m, "/project/app.js", "done").Times(1)
	m.collector.EXPECT().HasRequire("done").Return(false)

	buffer := domain.NewBuffer()
	first := domain.NewBundleItem("app")
	require.NoError(t, r.Resolve(context.Background(), "", first, buffer))

	second := domain.NewBundleItem("app")
	require.NoError(t, r.Resolve(context.Background(), "", second, buffer))

	assert.Equal(t, "/project/app.js", second.Filename)
	assert.True(t, second.Script)
	assert.Equal(t, 1, buffer.Len(), "cached item must not be buffered again")
}

func TestResolver_ExcludedModuleStaysUnresolved(t *testing.T) {
	cfg := testConfig()
	cfg.Exclude = []string{"jquery"}
	r, _ := setupResolverTest(t, cfg)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("jquery")
	err := r.Resolve(context.Background(), "", item, buffer)
	require.NoError(t, err)

	assert.False(t, item.Resolved())
	assert.Equal(t, 0, buffer.Len())
}

func TestResolver_AliasTargetRebasedOntoRoot(t *testing.T) {
	cfg := testConfig()
	cfg.Aliases = []domain.Alias{{Name: "legacy", Target: "lib/legacy.js"}}
	r, m := setupResolverTest(t, cfg)

	expectSource(m, filepath.Join("/project", "lib", "legacy.js"), "old code")
	m.collector.EXPECT().HasRequire("old code").Return(false)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("legacy")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	assert.Equal(t, filepath.Join("/project", "lib", "legacy.js"), item.Filename)
}

func TestResolver_PackageMapPrecedesAlias(t *testing.T) {
	cfg := testConfig()
	cfg.Aliases = []domain.Alias{{Name: "widgets", Target: "lib/other.js"}}
	r, m := setupResolverTest(t, cfg)

	m.packages.EXPECT().List(gomock.Any(), cfg.Components).Return([]domain.Package{
		{Name: "widgets", Dir: "/project/bower_components/widgets", Entry: "/project/bower_components/widgets/index.js"},
	}, nil)
	r.Initialize(context.Background())

	expectSource(m, "/project/bower_components/widgets/index.js", "widgets")
	m.collector.EXPECT().HasRequire("widgets").Return(false)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("widgets")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	assert.Equal(t, "/project/bower_components/widgets/index.js", item.Filename)
}

func TestResolver_TypedSourceNotReadOrBuffered(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("./style.css", gomock.Any()).Return("/project/style.css", nil)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("./style.css")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	assert.Equal(t, "/project/style.css", item.Filename)
	assert.True(t, item.TypedSource)
	assert.False(t, item.Script)
	assert.Equal(t, 0, buffer.Len())
}

func TestResolver_WalkRecordsDependenciesInDeclarationOrder(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("app", gomock.Any()).Return("/project/app.js", nil)
	m.paths.EXPECT().Resolve("./util", gomock.Any()).Return("/project/util.js", nil)
	m.paths.EXPECT().Resolve("lodash", gomock.Any()).Return("/project/node_modules/lodash/index.js", nil)

	expectSource(m, "/project/app.js", `require('./util'); require('lodash');`)
	expectSource(m, "/project/util.js", "util")
	expectSource(m, "/project/node_modules/lodash/index.js", "lodash")

	m.collector.EXPECT().HasRequire(gomock.Any()).DoAndReturn(func(source string) bool {
		return source == `require('./util'); require('lodash');`
	}).Times(3)
	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return([]string{"./util", "lodash"}, nil)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("app")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	require.Len(t, item.Dependencies, 2)
	assert.Equal(t, "./util", item.Dependencies[0].ModuleName)
	assert.Equal(t, "lodash", item.Dependencies[1].ModuleName)
	assert.Equal(t, 3, buffer.Len())
}

func TestResolver_ExcludedDependencyDropped(t *testing.T) {
	cfg := testConfig()
	cfg.Exclude = []string{"jquery"}
	r, m := setupResolverTest(t, cfg)

	m.paths.EXPECT().Resolve("app", gomock.Any()).Return("/project/app.js", nil)
	m.paths.EXPECT().Resolve("./util", gomock.Any()).Return("/project/util.js", nil)

	expectSource(m, "/project/app.js", `require('jquery'); require('./util');`)
	expectSource(m, "/project/util.js", "util")

	m.collector.EXPECT().HasRequire(gomock.Any()).DoAndReturn(func(source string) bool {
		return source != "util"
	}).Times(2)
	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return([]string{"jquery", "./util"}, nil)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("app")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	require.Len(t, item.Dependencies, 1)
	assert.Equal(t, "./util", item.Dependencies[0].ModuleName)
	assert.Equal(t, 2, buffer.Len())
}

func TestResolver_CycleTerminates(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("./a", gomock.Any()).Return("/project/a.js", nil).Times(1)
	m.paths.EXPECT().Resolve("./b", gomock.Any()).Return("/project/b.js", nil).Times(1)

	expectSource(m, "/project/a.js", `require('./b');`)
	expectSource(m, "/project/b.js", `require('./a');`)

	m.collector.EXPECT().HasRequire(gomock.Any()).Return(true).Times(2)
	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *domain.BundleItem) ([]string, error) {
			if item.Filename == "/project/a.js" {
				return []string{"./b"}, nil
			}
			return []string{"./a"}, nil
		}).
		Times(2)

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("./a")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	assert.Equal(t, 2, buffer.Len())
	require.Len(t, item.Dependencies, 1)
	b := item.Dependencies[0]
	require.Len(t, b.Dependencies, 1)
	assert.Equal(t, "/project/a.js", b.Dependencies[0].Filename)
}

func TestResolver_SharedDependencyReadOnce(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("app", gomock.Any()).Return("/project/app.js", nil)
	m.paths.EXPECT().Resolve("./a", gomock.Any()).Return("/project/a.js", nil)
	m.paths.EXPECT().Resolve("./b", gomock.Any()).Return("/project/b.js", nil)
	// Both parents may race past the lookup cache, but the file is read once.
	m.paths.EXPECT().Resolve("./shared", gomock.Any()).Return("/project/shared.js", nil).MinTimes(1).MaxTimes(2)

	expectSource(m, "/project/app.js", "app")
	expectSource(m, "/project/a.js", "a")
	expectSource(m, "/project/b.js", "b")
	expectSource(m, "/project/shared.js", "shared").Times(1)

	m.collector.EXPECT().HasRequire(gomock.Any()).Return(true).AnyTimes()
	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *domain.BundleItem) ([]string, error) {
			switch item.Filename {
			case "/project/app.js":
				return []string{"./a", "./b"}, nil
			case "/project/a.js", "/project/b.js":
				return []string{"./shared"}, nil
			}
			return nil, nil
		}).
		AnyTimes()

	buffer := domain.NewBuffer()
	item := domain.NewBundleItem("app")
	require.NoError(t, r.Resolve(context.Background(), "", item, buffer))

	assert.Equal(t, 4, buffer.Len())
}

func TestResolver_ShimsPassedToGenericResolution(t *testing.T) {
	cfg := testConfig()
	cfg.Shim = true
	cfg.ShimDir = "/project/shims"
	r, m := setupResolverTest(t, cfg)

	m.packages.EXPECT().List(gomock.Any(), cfg.Components).Return(nil, nil)
	r.Initialize(context.Background())

	m.paths.EXPECT().
		Resolve("path", gomock.Any()).
		DoAndReturn(func(_ string, opts domain.ResolveOptions) (string, error) {
			shim, ok := opts.Shims["path"]
			require.True(t, ok)
			assert.Equal(t, filepath.Join("/project/shims", "path.js"), shim)
			return shim, nil
		})
	expectSource(m, filepath.Join("/project/shims", "path.js"), "shim")
	m.collector.EXPECT().HasRequire("shim").Return(false)

	buffer := domain.NewBuffer()
	require.NoError(t, r.Resolve(context.Background(), "", domain.NewBundleItem("path"), buffer))
}

func TestResolver_EnumerationFailureIsNonFatal(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.packages.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, zerr.New("no such directory"))
	m.logger.EXPECT().Warn(gomock.Any())
	r.Initialize(context.Background())

	m.paths.EXPECT().Resolve("app", gomock.Any()).Return("/project/app.js", nil)
	expectSource(m, "/project/app.js", "app")
	m.collector.EXPECT().HasRequire("app").Return(false)

	buffer := domain.NewBuffer()
	require.NoError(t, r.Resolve(context.Background(), "", domain.NewBundleItem("app"), buffer))
}

func TestResolver_ResolutionFailureCarriesContext(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	m.paths.EXPECT().Resolve("ghost", gomock.Any()).Return("", domain.ErrModuleNotFound)

	buffer := domain.NewBuffer()
	err := r.Resolve(context.Background(), "", domain.NewBundleItem("ghost"), buffer)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrModuleNotFound.Error())
	assert.Equal(t, 0, buffer.Len())
}

func TestResolver_InvalidAliasPattern(t *testing.T) {
	cfg := testConfig()
	cfg.Aliases = []domain.Alias{{Name: "[broken", Target: "lib/x.js"}}

	ctrl := gomock.NewController(t)
	_, err := resolver.New(
		cfg,
		mocks.NewMockPathResolver(ctrl),
		mocks.NewMockSourceReader(ctrl),
		mocks.NewMockDependencyCollector(ctrl),
		mocks.NewMockPackageEnumerator(ctrl),
		mocks.NewMockLogger(ctrl),
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidAliasPattern.Error())
}

func TestResolver_RelativeRequiresCollapseToOneKey(t *testing.T) {
	r, m := setupResolverTest(t, testConfig())

	// "./util" and "./sub/../util" from the same directory are one file.
	m.paths.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("/project/util.js", nil).Times(1)
	expectSource(m, "/project/util.js", "util").Times(1)
	m.collector.EXPECT().HasRequire("util").Return(false)

	buffer := domain.NewBuffer()
	require.NoError(t, r.Resolve(context.Background(), "/project/app.js", domain.NewBundleItem("./util"), buffer))
	require.NoError(t, r.Resolve(context.Background(), "/project/app.js", domain.NewBundleItem("./sub/../util"), buffer))

	assert.Equal(t, 1, buffer.Len())
}
