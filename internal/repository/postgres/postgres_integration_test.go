package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"release-control/config"
	"release-control/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	require.NoError(t, repo.Ping(ctx))

	created, err := repo.CreateProject(ctx, entities.Project{
		ID:             "p1",
		Team:           "platform",
		Owner:          "Sam",
		ProjectName:    "billing-service",
		Version:        "1.2.0",
		SourceLocation: "git.internal/platform/billing-service",
		Notes:          "rounding fix",
		Reviewer1:      "Ana",
		Reviewer2:      "Lee",
		LastEditor:     "Sam",
	})
	require.NoError(t, err)
	require.NotNil(t, created.SubmittedAt)
	require.Equal(t, entities.StageReviewer1Pending, created.Stage())

	_, err = repo.CreateProject(ctx, entities.Project{ID: "p1", Owner: "Sam", ProjectName: "dup", Version: "0.1"})
	require.ErrorIs(t, err, entities.ErrProjectExists)

	fetched, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "billing-service", fetched.ProjectName)
	require.Nil(t, fetched.Review1)
	require.Nil(t, fetched.UpdatedAt)

	_, err = repo.GetProject(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	queue, err := repo.ReviewQueue(ctx, "Ana")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, "p1", queue[0].ID)

	// Second-stage queue stays empty until the first review passes.
	queue, err = repo.ReviewQueue(ctx, "Lee")
	require.NoError(t, err)
	require.Empty(t, queue)

	passed := true
	now := time.Now().UTC()
	fetched.Review1 = &passed
	fetched.Comment1 = "looks good"
	fetched.UpdatedAt = &now
	fetched.LastEditor = "Ana"

	stored, err := repo.UpdateProject(ctx, *fetched)
	require.NoError(t, err)
	require.Equal(t, entities.StageReviewer2Pending, stored.Stage())

	queue, err = repo.ReviewQueue(ctx, "Ana")
	require.NoError(t, err)
	require.Empty(t, queue)

	queue, err = repo.ReviewQueue(ctx, "Lee")
	require.NoError(t, err)
	require.Len(t, queue, 1)

	reread, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, reread.Review1)
	require.True(t, *reread.Review1)
	require.Equal(t, "Ana", reread.LastEditor)
	require.NotNil(t, reread.UpdatedAt)

	missing := *reread
	missing.ID = "missing"
	_, err = repo.UpdateProject(ctx, missing)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func TestRepositoryListAndSummaryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	passed := true
	now := time.Now().UTC()

	seed := []entities.Project{
		{ID: "p1", Team: "platform", Owner: "Sam", ProjectName: "billing-service", Version: "1.0.0", Reviewer1: "Ana", Reviewer2: "Lee"},
		{ID: "p2", Team: "platform", Owner: "Kim", ProjectName: "ledger", Version: "2.1.0"},
		{ID: "p3", Team: "data", Owner: "Sam", ProjectName: "ingest-gateway", Version: "0.9.0", Reviewer1: "Ana"},
	}
	for _, p := range seed {
		p.LastEditor = p.Owner
		_, err := repo.CreateProject(ctx, p)
		require.NoError(t, err)
	}

	approved, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	approved.Review1 = &passed
	approved.Review2 = &passed
	approved.Approve = true
	approved.UpdatedAt = &now
	approved.LastEditor = "Root"
	_, err = repo.UpdateProject(ctx, *approved)
	require.NoError(t, err)

	all, err := repo.ListProjects(ctx, entities.ProjectFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 3)

	bySearch, err := repo.ListProjects(ctx, entities.ProjectFilter{Search: "ledger", Limit: 50})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, "p2", bySearch[0].ID)

	onlyApproved, err := repo.ListProjects(ctx, entities.ProjectFilter{Approved: &passed, Limit: 50})
	require.NoError(t, err)
	require.Len(t, onlyApproved, 1)
	require.Equal(t, entities.StageApproved, onlyApproved[0].Stage)

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)

	stageCounts := map[entities.Stage]int64{}
	for _, s := range summary.ByStage {
		stageCounts[s.Stage] = s.ProjectCount
	}
	require.Equal(t, int64(1), stageCounts[entities.StageApproved])
	require.Equal(t, int64(1), stageCounts[entities.StageOpen])
	require.Equal(t, int64(1), stageCounts[entities.StageReviewer1Pending])

	teamCounts := map[string]int64{}
	for _, s := range summary.ByTeam {
		teamCounts[s.Team] = s.ProjectCount
	}
	require.Equal(t, int64(2), teamCounts["platform"])
	require.Equal(t, int64(1), teamCounts["data"])

	require.NoError(t, repo.DeleteProject(ctx, "p2"))
	require.ErrorIs(t, repo.DeleteProject(ctx, "p2"), entities.ErrProjectNotFound)

	all, err = repo.ListProjects(ctx, entities.ProjectFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=release_control_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "release_control_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=release_control_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
