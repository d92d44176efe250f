package atlas_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/atlas"
	"github.com/aretw0/atlas/pkg/adapters/memory"
	"github.com/aretw0/atlas/pkg/domain"
	"github.com/aretw0/atlas/pkg/exercise"
	"github.com/aretw0/atlas/pkg/observability"
	"github.com/aretw0/atlas/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureLoader() *memory.Loader {
	return memory.NewFromViews(
		[]domain.State{
			{Name: "Alabama", Capital: "Montgomery"},
			{Name: "Arizona", Capital: "Phoenix"},
			{Name: "Colorado", Capital: "Denver"},
		},
		[]domain.Artwork{
			{Title: "X", ArtistName: "Auguste Rodin", Style: "Sculpture"},
			{Title: "Y", ArtistName: "Monet", Style: "Painting"},
		},
	)
}

func TestWorkbook_BundledData(t *testing.T) {
	wb, err := atlas.New()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, wb.Load(ctx))

	results, err := wb.RunAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 7)

	sentences := results[0].Value.([]string)
	assert.Len(t, sentences, 50)
	assert.Equal(t, "Montgomery is the capital of Alabama.", sentences[0])

	histogram := results[4].Value.(map[string]int)
	total := 0
	for _, n := range histogram {
		total += n
	}
	assert.Equal(t, 50, total)
	assert.Equal(t, 8, histogram["M"])
	assert.Equal(t, 8, histogram["N"])

	rodin := results[6].Value.([]domain.Record)
	require.NotEmpty(t, rodin)
	for _, r := range rodin {
		assert.Equal(t, "Auguste Rodin", r["artistName"])
	}

	assert.NoError(t, wb.Validate(ctx))
}

func TestWorkbook_NotLoaded(t *testing.T) {
	wb, err := atlas.New(atlas.WithLoader(fixtureLoader()))
	require.NoError(t, err)

	_, err = wb.Run(context.Background(), "capitals")
	assert.ErrorIs(t, err, atlas.ErrNotLoaded)
	assert.ErrorIs(t, wb.Validate(context.Background()), atlas.ErrNotLoaded)
}

func TestWorkbook_RunAll_ContinuesAfterFailure(t *testing.T) {
	loader := memory.NewLoader(map[string][]domain.Record{
		domain.DatasetStates: {{"state": "Ohio"}}, // no capital
		domain.DatasetArt:    {{"title": "X", "artistName": "Auguste Rodin", "style": "Sculpture"}},
	})

	var finished []string
	wb, err := atlas.New(
		atlas.WithLoader(loader),
		atlas.WithLifecycleHooks(domain.LifecycleHooks{
			OnExerciseFinish: func(_ context.Context, e *domain.ExerciseEvent) {
				finished = append(finished, e.Exercise)
			},
		}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, wb.Load(ctx))

	results, err := wb.RunAll(ctx, "capitals", "state-names", "rodin")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	assert.Equal(t, []string{"Ohio"}, results[1].Value)
	assert.Len(t, results[2].Value, 1)
	assert.Equal(t, []string{"capitals", "state-names", "rodin"}, finished)

	var aggr *schema.AggregateError
	err = wb.Validate(ctx)
	require.True(t, errors.As(err, &aggr))
	assert.Equal(t, domain.DatasetStates, aggr.Dataset)
}

func TestWorkbook_StrictSchemas(t *testing.T) {
	extra := map[string]schema.Schema{
		domain.DatasetStates: {"abbreviation": schema.String()},
	}
	wb, err := atlas.New(atlas.WithLoader(fixtureLoader()), atlas.WithSchemas(extra, true))
	require.NoError(t, err)

	err = wb.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Equal(t, "abbreviation:string, capital:string, state:string", wb.Schema(domain.DatasetStates).Describe())
}

func TestWorkbook_LoadError(t *testing.T) {
	loader := memory.NewLoader(map[string][]domain.Record{domain.DatasetStates: {}})
	wb, err := atlas.New(atlas.WithLoader(loader))
	require.NoError(t, err)

	err = wb.Load(context.Background())
	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, domain.DatasetArt, loadErr.Dataset)
}

func TestWorkbook_CustomRegistry(t *testing.T) {
	reg := exercise.NewRegistry()
	require.NoError(t, reg.Register(exercise.Exercise{
		Name:    "count-states",
		Dataset: domain.DatasetStates,
		Run: func(_ context.Context, ds domain.Datasets) (any, error) {
			return len(ds.States), nil
		},
	}))

	wb, err := atlas.New(atlas.WithLoader(fixtureLoader()), atlas.WithRegistry(reg))
	require.NoError(t, err)
	require.NoError(t, wb.Load(context.Background()))

	res, err := wb.Run(context.Background(), "count-states")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Value)

	_, err = wb.Run(context.Background(), "capitals")
	assert.ErrorIs(t, err, exercise.ErrNotFound)
}

func TestRunner(t *testing.T) {
	wb, err := atlas.New(atlas.WithLoader(fixtureLoader()))
	require.NoError(t, err)

	var buf bytes.Buffer
	r := atlas.NewRunner()
	r.Output = &buf

	require.NoError(t, r.Run(context.Background(), wb, "initials", "styles"))
	assert.Equal(t, "# initials\n{\n  \"A\": 2,\n  \"C\": 1\n}\n# styles\n[\n  \"Sculpture\",\n  \"Painting\"\n]\n", buf.String())
}

func TestWorkbook_WithMetrics(t *testing.T) {
	m := observability.NewMetrics()
	wb, err := atlas.New(atlas.WithLoader(fixtureLoader()), atlas.WithMetrics(m))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, wb.Load(ctx))
	_, err = wb.RunAll(ctx, "capitals", "rodin")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `atlas_exercise_runs_total{exercise="capitals",status="ok"} 1`)
	assert.Contains(t, body, `atlas_exercise_runs_total{exercise="rodin",status="ok"} 1`)
	assert.Contains(t, body, `atlas_dataset_records{dataset="states"} 3`)
}
