package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/monju/internal/common"
	"github.com/dmitrijs2005/monju/internal/config"
	"github.com/dmitrijs2005/monju/internal/logging"
	"github.com/dmitrijs2005/monju/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

type fakeES struct {
	// Add
	addTopic string
	addText  string
	addTags  []string
	addOut   *models.Entry
	addErr   error

	// List
	listTopic string
	listOut   []models.Entry
	listErr   error

	// Search
	searchQuery string
	searchOut   []models.Entry
	searchErr   error

	// Vote
	voteID    int
	voteDelta int
	voteOut   *models.Entry
	voteErr   error
}

func (f *fakeES) Add(ctx context.Context, topic, text string, tags []string) (*models.Entry, error) {
	f.addTopic, f.addText, f.addTags = topic, text, tags
	return f.addOut, f.addErr
}

func (f *fakeES) List(ctx context.Context, topic string) ([]models.Entry, error) {
	f.listTopic = topic
	return f.listOut, f.listErr
}

func (f *fakeES) Search(ctx context.Context, query string) ([]models.Entry, error) {
	f.searchQuery = query
	return f.searchOut, f.searchErr
}

func (f *fakeES) Vote(ctx context.Context, id int, delta int) (*models.Entry, error) {
	f.voteID, f.voteDelta = id, delta
	return f.voteOut, f.voteErr
}

func newTestApp(es *fakeES) (*App, *bytes.Buffer, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out, errOut bytes.Buffer
	return &App{
		config:       cfg,
		entryService: es,
		log:          logging.Discard(),
		out:          &out,
		errOut:       &errOut,
	}, &out, &errOut
}

// ------------ tests ------------

func TestAdd_PrintsConfirmation(t *testing.T) {
	es := &fakeES{addOut: &models.Entry{ID: 4, Topic: "go", Text: "channels"}}
	app, out, _ := newTestApp(es)

	code := app.Run(context.Background(), []string{"add", "go", " channels ", "--tags", "a,b", "--tags", "c"})

	require.Equal(t, 0, code)
	assert.Equal(t, "go", es.addTopic)
	assert.Equal(t, " channels ", es.addText, "trimming is the service's job")
	assert.Equal(t, []string{"a", "b", "c"}, es.addTags)
	assert.Equal(t, "Added: #4 [go] channels\n", out.String())
}

func TestAdd_RequiresTopicAndText(t *testing.T) {
	app, out, errOut := newTestApp(&fakeES{})

	code := app.Run(context.Background(), []string{"add", "only-topic"})

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
}

func TestList_PrintsEntriesAndPassesTopic(t *testing.T) {
	es := &fakeES{listOut: []models.Entry{
		{ID: 2, Topic: "go", Text: "b", Votes: 3},
		{ID: 1, Topic: "go", Text: "a", Votes: -1},
	}}
	app, out, _ := newTestApp(es)

	code := app.Run(context.Background(), []string{"list", "--topic", "go"})

	require.Equal(t, 0, code)
	assert.Equal(t, "go", es.listTopic)
	assert.Equal(t, "#2 [go] b (votes=3)\n#1 [go] a (votes=-1)\n", out.String())
}

func TestList_EmptyStillSucceeds(t *testing.T) {
	app, out, _ := newTestApp(&fakeES{})

	code := app.Run(context.Background(), []string{"list"})

	assert.Equal(t, 0, code)
	assert.Empty(t, out.String())
}

func TestSearch_PrintsMatches(t *testing.T) {
	es := &fakeES{searchOut: []models.Entry{{ID: 7, Topic: "ai", Text: "hello", Votes: 0}}}
	app, out, _ := newTestApp(es)

	code := app.Run(context.Background(), []string{"search", "HeLLo"})

	require.Equal(t, 0, code)
	assert.Equal(t, "HeLLo", es.searchQuery)
	assert.Equal(t, "#7 [ai] hello (votes=0)\n", out.String())
}

func TestVote_UpDown(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		delta int
	}{
		{"up by default", []string{"vote", "3"}, 1},
		{"down flag", []string{"vote", "3", "--down"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := &fakeES{voteOut: &models.Entry{ID: 3, Votes: 5 + tt.delta}}
			app, out, errOut := newTestApp(es)

			code := app.Run(context.Background(), tt.args)

			require.Equal(t, 0, code)
			assert.Equal(t, 3, es.voteID)
			assert.Equal(t, tt.delta, es.voteDelta)
			assert.Equal(t, fmt.Sprintf("Updated: #3 votes=%d\n", 5+tt.delta), out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestVote_NotFoundGoesToStderrAndExitsZero(t *testing.T) {
	es := &fakeES{voteErr: fmt.Errorf("entry #999: %w", common.ErrorNotFound)}
	app, out, errOut := newTestApp(es)

	code := app.Run(context.Background(), []string{"vote", "999"})

	assert.Equal(t, 0, code)
	assert.Empty(t, out.String())
	assert.Equal(t, "entry #999 not found\n", errOut.String())
}

func TestVote_InvalidID(t *testing.T) {
	app, _, errOut := newTestApp(&fakeES{})

	code := app.Run(context.Background(), []string{"vote", "abc"})

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), `invalid entry id "abc"`)
}

func TestStorageErrorIsFatal(t *testing.T) {
	es := &fakeES{listErr: errors.New("load entries: permission denied")}
	app, _, errOut := newTestApp(es)

	code := app.Run(context.Background(), []string{"list"})

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: load entries: permission denied\n", errOut.String())
}

func TestGlobalFlagsAreAccepted(t *testing.T) {
	app, _, _ := newTestApp(&fakeES{})

	code := app.Run(context.Background(), []string{"-d", "kb.json", "--log-level", "debug", "list"})

	assert.Equal(t, 0, code)
}

func TestVersion(t *testing.T) {
	app, out, _ := newTestApp(&fakeES{})

	code := app.Run(context.Background(), []string{"version"})

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Build version:")
}

func runEndToEnd(t *testing.T, cfg *config.Config, args ...string) (string, string, int) {
	t.Helper()
	ctx := context.Background()

	app, err := NewApp(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	var out, errOut bytes.Buffer
	app.out, app.errOut = &out, &errOut

	code := app.Run(ctx, args)
	return out.String(), errOut.String(), code
}

func TestEndToEnd_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.LoadDefaults()
			cfg.Backend = backend
			cfg.DataFile = filepath.Join(t.TempDir(), "data", "knowledge."+backend)

			out, _, code := runEndToEnd(t, cfg, "add", "go", "  errors wrap  ", "--tags", "idioms")
			require.Equal(t, 0, code)
			assert.Equal(t, "Added: #1 [go] errors wrap\n", out)

			out, _, code = runEndToEnd(t, cfg, "add", "ai", "Hello embeddings")
			require.Equal(t, 0, code)
			assert.Equal(t, "Added: #2 [ai] Hello embeddings\n", out)

			out, _, code = runEndToEnd(t, cfg, "vote", "2")
			require.Equal(t, 0, code)
			assert.Equal(t, "Updated: #2 votes=1\n", out)

			out, _, code = runEndToEnd(t, cfg, "list")
			require.Equal(t, 0, code)
			assert.Equal(t, "#2 [ai] Hello embeddings (votes=1)\n#1 [go] errors wrap (votes=0)\n", out)

			out, _, code = runEndToEnd(t, cfg, "search", "ERRORS")
			require.Equal(t, 0, code)
			assert.Equal(t, "#1 [go] errors wrap (votes=0)\n", out)

			out, errOut, code := runEndToEnd(t, cfg, "vote", "42", "--down")
			require.Equal(t, 0, code)
			assert.Empty(t, out)
			assert.Equal(t, "entry #42 not found\n", errOut)

			_, err := os.Stat(cfg.DataFile)
			require.NoError(t, err)
		})
	}
}
