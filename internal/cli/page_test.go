package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroomhq/pressroom-cli/internal/api"
	"github.com/pressroomhq/pressroom-cli/internal/catalog"
	"github.com/pressroomhq/pressroom-cli/internal/form"
	"github.com/pressroomhq/pressroom-cli/internal/logging"
	"github.com/pressroomhq/pressroom-cli/internal/models"
)

// recordingNotifier collects feedback for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	pending   string
}

func (n *recordingNotifier) Progress(string) {}
func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}
func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
	n.pending = msg
}
func (n *recordingNotifier) Pending() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pending
}
func (n *recordingNotifier) Ack() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = ""
}

// fakeTopicClient is an in-memory resourceClient for topics.
type fakeTopicClient struct {
	rows []models.Topic

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	patchCalls  int

	lastUpdateID int64
	lastPayload  api.Payload

	getErr    error
	deleteErr error
	listErr   error
}

func (f *fakeTopicClient) List(context.Context) ([]models.Topic, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeTopicClient) Get(_ context.Context, id int64) (models.Topic, error) {
	if f.getErr != nil {
		return models.Topic{}, f.getErr
	}
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return models.Topic{}, &api.RequestError{Status: 404}
}

func (f *fakeTopicClient) Create(_ context.Context, p api.Payload) (models.Topic, error) {
	f.createCalls++
	f.lastPayload = p
	return models.Topic{}, nil
}

func (f *fakeTopicClient) Update(_ context.Context, id int64, p api.Payload) (models.Topic, error) {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastPayload = p
	return models.Topic{}, nil
}

func (f *fakeTopicClient) Patch(_ context.Context, id int64, p api.Payload) (models.Topic, error) {
	f.patchCalls++
	f.lastUpdateID = id
	f.lastPayload = p
	return models.Topic{}, nil
}

func (f *fakeTopicClient) Delete(_ context.Context, id int64) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeTopicClient) Download(context.Context, string, int64, string) (string, error) {
	return "", nil
}

func fakeRefs(_ context.Context, resource string) ([]form.Option, error) {
	if resource == "sections" {
		return []form.Option{{ID: 1, Name: "General"}, {ID: 2, Name: "Help"}}, nil
	}
	return nil, nil
}

func newTopicPage(client resourceClient[models.Topic], input string) (*page[models.Topic], *recordingNotifier) {
	n := &recordingNotifier{}
	var out bytes.Buffer
	return newPage(
		catalog.Topics(), client, fakeRefs, 10,
		n, logging.Nop(),
		bufio.NewReader(strings.NewReader(input)), &out, "download",
	), n
}

func decodeTopic(t *testing.T, p api.Payload) models.Topic {
	t.Helper()
	ct, body, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, "application/json", ct)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	var topic models.Topic
	require.NoError(t, json.Unmarshal(data, &topic))
	return topic
}

func TestPageRemove_DeclinedMakesNoCall(t *testing.T) {
	client := &fakeTopicClient{}
	p, _ := newTopicPage(client, "n\n")

	require.NoError(t, p.remove(context.Background(), 5))

	assert.Zero(t, client.deleteCalls)
	assert.Zero(t, client.patchCalls)
	assert.Zero(t, client.listCalls)
}

func TestPageRemove_ConfirmedDeletesThenRefreshes(t *testing.T) {
	client := &fakeTopicClient{}
	p, n := newTopicPage(client, "y\n")

	require.NoError(t, p.remove(context.Background(), 5))

	assert.Equal(t, 1, client.deleteCalls)
	assert.Equal(t, 1, client.listCalls)
	require.NotEmpty(t, n.successes)
	assert.Contains(t, n.successes[0], "deleted")
}

func TestPageRemove_NotFoundIsNonFatal(t *testing.T) {
	client := &fakeTopicClient{deleteErr: &api.RequestError{Status: 404}}
	p, n := newTopicPage(client, "y\n")

	require.NoError(t, p.remove(context.Background(), 9))

	assert.Equal(t, 1, client.deleteCalls)
	assert.Equal(t, 1, client.listCalls)
	require.NotEmpty(t, n.successes)
	assert.Contains(t, n.successes[0], "already gone")
}

func TestPageEdit_UnchangedFieldsSurviveRoundTrip(t *testing.T) {
	client := &fakeTopicClient{rows: []models.Topic{
		{ID: 5, Title: "Intro", Slug: "intro-custom", Description: "Basics", SectionID: 1, SectionName: "General"},
	}}
	// Enter through every prompt: title, slug, description, section.
	p, n := newTopicPage(client, "\n\n\n\n")

	require.NoError(t, p.edit(context.Background(), 5))

	require.Equal(t, 1, client.updateCalls)
	assert.Equal(t, int64(5), client.lastUpdateID)

	got := decodeTopic(t, client.lastPayload)
	assert.Equal(t, "Intro", got.Title)
	// The hand-tuned slug is not regenerated when the title did not change.
	assert.Equal(t, "intro-custom", got.Slug)
	assert.Equal(t, int64(1), got.SectionID)
	assert.Empty(t, n.errors)
}

func TestPageAdd_CreatesAndRefreshes(t *testing.T) {
	client := &fakeTopicClient{}
	input := strings.Join([]string{
		"Getting started", // title
		"",                // slug: keep the generated one
		"How to begin",    // description (multiline)
		"",                // end of multiline
		"1",               // section
	}, "\n") + "\n"
	p, n := newTopicPage(client, input)

	require.NoError(t, p.add(context.Background()))

	require.Equal(t, 1, client.createCalls)
	assert.Equal(t, 1, client.listCalls)

	got := decodeTopic(t, client.lastPayload)
	assert.Equal(t, "Getting started", got.Title)
	assert.Equal(t, "getting-started", got.Slug)
	assert.Equal(t, "How to begin", got.Description)
	assert.Equal(t, int64(1), got.SectionID)
	// The denormalized name comes from the loaded reference list.
	assert.Equal(t, "General", got.SectionName)
	assert.Empty(t, n.errors)
}

func TestPageAdd_MissingRequiredMakesNoCall(t *testing.T) {
	client := &fakeTopicClient{}
	// Enter through everything without typing a value.
	p, n := newTopicPage(client, "\n\n\n\n")

	err := p.add(context.Background())
	require.Error(t, err)

	var ve *form.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Missing, "Title")
	assert.Contains(t, ve.Missing, "Section")

	assert.Zero(t, client.createCalls)
	assert.Zero(t, client.listCalls)
	require.NotEmpty(t, n.errors)
}

func TestPageRefresh_ErrorNotifiesAndClears(t *testing.T) {
	client := &fakeTopicClient{listErr: &api.RequestError{Status: 500, Message: "db down"}}
	p, n := newTopicPage(client, "")

	require.Error(t, p.refresh(context.Background()))

	require.NotEmpty(t, n.errors)
	assert.Equal(t, "db down", n.errors[0])
	assert.Empty(t, p.view.Page())
}

// fakeAdminClient exercises the soft-delete path.
type fakeAdminClient struct {
	fakePatch   api.Payload
	patchCalls  int
	deleteCalls int
	listCalls   int
	lastID      int64
}

func (f *fakeAdminClient) List(context.Context) ([]models.Admin, error) {
	f.listCalls++
	return nil, nil
}
func (f *fakeAdminClient) Get(context.Context, int64) (models.Admin, error) {
	return models.Admin{}, nil
}
func (f *fakeAdminClient) Create(context.Context, api.Payload) (models.Admin, error) {
	return models.Admin{}, nil
}
func (f *fakeAdminClient) Update(context.Context, int64, api.Payload) (models.Admin, error) {
	return models.Admin{}, nil
}
func (f *fakeAdminClient) Patch(_ context.Context, id int64, p api.Payload) (models.Admin, error) {
	f.patchCalls++
	f.lastID = id
	f.fakePatch = p
	return models.Admin{}, nil
}
func (f *fakeAdminClient) Delete(context.Context, int64) error {
	f.deleteCalls++
	return nil
}
func (f *fakeAdminClient) Download(context.Context, string, int64, string) (string, error) {
	return "", nil
}

func TestPageRemove_SoftDeletePatchesInsteadOfDeleting(t *testing.T) {
	client := &fakeAdminClient{}
	n := &recordingNotifier{}
	var out bytes.Buffer
	p := newPage(
		catalog.Admins(), client, fakeRefs, 10,
		n, logging.Nop(),
		bufio.NewReader(strings.NewReader("y\n")), &out, "download",
	)

	require.NoError(t, p.remove(context.Background(), 3))

	assert.Zero(t, client.deleteCalls)
	require.Equal(t, 1, client.patchCalls)
	assert.Equal(t, int64(3), client.lastID)

	_, body, err := client.fakePatch.Encode()
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":true}`, string(data))

	assert.Equal(t, 1, client.listCalls)
}
