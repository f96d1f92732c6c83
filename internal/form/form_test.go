package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topic struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	SectionID   int64
	SectionName string
	Image       string
}

func topicFields() []Field[topic] {
	return []Field[topic]{
		{
			Name: "title", Label: "Title", Kind: Text, Required: true,
			Get: func(t *topic) string { return t.Title },
			Set: func(t *topic, v string) { t.Title = v },
		},
		{
			Name: "slug", Label: "Slug", Kind: Text, SlugOf: "title",
			Get: func(t *topic) string { return t.Slug },
			Set: func(t *topic, v string) { t.Slug = v },
		},
		{
			Name: "description", Label: "Description", Kind: Multiline,
			Get: func(t *topic) string { return t.Description },
			Set: func(t *topic, v string) { t.Description = v },
		},
		{
			Name: "section", Label: "Section", Kind: Select, Required: true,
			Ref: &Reference[topic]{
				Resource: "sections",
				GetID:    func(t *topic) int64 { return t.SectionID },
				SetID:    func(t *topic, id int64) { t.SectionID = id },
				SetName:  func(t *topic, n string) { t.SectionName = n },
			},
		},
		{
			Name: "image", Label: "Image", Kind: File,
			Get: func(t *topic) string { return t.Image },
		},
	}
}

func readyForm(t *testing.T) *Form[topic] {
	t.Helper()
	f := New(topicFields())
	f.Begin()
	return f
}

func completeForm(t *testing.T) *Form[topic] {
	t.Helper()
	f := readyForm(t)
	require.NoError(t, f.SetValue("title", "Fasting"))
	require.NoError(t, f.SetOptions("section", []Option{{ID: 1, Name: "Fiqh"}}))
	require.NoError(t, f.Select("section", 1))
	return f
}

type countingSubmit struct {
	mu    sync.Mutex
	calls int
	err   error
	block chan struct{}
}

func (c *countingSubmit) fn(ctx context.Context, rec topic, file *StagedFile) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.block != nil {
		<-c.block
	}
	return c.err
}

func (c *countingSubmit) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestSubmit_RequiredMissingMakesNoCall(t *testing.T) {
	f := readyForm(t)
	sub := &countingSubmit{}

	err := f.Submit(context.Background(), sub.fn)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"Title", "Section"}, verr.Missing)
	assert.Zero(t, sub.count())
	assert.Equal(t, Ready, f.State())
}

func TestSubmit_ValidFormCallsExactlyOnce(t *testing.T) {
	f := completeForm(t)
	sub := &countingSubmit{}

	require.NoError(t, f.Submit(context.Background(), sub.fn))
	assert.Equal(t, 1, sub.count())
	assert.Equal(t, Succeeded, f.State())
}

func TestSubmit_DoubleSubmitWhilePendingRejected(t *testing.T) {
	f := completeForm(t)
	sub := &countingSubmit{block: make(chan struct{})}

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), sub.fn) }()

	// Wait for the first submission to be in flight.
	require.Eventually(t, func() bool { return f.State() == Submitting },
		time.Second, time.Millisecond)

	err := f.Submit(context.Background(), sub.fn)
	require.ErrorIs(t, err, ErrSubmitInFlight)

	close(sub.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, sub.count())
}

func TestSubmit_FailurePreservesValuesAndAllowsRetry(t *testing.T) {
	f := completeForm(t)
	require.NoError(t, f.SetValue("description", "<p>kept</p>"))

	sub := &countingSubmit{err: errors.New("server said no")}
	err := f.Submit(context.Background(), sub.fn)
	require.Error(t, err)
	assert.Equal(t, Failed, f.State())

	rec := f.Record()
	assert.Equal(t, "Fasting", rec.Title)
	assert.Equal(t, "<p>kept</p>", rec.Description)

	// Retry succeeds.
	sub.err = nil
	require.NoError(t, f.Submit(context.Background(), sub.fn))
	assert.Equal(t, 2, sub.count())
	assert.Equal(t, Succeeded, f.State())
}

func TestSubmit_SucceededIsTerminalUntilReset(t *testing.T) {
	f := completeForm(t)
	sub := &countingSubmit{}
	require.NoError(t, f.Submit(context.Background(), sub.fn))

	err := f.Submit(context.Background(), sub.fn)
	require.ErrorIs(t, err, ErrNotReady)

	f.Reset()
	assert.Equal(t, Ready, f.State())
	assert.Equal(t, topic{}, f.Record())
}

func TestSelect_ResyncsPairedName(t *testing.T) {
	f := readyForm(t)
	require.NoError(t, f.SetOptions("section", []Option{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}))

	require.NoError(t, f.Select("section", 2))
	rec := f.Record()
	assert.Equal(t, int64(2), rec.SectionID)
	assert.Equal(t, "B", rec.SectionName)

	// The empty/placeholder option clears both.
	require.NoError(t, f.Select("section", 0))
	rec = f.Record()
	assert.Zero(t, rec.SectionID)
	assert.Equal(t, "", rec.SectionName)
}

func TestSelect_BeforeOptionsLoadedLeavesNameBlank(t *testing.T) {
	f := readyForm(t)

	require.NoError(t, f.Select("section", 2))
	rec := f.Record()
	assert.Equal(t, int64(2), rec.SectionID)
	assert.Equal(t, "", rec.SectionName)

	// Once the list arrives, the name is resynced.
	require.NoError(t, f.SetOptions("section", []Option{{ID: 2, Name: "B"}}))
	assert.Equal(t, "B", f.Record().SectionName)
}

func TestSetValue_SlugFollowsTitleChanges(t *testing.T) {
	f := readyForm(t)

	require.NoError(t, f.SetValue("title", "Hello, World!  "))
	slug, err := f.Value("slug")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", slug)

	// A manual slug edit sticks while the title is untouched.
	require.NoError(t, f.SetValue("slug", "custom-slug"))
	require.NoError(t, f.SetValue("title", "Hello, World!  ")) // unchanged value
	slug, err = f.Value("slug")
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", slug)

	// Changing the title regenerates the slug.
	require.NoError(t, f.SetValue("title", "New Title"))
	slug, err = f.Value("slug")
	require.NoError(t, err)
	assert.Equal(t, "new-title", slug)
}

func TestFileStaging(t *testing.T) {
	f := readyForm(t)

	first := StagedFile{Name: "a.png", Size: 3, ContentType: "image/png", Data: []byte("abc")}
	f.StageFile(first)
	require.NotNil(t, f.File())
	assert.Equal(t, "a.png (3 bytes, image/png)", f.File().Preview())

	// Replacing discards the previous staging.
	f.StageFile(StagedFile{Name: "b.jpg", Size: 1, ContentType: "image/jpeg", Data: []byte("x")})
	assert.Equal(t, "b.jpg", f.File().Name)

	f.ClearFile()
	assert.Nil(t, f.File())
}

func TestRequiredFile_SatisfiedByStagingOrExistingValue(t *testing.T) {
	fields := topicFields()
	for i := range fields {
		if fields[i].Name == "image" {
			fields[i].Required = true
		}
	}
	f := New(fields)
	f.Begin()
	require.NoError(t, f.SetValue("title", "T"))
	require.NoError(t, f.SetOptions("section", []Option{{ID: 1, Name: "A"}}))
	require.NoError(t, f.Select("section", 1))

	sub := &countingSubmit{}
	err := f.Submit(context.Background(), sub.fn)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Missing, "Image")

	// Staging a file satisfies the requirement.
	f.StageFile(StagedFile{Name: "a.png", Size: 1, Data: []byte("x")})
	require.NoError(t, f.Submit(context.Background(), sub.fn))
	assert.Equal(t, 1, sub.count())

	// In edit mode an already-attached image satisfies it too.
	f2 := New(fields)
	f2.BeginEdit()
	assert.Equal(t, Loading, f2.State())
	f2.FinishEdit(topic{ID: 5, Title: "T", SectionID: 1, Image: "img-5"}, nil)
	assert.Equal(t, Ready, f2.State())
	require.NoError(t, f2.Submit(context.Background(), sub.fn))
}

func TestFinishEdit_FetchFailureReturnsToIdle(t *testing.T) {
	f := New(topicFields())
	f.BeginEdit()
	f.FinishEdit(topic{}, errors.New("not found"))
	assert.Equal(t, Idle, f.State())

	err := f.Submit(context.Background(), (&countingSubmit{}).fn)
	require.ErrorIs(t, err, ErrNotReady)
}
