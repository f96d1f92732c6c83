package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pressroomhq/pressroom-cli/internal/api"
	"github.com/pressroomhq/pressroom-cli/internal/catalog"
	"github.com/pressroomhq/pressroom-cli/internal/config"
	"github.com/pressroomhq/pressroom-cli/internal/form"
	"github.com/pressroomhq/pressroom-cli/internal/logging"
	"github.com/pressroomhq/pressroom-cli/internal/session"
)

// App is the console application: one API client, one optional session, and a
// page per registered resource. Commands always act on the currently selected
// page.
type App struct {
	config   *config.Config
	client   *api.Client
	session  *session.Session
	reader   *bufio.Reader
	out      io.Writer
	notifier Notifier
	log      logging.Logger

	pages   map[string]resourcePage
	order   []string
	current string
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	client := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
	)

	a := &App{
		config: cfg,
		client: client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
		pages:  make(map[string]resourcePage),
	}
	a.notifier = NewConsoleNotifier(a.out)

	registerPage(a, catalog.Articles())
	registerPage(a, catalog.Books())
	registerPage(a, catalog.Events())
	registerPage(a, catalog.Questions())
	registerPage(a, catalog.Writers())
	registerPage(a, catalog.Translators())
	registerPage(a, catalog.Topics())
	registerPage(a, catalog.Categories())
	registerPage(a, catalog.Groups())
	registerPage(a, catalog.Sections())
	registerPage(a, catalog.Tags())
	registerPage(a, catalog.Languages())
	registerPage(a, catalog.Admins())

	return a
}

func registerPage[T any](a *App, schema catalog.Schema[T]) {
	p := newPage(
		schema,
		api.NewResource[T](a.client, schema.Resource),
		a.listOptions,
		a.config.PageSize,
		a.notifier,
		a.log,
		a.reader,
		a.out,
		a.config.DownloadDir,
	)
	a.pages[schema.Resource] = p
	a.order = append(a.order, schema.Resource)
}

// refEntry is the minimal shape a reference list entry decodes into. Backends
// label entries with either "name" or "title" depending on the entity.
type refEntry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

func (e refEntry) label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Title
}

// listOptions fetches one reference list and maps it to form options.
func (a *App) listOptions(ctx context.Context, resource string) ([]form.Option, error) {
	rows, err := api.NewResource[refEntry](a.client, resource).List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]form.Option, 0, len(rows))
	for _, row := range rows {
		options = append(options, form.Option{ID: row.ID, Name: row.label()})
	}
	return options, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// currentPage returns the selected page or an error telling the user to pick
// one first.
func (a *App) currentPage() (resourcePage, error) {
	if a.current == "" {
		return nil, fmt.Errorf("no resource selected (use <resource>)")
	}
	return a.pages[a.current], nil
}

// status composes the prompt suffix: who is logged in, which resource is
// selected, and a marker when an error is still pending acknowledgment.
func (a *App) status() string {
	s := ""
	if a.session != nil {
		s = a.session.String()
	}
	if a.current != "" {
		if s != "" {
			s += " "
		}
		s += a.current
	}
	if a.notifier.Pending() != "" {
		s += " [!]"
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Pressroom console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
