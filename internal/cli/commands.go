package cli

import (
	"context"
	"fmt"
)

// Resources lists the selectable resources. Admin-only pages are hidden from
// sessions without an admin role; the backend rejects access regardless.
func (a *App) Resources() error {
	for _, name := range a.order {
		p := a.pages[name]
		if p.adminOnly() && (a.session == nil || !a.session.IsAdmin()) {
			continue
		}
		marker := " "
		if name == a.current {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s\n", marker, name)
	}
	return nil
}

// Use selects the resource subsequent commands act on.
func (a *App) Use(name string) error {
	p, ok := a.pages[name]
	if !ok {
		a.notifier.Error("unknown resource: " + name)
		return fmt.Errorf("unknown resource: %s", name)
	}
	if p.adminOnly() && (a.session == nil || !a.session.IsAdmin()) {
		a.notifier.Error("admin role required for " + name)
		return fmt.Errorf("admin role required")
	}
	a.current = name
	return nil
}

// List refetches the selected collection and renders the first page of it.
func (a *App) List(ctx context.Context) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	if err := p.refresh(ctx); err != nil {
		return err
	}
	p.render(a.out)
	return nil
}

// Search filters the already-fetched rows; no request is made.
func (a *App) Search(q string) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	p.search(q)
	p.render(a.out)
	return nil
}

// Sort orders by a column key; repeating the key flips the direction.
func (a *App) Sort(key string) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	p.sortBy(key)
	p.render(a.out)
	return nil
}

// GoTo moves to the given page of the filtered set.
func (a *App) GoTo(n int) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	p.goTo(n)
	p.render(a.out)
	return nil
}

func (a *App) Show(ctx context.Context, id int64) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return p.show(ctx, id)
}

func (a *App) Add(ctx context.Context) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return p.add(ctx)
}

func (a *App) Edit(ctx context.Context, id int64) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return p.edit(ctx, id)
}

func (a *App) Delete(ctx context.Context, id int64) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return p.remove(ctx, id)
}

func (a *App) Download(ctx context.Context, id int64) error {
	p, err := a.currentPage()
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return p.download(ctx, id)
}

// Ack clears the pending error marker; called by the REPL once the marker has
// been shown in the prompt.
func (a *App) Ack() {
	a.notifier.Ack()
}
