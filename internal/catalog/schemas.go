package catalog

import (
	"github.com/pressroomhq/pressroom-cli/internal/form"
	"github.com/pressroomhq/pressroom-cli/internal/models"
	"github.com/pressroomhq/pressroom-cli/internal/view"
)

func Articles() Schema[models.Article] {
	return Schema[models.Article]{
		Resource:   "articles",
		Title:      "article",
		ID:         func(a models.Article) int64 { return a.ID },
		FileField:  "image",
		Attachment: "image",
		Columns: []view.Column[models.Article]{
			{Key: "title", Title: "Title", Value: func(a models.Article) string { return a.Title }, Searchable: true},
			{Key: "writer", Title: "Writer", Value: func(a models.Article) string { return a.WriterName }, Searchable: true},
			{Key: "category", Title: "Category", Value: func(a models.Article) string { return a.CategoryName }, Searchable: true},
			{Key: "published", Title: "Published", Value: func(a models.Article) string { return a.PublishedAt }},
		},
		Fields: func() []form.Field[models.Article] {
			return []form.Field[models.Article]{
				{Name: "title", Label: "Title", Kind: form.Text, Required: true,
					Get: func(a *models.Article) string { return a.Title },
					Set: func(a *models.Article, v string) { a.Title = v }},
				{Name: "slug", Label: "Slug", Kind: form.Text, SlugOf: "title",
					Get: func(a *models.Article) string { return a.Slug },
					Set: func(a *models.Article, v string) { a.Slug = v }},
				{Name: "body", Label: "Body", Kind: form.Multiline, Required: true,
					Get: func(a *models.Article) string { return a.Body },
					Set: func(a *models.Article, v string) { a.Body = v }},
				{Name: "writer", Label: "Writer", Kind: form.Select, Required: true,
					Ref: &form.Reference[models.Article]{
						Resource: "writers",
						GetID:    func(a *models.Article) int64 { return a.WriterID },
						SetID:    func(a *models.Article, id int64) { a.WriterID = id },
						SetName:  func(a *models.Article, n string) { a.WriterName = n },
					}},
				{Name: "category", Label: "Category", Kind: form.Select,
					Ref: &form.Reference[models.Article]{
						Resource: "categories",
						GetID:    func(a *models.Article) int64 { return a.CategoryID },
						SetID:    func(a *models.Article, id int64) { a.CategoryID = id },
						SetName:  func(a *models.Article, n string) { a.CategoryName = n },
					}},
				{Name: "publishedAt", Label: "Published at", Kind: form.Date,
					Get: func(a *models.Article) string { return a.PublishedAt },
					Set: func(a *models.Article, v string) { a.PublishedAt = v }},
				{Name: "image", Label: "Image", Kind: form.File,
					Get: func(a *models.Article) string { return a.Image }},
			}
		},
	}
}

func Books() Schema[models.Book] {
	return Schema[models.Book]{
		Resource:   "books",
		Title:      "book",
		ID:         func(b models.Book) int64 { return b.ID },
		FileField:  "coverImage",
		Attachment: "cover",
		Columns: []view.Column[models.Book]{
			{Key: "title", Title: "Title", Value: func(b models.Book) string { return b.Title }, Searchable: true},
			{Key: "writer", Title: "Writer", Value: func(b models.Book) string { return b.WriterName }, Searchable: true},
			{Key: "translator", Title: "Translator", Value: func(b models.Book) string { return b.TranslatorName }, Searchable: true},
			{Key: "category", Title: "Category", Value: func(b models.Book) string { return b.CategoryName }},
		},
		Fields: func() []form.Field[models.Book] {
			return []form.Field[models.Book]{
				{Name: "title", Label: "Title", Kind: form.Text, Required: true,
					Get: func(b *models.Book) string { return b.Title },
					Set: func(b *models.Book, v string) { b.Title = v }},
				{Name: "description", Label: "Description", Kind: form.Multiline,
					Get: func(b *models.Book) string { return b.Description },
					Set: func(b *models.Book, v string) { b.Description = v }},
				{Name: "writer", Label: "Writer", Kind: form.Select, Required: true,
					Ref: &form.Reference[models.Book]{
						Resource: "writers",
						GetID:    func(b *models.Book) int64 { return b.WriterID },
						SetID:    func(b *models.Book, id int64) { b.WriterID = id },
						SetName:  func(b *models.Book, n string) { b.WriterName = n },
					}},
				{Name: "translator", Label: "Translator", Kind: form.Select,
					Ref: &form.Reference[models.Book]{
						Resource: "translators",
						GetID:    func(b *models.Book) int64 { return b.TranslatorID },
						SetID:    func(b *models.Book, id int64) { b.TranslatorID = id },
						SetName:  func(b *models.Book, n string) { b.TranslatorName = n },
					}},
				{Name: "category", Label: "Category", Kind: form.Select,
					Ref: &form.Reference[models.Book]{
						Resource: "categories",
						GetID:    func(b *models.Book) int64 { return b.CategoryID },
						SetID:    func(b *models.Book, id int64) { b.CategoryID = id },
						SetName:  func(b *models.Book, n string) { b.CategoryName = n },
					}},
				{Name: "coverImage", Label: "Cover image", Kind: form.File,
					Get: func(b *models.Book) string { return b.CoverImage }},
			}
		},
	}
}

func Events() Schema[models.Event] {
	return Schema[models.Event]{
		Resource:   "events",
		Title:      "event",
		ID:         func(e models.Event) int64 { return e.ID },
		FileField:  "image",
		Attachment: "image",
		Columns: []view.Column[models.Event]{
			{Key: "title", Title: "Title", Value: func(e models.Event) string { return e.Title }, Searchable: true},
			{Key: "location", Title: "Location", Value: func(e models.Event) string { return e.Location }, Searchable: true},
			{Key: "starts", Title: "Starts", Value: func(e models.Event) string { return e.StartsAt }},
			{Key: "ends", Title: "Ends", Value: func(e models.Event) string { return e.EndsAt }},
		},
		Fields: func() []form.Field[models.Event] {
			return []form.Field[models.Event]{
				{Name: "title", Label: "Title", Kind: form.Text, Required: true,
					Get: func(e *models.Event) string { return e.Title },
					Set: func(e *models.Event, v string) { e.Title = v }},
				{Name: "description", Label: "Description", Kind: form.Multiline,
					Get: func(e *models.Event) string { return e.Description },
					Set: func(e *models.Event, v string) { e.Description = v }},
				{Name: "location", Label: "Location", Kind: form.Text,
					Get: func(e *models.Event) string { return e.Location },
					Set: func(e *models.Event, v string) { e.Location = v }},
				{Name: "startsAt", Label: "Starts at", Kind: form.Date, Required: true,
					Get: func(e *models.Event) string { return e.StartsAt },
					Set: func(e *models.Event, v string) { e.StartsAt = v }},
				{Name: "endsAt", Label: "Ends at", Kind: form.Date,
					Get: func(e *models.Event) string { return e.EndsAt },
					Set: func(e *models.Event, v string) { e.EndsAt = v }},
				{Name: "image", Label: "Image", Kind: form.File,
					Get: func(e *models.Event) string { return e.Image }},
			}
		},
	}
}

func Questions() Schema[models.Question] {
	return Schema[models.Question]{
		Resource: "questions",
		Title:    "question",
		ID:       func(q models.Question) int64 { return q.ID },
		Columns: []view.Column[models.Question]{
			{Key: "title", Title: "Title", Value: func(q models.Question) string { return q.Title }, Searchable: true},
			{Key: "topic", Title: "Topic", Value: func(q models.Question) string { return q.TopicName }, Searchable: true},
			{Key: "slug", Title: "Slug", Value: func(q models.Question) string { return q.Slug }},
		},
		Fields: func() []form.Field[models.Question] {
			return []form.Field[models.Question]{
				{Name: "title", Label: "Title", Kind: form.Text, Required: true,
					Get: func(q *models.Question) string { return q.Title },
					Set: func(q *models.Question, v string) { q.Title = v }},
				{Name: "slug", Label: "Slug", Kind: form.Text, SlugOf: "title",
					Get: func(q *models.Question) string { return q.Slug },
					Set: func(q *models.Question, v string) { q.Slug = v }},
				{Name: "answer", Label: "Answer", Kind: form.Multiline, Required: true,
					Get: func(q *models.Question) string { return q.Answer },
					Set: func(q *models.Question, v string) { q.Answer = v }},
				{Name: "topic", Label: "Topic", Kind: form.Select, Required: true,
					Ref: &form.Reference[models.Question]{
						Resource: "topics",
						GetID:    func(q *models.Question) int64 { return q.TopicID },
						SetID:    func(q *models.Question, id int64) { q.TopicID = id },
						SetName:  func(q *models.Question, n string) { q.TopicName = n },
					}},
			}
		},
	}
}

func Writers() Schema[models.Writer] {
	return Schema[models.Writer]{
		Resource:   "writers",
		Title:      "writer",
		ID:         func(w models.Writer) int64 { return w.ID },
		FileField:  "image",
		Attachment: "image",
		Columns: []view.Column[models.Writer]{
			{Key: "name", Title: "Name", Value: func(w models.Writer) string { return w.Name }, Searchable: true},
			{Key: "bio", Title: "Bio", Value: func(w models.Writer) string { return w.Bio }},
		},
		Fields: func() []form.Field[models.Writer] {
			return []form.Field[models.Writer]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(w *models.Writer) string { return w.Name },
					Set: func(w *models.Writer, v string) { w.Name = v }},
				{Name: "bio", Label: "Bio", Kind: form.Multiline,
					Get: func(w *models.Writer) string { return w.Bio },
					Set: func(w *models.Writer, v string) { w.Bio = v }},
				{Name: "image", Label: "Photo", Kind: form.File,
					Get: func(w *models.Writer) string { return w.Photo }},
			}
		},
	}
}

func Translators() Schema[models.Translator] {
	return Schema[models.Translator]{
		Resource:   "translators",
		Title:      "translator",
		ID:         func(tr models.Translator) int64 { return tr.ID },
		FileField:  "image",
		Attachment: "image",
		Columns: []view.Column[models.Translator]{
			{Key: "name", Title: "Name", Value: func(tr models.Translator) string { return tr.Name }, Searchable: true},
			{Key: "bio", Title: "Bio", Value: func(tr models.Translator) string { return tr.Bio }},
		},
		Fields: func() []form.Field[models.Translator] {
			return []form.Field[models.Translator]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(tr *models.Translator) string { return tr.Name },
					Set: func(tr *models.Translator, v string) { tr.Name = v }},
				{Name: "bio", Label: "Bio", Kind: form.Multiline,
					Get: func(tr *models.Translator) string { return tr.Bio },
					Set: func(tr *models.Translator, v string) { tr.Bio = v }},
				{Name: "image", Label: "Photo", Kind: form.File,
					Get: func(tr *models.Translator) string { return tr.Photo }},
			}
		},
	}
}

func Topics() Schema[models.Topic] {
	return Schema[models.Topic]{
		Resource: "topics",
		Title:    "topic",
		ID:       func(tp models.Topic) int64 { return tp.ID },
		Columns: []view.Column[models.Topic]{
			{Key: "title", Title: "Title", Value: func(tp models.Topic) string { return tp.Title }, Searchable: true},
			{Key: "section", Title: "Section", Value: func(tp models.Topic) string { return tp.SectionName }, Searchable: true},
			{Key: "slug", Title: "Slug", Value: func(tp models.Topic) string { return tp.Slug }},
		},
		Fields: func() []form.Field[models.Topic] {
			return []form.Field[models.Topic]{
				{Name: "title", Label: "Title", Kind: form.Text, Required: true,
					Get: func(tp *models.Topic) string { return tp.Title },
					Set: func(tp *models.Topic, v string) { tp.Title = v }},
				{Name: "slug", Label: "Slug", Kind: form.Text, SlugOf: "title",
					Get: func(tp *models.Topic) string { return tp.Slug },
					Set: func(tp *models.Topic, v string) { tp.Slug = v }},
				{Name: "description", Label: "Description", Kind: form.Multiline,
					Get: func(tp *models.Topic) string { return tp.Description },
					Set: func(tp *models.Topic, v string) { tp.Description = v }},
				{Name: "section", Label: "Section", Kind: form.Select, Required: true,
					Ref: &form.Reference[models.Topic]{
						Resource: "sections",
						GetID:    func(tp *models.Topic) int64 { return tp.SectionID },
						SetID:    func(tp *models.Topic, id int64) { tp.SectionID = id },
						SetName:  func(tp *models.Topic, n string) { tp.SectionName = n },
					}},
			}
		},
	}
}

func Categories() Schema[models.Category] {
	return Schema[models.Category]{
		Resource: "categories",
		Title:    "category",
		ID:       func(c models.Category) int64 { return c.ID },
		Columns: []view.Column[models.Category]{
			{Key: "name", Title: "Name", Value: func(c models.Category) string { return c.Name }, Searchable: true},
			{Key: "group", Title: "Group", Value: func(c models.Category) string { return c.GroupName }, Searchable: true},
			{Key: "slug", Title: "Slug", Value: func(c models.Category) string { return c.Slug }},
		},
		Fields: func() []form.Field[models.Category] {
			return []form.Field[models.Category]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(c *models.Category) string { return c.Name },
					Set: func(c *models.Category, v string) { c.Name = v }},
				{Name: "slug", Label: "Slug", Kind: form.Text, SlugOf: "name",
					Get: func(c *models.Category) string { return c.Slug },
					Set: func(c *models.Category, v string) { c.Slug = v }},
				{Name: "group", Label: "Group", Kind: form.Select, Required: true,
					Ref: &form.Reference[models.Category]{
						Resource: "groups",
						GetID:    func(c *models.Category) int64 { return c.GroupID },
						SetID:    func(c *models.Category, id int64) { c.GroupID = id },
						SetName:  func(c *models.Category, n string) { c.GroupName = n },
					}},
			}
		},
	}
}

func Groups() Schema[models.Group] {
	return Schema[models.Group]{
		Resource: "groups",
		Title:    "group",
		ID:       func(g models.Group) int64 { return g.ID },
		Columns: []view.Column[models.Group]{
			{Key: "name", Title: "Name", Value: func(g models.Group) string { return g.Name }, Searchable: true},
		},
		Fields: func() []form.Field[models.Group] {
			return []form.Field[models.Group]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(g *models.Group) string { return g.Name },
					Set: func(g *models.Group, v string) { g.Name = v }},
			}
		},
	}
}

func Sections() Schema[models.Section] {
	return Schema[models.Section]{
		Resource: "sections",
		Title:    "section",
		ID:       func(s models.Section) int64 { return s.ID },
		Columns: []view.Column[models.Section]{
			{Key: "name", Title: "Name", Value: func(s models.Section) string { return s.Name }, Searchable: true},
		},
		Fields: func() []form.Field[models.Section] {
			return []form.Field[models.Section]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(s *models.Section) string { return s.Name },
					Set: func(s *models.Section, v string) { s.Name = v }},
			}
		},
	}
}

func Tags() Schema[models.Tag] {
	return Schema[models.Tag]{
		Resource: "tags",
		Title:    "tag",
		ID:       func(tg models.Tag) int64 { return tg.ID },
		Columns: []view.Column[models.Tag]{
			{Key: "tag", Title: "Tag", Value: func(tg models.Tag) string { return tg.Tag }, Searchable: true},
		},
		Fields: func() []form.Field[models.Tag] {
			return []form.Field[models.Tag]{
				{Name: "tag", Label: "Tag", Kind: form.Text, Required: true,
					Get: func(tg *models.Tag) string { return tg.Tag },
					Set: func(tg *models.Tag, v string) { tg.Tag = v }},
			}
		},
	}
}

func Languages() Schema[models.Language] {
	return Schema[models.Language]{
		Resource: "languages",
		Title:    "language",
		ID:       func(l models.Language) int64 { return l.ID },
		Columns: []view.Column[models.Language]{
			{Key: "name", Title: "Name", Value: func(l models.Language) string { return l.Name }, Searchable: true},
			{Key: "code", Title: "Code", Value: func(l models.Language) string { return l.Code }, Searchable: true},
		},
		Fields: func() []form.Field[models.Language] {
			return []form.Field[models.Language]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(l *models.Language) string { return l.Name },
					Set: func(l *models.Language, v string) { l.Name = v }},
				{Name: "code", Label: "Code", Kind: form.Text, Required: true,
					Get: func(l *models.Language) string { return l.Code },
					Set: func(l *models.Language, v string) { l.Code = v }},
			}
		},
	}
}

func Admins() Schema[models.Admin] {
	return Schema[models.Admin]{
		Resource:   "admins",
		Title:      "admin",
		ID:         func(a models.Admin) int64 { return a.ID },
		SoftDelete: true,
		AdminOnly:  true,
		Keep:       func(a models.Admin) bool { return !a.Deleted },
		Columns: []view.Column[models.Admin]{
			{Key: "name", Title: "Name", Value: func(a models.Admin) string { return a.Name }, Searchable: true},
			{Key: "email", Title: "Email", Value: func(a models.Admin) string { return a.Email }, Searchable: true},
			{Key: "role", Title: "Role", Value: func(a models.Admin) string { return a.Role }},
		},
		Fields: func() []form.Field[models.Admin] {
			return []form.Field[models.Admin]{
				{Name: "name", Label: "Name", Kind: form.Text, Required: true,
					Get: func(a *models.Admin) string { return a.Name },
					Set: func(a *models.Admin, v string) { a.Name = v }},
				{Name: "email", Label: "Email", Kind: form.Text, Required: true,
					Get: func(a *models.Admin) string { return a.Email },
					Set: func(a *models.Admin, v string) { a.Email = v }},
				{Name: "role", Label: "Role", Kind: form.Text, Required: true,
					Get: func(a *models.Admin) string { return a.Role },
					Set: func(a *models.Admin, v string) { a.Role = v }},
			}
		},
	}
}
