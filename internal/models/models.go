// Package models defines the entity records exchanged with the Pressroom
// backend. Records are flat: primitive fields, backend-assigned identifiers,
// denormalized <Foreign>ID/<Foreign>Name pairs, and rich text carried as
// opaque HTML strings. Binary attachments (cover images, photos) are
// referenced by an opaque identifier and fetched via binary sub-resources,
// never embedded in the record.
package models

// Article is a published piece of writing.
type Article struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Body         string `json:"body"`
	WriterID     int64  `json:"writerId"`
	WriterName   string `json:"writerName"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	PublishedAt  string `json:"publishedAt"`
	Image        string `json:"image"`
}

// Book carries both a writer and an optional translator.
type Book struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	WriterID       int64  `json:"writerId"`
	WriterName     string `json:"writerName"`
	TranslatorID   int64  `json:"translatorId"`
	TranslatorName string `json:"translatorName"`
	CategoryID     int64  `json:"categoryId"`
	CategoryName   string `json:"categoryName"`
	CoverImage     string `json:"coverImage"`
}

type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartsAt    string `json:"startsAt"`
	EndsAt      string `json:"endsAt"`
	Image       string `json:"image"`
}

// Question is a single FAQ entry; Answer is HTML markup.
type Question struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Answer    string `json:"answer"`
	TopicID   int64  `json:"topicId"`
	TopicName string `json:"topicName"`
}

type Writer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Photo string `json:"photo"`
}

type Translator struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Photo string `json:"photo"`
}

type Topic struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SectionID   int64  `json:"sectionId"`
	SectionName string `json:"sectionName"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	GroupID   int64  `json:"groupId"`
	GroupName string `json:"groupName"`
}

type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Section struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID  int64  `json:"id"`
	Tag string `json:"tag"`
}

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Admin is soft-deleted: Deleted is set instead of removing the row, and list
// views filter deleted rows out client-side.
type Admin struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Deleted bool   `json:"deleted"`
}
