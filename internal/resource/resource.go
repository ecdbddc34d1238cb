// Package resource defines the interview-preparation resource model: the
// Resource and StudyPlan values and the closed vocabularies that classify them.
// Values are validated when constructed and cannot be changed afterwards.
package resource

import (
	"github.com/google/uuid"
)

// Resource is a single interview-preparation resource.
// Construct it with New; the zero value is not a valid resource.
type Resource struct {
	id          uuid.UUID
	title       string
	description string
	url         string
	typ         Type
	category    Category
	difficulty  Difficulty
	free        bool
	price       string
	rating      float64
	hasRating   bool
	tags        []string
}

// input is the validated form of a Resource before it is frozen.
type input struct {
	Title       string     `json:"title"         validate:"required"`
	Description string     `json:"description"`
	URL         string     `json:"url"           validate:"httpurl"`
	Type        Type       `json:"resource_type" validate:"resourcetype"`
	Category    Category   `json:"category"      validate:"category"`
	Difficulty  Difficulty `json:"difficulty"    validate:"omitempty,difficulty"`
	Free        bool       `json:"is_free"`
	Price       string     `json:"price"`
	Rating      *float64   `json:"rating"        validate:"omitempty,gt=0,lte=5"`
	Tags        []string   `json:"tags"`
}

// Option sets an optional Resource field.
type Option func(*input)

// WithDifficulty sets the difficulty level.
func WithDifficulty(d Difficulty) Option {
	return func(in *input) { in.Difficulty = d }
}

// WithFree sets whether the resource is free. Resources are free by default.
func WithFree(free bool) Option {
	return func(in *input) { in.Free = free }
}

// WithPrice sets the advisory price text. It does not change is_free.
func WithPrice(price string) Option {
	return func(in *input) { in.Price = price }
}

// Paid marks the resource as not free and records its price.
func Paid(price string) Option {
	return func(in *input) {
		in.Free = false
		in.Price = price
	}
}

// WithRating sets the user rating, which must be in (0, 5].
func WithRating(rating float64) Option {
	return func(in *input) { in.Rating = &rating }
}

// WithTags sets the tags. Order and duplicates are kept as given.
func WithTags(tags ...string) Option {
	return func(in *input) { in.Tags = append([]string(nil), tags...) }
}

// New validates its arguments and returns a Resource. It fails with a
// *ValidationError (or ValidationErrors when several fields are wrong) if
// the URL scheme is not http or https, the rating is outside (0, 5], the
// title is empty, or an enum value is not in its closed set.
func New(title, description, url string, typ Type, category Category, opts ...Option) (Resource, error) {
	in := input{
		Title:       title,
		Description: description,
		URL:         url,
		Type:        typ,
		Category:    category,
		Free:        true,
	}
	for _, opt := range opts {
		opt(&in)
	}

	if err := check(in); err != nil {
		return Resource{}, err
	}

	r := Resource{
		id:          IDFor(in.URL),
		title:       in.Title,
		description: in.Description,
		url:         in.URL,
		typ:         in.Type,
		category:    in.Category,
		difficulty:  in.Difficulty,
		free:        in.Free,
		price:       in.Price,
		tags:        []string{},
	}
	if in.Rating != nil {
		r.rating = *in.Rating
		r.hasRating = true
	}
	if len(in.Tags) > 0 {
		r.tags = in.Tags
	}
	return r, nil
}

// MustNew is like New but panics on invalid input. It is intended for
// resources declared as literals in source.
func MustNew(title, description, url string, typ Type, category Category, opts ...Option) Resource {
	r, err := New(title, description, url, typ, category, opts...)
	if err != nil {
		panic("resource " + title + ": " + err.Error())
	}
	return r
}

// IDFor returns the stable identifier for a resource URL.
func IDFor(url string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url))
}

// ID returns the identifier derived from the resource URL.
func (r Resource) ID() uuid.UUID { return r.id }

// Title returns the resource title.
func (r Resource) Title() string { return r.title }

// Description returns the resource description.
func (r Resource) Description() string { return r.description }

// URL returns the resource URL.
func (r Resource) URL() string { return r.url }

// Type returns the resource type.
func (r Resource) Type() Type { return r.typ }

// Category returns the resource category.
func (r Resource) Category() Category { return r.category }

// Difficulty returns the difficulty level and whether one was specified.
func (r Resource) Difficulty() (Difficulty, bool) {
	return r.difficulty, r.difficulty != ""
}

// IsFree reports whether the resource is free.
func (r Resource) IsFree() bool { return r.free }

// Price returns the advisory price text and whether one was given.
func (r Resource) Price() (string, bool) {
	return r.price, r.price != ""
}

// Rating returns the user rating and whether one was given.
func (r Resource) Rating() (float64, bool) {
	return r.rating, r.hasRating
}

// Tags returns a copy of the resource tags in insertion order.
func (r Resource) Tags() []string {
	return append([]string{}, r.tags...)
}

// HasTag reports whether any tag equals tag exactly.
func (r Resource) HasTag(tag string) bool {
	for _, t := range r.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Equal reports whether two resources hold the same field values.
func (r Resource) Equal(o Resource) bool {
	if r.id != o.id || r.title != o.title || r.description != o.description || r.url != o.url ||
		r.typ != o.typ || r.category != o.category || r.difficulty != o.difficulty ||
		r.free != o.free || r.price != o.price || r.rating != o.rating || r.hasRating != o.hasRating ||
		len(r.tags) != len(o.tags) {
		return false
	}
	for i := range r.tags {
		if r.tags[i] != o.tags[i] {
			return false
		}
	}
	return true
}
