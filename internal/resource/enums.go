package resource

import (
	"strconv"
	"strings"
)

// Type is the kind of medium a resource is delivered in.
type Type string

const (
	// TypeBook is a printed or e-book.
	TypeBook Type = "book"
	// TypeVideo is a video channel or series.
	TypeVideo Type = "video"
	// TypeCourse is a structured paid or free course.
	TypeCourse Type = "course"
	// TypePlatform is a practice platform such as a problem bank.
	TypePlatform Type = "platform"
	// TypeArticle is a blog post or written guide.
	TypeArticle Type = "article"
	// TypeRepository is a source repository.
	TypeRepository Type = "repository"
	// TypeTool is a reference or visualization tool.
	TypeTool Type = "tool"
)

var types = []Type{
	TypeBook, TypeVideo, TypeCourse, TypePlatform, TypeArticle, TypeRepository, TypeTool,
}

// Types returns every resource type in declaration order.
func Types() []Type {
	return append([]Type(nil), types...)
}

// IsValid returns true if the type is one of the known types.
func (t Type) IsValid() bool {
	switch t {
	case TypeBook, TypeVideo, TypeCourse, TypePlatform, TypeArticle, TypeRepository, TypeTool:
		return true
	default:
		return false
	}
}

// String returns the display value of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType parses a type name. Matching ignores case and surrounding space.
func ParseType(s string) (Type, error) {
	t := Type(normalize(s))
	if !t.IsValid() {
		return "", &ValidationError{Field: "resource_type", Reason: "unrecognized resource type " + strconv.Quote(s)}
	}
	return t, nil
}

// Category is the interview topic a resource prepares for.
type Category string

const (
	CategoryCoding         Category = "coding"
	CategorySystemDesign   Category = "system_design"
	CategoryBehavioral     Category = "behavioral"
	CategoryAIML           Category = "ai_ml"
	CategoryDataStructures Category = "data_structures"
	CategoryAlgorithms     Category = "algorithms"
	CategoryOOP            Category = "oop"
	CategoryGeneral        Category = "general"
)

var categories = []Category{
	CategoryCoding,
	CategorySystemDesign,
	CategoryBehavioral,
	CategoryAIML,
	CategoryDataStructures,
	CategoryAlgorithms,
	CategoryOOP,
	CategoryGeneral,
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// IsValid returns true if the category is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCoding, CategorySystemDesign, CategoryBehavioral, CategoryAIML,
		CategoryDataStructures, CategoryAlgorithms, CategoryOOP, CategoryGeneral:
		return true
	default:
		return false
	}
}

// String returns the display value of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a category name. "system-design" and "System_Design"
// both parse to CategorySystemDesign.
func ParseCategory(s string) (Category, error) {
	c := Category(normalize(s))
	if !c.IsValid() {
		return "", &ValidationError{Field: "category", Reason: "unrecognized category " + strconv.Quote(s)}
	}
	return c, nil
}

// Difficulty is how much prior preparation a resource assumes.
// The zero value means the difficulty is unspecified.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

var difficulties = []Difficulty{
	DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert,
}

// Difficulties returns every difficulty level from easiest to hardest.
func Difficulties() []Difficulty {
	return append([]Difficulty(nil), difficulties...)
}

// IsValid returns true if the difficulty is one of the known levels.
// The unspecified zero value is not a valid level.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	default:
		return false
	}
}

// String returns the display value of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty parses a difficulty level name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(normalize(s))
	if !d.IsValid() {
		return "", &ValidationError{Field: "difficulty", Reason: "unrecognized difficulty " + strconv.Quote(s)}
	}
	return d, nil
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
