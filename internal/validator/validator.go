package validator

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-engagement/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article before it is stored. ID and slug are
// optional; the service fills them in when empty.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return asInvalidInput(validation.ValidateStruct(a,
		validation.Field(&a.ID,
			validation.Length(0, 64).Error("id_too_long"),
		),
		validation.Field(&a.Slug,
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.Title,
			validation.By(notBlank("title_required")),
			validation.Length(0, 300).Error("title_too_long"),
		),
		validation.Field(&a.Content,
			validation.By(notBlank("content_required")),
		),
		validation.Field(&a.ThumbnailURL,
			validation.Required.Error("thumbnail_url_required"),
			is.URL.Error("invalid_thumbnail_url"),
		),
	))
}

// ValidateComment validates the text of a new comment. Text is trimmed first,
// so whitespace-only input is reported as blank.
func (v *Validator) ValidateComment(c *domain.NewComment) error {
	if strings.TrimSpace(c.Text) == "" {
		return domain.ErrBlankComment
	}
	return asInvalidInput(validation.ValidateStruct(c,
		validation.Field(&c.Text,
			validation.By(wordCountRule(domain.MaxCommentWords)),
		),
		validation.Field(&c.UserID,
			validation.Length(0, 100).Error("user_id_too_long"),
		),
	))
}

// notBlank is validation.Required that also rejects whitespace-only strings.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, "cannot be blank")
		}
		return nil
	}
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(s))
		if wordCount > maxWords {
			return validation.NewError("text_exceeds_max_words", fmt.Sprintf("text exceeds %d words", maxWords))
		}
		return nil
	}
}

// asInvalidInput wraps ozzo validation errors so callers can match them with
// errors.Is(err, domain.ErrInvalidInput).
func asInvalidInput(err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		return &Error{Fields: ve}
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// Error reports the fields that failed validation.
type Error struct {
	Fields validation.Errors
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field].Error())
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return domain.ErrInvalidInput
}
