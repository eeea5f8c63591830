package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklib/internal/models"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func validAuthorRequest() models.AuthorRequest {
	return models.AuthorRequest{
		Name:      "Ursula K. Le Guin",
		Country:   "USA",
		BirthYear: 1929,
	}
}

func validBookRequest() models.BookRequest {
	return models.BookRequest{
		Title:    "A Wizard of Earthsea",
		AuthorID: 1,
		Year:     1968,
		Genre:    "Fantasy",
		ISBN:     "978-0-547-72202-1",
	}
}

func TestValidator_ValidAuthor(t *testing.T) {
	v := newTestValidator(t)

	details := v.Struct(validAuthorRequest())
	assert.Nil(t, details)
}

func TestValidator_ValidBook(t *testing.T) {
	v := newTestValidator(t)

	details := v.Struct(validBookRequest())
	assert.Nil(t, details)
}

func TestValidator_Author_FutureBirthYear(t *testing.T) {
	v := newTestValidator(t)

	req := validAuthorRequest()
	req.BirthYear = time.Now().Year() + 1

	details := v.Struct(req)
	require.Len(t, details, 1, "exactly one field error expected")
	assert.Equal(t, "birthYear", details[0].Field)
	assert.Contains(t, details[0].Message, "1000")
}

func TestValidator_Author_CurrentYearAllowed(t *testing.T) {
	v := newTestValidator(t)

	req := validAuthorRequest()
	req.BirthYear = time.Now().Year()

	assert.Nil(t, v.Struct(req))
}

func TestValidator_Author_CollectsAllViolations(t *testing.T) {
	v := newTestValidator(t)

	// Two required fields omitted: both must be reported in one pass.
	req := models.AuthorRequest{BirthYear: 1950}

	details := v.Struct(req)
	require.Len(t, details, 2)
	assert.Equal(t, "name", details[0].Field)
	assert.Equal(t, "country", details[1].Field)
}

func TestValidator_Author_BoundaryLengths(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		mutate    func(*models.AuthorRequest)
		wantField string
	}{
		{
			name:      "name too short",
			mutate:    func(r *models.AuthorRequest) { r.Name = "A" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(r *models.AuthorRequest) { r.Name = string(make([]byte, 101)) },
			wantField: "name",
		},
		{
			name:      "country too short",
			mutate:    func(r *models.AuthorRequest) { r.Country = "X" },
			wantField: "country",
		},
		{
			name:      "birth year before 1000",
			mutate:    func(r *models.AuthorRequest) { r.BirthYear = 999 },
			wantField: "birthYear",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAuthorRequest()
			tt.mutate(&req)

			details := v.Struct(req)
			require.Len(t, details, 1)
			assert.Equal(t, tt.wantField, details[0].Field)
		})
	}
}

func TestValidator_Book_ISBNCharacters(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"digits only", "9780547722021", true},
		{"digits and hyphens", "978-0-547-72202-1", true},
		{"letters rejected", "978-0-547-ABCDE-1", false},
		{"spaces rejected", "978 0 547", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookRequest()
			req.ISBN = tt.isbn

			details := v.Struct(req)
			if tt.valid {
				assert.Nil(t, details)
			} else {
				require.Len(t, details, 1)
				assert.Equal(t, "isbn", details[0].Field)
			}
		})
	}
}

func TestValidator_Book_MissingEverything(t *testing.T) {
	v := newTestValidator(t)

	details := v.Struct(models.BookRequest{})
	// title, authorId, year, genre, isbn: all required.
	require.Len(t, details, 5)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"title", "authorId", "year", "genre", "isbn"}, fields,
		"violations must preserve schema field order")
}

func TestValidator_Book_SingleCharTitleAllowed(t *testing.T) {
	v := newTestValidator(t)

	req := validBookRequest()
	req.Title = "V"

	assert.Nil(t, v.Struct(req))
}
