package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_ToBookIgnoresClientID(t *testing.T) {
	id := int64(42)
	b := Payload{ID: &id, Title: "T", Author: "A", ISBN: "1"}.ToBook()

	assert.Zero(t, b.ID)
	assert.Equal(t, Book{Title: "T", Author: "A", ISBN: "1"}, b)
}

func TestPayloadFrom_IncludesID(t *testing.T) {
	raw, err := json.Marshal(PayloadFrom(Book{ID: 1, Title: "Novo livro", Author: "Genin", ISBN: "777"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Novo livro","author":"Genin","isbn":"777"}`, string(raw))
}

func TestPayload_OmitsAbsentID(t *testing.T) {
	raw, err := json.Marshal(Payload{Title: "T", Author: "A", ISBN: "1"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"id"`)
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name string
		in   Payload
		want []string
	}{
		{
			name: "all missing",
			in:   Payload{},
			want: []string{"title is required", "author is required", "isbn is required"},
		},
		{
			name: "blank counts as missing",
			in:   Payload{Title: "  ", Author: "Genin", ISBN: "\t"},
			want: []string{"title is required", "isbn is required"},
		},
		{
			name: "valid",
			in:   Payload{Title: "Novo livro", Author: "Genin", ISBN: "777"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			assert.Equal(t, tt.want, ValidatePayload(&p))
		})
	}
}

func TestValidatePayload_Trims(t *testing.T) {
	p := Payload{Title: " Novo livro ", Author: "Genin ", ISBN: " 777"}
	require.Empty(t, ValidatePayload(&p))
	assert.Equal(t, "Novo livro", p.Title)
	assert.Equal(t, "Genin", p.Author)
	assert.Equal(t, "777", p.ISBN)
}
