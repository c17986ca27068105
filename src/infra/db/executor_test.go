package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	text := "hello"
	done := true
	var nilText *string

	tests := []struct {
		name    string
		in      any
		want    any
		wantErr bool
	}{
		{name: "int", in: 42, want: int64(42)},
		{name: "int64", in: int64(7), want: int64(7)},
		{name: "string", in: "hello", want: "hello"},
		{name: "bool", in: true, want: true},
		{name: "nil", in: nil, want: nil},
		{name: "string pointer", in: &text, want: "hello"},
		{name: "bool pointer", in: &done, want: true},
		{name: "nil string pointer", in: nilText, want: nil},
		{name: "float rejected", in: 3.14, wantErr: true},
		{name: "slice rejected", in: []string{"x"}, wantErr: true},
		{name: "map rejected", in: map[string]int{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Value(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.value)
		})
	}
}

func TestParamsNamed(t *testing.T) {
	params := Params{
		"id":    Int(3),
		"title": Text("Buy milk"),
		"done":  Bool(false),
		"desc":  Null(),
	}

	args := params.named()

	assert.Equal(t, int64(3), args["id"])
	assert.Equal(t, "Buy milk", args["title"])
	assert.Equal(t, false, args["done"])
	assert.Nil(t, args["desc"])
	assert.Len(t, args, 4)
}

func TestParamsNamedNilMap(t *testing.T) {
	var params Params
	assert.Empty(t, params.named())
}

func TestStatementVerb(t *testing.T) {
	assert.Equal(t, "SELECT", statementVerb("SELECT id FROM tasks"))
	assert.Equal(t, "UPDATE", statementVerb("\n\t\tupdate tasks set title = @title"))
	assert.Equal(t, "UNKNOWN", statementVerb("  "))
}
