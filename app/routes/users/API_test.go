package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma separated",
			input:    "a1,b2,c3",
			expected: []string{"a1", "b2", "c3"},
		},
		{
			name:     "whitespace and empties dropped",
			input:    " a1 , , b2,",
			expected: []string{"a1", "b2"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitIDs(tt.input))
		})
	}
}

func TestAddUserRequestValidation(t *testing.T) {
	valid := addUserRequest{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "longenough",
		Role:     "Manager",
	}
	assert.NoError(t, validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*addUserRequest)
	}{
		{"missing name", func(r *addUserRequest) { r.Name = "" }},
		{"bad email", func(r *addUserRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *addUserRequest) { r.Password = "short" }},
		{"missing role", func(r *addUserRequest) { r.Role = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := validate.Struct(req)
			assert.Error(t, err)
			assert.NotEqual(t, "Invalid input", validationMessage(err),
				"validation errors should name the offending field")
		})
	}
}
