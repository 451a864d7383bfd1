package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Name":        "name",
		"Email":       "email",
		"CategoryId":  "category_id",
		"ProductName": "product_name",
		"ProductIds":  "product_ids",
		"UserId":      "user_id",
	}
	for input, want := range cases {
		assert.Equal(t, want, snakeCase(input), input)
	}
}
