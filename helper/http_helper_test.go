package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"newsroom-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "long_headline", Underscore("LongHeadline"))
	assert.Equal(t, "section_id", Underscore("SectionID"))
	assert.Equal(t, "featured_image_temp_id", Underscore("FeaturedImageTempID"))
	assert.Equal(t, "name", Underscore("Name"))
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.NotFound("article", 1), http.StatusNotFound},
		{fmt.Errorf("temporary image 1: %w", models.NotFound("image", 3)), http.StatusNotFound},
		{models.ErrorValidation{Message: "bad"}, http.StatusBadRequest},
		{models.ErrorInvalidReference{Message: "missing"}, http.StatusUnprocessableEntity},
		{models.ErrorConflict{Message: "raced"}, http.StatusConflict},
		{models.ErrorUnauthorized{Message: "no"}, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, h.GetStatusCode(tt.err), "%v", tt.err)
	}
}
