package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmploymentData_Valid(t *testing.T) {
	payload := []byte(`{
		"current_title": "Staff Engineer",
		"total_experience": "8+",
		"industry": "fintech",
		"highest_degree": "BSc Computer Science",
		"certifications": "CKA"
	}`)

	assert.NoError(t, ValidateEmploymentData(payload))
}

func TestValidateEmploymentData_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateEmploymentData([]byte(`{}`)))
}

func TestValidateEmploymentData_BadBucket(t *testing.T) {
	err := ValidateEmploymentData([]byte(`{"total_experience": "a decade"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "total_experience", ve.Errors[0].Field)
}

func TestValidateEmploymentData_UnknownField(t *testing.T) {
	err := ValidateEmploymentData([]byte(`{"favorite_color": "green"}`))
	assert.Error(t, err)
}

func TestValidateEmploymentData_NotAnObject(t *testing.T) {
	assert.Error(t, ValidateEmploymentData([]byte(`"just a string"`)))
	assert.Error(t, ValidateEmploymentData([]byte(`not json`)))
}
