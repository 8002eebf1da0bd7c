package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextArrayEncodesNilAsEmptyArray(t *testing.T) {
	// A freshly registered user has nil multi-select answers; those columns
	// are NOT NULL, so the nil slice must encode as '{}' rather than NULL.
	v, err := textArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = textArray([]string{}).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = textArray([]string{"Intuitive", "Empathic"}).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"Intuitive","Empathic"}`, v)
}
