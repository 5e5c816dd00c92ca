package kernel_test

import (
	"encoding/json"
	"testing"

	"coffee/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should accept UUID with braces and urn prefix", func(t *testing.T) {
		braced, err := kernel.UUIDFromString("{550e8400-e29b-41d4-a716-446655440000}")
		require.NoError(t, err)

		urn, err := kernel.UUIDFromString("urn:uuid:550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		assert.True(t, braced.IsEqual(urn))
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUID_MarshalText(t *testing.T) {
	t.Run("should encode as a JSON string", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		raw, err := json.Marshal(struct {
			ID kernel.UUID `json:"id"`
		}{ID: id})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"550e8400-e29b-41d4-a716-446655440000"}`, string(raw))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should return error for zero value UUID", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("should return error for nil UUID", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}
