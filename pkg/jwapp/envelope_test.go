package jwapp_test

import (
	"encoding/json"
	"testing"

	"github.com/cczukit/cczukit-go/pkg/jwapp"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeDecode(t *testing.T) {
	var env jwapp.Envelope[jwapp.Term]
	err := json.Unmarshal([]byte(`{"status":1,"message":[{"xq":"2025-2026-1"},{"xq":"2024-2025-2"}],"token":"tok"}`), &env)
	require.NoError(t, err)
	require.Equal(t, 1, env.Status)
	require.Equal(t, "tok", env.Token)
	require.Len(t, env.Items, 2)
	require.Equal(t, "2025-2026-1", env.Items[0].Term)
}

func TestEnvelopeMissingFieldsDegrade(t *testing.T) {
	t.Run("no message", func(t *testing.T) {
		var env jwapp.Envelope[jwapp.Term]
		require.NoError(t, json.Unmarshal([]byte(`{"status":1}`), &env))
		require.Empty(t, env.Items)
		require.Empty(t, env.Token)
	})

	t.Run("message not an array", func(t *testing.T) {
		var env jwapp.Envelope[jwapp.Term]
		require.NoError(t, json.Unmarshal([]byte(`{"status":1,"message":"服务器繁忙"}`), &env))
		require.Empty(t, env.Items)
	})

	t.Run("null token", func(t *testing.T) {
		var env jwapp.Envelope[jwapp.Term]
		require.NoError(t, json.Unmarshal([]byte(`{"status":1,"message":[],"token":null}`), &env))
		require.Empty(t, env.Token)
	})
}

func TestEnvelopeInvalidJSON(t *testing.T) {
	var env jwapp.Envelope[jwapp.Term]
	require.Error(t, json.Unmarshal([]byte(`not json`), &env))
}

func TestValueScalars(t *testing.T) {
	var fields map[string]jwapp.Value
	payload := `{"s":"text","i":42,"f":3.5,"b":true,"n":null,"big":9.2e18}`
	require.NoError(t, json.Unmarshal([]byte(payload), &fields))

	s, ok := fields["s"].String()
	require.True(t, ok)
	require.Equal(t, "text", s)

	i, ok := fields["i"].Int()
	require.True(t, ok)
	require.EqualValues(t, 42, i)

	// Integers also read as floats
	f, ok := fields["i"].Float()
	require.True(t, ok)
	require.EqualValues(t, 42, f)

	f, ok = fields["f"].Float()
	require.True(t, ok)
	require.EqualValues(t, 3.5, f)

	b, ok := fields["b"].Bool()
	require.True(t, ok)
	require.True(t, b)

	require.True(t, fields["n"].IsNull())

	// Exponent-form numbers come back as floats
	_, ok = fields["big"].Float()
	require.True(t, ok)

	// Wrong-type reads report absence
	_, ok = fields["s"].Int()
	require.False(t, ok)
	_, ok = fields["i"].String()
	require.False(t, ok)

	// Missing keys behave like null
	require.True(t, fields["absent"].IsNull())
}
