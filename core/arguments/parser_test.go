package arguments_test

import (
	"errors"
	"testing"

	"devserver/core/arguments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SyntaxEquivalence(t *testing.T) {
	inputs := [][]string{
		{"prog", "--port=9090"},
		{"prog", "--port:9090"},
		{"prog", "--port", "9090"},
		{"prog", "-p", "9090"},
		{"prog", "-p=9090"},
		{"prog", "-p:9090"},
	}

	for _, in := range inputs {
		args, err := arguments.Parse(in)
		require.NoError(t, err, in)

		v := args.Get(arguments.KeyPort)
		assert.Equal(t, arguments.WithValue, v.Presence, in)
		assert.Equal(t, "9090", v.Text, in)
		assert.Equal(t, 1, args.Len(), in)
	}
}

func TestParse_Aliases(t *testing.T) {
	args, err := arguments.Parse([]string{"prog", "-h", "0.0.0.0", "-p", "9090", "-d", "/srv/www"})
	require.NoError(t, err)

	assert.Equal(t, []string{"host", "port", "directory"}, args.Keys())
	assert.Equal(t, "0.0.0.0", args.Get("host").Text)
	assert.Equal(t, "9090", args.Get("port").Text)
	assert.Equal(t, "/srv/www", args.Get("directory").Text)
	assert.Equal(t, arguments.Absent, args.Get("h").Presence)
}

func TestParse_UnknownKeysPassThrough(t *testing.T) {
	args, err := arguments.Parse([]string{"prog", "--verbose", "-x=1", "--hostname", "box"})
	require.NoError(t, err)

	assert.Equal(t, arguments.NoValue, args.Get("verbose").Presence)
	assert.Equal(t, "1", args.Get("x").Text)
	// only exact short names are aliased
	assert.Equal(t, "box", args.Get("hostname").Text)
	assert.Equal(t, arguments.Absent, args.Get("host").Presence)
}

func TestParse_BareFlagFollowedByFlag(t *testing.T) {
	args, err := arguments.Parse([]string{"prog", "--host", "--port", "8080"})
	require.NoError(t, err)

	assert.Equal(t, arguments.NoValue, args.Get("host").Presence)
	assert.Equal(t, arguments.WithValue, args.Get("port").Presence)
	assert.Equal(t, "8080", args.Get("port").Text)
}

func TestParse_TrailingBareFlag(t *testing.T) {
	args, err := arguments.Parse([]string{"prog", "-p", "8080", "-d"})
	require.NoError(t, err)

	assert.Equal(t, "8080", args.Get("port").Text)
	assert.Equal(t, arguments.NoValue, args.Get("directory").Presence)
}

func TestParse_SeparatorPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		token string
		key   string
		want  string
	}{
		{"EqualsBeforeColon", "--directory=C:/www", "directory", "C:/www"},
		{"ColonOnly", "--host:localhost", "host", "localhost"},
		{"IPv6WithEquals", "--host=::1", "host", "::1"},
		{"ExtraEqualsKeptInValue", "--directory=a=b", "directory", "a=b"},
		{"EmptyValue", "--host=", "host", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := arguments.Parse([]string{"prog", tt.token})
			require.NoError(t, err)

			v := args.Get(tt.key)
			assert.Equal(t, arguments.WithValue, v.Presence)
			assert.Equal(t, tt.want, v.Text)
		})
	}
}

func TestParse_LastOccurrenceWins(t *testing.T) {
	args, err := arguments.Parse([]string{"prog", "--port=8000", "-p", "9000"})
	require.NoError(t, err)

	assert.Equal(t, "9000", args.Get("port").Text)
	assert.Equal(t, 1, args.Len())
}

func TestParse_IgnoresStrayValues(t *testing.T) {
	args, err := arguments.Parse([]string{"prog", "serve", "--port", "8080", "extra"})
	require.NoError(t, err)

	assert.Equal(t, []string{"port"}, args.Keys())
}

func TestParse_Empty(t *testing.T) {
	for _, in := range [][]string{nil, {}, {"prog"}} {
		args, err := arguments.Parse(in)
		require.NoError(t, err)
		assert.Equal(t, 0, args.Len())
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"SingleDash", "-"},
		{"DoubleDash", "--"},
		{"EmptyNameEquals", "--=x"},
		{"EmptyNameColon", "-:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := arguments.Parse([]string{"prog", "--port", "80", tt.token})
			require.Error(t, err)
			assert.True(t, errors.Is(err, arguments.ErrMalformedArgument))

			var me *arguments.MalformedError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.token, me.Token)
			assert.Equal(t, 3, me.Index)
		})
	}
}

func TestScan_KeepsShortNames(t *testing.T) {
	raw, err := arguments.Scan([]string{"prog", "-h", "--port:1"})
	require.NoError(t, err)

	assert.Equal(t, []arguments.RawArgument{
		{Name: "h"},
		{Name: "port", Value: "1", HasValue: true},
	}, raw)
}

func TestPresence_String(t *testing.T) {
	assert.Equal(t, "absent", arguments.Absent.String())
	assert.Equal(t, "no-value", arguments.NoValue.String())
	assert.Equal(t, "with-value", arguments.WithValue.String())
}
