package tostr_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tostr"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want tostr.Config
	}{
		"full": {
			in:   "fields: true\nmethods: true\nignore: [Password, Token]\nmax_width: 40\n",
			want: tostr.Config{Fields: true, Methods: true, Ignore: []string{"Password", "Token"}, MaxWidth: 40},
		},
		"fields only": {
			in:   "fields: true\n",
			want: tostr.Config{Fields: true},
		},
		"empty": {
			in:   "",
			want: tostr.Config{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tostr.ParseConfig([]byte(tt.in))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	_, err := tostr.LoadConfig(strings.NewReader("fields: true\nproperties: true\n"))
	require.ErrorIs(t, err, tostr.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "properties")
}

func TestLoadConfigRejectsMalformed(t *testing.T) {
	t.Parallel()
	_, err := tostr.LoadConfig(strings.NewReader("fields: [\n"))
	assert.ErrorIs(t, err, tostr.ErrInvalidConfiguration)
}

func TestApplyConfig(t *testing.T) {
	t.Parallel()
	cfg, err := tostr.LoadConfig(strings.NewReader("fields: true\nignore:\n  - Password\nmax_width: 5\n"))
	require.NoError(t, err)
	render, err := tostr.New[person]().Apply(cfg).Build()
	require.NoError(t, err)
	assert.Equal(t, `{Name="Ad...", Age=36}`, render(person{Name: "Adalovelace", Age: 36, Password: "x"}))
}

func TestApplyConfigKeepsCodeSettings(t *testing.T) {
	t.Parallel()
	render, err := tostr.New[account]().UseMethods().Apply(tostr.Config{Ignore: []string{"Label"}}).Build()
	require.NoError(t, err)
	assert.Equal(t, "{Active=False}", render(account{}))
}

func TestApplyConfigValidatesArguments(t *testing.T) {
	t.Parallel()
	b := tostr.New[person]().Apply(tostr.Config{Fields: true, Ignore: []string{""}})
	assert.ErrorIs(t, b.Err(), tostr.ErrInvalidArgument)

	b = tostr.New[person]().Apply(tostr.Config{Fields: true, MaxWidth: -3})
	assert.ErrorIs(t, b.Err(), tostr.ErrArgumentRange)
}

func TestApplyConfigWithoutMembers(t *testing.T) {
	t.Parallel()
	_, err := tostr.New[person]().Apply(tostr.Config{}).Build()
	assert.ErrorIs(t, err, tostr.ErrInvalidConfiguration)
}
