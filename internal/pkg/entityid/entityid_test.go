package entityid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentSpec = Spec{Kind: "student", Prefix: "STU", Width: 4}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "first value", n: 1, want: "STU0001"},
		{name: "padded", n: 42, want: "STU0042"},
		{name: "full width", n: 9999, want: "STU9999"},
		{name: "widens past pad width", n: 10000, want: "STU10000"},
		{name: "keeps widening", n: 123456, want: "STU123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, studentSpec.Format(tt.n))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    int64
		wantErr bool
	}{
		{name: "minimum padded", id: "STU0001", want: 1},
		{name: "widened", id: "STU10001", want: 10001},
		{name: "wrong prefix", id: "TCH0001", wantErr: true},
		{name: "prefix only", id: "STU", wantErr: true},
		{name: "non-digit suffix", id: "STU00a1", wantErr: true},
		{name: "suffix shorter than width", id: "STU01", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := studentSpec.Parse(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext(t *testing.T) {
	first, err := studentSpec.Next("")
	require.NoError(t, err)
	assert.Equal(t, "STU0001", first)

	second, err := studentSpec.Next(first)
	require.NoError(t, err)
	assert.Equal(t, "STU0002", second)

	// Incrementing past the pad width must widen, never wrap.
	widened, err := studentSpec.Next("STU9999")
	require.NoError(t, err)
	assert.Equal(t, "STU10000", widened)

	_, err = studentSpec.Next("garbage")
	assert.ErrorIs(t, err, ErrMalformedID)
}

func TestNextIsStrictlyIncreasing(t *testing.T) {
	last := ""
	var prev int64
	for i := 0; i < 25; i++ {
		id, err := studentSpec.Next(last)
		require.NoError(t, err)
		n, err := studentSpec.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, prev+1, n, "suffixes of sequential creations must differ by exactly 1")
		prev = n
		last = id
	}
}
