package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecencySeedOrder(t *testing.T) {
	r := NewRecency(DefaultRecentCapacity, DefaultRecent...)
	if diff := cmp.Diff(DefaultRecent, r.Colors()); diff != "" {
		t.Errorf("seeded colors mismatch (-want +got):\n%s", diff)
	}
}

func TestRecencyUseMovesToFront(t *testing.T) {
	r := NewRecency(4, "#111111", "#222222", "#333333")
	r.Use("#333333")

	want := []Color{"#333333", "#111111", "#222222"}
	if diff := cmp.Diff(want, r.Colors()); diff != "" {
		t.Errorf("after Use (-want +got):\n%s", diff)
	}
}

func TestRecencyTruncatesToCapacity(t *testing.T) {
	r := NewRecency(3)
	for _, c := range []Color{"#000001", "#000002", "#000003", "#000004"} {
		r.Use(c)
	}

	want := []Color{"#000004", "#000003", "#000002"}
	if diff := cmp.Diff(want, r.Colors()); diff != "" {
		t.Errorf("truncated list (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, r.Capacity())
}

func TestRecencyUseIsIdempotent(t *testing.T) {
	r := NewRecency(DefaultRecentCapacity, DefaultRecent...)
	for range 5 {
		r.Use("#123456")
	}
	colors := r.Colors()
	assert.Equal(t, Color("#123456"), colors[0])

	count := 0
	for _, c := range colors {
		if c == "#123456" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, DefaultRecentCapacity, r.Len())
}

func TestRecencyNormalizesBeforeDedupe(t *testing.T) {
	r := NewRecency(6)
	r.Use("#abc")
	r.Use("#AABBCC")
	r.Use("#aabbcc")

	assert.Equal(t, []Color{"#AABBCC"}, r.Colors())
	assert.True(t, r.Contains("#abc"))
	assert.True(t, r.Contains("#AaBbCc"))
	assert.False(t, r.Contains("#ZZZZZZ"))
}

func TestRecencyRejectsMalformed(t *testing.T) {
	r := NewRecency(6, "#FF0000")
	_, err := r.UseString("#ZZZZZZ")
	require.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, []Color{"#FF0000"}, r.Colors())

	c, err := r.UseString("#0f0")
	require.NoError(t, err)
	assert.Equal(t, Color("#00FF00"), c)
	assert.Equal(t, []Color{"#00FF00", "#FF0000"}, r.Colors())
}

func TestRecencyColorsIsACopy(t *testing.T) {
	r := NewRecency(2, "#FF0000")
	got := r.Colors()
	got[0] = "#000000"
	assert.Equal(t, Color("#FF0000"), r.Colors()[0])
}
