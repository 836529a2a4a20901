package region

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveUK(t *testing.T) {
	t.Parallel()

	c, err := Resolve(UK)
	require.NoError(t, err)
	require.Equal(t, "+44 20 1234 5678", c.Phone)
	require.Equal(t, "https://wa.me/442012345678", c.WhatsApp)
	require.Equal(t, "tel:+44 20 1234 5678", c.TelURI())
}

func TestResolveIsTotalOverTable(t *testing.T) {
	t.Parallel()

	want := map[Region]string{
		US:  "https://wa.me/15551234567",
		UK:  "https://wa.me/442012345678",
		UAE: "https://wa.me/971501234567",
	}
	for _, r := range All() {
		c, err := Resolve(r)
		require.NoError(t, err)
		require.Equal(t, r, c.Region)
		require.Equal(t, want[r], c.WhatsApp)
		require.NotEmpty(t, c.Phone)
		require.NotEmpty(t, c.Label)
	}
	require.Equal(t, "tel:+1 (555) 123‑4567", MustResolve(US).TelURI())
	require.Equal(t, "tel:+971 50 123 4567", MustResolve(UAE).TelURI())
}

func TestResolveUnknownRegion(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Region("FR"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownRegion))
	require.Panics(t, func() { MustResolve(Region("FR")) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	r, ok := Parse(" uae")
	require.True(t, ok)
	require.Equal(t, UAE, r)

	r, ok = Parse("mars")
	require.False(t, ok)
	require.Equal(t, Default, r)
}

func TestContactsOrder(t *testing.T) {
	t.Parallel()

	cs := Contacts()
	require.Len(t, cs, 3)
	require.Equal(t, []Region{US, UK, UAE}, []Region{cs[0].Region, cs[1].Region, cs[2].Region})
}
