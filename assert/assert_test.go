package assert

import (
	"testing"

	"github.com/oomph-ac/lutrig/oerror"
	"github.com/stretchr/testify/require"
)

func TestIsTrue(t *testing.T) {
	require.NotPanics(t, func() { IsTrue(true, "never raised") })

	if !Enabled {
		require.NotPanics(t, func() { IsTrue(false, "compiled out") })
		return
	}

	defer func() {
		r := recover()
		require.IsType(t, &oerror.Error{}, r)
		require.Equal(t, "table has 0 samples", r.(*oerror.Error).Error())
	}()
	IsTrue(false, "table has %d samples", 0)
}
