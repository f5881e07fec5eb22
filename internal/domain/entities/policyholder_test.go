package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicyholder(t *testing.T) {
	a := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
	b := NewPolicyholder("PH1002", "Femi Badru", "femi@example.com")

	assert.Equal(t, PolicyholderStatusRegistered, a.Status)
	assert.Empty(t, a.Products)

	require.NoError(t, a.RegisterForProduct("BAS01", nil))
	assert.Empty(t, b.Products, "product maps must not be shared between policyholders")
}

func TestPolicyholder_RegisterForProduct(t *testing.T) {
	stamp := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("defaults start date to now", func(t *testing.T) {
		freezeClock(t, stamp)
		ph := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
		require.NoError(t, ph.RegisterForProduct("BAS01", nil))
		assert.True(t, ph.Products["BAS01"].Equal(stamp))
	})

	t.Run("re-registering overwrites start date", func(t *testing.T) {
		ph := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
		first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		second := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, ph.RegisterForProduct("BAS01", &first))
		require.NoError(t, ph.RegisterForProduct("BAS01", &second))
		assert.Len(t, ph.Products, 1)
		assert.True(t, ph.Products["BAS01"].Equal(second))
	})

	for _, status := range []PolicyholderStatus{PolicyholderStatusSuspended, PolicyholderStatusCancelled} {
		t.Run("denied when "+string(status), func(t *testing.T) {
			ph := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
			ph.Status = status
			err := ph.RegisterForProduct("BAS01", nil)
			require.ErrorIs(t, err, ErrPermissionDenied)
			assert.Empty(t, ph.Products)
		})
	}

	t.Run("cancel blocks further enrollment", func(t *testing.T) {
		ph := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
		require.NoError(t, ph.RegisterForProduct("X", nil))
		ph.Cancel()
		require.ErrorIs(t, ph.RegisterForProduct("Y", nil), ErrPermissionDenied)
		assert.Equal(t, []string{"X"}, ph.ProductCodes())
	})
}

func TestPolicyholder_StatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from PolicyholderStatus
		op   func(*Policyholder)
		want PolicyholderStatus
	}{
		{"suspend registered", PolicyholderStatusRegistered, (*Policyholder).Suspend, PolicyholderStatusSuspended},
		{"suspend suspended", PolicyholderStatusSuspended, (*Policyholder).Suspend, PolicyholderStatusSuspended},
		{"suspend cancelled", PolicyholderStatusCancelled, (*Policyholder).Suspend, PolicyholderStatusSuspended},
		{"reactivate registered", PolicyholderStatusRegistered, (*Policyholder).Reactivate, PolicyholderStatusRegistered},
		{"reactivate suspended", PolicyholderStatusSuspended, (*Policyholder).Reactivate, PolicyholderStatusRegistered},
		// Cancellation is not terminal: reactivate resurrects the policyholder.
		{"reactivate cancelled", PolicyholderStatusCancelled, (*Policyholder).Reactivate, PolicyholderStatusRegistered},
		{"cancel registered", PolicyholderStatusRegistered, (*Policyholder).Cancel, PolicyholderStatusCancelled},
		{"cancel suspended", PolicyholderStatusSuspended, (*Policyholder).Cancel, PolicyholderStatusCancelled},
		{"cancel cancelled", PolicyholderStatusCancelled, (*Policyholder).Cancel, PolicyholderStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ph := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
			ph.Status = tc.from
			tc.op(ph)
			tc.op(ph)
			assert.Equal(t, tc.want, ph.Status)
		})
	}
}

func TestPolicyholderStatus_IsValid(t *testing.T) {
	assert.True(t, PolicyholderStatusRegistered.IsValid())
	assert.True(t, PolicyholderStatusSuspended.IsValid())
	assert.True(t, PolicyholderStatusCancelled.IsValid())
	assert.False(t, PolicyholderStatus("ACTIVE").IsValid())
}

func TestPolicyholder_String(t *testing.T) {
	ph := NewPolicyholder("PH1001", "Adaeze Okoye", "ada@example.com")
	assert.Equal(t, "PH1001 | Adaeze Okoye | REGISTERED | Products: None", ph.String())

	require.NoError(t, ph.RegisterForProduct("FAM10", nil))
	require.NoError(t, ph.RegisterForProduct("BAS01", nil))
	assert.Equal(t, "PH1001 | Adaeze Okoye | REGISTERED | Products: BAS01, FAM10", ph.String())
}
