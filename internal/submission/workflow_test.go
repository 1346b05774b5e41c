package submission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContactStatusValidity(t *testing.T) {
	for _, status := range []ContactStatus{ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived} {
		require.True(t, status.IsValid(), status)
	}
	require.False(t, ContactStatus("pending").IsValid())
	require.False(t, ContactStatus("").IsValid())
}

func TestApplicationStatusValidity(t *testing.T) {
	for _, status := range []ApplicationStatus{ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected} {
		require.True(t, status.IsValid(), status)
	}
	require.False(t, ApplicationStatus("accepted").IsValid())
}

func TestAutoReadOnlyFiresFromNew(t *testing.T) {
	require.True(t, AutoReadOnView(ContactStatusNew))

	// Once read, later views change nothing.
	require.False(t, AutoReadOnView(ContactStatusRead))
	require.False(t, AutoReadOnView(ContactStatusReplied))
	require.False(t, AutoReadOnView(ContactStatusArchived))
}
