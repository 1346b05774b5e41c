package submission

// Two small status workflows govern inbound submissions. Every transition is
// an explicit admin command; the single exception is a contact message
// flipping new -> read the first time an admin opens it. Nothing is terminal:
// archived and rejected records can always be moved again.

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

func (s ContactStatus) String() string {
	return string(s)
}

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusNew         ApplicationStatus = "new"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

// AutoReadOnView reports whether opening a message in the given status
// triggers the automatic new -> read transition. It fires exactly once per
// message, because after it the status is no longer "new".
func AutoReadOnView(status ContactStatus) bool {
	return status == ContactStatusNew
}
