package offer

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// IsModerationTarget reports whether a moderator may set the status directly.
// Expired is only ever reached by time.
func (s Status) IsModerationTarget() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Notifies reports whether moving into s tells the advertiser about it.
func (s Status) Notifies() bool {
	return s == StatusApproved || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func NewModerationStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsModerationTarget() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
