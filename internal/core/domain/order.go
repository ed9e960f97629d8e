package domain

// OrderSubmission is one inbound EDI order request after validation.
// MerchantID always comes from the authenticated token context, never from
// the request body.
type OrderSubmission struct {
	MerchantID      int64
	OrderReference  string
	PickupAddress   string
	DeliveryAddress string // empty in the single-leg variant
	CustomerName    string
	CustomerPhone   string
	PickupDatetime  string
}

// OrderReceipt is the normalized result of a provider job-creation call.
// Accepted=false is a normal negative result (the provider rejected the
// order for a business reason), not a transport failure.
type OrderReceipt struct {
	Accepted           bool
	JobID              int64
	TrackingLink       string
	PickupTrackingLink string
	Message            string
}

// JobStatus is the stable external status vocabulary. Provider numeric
// codes are mapped into it; unknown codes map to JobStatusUnknown.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusStarted   JobStatus = "started"
	JobStatusArrived   JobStatus = "arrived"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
	JobStatusUnknown   JobStatus = "unknown"
)

var jobStatusByCode = map[int]JobStatus{
	0:  JobStatusAssigned,
	1:  JobStatusStarted,
	2:  JobStatusCompleted,
	3:  JobStatusFailed,
	4:  JobStatusArrived,
	6:  JobStatusPending,
	7:  JobStatusAssigned,
	8:  JobStatusCancelled,
	9:  JobStatusCancelled,
	10: JobStatusCancelled,
}

// JobStatusFromCode maps a provider status code into the stable vocabulary.
// The second return reports whether the code was recognised.
func JobStatusFromCode(code int) (JobStatus, bool) {
	s, ok := jobStatusByCode[code]
	if !ok {
		return JobStatusUnknown, false
	}
	return s, true
}

// ProviderJob is the full live projection of a provider job at query time.
// It is never cached; the status flows project subsets of it into the two
// external response shapes.
type ProviderJob struct {
	JobID               int64
	Status              JobStatus
	StatusCode          int
	TrackingLink        string
	FleetID             int64
	FleetName           string
	JobDeliveryDatetime string
	JobType             string
}
