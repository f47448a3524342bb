package order

type Status string

const (
	// StatusPending is the status every order is created with. Downstream
	// order processing is out of scope here, so no further transitions happen.
	StatusPending Status = "pending"
)
