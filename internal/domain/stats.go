package domain

// Stats are aggregate table counts shown to admins.
type Stats struct {
	Users    int64
	Requests int64
	Hotels   int64
}
