package domain

import "time"

// OfflineRecord is a check-in waiting in the offline queue.
type OfflineRecord struct {
	ID       string       `json:"id"`
	Input    CheckInInput `json:"input"`
	QueuedAt time.Time    `json:"queued_at"`
	Attempts int          `json:"attempts"`
}

type SyncResult struct {
	Synced   int `json:"synced"`
	Failed   int `json:"failed"`
	Rejected int `json:"rejected"`
}

func (r SyncResult) Empty() bool {
	return r.Synced == 0 && r.Failed == 0 && r.Rejected == 0
}
