package module

import dom "reclaim/internal/services/rollover/domain"

// Ports exposes the rollover worker seams
type Ports struct {
	Worker dom.WorkerPort
}
