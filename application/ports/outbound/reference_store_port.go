package outbound

// ReferenceStorePort is the single "latest reference voice" slot. Set replaces
// the slot; Get returns domain.ErrNoReferenceRecorded while the slot is empty.
// There is exactly one slot per store; concurrent upload and synthesis
// requests race on it by design (last writer wins).
type ReferenceStorePort interface {
	Set(wavPath string) error
	Get() (string, error)
}
