package plan

// LoadMode distinguishes a full initial study load from an incremental
// (delta) load. It is determined once per invocation by which directory
// argument was supplied and is immutable afterwards; it gates both the
// eligible step subset and the overwrite-existing flag.
type LoadMode int

const (
	FullLoad LoadMode = iota
	IncrementalLoad
)

func (m LoadMode) String() string {
	switch m {
	case FullLoad:
		return "full"
	case IncrementalLoad:
		return "incremental"
	}
	return "invalid"
}
