package ctxlog

// Destination is the policy a logger variant supplies: where its log
// directory is and what the file inside it is called. Both are queried on
// every resolution and never cached, so date or context driven policies move
// to a new destination on their own.
type Destination interface {
	LogDirectory() string
	FileName() string
}

// DestinationFuncs builds a Destination from two functions.
type DestinationFuncs struct {
	Dir  func() string
	File func() string
}

func (d DestinationFuncs) LogDirectory() string {
	if d.Dir == nil {
		return ""
	}
	return d.Dir()
}

func (d DestinationFuncs) FileName() string {
	if d.File == nil {
		return ""
	}
	return d.File()
}
