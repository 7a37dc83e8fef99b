package batch

// Status is the outcome of one item in a bulk location operation.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Result reports what happened to a single location id.
type Result struct {
	id     string
	status Status
	err    error
}

// OK marks id as processed.
func OK(id string) Result { return Result{id: id, status: StatusOK} }

// Failed marks id as rejected with err.
func Failed(id string, err error) Result { return Result{id: id, status: StatusError, err: err} }

func (r Result) ID() string     { return r.id }
func (r Result) Status() Status { return r.status }
func (r Result) Err() error     { return r.err }

// Count returns how many results succeeded and failed.
func Count(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.status == StatusOK {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
