package window

// Recorder is a Creator that keeps submitted requests instead of opening windows.
type Recorder struct {
	Requests []*Request
	Err      error
}

// Create implements Creator.
func (r *Recorder) Create(req *Request) (Handle, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Requests = append(r.Requests, req)
	return recordedHandle{}, nil
}

// Last returns the most recent request, or nil.
func (r *Recorder) Last() *Request {
	if len(r.Requests) == 0 {
		return nil
	}
	return r.Requests[len(r.Requests)-1]
}

type recordedHandle struct{}

func (recordedHandle) Run() error { return nil }
