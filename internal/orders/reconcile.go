package orders

// ReturnState is the merged return status shown for an order.
type ReturnState string

const (
	ReturnNone      ReturnState = "none"
	ReturnRequested ReturnState = "requested"
	ReturnApproved  ReturnState = "approved"
	ReturnRejected  ReturnState = "rejected"
	ReturnCompleted ReturnState = "completed"
	ReturnUnknown   ReturnState = "unknown"
)

// ReturnSource records which input decided the merged return state.
type ReturnSource string

const (
	FromStatus  ReturnSource = "status"
	FromRequest ReturnSource = "request"
	NoReturn    ReturnSource = "none"
)

type ReturnResolution struct {
	Source ReturnSource `json:"source"`
	State  ReturnState  `json:"state"`
	Label  string       `json:"label"`
	Tone   Tone         `json:"tone"`
}

// Order statuses that already carry a return outcome.
var statusReturnStates = map[string]ReturnState{
	StatusReturnRequested: ReturnRequested,
	StatusReturned:        ReturnCompleted,
	StatusReturnRejected:  ReturnRejected,
}

var requestReturnStates = map[string]ReturnState{
	RequestRequested: ReturnRequested,
	RequestApproved:  ReturnApproved,
	RequestRejected:  ReturnRejected,
}

var returnDescriptions = map[ReturnState]struct {
	label string
	tone  Tone
}{
	ReturnNone:      {"no return", ToneNeutral},
	ReturnRequested: {"return requested", ToneWarning},
	ReturnApproved:  {"return approved", ToneSuccess},
	ReturnRejected:  {"return rejected", ToneError},
	ReturnCompleted: {"returned", ToneSuccessAlt},
	ReturnUnknown:   {"unknown", ToneNeutral},
}

// ResolveReturn merges the order status with its optional return request.
// A return outcome encoded in the order status always wins over the request
// record, which may be left over from an older backend revision.
func ResolveReturn(status string, req *ReturnRequest) ReturnResolution {
	if state, ok := statusReturnStates[status]; ok {
		return describe(FromStatus, state)
	}
	if req != nil {
		state, ok := requestReturnStates[req.Status]
		if !ok {
			state = ReturnUnknown
		}
		return describe(FromRequest, state)
	}
	return describe(NoReturn, ReturnNone)
}

// DescribeReturn returns the label and tone for a merged return state.
func DescribeReturn(state ReturnState) (string, Tone) {
	d, ok := returnDescriptions[state]
	if !ok {
		d = returnDescriptions[ReturnUnknown]
	}
	return d.label, d.tone
}

func describe(source ReturnSource, state ReturnState) ReturnResolution {
	label, tone := DescribeReturn(state)
	return ReturnResolution{Source: source, State: state, Label: label, Tone: tone}
}
