package params

import "fmt"

// SubmitPolicy decides whether a successful submit also dismisses the panel.
type SubmitPolicy int

const (
	// SubmitClose commits the draft and closes the panel.
	SubmitClose SubmitPolicy = iota
	// SubmitKeepOpen commits the draft and leaves the panel open.
	SubmitKeepOpen
)

func (p SubmitPolicy) String() string {
	switch p {
	case SubmitClose:
		return "close"
	case SubmitKeepOpen:
		return "keep_open"
	default:
		return fmt.Sprintf("submit_policy(%d)", int(p))
	}
}

// ParseSubmitPolicy reads the configuration spelling of a policy.
func ParseSubmitPolicy(s string) (SubmitPolicy, error) {
	switch s {
	case "close", "":
		return SubmitClose, nil
	case "keep_open", "keep-open":
		return SubmitKeepOpen, nil
	default:
		return SubmitClose, fmt.Errorf("unknown submit policy %q", s)
	}
}

// DismissReason records why the panel asked its parent to close it.
type DismissReason int

const (
	DismissOutside DismissReason = iota
	DismissEscape
	DismissSubmit
)

func (r DismissReason) String() string {
	switch r {
	case DismissOutside:
		return "outside_click"
	case DismissEscape:
		return "escape"
	case DismissSubmit:
		return "submit"
	default:
		return fmt.Sprintf("dismiss(%d)", int(r))
	}
}
