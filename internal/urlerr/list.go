package urlerr

import (
	"fmt"
	"strings"
)

// List is an error that groups related child errors, for example all
// invalid URLs found in a batch of inputs.
type List struct {
	// What describes what kind of errors this list holds.
	What error

	// Children is the detail errors in this list.
	Children []error
}

// Error implements the error interface.
func (l List) Error() string {
	ss := make([]string, 0, len(l.Children)+1)
	ss = append(ss, l.What.Error()+":")

	for _, e := range l.Children {
		for _, s := range strings.Split(e.Error(), "\n") {
			ss = append(ss, "  "+s)
		}
	}

	return strings.Join(ss, "\n")
}

// Unwrap implements for errors.Unwrap. It returns the What member.
func (l List) Unwrap() error {
	return l.What
}

// Is implements for errors.Is. A List matches its What and any of its
// children.
func (l List) Is(err error) bool {
	if l.What == err {
		return true
	}
	for _, e := range l.Children {
		if e == err {
			return true
		}
	}
	return false
}

// ListBuilder builds a List.
type ListBuilder struct {
	What     error
	Children []error
}

// Push appends errors as children.
func (lb *ListBuilder) Push(err ...error) {
	lb.Children = append(lb.Children, err...)
}

// Pushf formats an error with fmt.Errorf and pushes it as a child.
func (lb *ListBuilder) Pushf(format string, values ...interface{}) {
	lb.Push(fmt.Errorf(format, values...))
}

// Build creates a List if any child has been pushed, otherwise it
// returns nil.
func (lb *ListBuilder) Build() error {
	if len(lb.Children) == 0 {
		return nil
	}

	return List{
		What:     lb.What,
		Children: lb.Children,
	}
}
